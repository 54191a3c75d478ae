package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/muhammadheryan/micromarket/constant"
	"github.com/muhammadheryan/micromarket/model"
	"github.com/muhammadheryan/micromarket/repository/auth"
	"github.com/muhammadheryan/micromarket/thirdparty/marketapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tokenBody = `{"access_token":"jwt","token_type":"bearer","user":{"id":"u1","email":"maria@streetvendor.com","name":"Maria","user_type":"vendor","created_at":"2025-01-01T08:00:00.5"}}`

func TestAuthRepository(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		switch r.URL.Path {
		case "/api/auth/login":
			if body["password"] != "secret" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"detail":"Invalid credentials"}`))
				return
			}
		case "/api/auth/register":
			assert.Equal(t, "vendor", body["user_type"])
			assert.Equal(t, "Maria", body["name"])
		}
		_, _ = w.Write([]byte(tokenBody))
	}))
	defer srv.Close()
	repo := auth.NewAuthRepository(marketapi.New(marketapi.Options{BaseURL: srv.URL}))
	ctx := context.Background()

	res, err := repo.Login(ctx, &model.LoginRequest{Email: "maria@streetvendor.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "jwt", res.AccessToken)
	assert.Equal(t, constant.RoleVendor, res.User.Role)

	_, err = repo.Login(ctx, &model.LoginRequest{Email: "maria@streetvendor.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", marketapi.Detail(err))

	res, err = repo.Register(ctx, &model.RegisterRequest{Name: "Maria", Email: "maria@streetvendor.com", Password: "secret", Role: constant.RoleVendor})
	require.NoError(t, err)
	assert.Equal(t, "u1", res.User.ID)
}
