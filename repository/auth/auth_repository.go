package auth

import (
	"context"
	"net/http"

	"github.com/muhammadheryan/micromarket/model"
	"github.com/muhammadheryan/micromarket/thirdparty/marketapi"
)

type API struct {
	client marketapi.Doer
}

type AuthRepository interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error)
	Register(ctx context.Context, req *model.RegisterRequest) (*model.TokenResponse, error)
}

func NewAuthRepository(client marketapi.Doer) AuthRepository {
	return &API{client: client}
}

const (
	loginPath    = "/auth/login"
	registerPath = "/auth/register"
)

func (a *API) Login(ctx context.Context, req *model.LoginRequest) (*model.TokenResponse, error) {
	var res model.TokenResponse
	err := a.client.Do(ctx, marketapi.Request{
		Method: http.MethodPost,
		Path:   loginPath,
		Body:   req,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (a *API) Register(ctx context.Context, req *model.RegisterRequest) (*model.TokenResponse, error) {
	var res model.TokenResponse
	err := a.client.Do(ctx, marketapi.Request{
		Method: http.MethodPost,
		Path:   registerPath,
		Body:   req,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
