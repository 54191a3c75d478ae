package session_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	appsession "github.com/muhammadheryan/micromarket/application/session"
	"github.com/muhammadheryan/micromarket/constant"
	authmocks "github.com/muhammadheryan/micromarket/mocks/repository/auth"
	storagemocks "github.com/muhammadheryan/micromarket/mocks/repository/storage"
	rabbitmocks "github.com/muhammadheryan/micromarket/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/micromarket/model"
	"github.com/muhammadheryan/micromarket/repository/storage"
	"github.com/muhammadheryan/micromarket/thirdparty/marketapi"
	cerr "github.com/muhammadheryan/micromarket/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const vendorProfile = `{"id":"u1","email":"ann@market.test","name":"Ann","user_type":"vendor","created_at":null}`

func vendorToken() *model.TokenResponse {
	return &model.TokenResponse{
		AccessToken: "tok-1",
		TokenType:   "bearer",
		User:        model.User{ID: "u1", Email: "ann@market.test", Name: "Ann", Role: constant.RoleVendor},
	}
}

func TestSessionApp_Login(t *testing.T) {
	type fields struct {
		authRepo  *authmocks.AuthRepository
		storage   *storagemocks.Repository
		publisher *rabbitmocks.Publisher
	}
	type args struct {
		ctx context.Context
		req *model.LoginRequest
	}
	validReq := &model.LoginRequest{Email: "ann@market.test", Password: "pw"}

	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantUser *model.User
		wantView constant.View
		wantErr  string
	}{
		{
			name: "success: token and profile persisted together",
			fields: fields{
				authRepo:  authmocks.NewAuthRepository(t),
				storage:   storagemocks.NewRepository(t),
				publisher: rabbitmocks.NewPublisher(t),
			},
			args: args{ctx: context.Background(), req: validReq},
			mockCall: func(f fields) {
				f.authRepo.On("Login", mock.Anything, validReq).Return(vendorToken(), nil).Once()
				f.storage.On("SetMany", mock.Anything, map[string]string{
					constant.StorageKeyToken: "tok-1",
					constant.StorageKeyUser:  vendorProfile,
				}).Return(nil).Once()
				f.publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e model.ActivityEvent) bool {
					return e.Type == constant.ActivitySessionLogin && e.UserID == "u1"
				})).Return(nil).Once()
			},
			wantUser: &vendorToken().User,
			wantView: constant.ViewMarketplace,
		},
		{
			name: "success: publish failure is not fatal",
			fields: fields{
				authRepo:  authmocks.NewAuthRepository(t),
				storage:   storagemocks.NewRepository(t),
				publisher: rabbitmocks.NewPublisher(t),
			},
			args: args{ctx: context.Background(), req: validReq},
			mockCall: func(f fields) {
				f.authRepo.On("Login", mock.Anything, validReq).Return(vendorToken(), nil).Once()
				f.storage.On("SetMany", mock.Anything, mock.Anything).Return(nil).Once()
				f.publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
			wantUser: &vendorToken().User,
			wantView: constant.ViewMarketplace,
		},
		{
			name: "error: invalid email never reaches backend",
			fields: fields{
				authRepo:  authmocks.NewAuthRepository(t),
				storage:   storagemocks.NewRepository(t),
				publisher: rabbitmocks.NewPublisher(t),
			},
			args:     args{ctx: context.Background(), req: &model.LoginRequest{Email: "nope", Password: "pw"}},
			wantView: constant.ViewLanding,
			wantErr:  "email must be a valid email",
		},
		{
			name: "error: backend detail surfaced",
			fields: fields{
				authRepo:  authmocks.NewAuthRepository(t),
				storage:   storagemocks.NewRepository(t),
				publisher: rabbitmocks.NewPublisher(t),
			},
			args: args{ctx: context.Background(), req: validReq},
			mockCall: func(f fields) {
				f.authRepo.On("Login", mock.Anything, validReq).
					Return(nil, &marketapi.Error{StatusCode: http.StatusUnauthorized, Detail: "Invalid credentials"}).Once()
			},
			wantView: constant.ViewLanding,
			wantErr:  "Invalid credentials",
		},
		{
			name: "error: network failure uses generic message",
			fields: fields{
				authRepo:  authmocks.NewAuthRepository(t),
				storage:   storagemocks.NewRepository(t),
				publisher: rabbitmocks.NewPublisher(t),
			},
			args: args{ctx: context.Background(), req: validReq},
			mockCall: func(f fields) {
				f.authRepo.On("Login", mock.Anything, validReq).Return(nil, errors.New("dial tcp: refused")).Once()
			},
			wantView: constant.ViewLanding,
			wantErr:  constant.MsgLoginFailed,
		},
		{
			name: "error: storage failure leaves session anonymous",
			fields: fields{
				authRepo:  authmocks.NewAuthRepository(t),
				storage:   storagemocks.NewRepository(t),
				publisher: rabbitmocks.NewPublisher(t),
			},
			args: args{ctx: context.Background(), req: validReq},
			mockCall: func(f fields) {
				f.authRepo.On("Login", mock.Anything, validReq).Return(vendorToken(), nil).Once()
				f.storage.On("SetMany", mock.Anything, mock.Anything).Return(errors.New("redis down")).Once()
			},
			wantView: constant.ViewLanding,
			wantErr:  constant.MsgSessionStoreFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appsession.NewSessionApp(tt.fields.authRepo, tt.fields.storage, tt.fields.publisher)

			got, err := app.Login(tt.args.ctx, tt.args.req)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
				assert.Nil(t, got)
				assert.Empty(t, app.Token())
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantUser, got)
				assert.Equal(t, "tok-1", app.Token())
			}
			view := app.View()
			assert.Equal(t, tt.wantView, view.View)
			assert.False(t, view.Submitting)
		})
	}
}

func TestSessionApp_Register(t *testing.T) {
	supplier := &model.TokenResponse{
		AccessToken: "tok-2",
		User:        model.User{ID: "s1", Email: "sam@market.test", Name: "Sam", Role: constant.RoleSupplier},
	}
	tests := []struct {
		name     string
		req      *model.RegisterRequest
		mockCall func(a *authmocks.AuthRepository)
		wantErr  string
		wantView constant.View
	}{
		{
			name: "success: supplier lands on dashboard",
			req:  &model.RegisterRequest{Name: "Sam", Email: "sam@market.test", Password: "pw", Role: constant.RoleSupplier},
			mockCall: func(a *authmocks.AuthRepository) {
				a.On("Register", mock.Anything, mock.Anything).Return(supplier, nil).Once()
			},
			wantView: constant.ViewDashboard,
		},
		{
			name:     "error: unknown role rejected locally",
			req:      &model.RegisterRequest{Name: "Sam", Email: "sam@market.test", Password: "pw", Role: "admin"},
			wantErr:  "user_type must be one of: vendor supplier",
			wantView: constant.ViewLanding,
		},
		{
			name: "error: duplicate email",
			req:  &model.RegisterRequest{Name: "Sam", Email: "sam@market.test", Password: "pw", Role: constant.RoleVendor},
			mockCall: func(a *authmocks.AuthRepository) {
				a.On("Register", mock.Anything, mock.Anything).
					Return(nil, &marketapi.Error{StatusCode: http.StatusBadRequest, Detail: "Email already registered"}).Once()
			},
			wantErr:  "Email already registered",
			wantView: constant.ViewLanding,
		},
		{
			name: "error: empty token is a failure",
			req:  &model.RegisterRequest{Name: "Sam", Email: "sam@market.test", Password: "pw", Role: constant.RoleVendor},
			mockCall: func(a *authmocks.AuthRepository) {
				a.On("Register", mock.Anything, mock.Anything).Return(&model.TokenResponse{}, nil).Once()
			},
			wantErr:  constant.MsgRegisterFailed,
			wantView: constant.ViewLanding,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authRepo := authmocks.NewAuthRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(authRepo)
			}
			app := appsession.NewSessionApp(authRepo, storage.NewMemoryRepository(), nil)

			_, err := app.Register(context.Background(), tt.req)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantErr, err.Error())
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantView, app.View().View)
		})
	}
}

// failingStore refuses writes on demand and otherwise delegates.
type failingStore struct {
	storage.Repository
	failSet bool
}

func (f *failingStore) SetMany(ctx context.Context, values map[string]string) error {
	if f.failSet {
		return errors.New("disk full")
	}
	return f.Repository.SetMany(ctx, values)
}

func TestSessionApp_FailureKeepsPriorSession(t *testing.T) {
	other := &model.TokenResponse{
		AccessToken: "tok-2",
		User:        model.User{ID: "s1", Email: "sam@market.test", Name: "Sam", Role: constant.RoleSupplier},
	}
	loginReq := &model.LoginRequest{Email: "sam@market.test", Password: "pw"}
	registerReq := &model.RegisterRequest{Name: "Sam", Email: "sam@market.test", Password: "pw", Role: constant.RoleSupplier}

	tests := []struct {
		name     string
		failSet  bool
		mockCall func(a *authmocks.AuthRepository)
		act      func(app appsession.SessionApp) error
		wantErr  string
	}{
		{
			name: "login rejected by backend",
			mockCall: func(a *authmocks.AuthRepository) {
				a.On("Login", mock.Anything, loginReq).
					Return(nil, &marketapi.Error{StatusCode: http.StatusUnauthorized, Detail: "Invalid credentials"}).Once()
			},
			act: func(app appsession.SessionApp) error {
				_, err := app.Login(context.Background(), loginReq)
				return err
			},
			wantErr: "Invalid credentials",
		},
		{
			name:    "login accepted but storage write fails",
			failSet: true,
			mockCall: func(a *authmocks.AuthRepository) {
				a.On("Login", mock.Anything, loginReq).Return(other, nil).Once()
			},
			act: func(app appsession.SessionApp) error {
				_, err := app.Login(context.Background(), loginReq)
				return err
			},
			wantErr: constant.MsgSessionStoreFailed,
		},
		{
			name: "register rejected by backend",
			mockCall: func(a *authmocks.AuthRepository) {
				a.On("Register", mock.Anything, registerReq).
					Return(nil, &marketapi.Error{StatusCode: http.StatusBadRequest, Detail: "Email already registered"}).Once()
			},
			act: func(app appsession.SessionApp) error {
				_, err := app.Register(context.Background(), registerReq)
				return err
			},
			wantErr: "Email already registered",
		},
		{
			name:    "register accepted but storage write fails",
			failSet: true,
			mockCall: func(a *authmocks.AuthRepository) {
				a.On("Register", mock.Anything, registerReq).Return(other, nil).Once()
			},
			act: func(app appsession.SessionApp) error {
				_, err := app.Register(context.Background(), registerReq)
				return err
			},
			wantErr: constant.MsgSessionStoreFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			authRepo := authmocks.NewAuthRepository(t)
			store := &failingStore{Repository: storage.NewMemoryRepository()}
			app := appsession.NewSessionApp(authRepo, store, nil)

			authRepo.On("Login", mock.Anything, &model.LoginRequest{Email: "ann@market.test", Password: "pw"}).
				Return(vendorToken(), nil).Once()
			_, err := app.Login(ctx, &model.LoginRequest{Email: "ann@market.test", Password: "pw"})
			require.NoError(t, err)
			before := app.View()

			tt.mockCall(authRepo)
			store.failSet = tt.failSet

			err = tt.act(app)

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Equal(t, "tok-1", app.Token())
			user, ok := app.Current()
			require.True(t, ok)
			assert.Equal(t, "u1", user.ID)
			assert.Equal(t, before, app.View())
			assert.Equal(t, constant.ViewMarketplace, app.View().View)

			saved, err := store.GetMany(ctx, constant.StorageKeyToken, constant.StorageKeyUser)
			require.NoError(t, err)
			assert.Equal(t, "tok-1", saved[constant.StorageKeyToken])
			assert.JSONEq(t, vendorProfile, saved[constant.StorageKeyUser])
		})
	}
}

func TestSessionApp_LogoutAndRestore(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryRepository()
	authRepo := authmocks.NewAuthRepository(t)
	authRepo.On("Login", mock.Anything, mock.Anything).Return(vendorToken(), nil).Once()

	first := appsession.NewSessionApp(authRepo, store, nil)
	_, err := first.Login(ctx, &model.LoginRequest{Email: "ann@market.test", Password: "pw"})
	require.NoError(t, err)

	// a second run picks the session up from storage
	second := appsession.NewSessionApp(authmocks.NewAuthRepository(t), store, nil)
	ok, err := second.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-1", second.Token())
	user, ok := second.Current()
	require.True(t, ok)
	assert.Equal(t, "u1", user.ID)

	require.NoError(t, second.Logout(ctx))
	require.NoError(t, second.Logout(ctx))
	assert.Empty(t, second.Token())
	assert.Equal(t, constant.ViewLanding, second.View().View)

	third := appsession.NewSessionApp(authmocks.NewAuthRepository(t), store, nil)
	ok, err = third.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionApp_Restore(t *testing.T) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "u1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	}).SignedString([]byte("not-our-secret"))
	require.NoError(t, err)

	tests := []struct {
		name      string
		stored    map[string]string
		storeErr  error
		wantOK    bool
		wantErr   bool
		wantToken string
	}{
		{
			name:      "expired jwt is still restored",
			stored:    map[string]string{"token": signed, "user": vendorProfile},
			wantOK:    true,
			wantToken: signed,
		},
		{
			name:      "opaque token is restored",
			stored:    map[string]string{"token": "opaque", "user": vendorProfile},
			wantOK:    true,
			wantToken: "opaque",
		},
		{
			name:   "token without profile",
			stored: map[string]string{"token": "opaque"},
		},
		{
			name:   "profile without token",
			stored: map[string]string{"user": vendorProfile},
		},
		{
			name:   "corrupt profile",
			stored: map[string]string{"token": "opaque", "user": "{"},
		},
		{
			name:     "storage unavailable",
			storeErr: errors.New("redis down"),
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := storagemocks.NewRepository(t)
			store.On("GetMany", mock.Anything, constant.StorageKeyToken, constant.StorageKeyUser).
				Return(tt.stored, tt.storeErr).Once()
			app := appsession.NewSessionApp(authmocks.NewAuthRepository(t), store, nil)

			ok, err := app.Restore(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, cerr.IsType(err, constant.ErrInternal))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantToken, app.Token())
			_, authed := app.Current()
			assert.Equal(t, tt.wantOK, authed)
		})
	}
}

func TestSessionApp_LogoutStorageFailure(t *testing.T) {
	store := storagemocks.NewRepository(t)
	store.On("GetMany", mock.Anything, mock.Anything, mock.Anything).
		Return(map[string]string{"token": "t", "user": vendorProfile}, nil).Once()
	store.On("Delete", mock.Anything, constant.StorageKeyToken, constant.StorageKeyUser).
		Return(errors.New("redis down")).Once()
	app := appsession.NewSessionApp(authmocks.NewAuthRepository(t), store, nil)
	_, err := app.Restore(context.Background())
	require.NoError(t, err)

	err = app.Logout(context.Background())

	assert.Error(t, err)
	assert.Empty(t, app.Token())
	_, ok := app.Current()
	assert.False(t, ok)
}

func TestViewFor(t *testing.T) {
	assert.Equal(t, constant.ViewDashboard, appsession.ViewFor(constant.RoleSupplier))
	assert.Equal(t, constant.ViewMarketplace, appsession.ViewFor(constant.RoleVendor))
}
