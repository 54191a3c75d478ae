package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	"github.com/muhammadheryan/micromarket/constant"
	"github.com/muhammadheryan/micromarket/model"
	authrepo "github.com/muhammadheryan/micromarket/repository/auth"
	"github.com/muhammadheryan/micromarket/repository/storage"
	"github.com/muhammadheryan/micromarket/thirdparty/rabbitmq"
	"github.com/muhammadheryan/micromarket/utils/errors"
	"github.com/muhammadheryan/micromarket/utils/logger"
	validatorx "github.com/muhammadheryan/micromarket/utils/validator"
	"go.uber.org/zap"
)

// Provider exposes the current credentials to the other services.
type Provider interface {
	Token() string
	Current() (*model.User, bool)
}

type SessionApp interface {
	Provider
	Login(ctx context.Context, req *model.LoginRequest) (*model.User, error)
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (bool, error)
	View() model.SessionView
}

type sessionAppImpl struct {
	authRepo  authrepo.AuthRepository
	storage   storage.Repository
	publisher rabbitmq.Publisher

	mu         sync.RWMutex
	token      string
	user       *model.User
	submitting bool
}

// NewSessionApp builds the session store. publisher may be nil.
func NewSessionApp(authRepo authrepo.AuthRepository, storageRepo storage.Repository, publisher rabbitmq.Publisher) SessionApp {
	return &sessionAppImpl{
		authRepo:  authRepo,
		storage:   storageRepo,
		publisher: publisher,
	}
}

func (s *sessionAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.User, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.WithMessage(constant.ErrInvalidRequest, validatorx.Message(err))
	}

	s.setSubmitting(true)
	defer s.setSubmitting(false)

	resp, err := s.authRepo.Login(ctx, req)
	if err != nil {
		logger.Error("[Login] error authRepo.Login", zap.String("error", err.Error()))
		return nil, errors.FromBackend(err, constant.MsgLoginFailed)
	}

	return s.establish(ctx, "[Login]", resp, constant.MsgLoginFailed)
}

func (s *sessionAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	if err := validatorx.ValidateStruct(req); err != nil {
		return nil, errors.WithMessage(constant.ErrInvalidRequest, validatorx.Message(err))
	}

	s.setSubmitting(true)
	defer s.setSubmitting(false)

	resp, err := s.authRepo.Register(ctx, req)
	if err != nil {
		logger.Error("[Register] error authRepo.Register", zap.String("error", err.Error()))
		return nil, errors.FromBackend(err, constant.MsgRegisterFailed)
	}

	return s.establish(ctx, "[Register]", resp, constant.MsgRegisterFailed)
}

// establish persists the credentials first and only then exposes them, so a
// storage failure leaves the previous session untouched.
func (s *sessionAppImpl) establish(ctx context.Context, op string, resp *model.TokenResponse, fallback string) (*model.User, error) {
	if resp == nil || resp.AccessToken == "" {
		logger.Error(op + " backend answered without a token")
		return nil, errors.WithMessage(constant.ErrBackend, fallback)
	}

	profile, err := json.Marshal(resp.User)
	if err != nil {
		logger.Error(op+" error marshal user", zap.String("error", err.Error()))
		return nil, errors.WithMessage(constant.ErrInternal, fallback)
	}

	err = s.storage.SetMany(ctx, map[string]string{
		constant.StorageKeyToken: resp.AccessToken,
		constant.StorageKeyUser:  string(profile),
	})
	if err != nil {
		logger.Error(op+" error storage.SetMany", zap.String("error", err.Error()))
		return nil, errors.WithMessage(constant.ErrInternal, constant.MsgSessionStoreFailed)
	}

	user := resp.User
	s.mu.Lock()
	s.token = resp.AccessToken
	s.user = &user
	s.mu.Unlock()

	s.publish(ctx, user.ID)

	out := user
	return &out, nil
}

func (s *sessionAppImpl) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, constant.StorageKeyToken, constant.StorageKeyUser); err != nil {
		logger.Error("[Logout] error storage.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// Restore reloads a session saved by a previous run. Both keys must be
// present and the profile must decode; the token is not checked for expiry.
func (s *sessionAppImpl) Restore(ctx context.Context) (bool, error) {
	values, err := s.storage.GetMany(ctx, constant.StorageKeyToken, constant.StorageKeyUser)
	if err != nil {
		logger.Error("[Restore] error storage.GetMany", zap.String("error", err.Error()))
		return false, errors.SetCustomError(constant.ErrInternal)
	}

	token, profile := values[constant.StorageKeyToken], values[constant.StorageKeyUser]
	if token == "" || profile == "" {
		return false, nil
	}

	var user model.User
	if err := json.Unmarshal([]byte(profile), &user); err != nil {
		logger.Warn("[Restore] stored user is not valid json", zap.String("error", err.Error()))
		return false, nil
	}

	s.mu.Lock()
	s.token = token
	s.user = &user
	s.mu.Unlock()

	logClaims(token, user.ID)
	return true, nil
}

// logClaims reports what the stored token claims without verifying it; the
// backend remains the only judge of validity.
func logClaims(token, userID string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		logger.Debug("[Restore] token is not a readable jwt", zap.String("user_id", userID))
		return
	}

	fields := []zap.Field{zap.String("user_id", userID)}
	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		fields = append(fields, zap.String("subject", sub))
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		fields = append(fields, zap.Time("expires_at", exp.Time))
	}
	logger.Info("[Restore] session restored", fields...)
}

func (s *sessionAppImpl) Current() (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil, false
	}
	user := *s.user
	return &user, true
}

func (s *sessionAppImpl) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *sessionAppImpl) View() model.SessionView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	view := model.SessionView{
		View:       constant.ViewLanding,
		Submitting: s.submitting,
	}
	if s.user == nil {
		return view
	}
	user := *s.user
	view.Authenticated = true
	view.User = &user
	view.View = ViewFor(user.Role)
	return view
}

// ViewFor routes an account type to its top-level screen.
func ViewFor(role constant.Role) constant.View {
	if role == constant.RoleSupplier {
		return constant.ViewDashboard
	}
	return constant.ViewMarketplace
}

func (s *sessionAppImpl) setSubmitting(v bool) {
	s.mu.Lock()
	s.submitting = v
	s.mu.Unlock()
}

func (s *sessionAppImpl) publish(ctx context.Context, userID string) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.Publish(ctx, model.ActivityEvent{
		Type:   constant.ActivitySessionLogin,
		UserID: userID,
	})
	if err != nil {
		logger.Warn("[Login] error publisher.Publish", zap.String("error", err.Error()))
	}
}
