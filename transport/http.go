package transport

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	appcart "github.com/muhammadheryan/micromarket/application/cart"
	appcatalog "github.com/muhammadheryan/micromarket/application/catalog"
	appdashboard "github.com/muhammadheryan/micromarket/application/dashboard"
	appnotification "github.com/muhammadheryan/micromarket/application/notification"
	appreview "github.com/muhammadheryan/micromarket/application/review"
	appsession "github.com/muhammadheryan/micromarket/application/session"
	"github.com/muhammadheryan/micromarket/constant"
	"github.com/muhammadheryan/micromarket/model"
	"github.com/muhammadheryan/micromarket/utils/errors"
	"github.com/muhammadheryan/micromarket/utils/logger"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type RestHandler struct {
	SessionApp      appsession.SessionApp
	CatalogApp      appcatalog.CatalogApp
	CartApp         appcart.CartApp
	ReviewApp       appreview.ReviewApp
	NotificationApp appnotification.NotificationApp
	DashboardApp    appdashboard.DashboardApp
}

// Options holds the optional surfaces of the gateway.
type Options struct {
	// MetricsHandler is mounted at /metrics when set.
	MetricsHandler http.Handler
	// InternalAPIKey enables the /internal routes when set.
	InternalAPIKey string
}

func NewTransport(rh *RestHandler, opts Options) http.Handler {
	mux := mux.NewRouter()

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)
	if opts.MetricsHandler != nil {
		mux.Handle("/metrics", opts.MetricsHandler).Methods(http.MethodGet)
	}
	mux.HandleFunc("/healthz", rh.Health).Methods(http.MethodGet)

	// session
	mux.HandleFunc("/session", rh.Session).Methods(http.MethodGet)
	mux.HandleFunc("/session/login", rh.Login).Methods(http.MethodPost)
	mux.HandleFunc("/session/register", rh.Register).Methods(http.MethodPost)
	mux.HandleFunc("/session/logout", rh.Logout).Methods(http.MethodPost)

	// marketplace
	mux.HandleFunc("/catalog", rh.Catalog).Methods(http.MethodGet)
	mux.HandleFunc("/catalog/refresh", rh.RefreshCatalog).Methods(http.MethodPost)
	mux.HandleFunc("/catalog/supplier-filter", rh.SetSupplierFilter).Methods(http.MethodPut)
	mux.HandleFunc("/catalog/product-filter", rh.SetProductFilter).Methods(http.MethodPut)
	mux.HandleFunc("/catalog/stalls/{supplierId}", rh.EnterStall).Methods(http.MethodPost)
	mux.HandleFunc("/catalog/stall", rh.LeaveStall).Methods(http.MethodDelete)

	// cart
	mux.HandleFunc("/cart", rh.Cart).Methods(http.MethodGet)
	mux.HandleFunc("/cart/refresh", rh.RefreshCart).Methods(http.MethodPost)
	mux.HandleFunc("/cart/items", rh.AddCartItem).Methods(http.MethodPost)
	mux.HandleFunc("/cart/items/{productId}", rh.SetCartQuantity).Methods(http.MethodPut)
	mux.HandleFunc("/cart/items/{productId}", rh.RemoveCartItem).Methods(http.MethodDelete)
	mux.HandleFunc("/cart/items/{productId}/increment", rh.IncrementCartItem).Methods(http.MethodPost)
	mux.HandleFunc("/cart/items/{productId}/decrement", rh.DecrementCartItem).Methods(http.MethodPost)

	// protected routes
	mux.HandleFunc("/reviews", rh.SubmitReview).Methods(http.MethodPost)
	mux.HandleFunc("/reviews/drafts", rh.SaveReviewDraft).Methods(http.MethodPut)
	mux.HandleFunc("/reviews/drafts/{supplierId}", rh.ReviewDraft).Methods(http.MethodGet)
	mux.HandleFunc("/notifications", rh.Notifications).Methods(http.MethodGet)
	mux.HandleFunc("/notifications/refresh", rh.RefreshNotifications).Methods(http.MethodPost)
	mux.HandleFunc("/notifications/{notificationId}/read", rh.MarkNotificationRead).Methods(http.MethodPost)

	// supplier only
	mux.HandleFunc("/dashboard", rh.Dashboard).Methods(http.MethodGet)
	mux.HandleFunc("/dashboard/refresh", rh.RefreshDashboard).Methods(http.MethodPost)
	mux.HandleFunc("/dashboard/tab", rh.SetDashboardTab).Methods(http.MethodPut)
	mux.HandleFunc("/dashboard/stall", rh.CreateStall).Methods(http.MethodPost)
	mux.HandleFunc("/dashboard/products", rh.AddProduct).Methods(http.MethodPost)
	mux.HandleFunc("/dashboard/products/{productId}", rh.DeleteProduct).Methods(http.MethodDelete)

	if opts.InternalAPIKey != "" {
		internal := mux.PathPrefix("/internal").Subrouter()
		internal.Use(InternalMiddleware(opts.InternalAPIKey))
		internal.HandleFunc("/sync", rh.Sync).Methods(http.MethodPost)
	}

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(rh.SessionApp))

	return mux
}

// Health handler
// @Summary Liveness probe
// @Tags Gateway
// @Produce json
// @Success 200 {object} Response
// @Router /healthz [get]
func (s *RestHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, nil)
}

// Session handler
// @Summary Current session
// @Description Authentication state and the top-level view it routes to
// @Tags Session
// @Produce json
// @Success 200 {object} model.SessionView
// @Router /session [get]
func (s *RestHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, s.SessionApp.View())
}

// Login handler
// @Summary Login
// @Description Login with email and password; the session is persisted
// @Tags Session
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.SessionView
// @Failure 400 {object} Response
// @Failure 401 {object} Response
// @Router /session/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if _, err := s.SessionApp.Login(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	s.afterSessionChange(ctx)
	writeSuccess(w, s.SessionApp.View())
}

// Register handler
// @Summary Register
// @Description Create a vendor or supplier account and log it in
// @Tags Session
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.SessionView
// @Failure 400 {object} Response
// @Router /session/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if _, err := s.SessionApp.Register(ctx, &req); err != nil {
		writeError(w, err)
		return
	}

	s.afterSessionChange(ctx)
	writeSuccess(w, s.SessionApp.View())
}

// Logout handler
// @Summary Logout
// @Tags Session
// @Produce json
// @Success 200 {object} model.SessionView
// @Router /session/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// memory is cleared even when storage fails
	err := s.SessionApp.Logout(ctx)
	s.afterSessionChange(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, s.SessionApp.View())
}

// afterSessionChange drops and reloads the per-user panels; failures only leave them
// stale and are logged.
func (s *RestHandler) afterSessionChange(ctx context.Context) {
	// the previous account's panels never outlive it
	s.DashboardApp.Reset()
	s.ReviewApp.Reset()

	if err := s.CartApp.Load(ctx); err != nil {
		logger.Warn("[afterSessionChange] error CartApp.Load", zap.String("error", err.Error()))
	}
	if err := s.NotificationApp.List(ctx); err != nil {
		logger.Warn("[afterSessionChange] error NotificationApp.List", zap.String("error", err.Error()))
	}
	if s.SessionApp.View().View == constant.ViewDashboard {
		if err := s.DashboardApp.Load(ctx); err != nil {
			logger.Warn("[afterSessionChange] error DashboardApp.Load", zap.String("error", err.Error()))
		}
	}
}

// Sync handler
// @Summary Refresh cart and notifications from the backend
// @Tags Internal
// @Produce json
// @Success 200 {object} Response
// @Failure 403 {object} Response
// @Router /internal/sync [post]
func (s *RestHandler) Sync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.CartApp.Load(ctx); err != nil {
		writeError(w, err)
		return
	}
	if err := s.NotificationApp.List(ctx); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, nil)
}

func pathParam(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

func badRequest(msg string) error {
	return errors.WithMessage(constant.ErrInvalidRequest, msg)
}
