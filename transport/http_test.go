package transport_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/muhammadheryan/micromarket/application/dashboard"
	"github.com/muhammadheryan/micromarket/constant"
	cartmocks "github.com/muhammadheryan/micromarket/mocks/application/cart"
	catalogmocks "github.com/muhammadheryan/micromarket/mocks/application/catalog"
	dashboardmocks "github.com/muhammadheryan/micromarket/mocks/application/dashboard"
	notificationmocks "github.com/muhammadheryan/micromarket/mocks/application/notification"
	reviewmocks "github.com/muhammadheryan/micromarket/mocks/application/review"
	sessionmocks "github.com/muhammadheryan/micromarket/mocks/application/session"
	"github.com/muhammadheryan/micromarket/model"
	"github.com/muhammadheryan/micromarket/transport"
	cerr "github.com/muhammadheryan/micromarket/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apps struct {
	session      *sessionmocks.SessionApp
	catalog      *catalogmocks.CatalogApp
	cart         *cartmocks.CartApp
	review       *reviewmocks.ReviewApp
	notification *notificationmocks.NotificationApp
	dashboard    *dashboardmocks.DashboardApp
}

func newApps(t *testing.T) apps {
	return apps{
		session:      sessionmocks.NewSessionApp(t),
		catalog:      catalogmocks.NewCatalogApp(t),
		cart:         cartmocks.NewCartApp(t),
		review:       reviewmocks.NewReviewApp(t),
		notification: notificationmocks.NewNotificationApp(t),
		dashboard:    dashboardmocks.NewDashboardApp(t),
	}
}

func (a apps) handler(opts transport.Options) http.Handler {
	return transport.NewTransport(&transport.RestHandler{
		SessionApp:      a.session,
		CatalogApp:      a.catalog,
		CartApp:         a.cart,
		ReviewApp:       a.review,
		NotificationApp: a.notification,
		DashboardApp:    a.dashboard,
	}, opts)
}

func (a apps) as(user *model.User) {
	if user == nil {
		a.session.On("Current").Return(nil, false).Maybe()
		a.session.On("Token").Return("").Maybe()
		return
	}
	a.session.On("Current").Return(user, true).Maybe()
	a.session.On("Token").Return("tok").Maybe()
}

func do(t *testing.T, h http.Handler, method, target, body string, header ...string) (*httptest.ResponseRecorder, transport.Response) {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp transport.Response
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

var (
	vendor   = &model.User{ID: "v1", Name: "Ann", Role: constant.RoleVendor}
	supplier = &model.User{ID: "s1", Name: "Sam", Role: constant.RoleSupplier}
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockCall   func(a apps)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "success: panels reloaded and session returned",
			body: `{"email":"ann@market.test","password":"pw"}`,
			mockCall: func(a apps) {
				a.session.On("Login", mock.Anything, &model.LoginRequest{Email: "ann@market.test", Password: "pw"}).
					Return(vendor, nil).Once()
				a.dashboard.On("Reset").Once()
				a.review.On("Reset").Once()
				a.cart.On("Load", mock.Anything).Return(nil).Once()
				a.notification.On("List", mock.Anything).Return(nil).Once()
				a.session.On("View").Return(model.SessionView{
					Authenticated: true, User: vendor, View: constant.ViewMarketplace,
				})
			},
			wantStatus: http.StatusOK,
			wantMsg:    "success",
		},
		{
			name: "error: backend rejection",
			body: `{"email":"ann@market.test","password":"bad"}`,
			mockCall: func(a apps) {
				a.session.On("Login", mock.Anything, mock.Anything).
					Return(nil, cerr.WithMessage(constant.ErrUnauthorize, "Invalid credentials")).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid credentials",
		},
		{
			name:       "error: malformed body",
			body:       `{"email":`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid request",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApps(t)
			a.as(nil)
			if tt.mockCall != nil {
				tt.mockCall(a)
			}

			rec, resp := do(t, a.handler(transport.Options{}), http.MethodPost, "/session/login", tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, resp.Message)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
		})
	}
}

func TestLogout(t *testing.T) {
	a := newApps(t)
	a.as(nil)
	a.session.On("Logout", mock.Anything).Return(nil).Once()
	a.dashboard.On("Reset").Once()
	a.review.On("Reset").Once()
	a.cart.On("Load", mock.Anything).Return(nil).Once()
	a.notification.On("List", mock.Anything).Return(nil).Once()
	a.session.On("View").Return(model.SessionView{View: constant.ViewLanding})

	rec, resp := do(t, a.handler(transport.Options{}), http.MethodPost, "/session/logout", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", resp.Message)
	a.dashboard.AssertNotCalled(t, "Load", mock.Anything)
}

func TestSubmitReview(t *testing.T) {
	body := `{"supplier_id":"s1","rating":5,"comment":"Crisp lettuce"}`
	tests := []struct {
		name       string
		user       *model.User
		mockCall   func(a apps)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "success: vendor",
			user: vendor,
			mockCall: func(a apps) {
				a.review.On("Submit", mock.Anything, &model.ReviewRequest{SupplierID: "s1", Rating: 5, Comment: "Crisp lettuce"}).
					Return(&model.Review{ID: "r1", SupplierID: "s1", Rating: 5}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantMsg:    "success",
		},
		{
			name:       "error: suppliers cannot review",
			user:       supplier,
			wantStatus: http.StatusForbidden,
			wantMsg:    constant.MsgVendorsOnlyReview,
		},
		{
			name:       "error: anonymous",
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "please login to continue",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApps(t)
			a.as(tt.user)
			if tt.mockCall != nil {
				tt.mockCall(a)
			}

			rec, resp := do(t, a.handler(transport.Options{}), http.MethodPost, "/reviews", body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestAddCartItem(t *testing.T) {
	carrots := &model.Product{ID: "p1", SupplierID: "s1", PricePerUnit: 2}
	tests := []struct {
		name       string
		mockCall   func(a apps)
		wantStatus int
		wantMsg    string
	}{
		{
			name: "success",
			mockCall: func(a apps) {
				a.catalog.On("Product", "p1").Return(carrots, true).Once()
				a.cart.On("AddItem", mock.Anything, *carrots).Return(nil).Once()
				a.cart.On("View").Return(model.CartView{ItemCount: 1, Total: 2, TotalText: "2.00"}).Once()
			},
			wantStatus: http.StatusOK,
			wantMsg:    "success",
		},
		{
			name: "error: anonymous asked to login",
			mockCall: func(a apps) {
				a.catalog.On("Product", "p1").Return(carrots, true).Once()
				a.cart.On("AddItem", mock.Anything, *carrots).
					Return(cerr.WithMessage(constant.ErrLoginRequired, constant.MsgLoginToAddCart)).Once()
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    constant.MsgLoginToAddCart,
		},
		{
			name: "error: product not displayed",
			mockCall: func(a apps) {
				a.catalog.On("Product", "p1").Return(nil, false).Once()
			},
			wantStatus: http.StatusNotFound,
			wantMsg:    constant.MsgProductNotInView,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApps(t)
			a.as(nil)
			tt.mockCall(a)

			rec, resp := do(t, a.handler(transport.Options{}), http.MethodPost, "/cart/items", `{"product_id":"p1"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestSetCartQuantity(t *testing.T) {
	a := newApps(t)
	a.as(vendor)
	a.cart.On("SetQuantity", mock.Anything, "p1", 0).Return(nil).Once()
	a.cart.On("View").Return(model.CartView{}).Once()
	h := a.handler(transport.Options{})

	rec, _ := do(t, h, http.MethodPut, "/cart/items/p1", `{"quantity":0}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, resp := do(t, h, http.MethodPut, "/cart/items/p1", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "quantity is required", resp.Message)
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		user       *model.User
		target     string
		mockCall   func(a apps)
		wantStatus int
	}{
		{
			name:       "anonymous cannot read notifications",
			target:     "/notifications",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "vendor reads notifications",
			user:   vendor,
			target: "/notifications",
			mockCall: func(a apps) {
				a.notification.On("View").Return(model.NotificationView{Unread: 2}).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "vendor has no dashboard",
			user:       vendor,
			target:     "/dashboard",
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "supplier dashboard",
			user:   supplier,
			target: "/dashboard",
			mockCall: func(a apps) {
				a.dashboard.On("View").Return(model.DashboardView{Tab: constant.TabOverview}).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "catalog is public",
			target: "/catalog",
			mockCall: func(a apps) {
				a.catalog.On("View").Return(model.CatalogView{}).Once()
			},
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApps(t)
			a.as(tt.user)
			if tt.mockCall != nil {
				tt.mockCall(a)
			}

			rec, _ := do(t, a.handler(transport.Options{}), http.MethodGet, tt.target, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestDeleteProduct(t *testing.T) {
	askAndAnswer := func(_ context.Context, _ string, confirm dashboard.ConfirmFunc) (bool, error) {
		return confirm(constant.MsgConfirmDelete), nil
	}
	tests := []struct {
		name       string
		target     string
		mockCall   func(a apps)
		wantStatus int
		wantMsg    string
	}{
		{
			name:   "confirmed",
			target: "/dashboard/products/p1?confirm=true",
			mockCall: func(a apps) {
				a.dashboard.On("DeleteProduct", mock.Anything, "p1", mock.Anything).Return(askAndAnswer).Once()
				a.dashboard.On("View").Return(model.DashboardView{}).Once()
			},
			wantStatus: http.StatusOK,
			wantMsg:    "success",
		},
		{
			name:   "not confirmed returns the prompt",
			target: "/dashboard/products/p1",
			mockCall: func(a apps) {
				a.dashboard.On("DeleteProduct", mock.Anything, "p1", mock.Anything).Return(askAndAnswer).Once()
			},
			wantStatus: http.StatusConflict,
			wantMsg:    constant.MsgConfirmDelete,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newApps(t)
			a.as(supplier)
			tt.mockCall(a)

			rec, resp := do(t, a.handler(transport.Options{}), http.MethodDelete, tt.target, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestInternalSync(t *testing.T) {
	a := newApps(t)
	a.as(vendor)
	a.cart.On("Load", mock.Anything).Return(nil).Once()
	a.notification.On("List", mock.Anything).Return(nil).Once()

	withKey := a.handler(transport.Options{InternalAPIKey: "k3y"})
	rec, _ := do(t, withKey, http.MethodPost, "/internal/sync", "", "Authorization", "Bearer wrong")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec, _ = do(t, withKey, http.MethodPost, "/internal/sync", "", "Authorization", "Bearer k3y")
	assert.Equal(t, http.StatusOK, rec.Code)

	withoutKey := a.handler(transport.Options{})
	rec, _ = do(t, withoutKey, http.MethodPost, "/internal/sync", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMetricsRoute(t *testing.T) {
	a := newApps(t)
	a.as(nil)
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("# metrics"))
	})

	rec, _ := do(t, a.handler(transport.Options{MetricsHandler: metrics}), http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "# metrics", rec.Body.String())
}
