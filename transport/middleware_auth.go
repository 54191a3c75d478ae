package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	appsession "github.com/muhammadheryan/micromarket/application/session"
	"github.com/muhammadheryan/micromarket/constant"
	utilsContext "github.com/muhammadheryan/micromarket/utils/context"
	"github.com/muhammadheryan/micromarket/utils/errors"
)

// AuthMiddleware gates the routes that need a logged in user on the local
// session. Public views (session, catalog, cart, docs) pass through; the
// dashboard additionally requires a supplier account.
func AuthMiddleware(session appsession.Provider) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			user, ok := session.Current()
			if !ok || session.Token() == "" {
				writeError(w, errors.SetCustomError(constant.ErrLoginRequired))
				return
			}

			if isSupplierPath(path) && user.Role != constant.RoleSupplier {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}

			ctx := utilsContext.WithUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no session required)
func isPublicPath(path string) bool {
	for _, prefix := range []string{"/swagger/", "/internal/", "/session", "/catalog", "/cart"} {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return path == "/metrics" || path == "/healthz"
}

func isSupplierPath(path string) bool {
	return path == "/dashboard" || strings.HasPrefix(path, "/dashboard/")
}
