package transport

import (
	"crypto/subtle"
	"net/http"

	"github.com/muhammadheryan/micromarket/constant"
	"github.com/muhammadheryan/micromarket/utils/errors"
)

// InternalMiddleware checks for static API key in header
func InternalMiddleware(apiKey string) func(http.Handler) http.Handler {
	expected := []byte("Bearer " + apiKey)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := []byte(r.Header.Get("Authorization"))
			if subtle.ConstantTimeCompare(got, expected) != 1 {
				writeError(w, errors.SetCustomError(constant.ErrForbidden))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
