package errors

import (
	"net/http"

	"github.com/muhammadheryan/micromarket/constant"
	"github.com/muhammadheryan/micromarket/thirdparty/marketapi"
)

// FromBackend maps a failed marketplace call to a CustomError. The message
// is the backend's detail when it sent one, else fallback.
func FromBackend(err error, fallback string) CustomError {
	msg := marketapi.Detail(err)
	if msg == "" {
		msg = fallback
	}

	switch marketapi.StatusCode(err) {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return WithMessage(constant.ErrInvalidRequest, msg)
	case http.StatusUnauthorized:
		return WithMessage(constant.ErrUnauthorize, msg)
	case http.StatusForbidden:
		return WithMessage(constant.ErrForbidden, msg)
	case http.StatusNotFound:
		return WithMessage(constant.ErrNotFound, msg)
	default:
		return WithMessage(constant.ErrBackend, msg)
	}
}
