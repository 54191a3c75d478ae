package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrLoginRequired
	ErrForbidden
	ErrBackend
	ErrNotConfirmed
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:        "success",
	ErrInternal:       "error internal",
	ErrNotFound:       "data not found",
	ErrInvalidRequest: "invalid request",
	ErrUnauthorize:    "unauthorize request",
	ErrLoginRequired:  "please login to continue",
	ErrForbidden:      "not allowed for this account type",
	ErrBackend:        "request to marketplace failed",
	ErrNotConfirmed:   "action not confirmed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:        http.StatusOK,
	ErrInternal:       http.StatusInternalServerError,
	ErrNotFound:       http.StatusNotFound,
	ErrInvalidRequest: http.StatusBadRequest,
	ErrUnauthorize:    http.StatusUnauthorized,
	ErrLoginRequired:  http.StatusUnauthorized,
	ErrForbidden:      http.StatusForbidden,
	ErrBackend:        http.StatusBadGateway,
	ErrNotConfirmed:   http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:        "0000",
	ErrInternal:       "0001",
	ErrNotFound:       "0002",
	ErrInvalidRequest: "0003",
	ErrUnauthorize:    "0004",
	ErrLoginRequired:  "0005",
	ErrForbidden:      "0006",
	ErrBackend:        "0007",
	ErrNotConfirmed:   "0008",
}
