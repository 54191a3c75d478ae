package transport

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/muhammadheryan/micromarket/constant"
	"github.com/muhammadheryan/micromarket/utils/errors"
	"github.com/muhammadheryan/micromarket/utils/logger"
	"go.uber.org/zap"
)

// Response is the envelope of every gateway answer.
type Response struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("[writeJSON] error encode response", zap.String("error", err.Error()))
	}
}

func writeSuccess(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{
		Code:    constant.ErrorTypeCode[constant.Successful],
		Message: constant.ErrorTypeMessage[constant.Successful],
		Data:    data,
	})
}

func writeError(w http.ResponseWriter, err error) {
	var ce errors.CustomError
	if !stderrors.As(err, &ce) {
		logger.Error("[writeError] unexpected error", zap.String("error", err.Error()))
		ce = errors.SetCustomError(constant.ErrInternal)
	}
	writeJSON(w, ce.ErrorHTTPCode(), Response{
		Code:    ce.ErrorCode(),
		Message: ce.Error(),
	})
}

// decodeJSON reads a JSON body; an empty body leaves v untouched.
func decodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil || stderrors.Is(err, io.EOF) {
		return nil
	}
	return errors.SetCustomError(constant.ErrInvalidRequest)
}
