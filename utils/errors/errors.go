package errors

import "github.com/muhammadheryan/micromarket/constant"

type CustomError struct {
	errType constant.ErrorType
	message string
}

func (c CustomError) Error() string {
	if c.message != "" {
		return c.message
	}
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// WithMessage returns a CustomError whose Error() is the given user facing
// message instead of the type's default text.
func WithMessage(errorType constant.ErrorType, message string) CustomError {
	return CustomError{
		errType: errorType,
		message: message,
	}
}

// IsType reports whether err is a CustomError of the given type.
func IsType(err error, errorType constant.ErrorType) bool {
	ce, ok := err.(CustomError)
	return ok && ce.errType == errorType
}
