package errors

import "github.com/minhqn/price-intel/constant"

type CustomError struct {
	errType constant.ErrorType
	cause   error
}

func (c CustomError) Error() string {
	return constant.ErrorTypeMessage[c.errType]
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Unwrap() error {
	return c.cause
}

// Is lets callers match against the taxonomy with errors.Is on another
// CustomError of the same type.
func (c CustomError) Is(target error) bool {
	other, ok := target.(CustomError)
	return ok && other.errType == c.errType
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

// WrapCustomError keeps the underlying cause for logging while exposing only
// the taxonomy message to callers.
func WrapCustomError(errorType constant.ErrorType, cause error) CustomError {
	return CustomError{
		errType: errorType,
		cause:   cause,
	}
}
