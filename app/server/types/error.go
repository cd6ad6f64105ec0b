package types

import "net/http"

type ErrorCode string

const (
	ErrorCodeInvalidInput    ErrorCode = "invalid_input"
	ErrorCodeUnauthenticated ErrorCode = "unauthenticated"
	ErrorCodeForbidden       ErrorCode = "forbidden"
	ErrorCodeConflict        ErrorCode = "conflict"
	ErrorCodeNotFound        ErrorCode = "not_found"
	ErrorCodeInternal        ErrorCode = "internal"
)

type ErrorMessage struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorCodeFor 将 HTTP 状态码映射到错误分类
func ErrorCodeFor(statusCode int) ErrorCode {
	switch statusCode {
	case http.StatusBadRequest:
		return ErrorCodeInvalidInput
	case http.StatusUnauthorized:
		return ErrorCodeUnauthenticated
	case http.StatusForbidden:
		return ErrorCodeForbidden
	case http.StatusConflict:
		return ErrorCodeConflict
	case http.StatusNotFound:
		return ErrorCodeNotFound
	default:
		return ErrorCodeInternal
	}
}

func NewErrorMessage(statusCode int, message string) *ErrorMessage {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	return &ErrorMessage{
		Code:    ErrorCodeFor(statusCode),
		Message: message,
	}
}
