package myErrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 业务错误分类，决定响应的 HTTP 状态码。
type Kind int

const (
	KindUnexpected Kind = iota
	KindBadRequest
	KindValidation
	KindUnauthorized
	KindNotFound
)

// AppError 服务层向控制器传递的错误。
// - Message 直接作为响应信封中的 message
// - Details 作为 errors 数组，校验失败时每个字段一条
type AppError struct {
	Kind    Kind
	Message string
	Details []string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error { return e.Err }

// HTTPStatus 返回错误对应的状态码
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest, KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func NewBadRequest(message string, details ...string) *AppError {
	return &AppError{Kind: KindBadRequest, Message: message, Details: details}
}

func NewValidation(message string, details ...string) *AppError {
	return &AppError{Kind: KindValidation, Message: message, Details: details}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

// NewUnexpected 包装底层错误，响应中只暴露 message。
func NewUnexpected(message string, err error) *AppError {
	return &AppError{Kind: KindUnexpected, Message: message, Err: err}
}

// As 提取错误链上的 *AppError
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind 判断错误链上是否存在指定分类的 AppError
func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

// ErrMediaDisabled 未配置对象存储时上传接口返回的错误
var ErrMediaDisabled = errors.New("media storage is not configured")
