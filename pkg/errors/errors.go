// Package errors 提供统一的错误定义
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode 错误码类型
type ErrorCode string

// 预定义错误码
const (
	// 通用错误 (1xxx)
	CodeUnknown            ErrorCode = "1000"
	CodeInvalidParam       ErrorCode = "1001"
	CodeNotFound           ErrorCode = "1004"
	CodeInternalError      ErrorCode = "1007"
	CodeServiceUnavailable ErrorCode = "1008"

	// 配置错误 (2xxx)
	CodeConfigMissing ErrorCode = "2001"
	CodeConfigInvalid ErrorCode = "2002"

	// 业务错误 (4xxx)
	CodeGenerationFailed ErrorCode = "4001"
	CodeRenderFailed     ErrorCode = "4002"

	// 外部服务错误 (5xxx)
	CodeLLMProviderError ErrorCode = "5005"
)

// Kind 错误类别，边界层据此映射响应
type Kind string

const (
	KindValidation    Kind = "validation"
	KindProvider      Kind = "provider"
	KindConfiguration Kind = "configuration"
	KindInternal      Kind = "internal"
)

// AppError 应用错误
type AppError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Err        error     `json:"-"`
}

// Error 实现 error 接口
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap 返回底层错误
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较，便于 errors.Is(err, ErrInvalidParam)
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Kind 返回错误类别
func (e *AppError) Kind() Kind {
	return codeToKind(e.Code)
}

// Cause 返回面向调用方的错误描述：优先底层错误，其次 Message
func (e *AppError) Cause() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// WithDetail 添加详细信息（返回副本，避免修改预定义错误）
func (e *AppError) WithDetail(detail string) *AppError {
	cp := *e
	cp.Detail = detail
	return &cp
}

// WithError 添加底层错误（返回副本）
func (e *AppError) WithError(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

// New 创建新的应用错误
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
	}
}

// Wrap 包装错误
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: codeToHTTPStatus(code),
		Err:        err,
	}
}

// codeToHTTPStatus 错误码转 HTTP 状态码
func codeToHTTPStatus(code ErrorCode) int {
	switch code {
	case CodeInvalidParam:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// codeToKind 错误码转错误类别
func codeToKind(code ErrorCode) Kind {
	switch code {
	case CodeInvalidParam:
		return KindValidation
	case CodeLLMProviderError:
		return KindProvider
	case CodeConfigMissing, CodeConfigInvalid:
		return KindConfiguration
	default:
		return KindInternal
	}
}

// 预定义错误
var (
	ErrInvalidParam       = New(CodeInvalidParam, "invalid parameter")
	ErrNotFound           = New(CodeNotFound, "resource not found")
	ErrInternalError      = New(CodeInternalError, "internal server error")
	ErrServiceUnavailable = New(CodeServiceUnavailable, "service unavailable")

	ErrConfigMissing = New(CodeConfigMissing, "required configuration missing")
	ErrConfigInvalid = New(CodeConfigInvalid, "invalid configuration")

	ErrGenerationFailed = New(CodeGenerationFailed, "article generation failed")
	ErrProvider         = New(CodeLLMProviderError, "LLM provider call failed")
)

// IsAppError 检查是否为 AppError（支持包装链）
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError 将错误转换为 AppError
func AsAppError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, CodeUnknown, "unknown error")
}

// IsKind 判断错误是否属于指定类别
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	return appErr.Kind() == kind
}
