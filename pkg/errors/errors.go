// Package errors 定义门户统一的错误分类。
//
// Service 层返回 *Error，Handler 层通过 errors.Is 判断类别并映射 HTTP 状态码。
package errors

import (
	"errors"
	"fmt"
)

// 错误类别（哨兵值）
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrRepository      = errors.New("repository error")
	ErrInternal        = errors.New("internal error")
)

// Error 携带类别与一条面向用户的提示信息
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Is 使 errors.Is(err, ErrForbidden) 等判断成立
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Unauthenticated 缺少或无效的凭证
func Unauthenticated(msg string) *Error {
	return &Error{Kind: ErrUnauthenticated, Message: msg}
}

// Forbidden 身份有效但角色或归属校验不通过
func Forbidden(msg string) *Error {
	return &Error{Kind: ErrForbidden, Message: msg}
}

// Validation 必填字段缺失或格式错误
func Validation(msg string) *Error {
	return &Error{Kind: ErrValidation, Message: msg}
}

// NotFound 引用的实体不存在
func NotFound(msg string) *Error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// Repository 包装持久层错误，原始信息透传给调用方用于排查
func Repository(err error) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return &Error{Kind: ErrRepository, Message: "repository failure", Err: err}
}

// Internal 非持久层的服务端失败（如导出文件生成）
func Internal(err error) error {
	return &Error{Kind: ErrInternal, Message: "internal failure", Err: err}
}

// Message 提取面向用户的提示信息
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
