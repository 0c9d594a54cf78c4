package apierr

import (
	"errors"
	"fmt"
)

// 常用状态码（与 HTTP 语义对齐，便于 UI 层直接映射提示文案）
const (
	StatusBadRequest   = 400
	StatusUnauthorized = 401
	StatusNotFound     = 404
	StatusInternal     = 500
)

// Error 结构化接口错误
// 模拟后端的所有拒绝都携带状态码和可读消息，未知端点不允许静默成功
type Error struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// Error 实现 error 接口
func (e *Error) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

// New 创建结构化错误
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// NotFound 创建 404 错误
func NotFound(message string) *Error {
	return New(StatusNotFound, message)
}

// Invalid 创建参数校验错误
func Invalid(message string) *Error {
	return New(StatusBadRequest, message)
}

// Unauthorized 创建未认证错误
func Unauthorized(message string) *Error {
	return New(StatusUnauthorized, message)
}

// StatusOf 提取错误链中的状态码，非结构化错误返回 0
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}

// IsNotFound 判断是否为 404 错误
func IsNotFound(err error) bool {
	return StatusOf(err) == StatusNotFound
}
