package service

import (
	"errors"
	"strings"
)

// 操作级错误，handler 层据此映射 HTTP 状态码
var (
	// ErrMissingFields 登录时邮箱或密码为空
	ErrMissingFields = errors.New("please fill in all fields")
	// ErrInvalidCredentials 邮箱不存在和密码错误返回同一个错误，避免泄露是哪一种
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrDuplicateUser 注册邮箱已存在
	ErrDuplicateUser = errors.New("user already exists")
	// ErrAssetNotFound 资产已不存在（比如被其它会话删除）
	ErrAssetNotFound = errors.New("asset not found")
)

// ValidationError 字段级校验错误，属于用户可修正的输入问题，不算系统故障。
// Messages 里可能是单条（注册的 fail-fast 路径）也可能是多条（新增资产
// 的 accumulate 路径）。
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

func newValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
