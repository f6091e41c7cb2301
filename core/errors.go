package core

import (
	"errors"
	"fmt"
)

// DomainError 是领域层的统一错误类型。
//
// 设计原则：
//   - 所有领域层错误都使用此类型
//   - 提供错误代码（Code）和消息（Message）
//   - 支持错误检查函数（IsXXX），也支持 errors.Is（按 Module + Code 匹配）
//
// 使用场景：
//   - Identifier 错误：MALFORMED_IDENTIFIER, UNKNOWN_TYPE, NOT_FOUND
//   - Tenant 错误：NOT_FOUND
//   - Store 错误：NOT_FOUND, NOT_SUPPORTED
type DomainError struct {
	Code    string // 错误代码（如 "NOT_FOUND", "UNKNOWN_TYPE"）
	Message string // 错误消息
	Module  string // 模块名称（如 "identifier", "tenant", "store"）
	Err     error  // 底层错误（可选）
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// Is 按 Module + Code 匹配，使 errors.Is(err, ErrStoreNotFound) 对包装后的错误也成立。
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Module == t.Module && e.Code == t.Code
}

// IsDomainError 检查错误链中是否存在 DomainError
func IsDomainError(err error) bool {
	return GetDomainError(err) != nil
}

// GetDomainError 获取错误链中的 DomainError，如果不存在则返回 nil
func GetDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	return nil
}

// NewDomainError 创建新的领域错误
func NewDomainError(module, code, message string) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
	}
}

// WrapDomainError 创建携带底层错误的领域错误
func WrapDomainError(module, code, message string, err error) *DomainError {
	return &DomainError{
		Module:  module,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// 错误代码常量
const (
	// 通用错误代码
	ErrorCodeNotFound      = "NOT_FOUND"      // 资源不存在
	ErrorCodeNotSupported  = "NOT_SUPPORTED"  // 操作不支持
	ErrorCodeUnavailable   = "UNAVAILABLE"    // 服务不可用
	ErrorCodeInvalidInput  = "INVALID_INPUT"  // 输入无效
	ErrorCodeInternalError = "INTERNAL_ERROR" // 内部错误

	// 标识符错误代码
	ErrorCodeMalformedIdentifier = "MALFORMED_IDENTIFIER" // 标识符格式错误
	ErrorCodeUnknownType         = "UNKNOWN_TYPE"         // 类型未注册
)

// 模块名称常量
const (
	ModuleStore      = "store"      // 存储模块
	ModuleIdentifier = "identifier" // 标识符模块
	ModuleTenant     = "tenant"     // 租户（站点）模块
	ModuleObject     = "object"     // 对象加载
	ModuleConfig     = "config"     // 配置模块
)

// NewMalformedIdentifierError 标识符无法按 "<ns>.<type>:<tenant>:<id>" 解析
func NewMalformedIdentifierError(identifier, reason string) *DomainError {
	return NewDomainError(ModuleIdentifier, ErrorCodeMalformedIdentifier,
		fmt.Sprintf("identifier: malformed %q: %s", identifier, reason))
}

// NewUnknownTypeError 类型 "<ns>.<type>" 未在注册表中登记
func NewUnknownTypeError(namespace, name string) *DomainError {
	return NewDomainError(ModuleIdentifier, ErrorCodeUnknownType,
		fmt.Sprintf("identifier: unknown type %s.%s", namespace, name))
}

// NewTenantNotFoundError 租户不存在
func NewTenantNotFoundError(id string) *DomainError {
	return NewDomainError(ModuleTenant, ErrorCodeNotFound,
		fmt.Sprintf("tenant: %q not found", id))
}

// NewObjectNotFoundError 对象不存在
func NewObjectNotFoundError(meta TypeMeta, id string) *DomainError {
	return NewDomainError(ModuleObject, ErrorCodeNotFound,
		fmt.Sprintf("object: %s %q not found", meta, id))
}

// 通用错误检查函数

// IsNotFound 检查错误是否为 NOT_FOUND（任意模块）
func IsNotFound(err error) bool {
	return hasCode(err, ErrorCodeNotFound)
}

// IsNotSupported 检查错误是否为 NOT_SUPPORTED
func IsNotSupported(err error) bool {
	return hasCode(err, ErrorCodeNotSupported)
}

// IsUnavailable 检查错误是否为 UNAVAILABLE
func IsUnavailable(err error) bool {
	return hasCode(err, ErrorCodeUnavailable)
}

// IsInvalidInput 检查错误是否为 INVALID_INPUT
func IsInvalidInput(err error) bool {
	return hasCode(err, ErrorCodeInvalidInput)
}

// IsMalformedIdentifier 检查错误是否为 MALFORMED_IDENTIFIER
func IsMalformedIdentifier(err error) bool {
	return hasCode(err, ErrorCodeMalformedIdentifier)
}

// IsUnknownType 检查错误是否为 UNKNOWN_TYPE
func IsUnknownType(err error) bool {
	return hasCode(err, ErrorCodeUnknownType)
}

func hasCode(err error, code string) bool {
	if domainErr := GetDomainError(err); domainErr != nil {
		return domainErr.Code == code
	}
	return false
}
