// Package identifier 提供对象标识符的编码/解码，以及对象所属租户的解析。
//
// 标识符格式（需与已有数据保持逐字节兼容）：
//
//	<namespace>.<lowercased-type-name>:<tenant-id>:<object-id>
//
// 例如 "blog.post:1:42"。各段本身不能包含冒号，编码时不做转义。
package identifier

import (
	"context"
	"fmt"
	"strings"

	"github.com/rushteam/recommends/core"
)

const (
	segmentSep = ":"
	typeSep    = "."
)

// TypeName 返回对象的类型段："<namespace>.<lowercased-type-name>"。
func TypeName(obj core.Object) string {
	return obj.TypeMeta().String()
}

// Encode 返回 "<TypeName(obj)>:<tenantID>:<obj.ObjectID()>"。
// tenantID 与对象 ID 不能包含冒号，由调用方保证。
func Encode(obj core.Object, tenantID string) string {
	return TypeName(obj) + segmentSep + tenantID + segmentSep + obj.ObjectID()
}

// Parts 是标识符拆分后的各段。
type Parts struct {
	Namespace string
	Type      string
	TenantID  string
	ObjectID  string
}

func (p Parts) String() string {
	return p.Namespace + typeSep + p.Type + segmentSep + p.TenantID + segmentSep + p.ObjectID
}

// Parse 只做格式拆分，不访问持久层。
// 冒号段数不为 3 或类型段点号段数不为 2 时返回 MALFORMED_IDENTIFIER 错误。
func Parse(identifier string) (Parts, error) {
	segs := strings.Split(identifier, segmentSep)
	if len(segs) != 3 {
		return Parts{}, core.NewMalformedIdentifierError(identifier,
			fmt.Sprintf("want 3 ':'-separated segments, got %d", len(segs)))
	}
	typeSpec := strings.Split(segs[0], typeSep)
	if len(typeSpec) != 2 {
		return Parts{}, core.NewMalformedIdentifierError(identifier,
			fmt.Sprintf("want <namespace>.<type>, got %d '.'-separated parts", len(typeSpec)))
	}
	return Parts{
		Namespace: typeSpec[0],
		Type:      typeSpec[1],
		TenantID:  segs[1],
		ObjectID:  segs[2],
	}, nil
}

// Codec 将标识符解析回对象和租户。
type Codec struct {
	Tenants core.TenantRepository
	Types   *Registry
}

func NewCodec(tenants core.TenantRepository, types *Registry) *Codec {
	return &Codec{
		Tenants: tenants,
		Types:   types,
	}
}

// ErrNilTenant 表示编码标识符时没有给出租户。
var ErrNilTenant = core.NewDomainError(core.ModuleIdentifier, core.ErrorCodeInvalidInput,
	"identifier: tenant is required")

// Identifier 用租户 ID 编码对象，供 prefs.BuildItemAdjacency 使用。
// tenant 为 nil 时返回 ErrNilTenant。
func (c *Codec) Identifier(obj core.Object, tenant *core.Tenant) (string, error) {
	if tenant == nil {
		return "", ErrNilTenant
	}
	return Encode(obj, tenant.ID), nil
}

// Decode 是 Encode 的逆操作：解析标识符，依次查找租户、类型和对象。
//
// 错误：
//   - 格式不对：MALFORMED_IDENTIFIER
//   - 租户不存在：NOT_FOUND
//   - 类型未注册：UNKNOWN_TYPE
//   - 对象不存在：NOT_FOUND
func (c *Codec) Decode(ctx context.Context, identifier string) (core.Object, *core.Tenant, error) {
	parts, err := Parse(identifier)
	if err != nil {
		return nil, nil, err
	}

	tenant, err := c.Tenants.GetTenant(ctx, parts.TenantID)
	if err != nil {
		return nil, nil, fmt.Errorf("decode %q: %w", identifier, err)
	}

	desc, err := c.Types.Lookup(parts.Namespace, parts.Type)
	if err != nil {
		return nil, nil, fmt.Errorf("decode %q: %w", identifier, err)
	}

	obj, err := desc.Load(ctx, parts.ObjectID)
	if err != nil {
		return nil, nil, fmt.Errorf("decode %q: %w", identifier, err)
	}
	return obj, tenant, nil
}
