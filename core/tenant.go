package core

import "context"

// Tenant 是对象所属的逻辑分区（站点）。
// ID 是标识符的第二段，不能包含冒号。
type Tenant struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Domain string `json:"domain,omitempty"`
}

// TenantRepository 是外部持久层中租户的查询接口。
type TenantRepository interface {
	// GetTenant 按 ID 查询租户，不存在时返回 IsNotFound 为 true 的错误
	GetTenant(ctx context.Context, id string) (*Tenant, error)
}

// SingleTenantObject 表示对象通过单值关系归属于一个租户。
type SingleTenantObject interface {
	Object
	Tenant(ctx context.Context) (*Tenant, error)
}

// MultiTenantObject 表示对象通过多值关系归属于多个租户。
type MultiTenantObject interface {
	Object
	Tenants(ctx context.Context) ([]*Tenant, error)
}

// TenantRelation 是对象与租户之间的关系类别。
type TenantRelation int

const (
	NoTenantRelation TenantRelation = iota
	SingleTenantRelation
	MultiTenantRelation
)

func (r TenantRelation) String() string {
	switch r {
	case SingleTenantRelation:
		return "single"
	case MultiTenantRelation:
		return "multi"
	default:
		return "none"
	}
}

// TenantRelationOf 返回对象实现的租户关系类别。
// 同时实现单值和多值关系时，单值优先。
func TenantRelationOf(obj Object) TenantRelation {
	switch obj.(type) {
	case SingleTenantObject:
		return SingleTenantRelation
	case MultiTenantObject:
		return MultiTenantRelation
	default:
		return NoTenantRelation
	}
}

type currentTenantKey struct{}

// WithCurrentTenant 将"当前租户"放入 context，供租户解析时回退使用。
func WithCurrentTenant(ctx context.Context, t *Tenant) context.Context {
	return context.WithValue(ctx, currentTenantKey{}, t)
}

// CurrentTenant 从 context 读取当前租户。
func CurrentTenant(ctx context.Context) (*Tenant, bool) {
	t, ok := ctx.Value(currentTenantKey{}).(*Tenant)
	return t, ok && t != nil
}
