package identifier

import (
	"context"

	"github.com/rushteam/recommends/core"
)

// ErrNoCurrentTenant 表示 context 中没有当前租户且未配置回退。
var ErrNoCurrentTenant = core.NewDomainError(core.ModuleTenant, core.ErrorCodeNotFound, "tenant: no current tenant")

// Resolver 解析对象所属的租户（站点）。
type Resolver struct {
	// Fallback 在 context 中没有当前租户时提供默认租户（可选）
	Fallback func(ctx context.Context) (*core.Tenant, error)
}

// ResolverOption 配置 Resolver。
type ResolverOption func(*Resolver)

// WithFallback 设置默认租户的获取方式，例如 store.Repository.Current("1")。
func WithFallback(fn func(ctx context.Context) (*core.Tenant, error)) ResolverOption {
	return func(r *Resolver) {
		r.Fallback = fn
	}
}

func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Tenants 返回对象所属的租户，结果非空。按顺序，先匹配者胜出：
//  1. 单值租户关系：返回该租户
//  2. 多值租户关系：返回全部关联租户
//  3. 否则返回当前租户（context 优先，其次 Fallback）
//
// 关系解引用失败时原样返回错误。
func (r *Resolver) Tenants(ctx context.Context, obj core.Object) ([]*core.Tenant, error) {
	switch o := obj.(type) {
	case core.SingleTenantObject:
		t, err := o.Tenant(ctx)
		if err != nil {
			return nil, err
		}
		return []*core.Tenant{t}, nil
	case core.MultiTenantObject:
		ts, err := o.Tenants(ctx)
		if err != nil {
			return nil, err
		}
		if len(ts) > 0 {
			return ts, nil
		}
	}

	t, err := r.Current(ctx)
	if err != nil {
		return nil, err
	}
	return []*core.Tenant{t}, nil
}

// Current 返回当前租户。
func (r *Resolver) Current(ctx context.Context) (*core.Tenant, error) {
	if t, ok := core.CurrentTenant(ctx); ok {
		return t, nil
	}
	if r.Fallback != nil {
		return r.Fallback(ctx)
	}
	return nil, ErrNoCurrentTenant
}
