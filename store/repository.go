package store

import (
	"context"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/rushteam/recommends/core"
	"github.com/rushteam/recommends/pkg/conv"
	"github.com/rushteam/recommends/pkg/logging"
)

// Repository 是基于 core.Store 的租户与对象仓库，
// 实现 core.TenantRepository，并为 identifier.Registry 提供 ObjectLoader。
//
// Key 布局：
//   - 租户：{KeyPrefix}:tenant:{id}
//   - 对象：{KeyPrefix}:object:{namespace}.{name}:{id}
type Repository struct {
	store core.Store
	log   zerolog.Logger

	KeyPrefix string
}

// NewRepository 创建仓库，keyPrefix 为空时使用 "repo"。
func NewRepository(s core.Store, keyPrefix string) *Repository {
	if keyPrefix == "" {
		keyPrefix = "repo"
	}
	return &Repository{
		store:     s,
		log:       logging.With("store.repository"),
		KeyPrefix: keyPrefix,
	}
}

var _ core.TenantRepository = (*Repository)(nil)

// PutTenant 写入租户。ID 不能为空且不能包含冒号。
func (r *Repository) PutTenant(ctx context.Context, t *core.Tenant) error {
	if t == nil || t.ID == "" || strings.Contains(t.ID, ":") {
		return core.NewDomainError(core.ModuleTenant, core.ErrorCodeInvalidInput,
			"tenant: id is required and must not contain ':'")
	}
	data, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.tenantKey(t.ID), data)
}

// GetTenant 按 ID 读取租户，不存在时返回 NOT_FOUND。
func (r *Repository) GetTenant(ctx context.Context, id string) (*core.Tenant, error) {
	data, err := r.store.Get(ctx, r.tenantKey(id))
	if err != nil {
		if core.IsStoreNotFound(err) {
			r.log.Debug().Str("tenant", id).Msg("tenant not found")
			return nil, core.NewTenantNotFoundError(id)
		}
		return nil, err
	}
	var t core.Tenant
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Current 返回一个读取默认租户的函数，可用作 identifier.WithFallback 的参数。
func (r *Repository) Current(defaultTenantID string) func(ctx context.Context) (*core.Tenant, error) {
	return func(ctx context.Context) (*core.Tenant, error) {
		return r.GetTenant(ctx, defaultTenantID)
	}
}

// PutRecord 写入对象记录。
func (r *Repository) PutRecord(ctx context.Context, rec *Record) error {
	if rec == nil || rec.ID == "" || strings.Contains(rec.ID, ":") {
		return core.NewDomainError(core.ModuleObject, core.ErrorCodeInvalidInput,
			"object: id is required and must not contain ':'")
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, r.objectKey(rec.Type, rec.ID), data)
}

// GetRecord 读取对象记录，按其租户关系返回 *Record、*SingleTenantRecord 或 *MultiTenantRecord。
func (r *Repository) GetRecord(ctx context.Context, meta core.TypeMeta, id string) (core.Object, error) {
	data, err := r.store.Get(ctx, r.objectKey(meta, id))
	if err != nil {
		if core.IsStoreNotFound(err) {
			r.log.Debug().Str("type", meta.String()).Str("id", id).Msg("object not found")
			return nil, core.NewObjectNotFoundError(meta, id)
		}
		return nil, err
	}
	rec := &Record{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, err
	}
	return r.bind(rec), nil
}

// Loader 返回某一类型的 ObjectLoader。
func (r *Repository) Loader(meta core.TypeMeta) core.ObjectLoader {
	return func(ctx context.Context, id string) (core.Object, error) {
		return r.GetRecord(ctx, meta, id)
	}
}

// Descriptor 返回可直接注册到 identifier.Registry 的类型描述。
func (r *Repository) Descriptor(meta core.TypeMeta) core.TypeDescriptor {
	return core.TypeDescriptor{Meta: meta, Load: r.Loader(meta)}
}

func (r *Repository) bind(rec *Record) core.Object {
	switch {
	case rec.TenantID != "":
		return &SingleTenantRecord{Record: rec, repo: r}
	case len(rec.TenantIDs) > 0:
		return &MultiTenantRecord{Record: rec, repo: r}
	default:
		return rec
	}
}

func (r *Repository) tenantKey(id string) string {
	return r.KeyPrefix + ":tenant:" + id
}

func (r *Repository) objectKey(meta core.TypeMeta, id string) string {
	return r.KeyPrefix + ":object:" + meta.String() + ":" + id
}

// Record 是仓库中的通用对象记录。
//
// TenantID 非空表示单值租户关系，TenantIDs 非空表示多值租户关系，
// 两者都为空时对象不关联租户。
type Record struct {
	Type      core.TypeMeta  `json:"type"`
	ID        string         `json:"id"`
	TenantID  string         `json:"tenant_id,omitempty"`
	TenantIDs []string       `json:"tenant_ids,omitempty"`
	Attrs     map[string]any `json:"attrs,omitempty"`
}

func (r *Record) TypeMeta() core.TypeMeta { return r.Type }
func (r *Record) ObjectID() string        { return r.ID }

// FloatAttr 读取数值属性（JSON 解码后的数字为 float64）。
func (r *Record) FloatAttr(key string) (float64, bool) {
	return conv.ToFloat64(r.Attrs[key])
}

// StringAttr 读取字符串属性。
func (r *Record) StringAttr(key string) (string, bool) {
	return conv.ToString(r.Attrs[key])
}

// SingleTenantRecord 是通过 TenantID 关联单个租户的记录。
type SingleTenantRecord struct {
	*Record
	repo *Repository
}

func (r *SingleTenantRecord) Tenant(ctx context.Context) (*core.Tenant, error) {
	return r.repo.GetTenant(ctx, r.TenantID)
}

// MultiTenantRecord 是通过 TenantIDs 关联多个租户的记录。
type MultiTenantRecord struct {
	*Record
	repo *Repository
}

// Tenants 批量读取关联租户，顺序与 TenantIDs 一致；任一租户不存在时返回 NOT_FOUND。
func (r *MultiTenantRecord) Tenants(ctx context.Context) ([]*core.Tenant, error) {
	keys := make([]string, len(r.TenantIDs))
	for i, id := range r.TenantIDs {
		keys[i] = r.repo.tenantKey(id)
	}
	vals, err := r.repo.store.BatchGet(ctx, keys)
	if err != nil {
		return nil, err
	}

	out := make([]*core.Tenant, 0, len(keys))
	for i, key := range keys {
		data, ok := vals[key]
		if !ok {
			return nil, core.NewTenantNotFoundError(r.TenantIDs[i])
		}
		t := &core.Tenant{}
		if err := json.Unmarshal(data, t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

var (
	_ core.SingleTenantObject = (*SingleTenantRecord)(nil)
	_ core.MultiTenantObject  = (*MultiTenantRecord)(nil)
)
