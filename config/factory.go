package config

import (
	"context"

	"github.com/rushteam/recommends/core"
	"github.com/rushteam/recommends/identifier"
	"github.com/rushteam/recommends/pkg/logging"
	"github.com/rushteam/recommends/prefs"
	"github.com/rushteam/recommends/store"
)

// NewStore 按配置创建存储后端。
func NewStore(ctx context.Context, cfg *Config) (core.Store, error) {
	switch cfg.Store.Backend {
	case BackendRedis:
		rs, err := store.NewRedisStore(ctx, cfg.Store.Addr, cfg.Store.DB)
		if err != nil {
			return nil, err
		}
		return rs, nil
	case BackendMemory, "":
		return store.NewMemoryStore(), nil
	default:
		return nil, invalid("unsupported store.backend " + cfg.Store.Backend)
	}
}

// Components 是按配置装配好的组件。
type Components struct {
	Store      core.Store
	Repository *store.Repository
	Registry   *identifier.Registry
	Codec      *identifier.Codec
	Resolver   *identifier.Resolver
	Matrices   *prefs.MatrixStore
}

// Build 初始化日志并装配全部组件；类型注册表为空，由调用方注册业务类型。
func Build(ctx context.Context, cfg *Config) (*Components, error) {
	logging.Init(cfg.Log)

	kv, err := NewStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	repo := store.NewRepository(kv, cfg.Store.KeyPrefix)
	reg := identifier.NewRegistry()
	matrices := prefs.NewMatrixStore(kv, cfg.Prefs.KeyPrefix)
	matrices.TTL = cfg.Prefs.TTL

	return &Components{
		Store:      kv,
		Repository: repo,
		Registry:   reg,
		Codec:      identifier.NewCodec(repo, reg),
		Resolver:   identifier.NewResolver(identifier.WithFallback(repo.Current(cfg.Tenant.Default))),
		Matrices:   matrices,
	}, nil
}

// Close 释放存储连接。
func (c *Components) Close() error {
	return c.Store.Close()
}
