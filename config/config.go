// Package config 加载 YAML 配置并构建存储、仓库等组件。
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rushteam/recommends/core"
	"github.com/rushteam/recommends/pkg/logging"
)

// Config 是顶层配置结构。
//
//	store:
//	  backend: redis
//	  addr: localhost:6379
//	  db: 0
//	tenant:
//	  default: "1"
//	prefs:
//	  key_prefix: cf
//	  ttl: 86400
//	log:
//	  level: info
//	  format: json
type Config struct {
	Store  StoreConfig    `yaml:"store"`
	Tenant TenantConfig   `yaml:"tenant"`
	Prefs  PrefsConfig    `yaml:"prefs"`
	Log    logging.Config `yaml:"log"`
}

// StoreConfig 是存储后端配置。
type StoreConfig struct {
	Backend   string `yaml:"backend"` // memory / redis
	Addr      string `yaml:"addr"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"` // Repository 的 key 前缀
}

// TenantConfig 是租户配置。
type TenantConfig struct {
	// Default 是对象没有租户关系且 context 中没有当前租户时使用的租户 ID
	Default string `yaml:"default"`
}

// PrefsConfig 是偏好矩阵存储配置。
type PrefsConfig struct {
	KeyPrefix string `yaml:"key_prefix"`
	TTL       int    `yaml:"ttl"` // 秒，0 表示不过期
}

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Default 返回默认配置：内存存储，默认租户 "1"。
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Backend:   BackendMemory,
			Addr:      "localhost:6379",
			KeyPrefix: "repo",
		},
		Tenant: TenantConfig{Default: "1"},
		Prefs:  PrefsConfig{KeyPrefix: "cf"},
		Log:    logging.Config{Level: "info", Format: "json"},
	}
}

// LoadFromYAML 从 YAML 文件加载配置。
func LoadFromYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return Parse(data)
}

// Parse 解析 YAML，未设置的字段使用 Default 中的值，并校验结果。
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate 校验配置。
func (c *Config) Validate() error {
	c.Store.Backend = strings.ToLower(strings.TrimSpace(c.Store.Backend))
	switch c.Store.Backend {
	case BackendMemory:
	case BackendRedis:
		if c.Store.Addr == "" {
			return invalid("store.addr is required for redis backend")
		}
	default:
		return invalid(fmt.Sprintf("unsupported store.backend %q (supported: memory, redis)", c.Store.Backend))
	}
	if c.Tenant.Default == "" {
		return invalid("tenant.default is required")
	}
	if strings.Contains(c.Tenant.Default, ":") {
		return invalid("tenant.default must not contain ':'")
	}
	if c.Prefs.TTL < 0 {
		return invalid("prefs.ttl must not be negative")
	}
	return nil
}

func invalid(msg string) error {
	return core.NewDomainError(core.ModuleConfig, core.ErrorCodeInvalidInput, "config: "+msg)
}
