package identifier

import (
	"sort"
	"strings"
	"sync"

	"github.com/rushteam/recommends/core"
)

// Registry 是类型注册表：(namespace, name) → TypeDescriptor。
//
// 由调用方显式构造并注入 Codec，不存在全局注册表。
// 类型名按小写存储，与 TypeName 的输出一致。可并发使用。
type Registry struct {
	mu    sync.RWMutex
	types map[string]core.TypeDescriptor
}

func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]core.TypeDescriptor),
	}
}

// Register 注册一个类型；同名类型重复注册时后者覆盖前者。
func (r *Registry) Register(desc core.TypeDescriptor) error {
	ns, name := desc.Meta.Namespace, desc.Meta.Name
	switch {
	case ns == "" || name == "":
		return core.NewDomainError(core.ModuleIdentifier, core.ErrorCodeInvalidInput,
			"identifier: type namespace and name are required")
	case strings.ContainsAny(ns, ".:") || strings.ContainsAny(name, ".:"):
		return core.NewDomainError(core.ModuleIdentifier, core.ErrorCodeInvalidInput,
			"identifier: type "+desc.Meta.String()+" contains '.' or ':'")
	case desc.Load == nil:
		return core.NewDomainError(core.ModuleIdentifier, core.ErrorCodeInvalidInput,
			"identifier: type "+desc.Meta.String()+" has no loader")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[desc.Meta.String()] = desc
	return nil
}

// MustRegister 同 Register，失败时 panic。用于 main/init 中的静态注册。
func (r *Registry) MustRegister(desc core.TypeDescriptor) *Registry {
	if err := r.Register(desc); err != nil {
		panic(err)
	}
	return r
}

// Lookup 按 (namespace, name) 查找类型，未注册时返回 UNKNOWN_TYPE 错误。
func (r *Registry) Lookup(namespace, name string) (core.TypeDescriptor, error) {
	key := core.TypeMeta{Namespace: namespace, Name: name}.String()

	r.mu.RLock()
	desc, ok := r.types[key]
	r.mu.RUnlock()
	if !ok {
		return core.TypeDescriptor{}, core.NewUnknownTypeError(namespace, name)
	}
	return desc, nil
}

// Types 返回已注册的类型列表（按 "<ns>.<name>" 排序）。
func (r *Registry) Types() []core.TypeMeta {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]core.TypeMeta, 0, len(r.types))
	for _, desc := range r.types {
		out = append(out, desc.Meta)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}
