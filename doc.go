// Package recommends 为协同过滤推荐提供数据准备工具。
//
// 设计要点：
//   - 标识符：任意持久化对象编码为 "<namespace>.<type>:<tenant>:<id>"，投票和相似度结果统一引用
//   - 租户：对象按单值/多值租户关系解析所属站点，没有关系时回退到当前租户
//   - 偏好矩阵：扁平投票列表转换为 user→item 与 item→user 两个稀疏矩阵，相似度结果转换为 i2i 邻接表
//
// 持久层通过 core 中的接口注入（TenantRepository、TypeDescriptor），
// store 包提供基于 KV 的默认实现。
package recommends

import (
	"github.com/rushteam/recommends/core"
	"github.com/rushteam/recommends/identifier"
	"github.com/rushteam/recommends/prefs"
)

// 轻量 facade：便于用户直接 import "recommends" 使用核心抽象。
type (
	Object           = core.Object
	Tenant           = core.Tenant
	TypeMeta         = core.TypeMeta
	Codec            = identifier.Codec
	Registry         = identifier.Registry
	Resolver         = identifier.Resolver
	SimilarityRecord = prefs.SimilarityRecord
	Adjacency        = prefs.Adjacency
)

// Encode 见 identifier.Encode。
func Encode(obj Object, tenantID string) string {
	return identifier.Encode(obj, tenantID)
}
