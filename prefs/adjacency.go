package prefs

import (
	"fmt"

	"github.com/rushteam/recommends/core"
	"github.com/rushteam/recommends/identifier"
)

// SimilarityRecord 是离线相似度计算的一条结果：
// Object 与 Related 在 Tenant 下的相似度为 Score。
type SimilarityRecord struct {
	Object  core.Object
	Related core.Object
	Tenant  *core.Tenant
	Score   float64
}

// Neighbor 是邻接表中的一项。
type Neighbor struct {
	Score      float64 `json:"score"`
	Identifier string  `json:"identifier"`
}

// Adjacency 是物品邻接表：物品标识符 → 按输入顺序排列的相似物品。
type Adjacency map[string][]Neighbor

// IdentifierProvider 为对象在给定租户下生成标识符。
// identifier.Codec 实现此接口，tenant 为 nil 时返回 INVALID_INPUT 错误。
type IdentifierProvider interface {
	Identifier(obj core.Object, tenant *core.Tenant) (string, error)
}

// BuildItemAdjacency 将相似度结果转换为物品邻接表。
//
// 两端对象都使用记录上的 Tenant 编码；按输入顺序追加，不去重也不按分数排序。
// 任一记录无法编码时返回错误，错误中带有记录下标。
func BuildItemAdjacency(records []SimilarityRecord, provider IdentifierProvider) (Adjacency, error) {
	adj := make(Adjacency)
	for i, rec := range records {
		item, related, err := recordIdentifiers(rec, provider)
		if err != nil {
			return nil, fmt.Errorf("similarity record %d: %w", i, err)
		}
		adj[item] = append(adj[item], Neighbor{Score: rec.Score, Identifier: related})
	}
	return adj, nil
}

// recordIdentifiers 编码记录两端对象；记录没有租户时返回 identifier.ErrNilTenant。
func recordIdentifiers(rec SimilarityRecord, provider IdentifierProvider) (item, related string, err error) {
	if rec.Tenant == nil {
		return "", "", identifier.ErrNilTenant
	}
	if item, err = provider.Identifier(rec.Object, rec.Tenant); err != nil {
		return "", "", err
	}
	if related, err = provider.Identifier(rec.Related, rec.Tenant); err != nil {
		return "", "", err
	}
	return item, related, nil
}
