// Package prefs 将扁平的投票列表转换为协同过滤使用的偏好矩阵，
// 并将相似度结果转换为物品邻接表（i2i）。
//
// 矩阵中的物品 key 是 identifier.Encode 生成的标识符，这里只当作不透明字符串，
// 不做任何校验。
package prefs

import (
	"cmp"
	"slices"
)

// Vote 是一条投票：(用户, 物品标识符, 评分)。
// 同一 (用户, 物品) 多次出现时，后出现的评分覆盖前面的。
type Vote[U comparable] struct {
	UserID U
	Item   string
	Rating float64
}

// Matrix 是稀疏的两级偏好矩阵：主 key → 次 key → 评分。
type Matrix[K, S comparable] map[K]map[S]float64

// Get 读取 m[k][s]。
func (m Matrix[K, S]) Get(k K, s S) (float64, bool) {
	row, ok := m[k]
	if !ok {
		return 0, false
	}
	v, ok := row[s]
	return v, ok
}

// Set 写入 m[k][s] = v，行不存在时创建。
func (m Matrix[K, S]) Set(k K, s S, v float64) {
	row, ok := m[k]
	if !ok {
		row = make(map[S]float64)
		m[k] = row
	}
	row[s] = v
}

// Len 返回矩阵中非空单元格数量。
func (m Matrix[K, S]) Len() int {
	n := 0
	for _, row := range m {
		n += len(row)
	}
	return n
}

// UserCentric 返回以用户为中心的偏好矩阵：result[user][item] = rating。
func UserCentric[U comparable](votes []Vote[U]) Matrix[U, string] {
	m := make(Matrix[U, string])
	for _, v := range votes {
		m.Set(v.UserID, v.Item, v.Rating)
	}
	return m
}

// ItemCentric 返回以物品为中心的偏好矩阵：result[item][user] = rating。
func ItemCentric[U comparable](votes []Vote[U]) Matrix[string, U] {
	m := make(Matrix[string, U])
	for _, v := range votes {
		m.Set(v.Item, v.UserID, v.Rating)
	}
	return m
}

// SortedKeys 返回矩阵主 key 的有序列表，便于稳定输出。
func SortedKeys[K cmp.Ordered, S comparable](m Matrix[K, S]) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
