// Package store 提供 core.Store 的实现（内存、Redis），
// 以及基于 KV 的租户与对象仓库 Repository。
//
// 接口定义在 core 包：
//
//	var kv core.Store = store.NewMemoryStore()
//	repo := store.NewRepository(kv, "")
package store
