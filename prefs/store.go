package prefs

import (
	"context"
	"slices"

	"github.com/goccy/go-json"

	"github.com/rushteam/recommends/core"
)

// MatrixStore 将偏好矩阵和邻接表写入 core.Store，供在线召回读取。
//
// Key 布局：
//   - 用户物品评分：{KeyPrefix}:user:{userID}  → {"<item>": rating}
//   - 物品用户评分：{KeyPrefix}:item:{item}    → {"<userID>": rating}
//   - 所有用户列表：{KeyPrefix}:users
//   - 所有物品列表：{KeyPrefix}:items
//   - 物品邻接表：  {KeyPrefix}:i2i:{item}     → [{"score":..,"identifier":..}]
type MatrixStore struct {
	store core.Store

	KeyPrefix string

	// TTL 写入时的过期时间（秒），0 表示不过期
	TTL int
}

// NewMatrixStore 创建一个基于 core.Store 的矩阵存储。
func NewMatrixStore(s core.Store, keyPrefix string) *MatrixStore {
	if keyPrefix == "" {
		keyPrefix = "cf"
	}
	return &MatrixStore{
		store:     s,
		KeyPrefix: keyPrefix,
	}
}

// Name 返回存储名称（用于日志/监控）
func (a *MatrixStore) Name() string {
	return "matrix_store:" + a.store.Name()
}

// SaveVotes 将投票转换为两个偏好矩阵并批量写入。
// 同一 (用户, 物品) 多次出现时后者覆盖前者，与 UserCentric/ItemCentric 一致。
func (a *MatrixStore) SaveVotes(ctx context.Context, votes []Vote[string]) error {
	userPrefs := UserCentric(votes)
	itemPrefs := ItemCentric(votes)

	kvs := make(map[string][]byte, len(userPrefs)+len(itemPrefs)+2)
	for userID, items := range userPrefs {
		data, err := json.Marshal(items)
		if err != nil {
			return err
		}
		kvs[a.userKey(userID)] = data
	}
	for item, users := range itemPrefs {
		data, err := json.Marshal(users)
		if err != nil {
			return err
		}
		kvs[a.itemKey(item)] = data
	}

	usersData, err := json.Marshal(SortedKeys(userPrefs))
	if err != nil {
		return err
	}
	kvs[a.KeyPrefix+":users"] = usersData

	itemsData, err := json.Marshal(SortedKeys(itemPrefs))
	if err != nil {
		return err
	}
	kvs[a.KeyPrefix+":items"] = itemsData

	return a.store.BatchSet(ctx, kvs, a.TTL)
}

// SaveAdjacency 批量写入物品邻接表，保持每个物品邻居的原有顺序。
func (a *MatrixStore) SaveAdjacency(ctx context.Context, adj Adjacency) error {
	if len(adj) == 0 {
		return nil
	}
	kvs := make(map[string][]byte, len(adj))
	for item, neighbors := range adj {
		data, err := json.Marshal(neighbors)
		if err != nil {
			return err
		}
		kvs[a.KeyPrefix+":i2i:"+item] = data
	}
	return a.store.BatchSet(ctx, kvs, a.TTL)
}

// GetUserItems 获取用户评过分的物品及评分，不存在时返回空 map。
func (a *MatrixStore) GetUserItems(ctx context.Context, userID string) (map[string]float64, error) {
	result := make(map[string]float64)
	if err := a.getJSON(ctx, a.userKey(userID), &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetItemUsers 获取给物品评过分的用户及评分，不存在时返回空 map。
func (a *MatrixStore) GetItemUsers(ctx context.Context, item string) (map[string]float64, error) {
	result := make(map[string]float64)
	if err := a.getJSON(ctx, a.itemKey(item), &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetAllUsers 获取所有用户 ID 列表（有序）
func (a *MatrixStore) GetAllUsers(ctx context.Context) ([]string, error) {
	result := []string{}
	if err := a.getJSON(ctx, a.KeyPrefix+":users", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetAllItems 获取所有物品标识符列表（有序）
func (a *MatrixStore) GetAllItems(ctx context.Context) ([]string, error) {
	result := []string{}
	if err := a.getJSON(ctx, a.KeyPrefix+":items", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetNeighbors 获取物品的邻接表。
func (a *MatrixStore) GetNeighbors(ctx context.Context, item string) ([]Neighbor, error) {
	result := []Neighbor{}
	if err := a.getJSON(ctx, a.KeyPrefix+":i2i:"+item, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// LoadUserCentric 从存储中重建以用户为中心的偏好矩阵。
func (a *MatrixStore) LoadUserCentric(ctx context.Context) (Matrix[string, string], error) {
	users, err := a.GetAllUsers(ctx)
	if err != nil {
		return nil, err
	}
	m := make(Matrix[string, string], len(users))
	if len(users) == 0 {
		return m, nil
	}

	keys := make([]string, len(users))
	for i, u := range users {
		keys[i] = a.userKey(u)
	}
	vals, err := a.store.BatchGet(ctx, keys)
	if err != nil {
		return nil, err
	}
	for i, u := range users {
		data, ok := vals[keys[i]]
		if !ok {
			continue
		}
		row := make(map[string]float64)
		if err := json.Unmarshal(data, &row); err != nil {
			return nil, err
		}
		m[u] = row
	}
	return m, nil
}

func (a *MatrixStore) userKey(userID string) string {
	return a.KeyPrefix + ":user:" + userID
}

func (a *MatrixStore) itemKey(item string) string {
	return a.KeyPrefix + ":item:" + item
}

// getJSON 读取并解析 key；key 不存在时保持 v 不变。
func (a *MatrixStore) getJSON(ctx context.Context, key string, v any) error {
	data, err := a.store.Get(ctx, key)
	if err != nil {
		if core.IsStoreNotFound(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// sortedNeighbors 返回按分数降序的副本，不修改原邻接表。
func sortedNeighbors(neighbors []Neighbor) []Neighbor {
	out := slices.Clone(neighbors)
	slices.SortStableFunc(out, func(a, b Neighbor) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	return out
}

// TopNeighbors 返回物品分数最高的 n 个邻居（n <= 0 返回全部，按分数降序）。
// 存储中的邻接表保持原顺序，排序只发生在读取侧。
func (a *MatrixStore) TopNeighbors(ctx context.Context, item string, n int) ([]Neighbor, error) {
	neighbors, err := a.GetNeighbors(ctx, item)
	if err != nil {
		return nil, err
	}
	out := sortedNeighbors(neighbors)
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out, nil
}
