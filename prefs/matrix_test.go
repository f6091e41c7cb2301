package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sampleVotes = []Vote[int]{
	{UserID: 1, Item: "a", Rating: 5},
	{UserID: 1, Item: "b", Rating: 3},
	{UserID: 2, Item: "a", Rating: 4},
	{UserID: 1, Item: "a", Rating: 1},
}

func TestUserCentric(t *testing.T) {
	got := UserCentric(sampleVotes)

	assert.Equal(t, Matrix[int, string]{
		1: {"a": 1, "b": 3},
		2: {"a": 4},
	}, got)
	assert.Equal(t, 3, got.Len())
}

func TestItemCentric(t *testing.T) {
	got := ItemCentric(sampleVotes)

	assert.Equal(t, Matrix[string, int]{
		"a": {1: 1, 2: 4},
		"b": {1: 3},
	}, got)
	assert.Equal(t, []string{"a", "b"}, SortedKeys(got))
}

func TestPivot_Empty(t *testing.T) {
	users := UserCentric[int](nil)
	items := ItemCentric([]Vote[string]{})

	assert.NotNil(t, users)
	assert.Empty(t, users)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestPivot_OpaqueKeys(t *testing.T) {
	// 物品 key 不做校验，任意字符串都原样保留
	votes := []Vote[string]{
		{UserID: "u1", Item: "", Rating: 1},
		{UserID: "u1", Item: "not:an:identifier:at:all", Rating: -2.5},
	}

	got := UserCentric(votes)
	v, ok := got.Get("u1", "not:an:identifier:at:all")
	assert.True(t, ok)
	assert.Equal(t, -2.5, v)

	_, ok = got.Get("u2", "")
	assert.False(t, ok)
	_, ok = got.Get("u1", "missing")
	assert.False(t, ok)
}

func TestMatrix_Set(t *testing.T) {
	m := make(Matrix[string, string])
	m.Set("u", "i", 2)
	m.Set("u", "i", 3)

	v, ok := m.Get("u", "i")
	assert.True(t, ok)
	assert.Equal(t, 3.0, v)
	assert.Equal(t, 1, m.Len())
}
