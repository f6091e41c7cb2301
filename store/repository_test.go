package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/recommends/core"
)

var postMeta = core.TypeMeta{Namespace: "blog", Name: "Post"}

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	s := NewMemoryStore()
	t.Cleanup(func() { _ = s.Close() })
	repo := NewRepository(s, "")

	ctx := context.Background()
	require.NoError(t, repo.PutTenant(ctx, &core.Tenant{ID: "1", Domain: "a.example.com"}))
	require.NoError(t, repo.PutTenant(ctx, &core.Tenant{ID: "2", Domain: "b.example.com"}))
	return repo
}

func TestRepository_Tenants(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	got, err := repo.GetTenant(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, &core.Tenant{ID: "1", Domain: "a.example.com"}, got)

	_, err = repo.GetTenant(ctx, "9")
	assert.True(t, core.IsNotFound(err))

	cur, err := repo.Current("2")(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b.example.com", cur.Domain)

	assert.True(t, core.IsInvalidInput(repo.PutTenant(ctx, &core.Tenant{ID: "a:b"})))
	assert.True(t, core.IsInvalidInput(repo.PutTenant(ctx, nil)))
}

func TestRepository_RecordVariants(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	records := []*Record{
		{Type: postMeta, ID: "1", Attrs: map[string]any{"title": "plain", "views": 3}},
		{Type: postMeta, ID: "2", TenantID: "2"},
		{Type: postMeta, ID: "3", TenantIDs: []string{"2", "1"}},
		{Type: postMeta, ID: "4", TenantIDs: []string{"1", "9"}},
	}
	for _, rec := range records {
		require.NoError(t, repo.PutRecord(ctx, rec))
	}

	load := repo.Loader(postMeta)

	obj, err := load(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, core.NoTenantRelation, core.TenantRelationOf(obj))
	rec := obj.(*Record)
	title, ok := rec.StringAttr("title")
	assert.True(t, ok)
	assert.Equal(t, "plain", title)
	views, ok := rec.FloatAttr("views")
	assert.True(t, ok)
	assert.Equal(t, 3.0, views)

	obj, err = load(ctx, "2")
	require.NoError(t, err)
	single, ok := obj.(core.SingleTenantObject)
	require.True(t, ok)
	tenant, err := single.Tenant(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", tenant.ID)

	obj, err = load(ctx, "3")
	require.NoError(t, err)
	multi, ok := obj.(core.MultiTenantObject)
	require.True(t, ok)
	tenants, err := multi.Tenants(ctx)
	require.NoError(t, err)
	require.Len(t, tenants, 2)
	assert.Equal(t, "2", tenants[0].ID)
	assert.Equal(t, "1", tenants[1].ID)

	obj, err = load(ctx, "4")
	require.NoError(t, err)
	_, err = obj.(core.MultiTenantObject).Tenants(ctx)
	assert.True(t, core.IsNotFound(err))

	_, err = load(ctx, "404")
	assert.True(t, core.IsNotFound(err))
}

func TestRepository_PutRecordValidation(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	assert.True(t, core.IsInvalidInput(repo.PutRecord(ctx, nil)))
	assert.True(t, core.IsInvalidInput(repo.PutRecord(ctx, &Record{Type: postMeta})))
	assert.True(t, core.IsInvalidInput(repo.PutRecord(ctx, &Record{Type: postMeta, ID: "1:2"})))
}

func TestRepository_Descriptor(t *testing.T) {
	repo := newTestRepository(t)
	require.NoError(t, repo.PutRecord(context.Background(), &Record{Type: postMeta, ID: "7"}))

	desc := repo.Descriptor(core.TypeMeta{Namespace: "blog", Name: "post"})
	obj, err := desc.Load(context.Background(), "7")
	require.NoError(t, err)
	assert.Equal(t, "blog.post", obj.TypeMeta().String())
	assert.Equal(t, "7", obj.ObjectID())
}
