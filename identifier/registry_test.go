package identifier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rushteam/recommends/core"
)

func noopLoader(context.Context, string) (core.Object, error) { return nil, nil }

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name    string
		desc    core.TypeDescriptor
		wantErr bool
	}{
		{name: "ok", desc: core.TypeDescriptor{Meta: core.TypeMeta{Namespace: "blog", Name: "Post"}, Load: noopLoader}},
		{name: "empty namespace", desc: core.TypeDescriptor{Meta: core.TypeMeta{Name: "Post"}, Load: noopLoader}, wantErr: true},
		{name: "empty name", desc: core.TypeDescriptor{Meta: core.TypeMeta{Namespace: "blog"}, Load: noopLoader}, wantErr: true},
		{name: "dot in namespace", desc: core.TypeDescriptor{Meta: core.TypeMeta{Namespace: "a.b", Name: "Post"}, Load: noopLoader}, wantErr: true},
		{name: "colon in name", desc: core.TypeDescriptor{Meta: core.TypeMeta{Namespace: "blog", Name: "a:b"}, Load: noopLoader}, wantErr: true},
		{name: "nil loader", desc: core.TypeDescriptor{Meta: core.TypeMeta{Namespace: "blog", Name: "Post"}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRegistry().Register(tt.desc)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, core.IsInvalidInput(err))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestRegistry_Lookup(t *testing.T) {
	reg := NewRegistry().
		MustRegister(core.TypeDescriptor{Meta: core.TypeMeta{Namespace: "blog", Name: "Post"}, Load: noopLoader}).
		MustRegister(core.TypeDescriptor{Meta: core.TypeMeta{Namespace: "auth", Name: "User"}, Load: noopLoader})

	desc, err := reg.Lookup("blog", "post")
	require.NoError(t, err)
	assert.Equal(t, "Post", desc.Meta.Name)

	// 类型名大小写不敏感
	_, err = reg.Lookup("blog", "POST")
	require.NoError(t, err)

	_, err = reg.Lookup("nosuch", "type")
	assert.True(t, core.IsUnknownType(err))

	assert.Equal(t, []core.TypeMeta{
		{Namespace: "auth", Name: "User"},
		{Namespace: "blog", Name: "Post"},
	}, reg.Types())
}

func TestRegistry_MustRegisterPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry().MustRegister(core.TypeDescriptor{})
	})
}
