package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Checkers(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		notFound  bool
		malformed bool
		unknown   bool
	}{
		{name: "nil", err: nil},
		{name: "plain error", err: errors.New("boom")},
		{name: "tenant not found", err: NewTenantNotFoundError("9"), notFound: true},
		{name: "object not found", err: NewObjectNotFoundError(TypeMeta{"blog", "Post"}, "1"), notFound: true},
		{name: "malformed", err: NewMalformedIdentifierError("bad", "want 3 segments"), malformed: true},
		{name: "unknown type", err: NewUnknownTypeError("nosuch", "type"), unknown: true},
		{name: "wrapped not found", err: fmt.Errorf("decode: %w", NewTenantNotFoundError("9")), notFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.notFound, IsNotFound(tt.err))
			assert.Equal(t, tt.malformed, IsMalformedIdentifier(tt.err))
			assert.Equal(t, tt.unknown, IsUnknownType(tt.err))
		})
	}
}

func TestDomainError_Is(t *testing.T) {
	err := fmt.Errorf("get: %w", WrapDomainError(ModuleStore, ErrorCodeNotFound, "store: key not found", errors.New("redis: nil")))

	assert.True(t, errors.Is(err, ErrStoreNotFound))
	assert.True(t, IsStoreNotFound(err))
	assert.False(t, IsStoreNotSupported(err))
	assert.Contains(t, err.Error(), "redis: nil")

	// 同 Code 不同 Module 不匹配
	assert.False(t, errors.Is(NewTenantNotFoundError("1"), ErrStoreNotFound))
}

func TestTypeMeta_String(t *testing.T) {
	assert.Equal(t, "blog.blogpost", TypeMeta{Namespace: "blog", Name: "BlogPost"}.String())
}
