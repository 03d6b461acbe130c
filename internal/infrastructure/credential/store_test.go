package credential_test

import (
	"context"
	"testing"

	"gotofork-core/internal/domain/fork"
	"gotofork-core/internal/infrastructure/credential"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := credential.NewMemoryStore(map[string]string{fork.CredentialKey: "abc"})

	v, ok, err := s.Get(ctx, fork.CredentialKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	require.NoError(t, s.Set(ctx, fork.CredentialKey, "def"))
	v, _, _ = s.Get(ctx, fork.CredentialKey)
	assert.Equal(t, "def", v)

	require.NoError(t, s.Delete(ctx, fork.CredentialKey))
	_, ok, _ = s.Get(ctx, fork.CredentialKey)
	assert.False(t, ok)
}

func TestEnvStore(t *testing.T) {
	ctx := context.Background()
	t.Setenv("GITHUB_TOKEN", "from-env")
	t.Setenv("OTHER_TOKEN", "")

	s := credential.NewEnvStore(map[string]string{"other": "OTHER_TOKEN"})

	v, ok, err := s.Get(ctx, fork.CredentialKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "from-env", v)

	_, ok, _ = s.Get(ctx, "other")
	assert.False(t, ok, "empty variable is absent")

	_, ok, _ = s.Get(ctx, "unknown")
	assert.False(t, ok)
}
