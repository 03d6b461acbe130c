package credential

import (
	"context"
	"os"

	"gotofork-core/internal/domain/fork"
)

// EnvStore reads credentials from environment variables. It is read-only.
type EnvStore struct {
	vars map[string]string
}

// NewEnvStore maps credential keys to environment variable names.
// The GitHub token key defaults to GITHUB_TOKEN.
func NewEnvStore(vars map[string]string) *EnvStore {
	s := &EnvStore{vars: map[string]string{fork.CredentialKey: "GITHUB_TOKEN"}}
	for k, v := range vars {
		s.vars[k] = v
	}
	return s
}

// Get returns the variable mapped to key; unmapped keys and empty variables are absent
func (s *EnvStore) Get(ctx context.Context, key string) (string, bool, error) {
	name, ok := s.vars[key]
	if !ok {
		return "", false, nil
	}
	v := os.Getenv(name)
	return v, v != "", nil
}
