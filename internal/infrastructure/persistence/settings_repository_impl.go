package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gotofork-core/internal/database"
	"gotofork-core/internal/domain/fork"
	"gotofork-core/internal/infrastructure/encryption"
)

// SettingsRepositoryImpl is the SQL-backed credential store. Values are
// encrypted at rest.
type SettingsRepositoryImpl struct {
	db                *database.DB
	encryptionService *encryption.EncryptionService
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *database.DB, encryptionService *encryption.EncryptionService) fork.WritableCredentialStore {
	return &SettingsRepositoryImpl{
		db:                db,
		encryptionService: encryptionService,
	}
}

// Get returns the decrypted value stored under key
func (r *SettingsRepositoryImpl) Get(ctx context.Context, key string) (string, bool, error) {
	var sealed string
	err := r.db.GetConnection().QueryRowContext(ctx,
		`SELECT value FROM settings WHERE key = $1`, key).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read setting %s: %w", key, err)
	}

	value, err := r.encryptionService.Decrypt(sealed)
	if err != nil {
		return "", false, fmt.Errorf("failed to decrypt setting %s: %w", key, err)
	}
	return value, value != "", nil
}

// Set creates or replaces the value stored under key
func (r *SettingsRepositoryImpl) Set(ctx context.Context, key, value string) error {
	sealed, err := r.encryptionService.Encrypt(value)
	if err != nil {
		return fmt.Errorf("failed to encrypt value: %w", err)
	}

	_, err = r.db.GetConnection().ExecContext(ctx, `
		INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		key, sealed)
	if err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}

// Delete removes key; deleting an absent key is not an error
func (r *SettingsRepositoryImpl) Delete(ctx context.Context, key string) error {
	if _, err := r.db.GetConnection().ExecContext(ctx, `DELETE FROM settings WHERE key = $1`, key); err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, err)
	}
	return nil
}
