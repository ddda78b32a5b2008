package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// setting keys
const (
	SettingLabels    = "mail_labels"
	SettingInterests = "interests"
)

// SettingRepository handles setting-related database operations
type SettingRepository struct {
	db *sqlx.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *sqlx.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting retrieves a setting value, empty string if not set
func (r *SettingRepository) GetSetting(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.GetContext(ctx, &value, "SELECT value FROM settings WHERE key = ?", key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get setting: %w", err)
	}
	return value, nil
}

// SetSetting stores a setting value
func (r *SettingRepository) SetSetting(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	_, err := r.db.ExecContext(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

// Labels returns the selected mail labels, nil if none were saved
func (r *SettingRepository) Labels(ctx context.Context) ([]string, error) {
	return r.getList(ctx, SettingLabels)
}

// SetLabels saves the selected mail labels
func (r *SettingRepository) SetLabels(ctx context.Context, labels []string) error {
	return r.setList(ctx, SettingLabels, labels)
}

// Interests returns the reader's interest topics, nil if none were saved
func (r *SettingRepository) Interests(ctx context.Context) ([]string, error) {
	return r.getList(ctx, SettingInterests)
}

// SetInterests saves the reader's interest topics
func (r *SettingRepository) SetInterests(ctx context.Context, interests []string) error {
	return r.setList(ctx, SettingInterests, interests)
}

func (r *SettingRepository) getList(ctx context.Context, key string) ([]string, error) {
	value, err := r.GetSetting(ctx, key)
	if err != nil {
		return nil, err
	}
	if value == "" {
		return nil, nil
	}
	var res []string
	if err := json.Unmarshal([]byte(value), &res); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return res, nil
}

func (r *SettingRepository) setList(ctx context.Context, key string, values []string) error {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return r.SetSetting(ctx, key, string(data))
}
