package repo

import (
	"context"
	"fmt"

	"donations/internal/domain"
	"donations/internal/infra"
	"donations/internal/sqlinline"
)

// SettingsRepositoryPG implements the key/value settings store on PostgreSQL.
type SettingsRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewSettingsRepository creates a new settings repo.
func NewSettingsRepository(sql infra.SQLExecutor) *SettingsRepositoryPG {
	return &SettingsRepositoryPG{sql: sql}
}

// All returns every stored setting as a flat map. Missing keys fall back to
// defaults at the domain layer, so an empty table is fine.
func (r *SettingsRepositoryPG) All(ctx context.Context) (map[string]string, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QSelectSettings)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		values[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return values, nil
}

// Set writes one setting, inserting or overwriting as needed.
func (r *SettingsRepositoryPG) Set(ctx context.Context, key, value string) error {
	if _, err := r.sql.Exec(ctx, sqlinline.QUpsertSetting, key, value); err != nil {
		return fmt.Errorf("store setting %s: %w", key, err)
	}
	return nil
}

var _ domain.SettingsRepository = (*SettingsRepositoryPG)(nil)
