package infra

import (
	"context"
	"fmt"

	"donations/internal/sqlinline"
)

// Migrate applies the schema at startup. Every statement is idempotent, so a
// restart against an up-to-date database is a no-op.
func Migrate(ctx context.Context, runner SQLExecutor) error {
	statements := []string{
		sqlinline.QCreateDonationsTable,
		sqlinline.QCreateDonationsTxIndex,
		sqlinline.QCreateSettingsTable,
	}
	for _, stmt := range statements {
		if _, err := runner.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
