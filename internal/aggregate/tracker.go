// Package aggregate keeps the denormalized donation counters in the settings
// store synchronized with the ledger.
package aggregate

import (
	"context"
	"fmt"
	"strconv"

	"donations/internal/domain"
)

// Tracker recomputes total_amount_raised and number_of_donations from the
// ledger and caches them as settings. The cache is a read optimization for
// the public widget; the admin surface always reads the live totals, so a
// failed refresh only leaves the widget stale until the next donation.
type Tracker struct {
	donations domain.DonationRepository
	settings  domain.SettingsRepository
}

func NewTracker(donations domain.DonationRepository, settings domain.SettingsRepository) *Tracker {
	return &Tracker{donations: donations, settings: settings}
}

// Refresh overwrites both cached counters with values derived from the
// ledger. Called synchronously after every successful append.
func (t *Tracker) Refresh(ctx context.Context) (domain.LedgerTotals, error) {
	totals, err := t.donations.Totals(ctx)
	if err != nil {
		return domain.LedgerTotals{}, fmt.Errorf("refresh aggregates: %w", err)
	}
	if err := t.settings.Set(ctx, domain.SettingTotalRaised, domain.FormatAmount(totals.TotalCents)); err != nil {
		return totals, fmt.Errorf("refresh aggregates: %w", err)
	}
	if err := t.settings.Set(ctx, domain.SettingDonationCount, strconv.FormatInt(totals.Count, 10)); err != nil {
		return totals, fmt.Errorf("refresh aggregates: %w", err)
	}
	return totals, nil
}
