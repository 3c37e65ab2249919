package domain

import "context"

// DonationRepository is the append-only donation ledger.
type DonationRepository interface {
	Append(ctx context.Context, donation *Donation) (int64, error)
	Totals(ctx context.Context) (LedgerTotals, error)
	List(ctx context.Context) ([]Donation, error)
}

// SettingsRepository is the flat key/value configuration store.
type SettingsRepository interface {
	All(ctx context.Context) (map[string]string, error)
	Set(ctx context.Context, key, value string) error
}
