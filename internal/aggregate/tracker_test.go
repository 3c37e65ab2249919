package aggregate

import (
	"context"
	"errors"
	"testing"

	"donations/internal/domain"
)

type fakeLedger struct {
	totals domain.LedgerTotals
	err    error
}

func (f *fakeLedger) Append(context.Context, *domain.Donation) (int64, error) {
	return 0, errors.New("not used")
}

func (f *fakeLedger) Totals(context.Context) (domain.LedgerTotals, error) {
	return f.totals, f.err
}

func (f *fakeLedger) List(context.Context) ([]domain.Donation, error) {
	return nil, errors.New("not used")
}

type fakeSettings struct {
	values map[string]string
	err    error
}

func (f *fakeSettings) All(context.Context) (map[string]string, error) {
	return f.values, nil
}

func (f *fakeSettings) Set(_ context.Context, key, value string) error {
	if f.err != nil {
		return f.err
	}
	if f.values == nil {
		f.values = make(map[string]string)
	}
	f.values[key] = value
	return nil
}

func TestRefreshWritesBothCounters(t *testing.T) {
	ledger := &fakeLedger{totals: domain.LedgerTotals{TotalCents: 100000, Count: 2}}
	settings := &fakeSettings{}
	tracker := NewTracker(ledger, settings)

	totals, err := tracker.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if totals.TotalCents != 100000 || totals.Count != 2 {
		t.Fatalf("Refresh totals = %+v", totals)
	}
	if got := settings.values[domain.SettingTotalRaised]; got != "1000.00" {
		t.Fatalf("cached total = %q, want %q", got, "1000.00")
	}
	if got := settings.values[domain.SettingDonationCount]; got != "2" {
		t.Fatalf("cached count = %q, want %q", got, "2")
	}
}

func TestRefreshEmptyLedgerWritesZero(t *testing.T) {
	tracker := NewTracker(&fakeLedger{}, &fakeSettings{})
	totals, err := tracker.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if totals.TotalCents != 0 || totals.Count != 0 {
		t.Fatalf("empty ledger totals = %+v, want zeros", totals)
	}
}

func TestRefreshPropagatesLedgerError(t *testing.T) {
	tracker := NewTracker(&fakeLedger{err: errors.New("db down")}, &fakeSettings{})
	if _, err := tracker.Refresh(context.Background()); err == nil {
		t.Fatal("expected error from ledger")
	}
}

func TestRefreshPropagatesSettingsError(t *testing.T) {
	ledger := &fakeLedger{totals: domain.LedgerTotals{TotalCents: 500, Count: 1}}
	tracker := NewTracker(ledger, &fakeSettings{err: errors.New("write failed")})
	if _, err := tracker.Refresh(context.Background()); err == nil {
		t.Fatal("expected error from settings store")
	}
}
