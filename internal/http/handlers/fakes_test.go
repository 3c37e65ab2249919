package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"donations/internal/domain"
	"donations/internal/infra"
	"donations/internal/sqlinline"
)

const testSecret = "test-secret"

// fakeSQL is an in-memory stand-in for the SQL runner. It dispatches on the
// sqlinline query constants, so the handlers exercise the exact statements
// they would send to PostgreSQL.
type fakeSQL struct {
	donations []domain.Donation
	settings  map[string]string
	nextID    int64

	failInsert   bool
	failTotals   bool
	failList     bool
	failSettings bool
}

func newFakeSQL() *fakeSQL {
	return &fakeSQL{settings: make(map[string]string)}
}

func (f *fakeSQL) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	if query == sqlinline.QUpsertSetting {
		if f.failSettings {
			return pgconn.CommandTag{}, errors.New("settings write failed")
		}
		f.settings[args[0].(string)] = args[1].(string)
	}
	return pgconn.CommandTag{}, nil
}

func (f *fakeSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	switch query {
	case sqlinline.QInsertDonation:
		return scanFunc(func(dest ...any) error {
			if f.failInsert {
				return errors.New("insert failed")
			}
			tx := args[0].(string)
			for _, d := range f.donations {
				if d.TransactionID == tx {
					return &pgconn.PgError{Code: "23505", ConstraintName: "donations_transaction_id_key"}
				}
			}
			f.nextID++
			f.donations = append(f.donations, domain.Donation{
				ID:            f.nextID,
				TransactionID: tx,
				AmountCents:   args[1].(int64),
				DonorName:     args[2].(string),
				DonorEmail:    args[3].(string),
				ButtonID:      args[4].(string),
				CreatedAt:     time.Now(),
			})
			*(dest[0].(*int64)) = f.nextID
			return nil
		})
	case sqlinline.QDonationTotals:
		return scanFunc(func(dest ...any) error {
			if f.failTotals {
				return errors.New("totals failed")
			}
			var sum, count int64
			for _, d := range f.donations {
				sum += d.AmountCents
				count++
			}
			*(dest[0].(*int64)) = sum
			*(dest[1].(*int64)) = count
			return nil
		})
	}
	return scanFunc(func(...any) error {
		return fmt.Errorf("unexpected query: %s", query)
	})
}

func (f *fakeSQL) Query(_ context.Context, query string, _ ...any) (pgx.Rows, error) {
	switch query {
	case sqlinline.QListDonations:
		if f.failList {
			return nil, errors.New("list failed")
		}
		rows := &fakeRows{}
		// newest first, matching the real query's order by created_at desc
		for i := len(f.donations) - 1; i >= 0; i-- {
			d := f.donations[i]
			rows.scans = append(rows.scans, func(dest ...any) error {
				*(dest[0].(*int64)) = d.ID
				*(dest[1].(*string)) = d.TransactionID
				*(dest[2].(*int64)) = d.AmountCents
				*(dest[3].(*string)) = d.DonorName
				*(dest[4].(*string)) = d.DonorEmail
				*(dest[5].(*string)) = d.ButtonID
				*(dest[6].(*time.Time)) = d.CreatedAt
				return nil
			})
		}
		return rows, nil
	case sqlinline.QSelectSettings:
		rows := &fakeRows{}
		for key, value := range f.settings {
			key, value := key, value
			rows.scans = append(rows.scans, func(dest ...any) error {
				*(dest[0].(*string)) = key
				*(dest[1].(*string)) = value
				return nil
			})
		}
		return rows, nil
	}
	return nil, fmt.Errorf("unexpected query: %s", query)
}

var _ infra.SQLExecutor = (*fakeSQL)(nil)

type scanFunc func(dest ...any) error

func (f scanFunc) Scan(dest ...any) error { return f(dest...) }

type fakeRows struct {
	scans []func(dest ...any) error
	idx   int
}

func (r *fakeRows) Next() bool {
	if r.idx >= len(r.scans) {
		return false
	}
	r.idx++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if r.idx == 0 || r.idx > len(r.scans) {
		return pgx.ErrNoRows
	}
	return r.scans[r.idx-1](dest...)
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func newTestApp(sql *fakeSQL) *App {
	cfg := &infra.Config{
		AppEnv:         "test",
		JWTSecret:      testSecret,
		NonceTTL:       time.Minute,
		CurrencySymbol: "$",
		DefaultLocale:  "es",
		PayPalEnv:      "sandbox",
		PayPalSDKURL:   "https://www.paypalobjects.com/donate/sdk/donate-sdk.js",
	}
	return NewApp(cfg, zerolog.Nop(), sql)
}
