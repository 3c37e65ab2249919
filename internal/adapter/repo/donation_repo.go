package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"donations/internal/domain"
	"donations/internal/infra"
	"donations/internal/sqlinline"
)

const uniqueViolation = "23505"

// DonationRepositoryPG implements the donation ledger on PostgreSQL.
type DonationRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewDonationRepository creates a new donation repo.
func NewDonationRepository(sql infra.SQLExecutor) *DonationRepositoryPG {
	return &DonationRepositoryPG{sql: sql}
}

// Append inserts a new donation record and returns its assigned id. A repeat
// of an already-recorded transaction id yields domain.ErrDuplicateTransaction.
func (r *DonationRepositoryPG) Append(ctx context.Context, donation *domain.Donation) (int64, error) {
	if donation.TransactionID == "" {
		return 0, domain.ErrTransactionRequired
	}
	if donation.AmountCents <= 0 {
		return 0, domain.ErrInvalidAmount
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertDonation,
		donation.TransactionID, donation.AmountCents, donation.DonorName, donation.DonorEmail, donation.ButtonID)
	var id int64
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, domain.ErrDuplicateTransaction
		}
		return 0, fmt.Errorf("insert donation: %w", err)
	}
	donation.ID = id
	return id, nil
}

// Totals returns the live SUM/COUNT over the ledger; zero values on an empty table.
func (r *DonationRepositoryPG) Totals(ctx context.Context) (domain.LedgerTotals, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QDonationTotals)
	var t domain.LedgerTotals
	if err := row.Scan(&t.TotalCents, &t.Count); err != nil {
		return domain.LedgerTotals{}, fmt.Errorf("donation totals: %w", err)
	}
	return t, nil
}

// List returns every donation, newest first. The admin view is the only
// caller and the original system never paginated it.
func (r *DonationRepositoryPG) List(ctx context.Context) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonations)
	if err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	defer rows.Close()

	var items []domain.Donation
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.ID, &d.TransactionID, &d.AmountCents, &d.DonorName, &d.DonorEmail, &d.ButtonID, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan donation: %w", err)
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list donations: %w", err)
	}
	return items, nil
}

var _ domain.DonationRepository = (*DonationRepositoryPG)(nil)
