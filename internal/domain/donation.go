package domain

import "time"

// Donation is one completed PayPal payment reported by the widget.
// Records are append-only; nothing in the service updates or deletes them.
type Donation struct {
	ID            int64
	TransactionID string
	AmountCents   int64
	DonorName     string
	DonorEmail    string
	ButtonID      string
	CreatedAt     time.Time
}

// Amount returns the donation value in currency units.
func (d Donation) Amount() float64 {
	return float64(d.AmountCents) / 100
}

// LedgerTotals carries the live SUM/COUNT over the donations table.
type LedgerTotals struct {
	TotalCents int64
	Count      int64
}

// TotalAmount returns the raised total in currency units.
func (t LedgerTotals) TotalAmount() float64 {
	return float64(t.TotalCents) / 100
}
