package handlers

import (
	"errors"
	"net/http"
	"strings"

	"donations/internal/domain"
	"donations/internal/metrics"
	"donations/internal/middleware"
)

// DonationsSave is the ingestion endpoint: it turns one client-reported
// PayPal completion into a ledger row and refreshes the cached aggregates.
//
// The amount and transaction id are taken from the client as-is, exactly as
// the plugin did; there is no server-side verification against PayPal. Anyone
// hardening this service should start there.
func (a *App) DonationsSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		a.fail(w, "invalid form payload")
		return
	}

	// Token first: a forged request learns nothing about field validation.
	nonce := r.PostFormValue("donation_nonce")
	if nonce == "" || middleware.VerifyNonce(a.Cfg.JWTSecret, nonce) != nil {
		metrics.DonationsRejectedTotal.WithLabelValues("security").Inc()
		a.fail(w, "invalid security token")
		return
	}

	amountRaw := strings.TrimSpace(r.PostFormValue("donation_amount"))
	if amountRaw == "" {
		metrics.DonationsRejectedTotal.WithLabelValues("validation").Inc()
		a.fail(w, "amount required")
		return
	}

	txID := domain.SanitizeText(r.PostFormValue("transaction_id"))
	if txID == "" {
		metrics.DonationsRejectedTotal.WithLabelValues("validation").Inc()
		a.fail(w, "transaction id required")
		return
	}

	cents, err := domain.ParseAmountCents(amountRaw)
	if err != nil {
		metrics.DonationsRejectedTotal.WithLabelValues("validation").Inc()
		a.fail(w, "invalid amount")
		return
	}

	email := strings.TrimSpace(r.PostFormValue("donor_email"))
	if email != "" && !domain.ValidEmail(email) {
		metrics.DonationsRejectedTotal.WithLabelValues("validation").Inc()
		a.fail(w, "invalid email")
		return
	}

	donation := &domain.Donation{
		TransactionID: txID,
		AmountCents:   cents,
		DonorName:     domain.SanitizeText(r.PostFormValue("donor_name")),
		DonorEmail:    email,
		ButtonID:      domain.SanitizeText(r.PostFormValue("button_id")),
	}

	if _, err := a.Donations.Append(r.Context(), donation); err != nil {
		if errors.Is(err, domain.ErrDuplicateTransaction) {
			// Repeat of a recorded transaction (browser retry, double
			// submit). Idempotent: nothing is written, the current
			// total is returned as if the first submit just landed.
			metrics.DonationsDuplicateTotal.Inc()
			a.Logger.Info().Str("transaction_id", txID).Msg("duplicate donation submit ignored")
			a.respondTotal(w, r)
			return
		}
		metrics.DonationsRejectedTotal.WithLabelValues("storage").Inc()
		a.Logger.Error().Err(err).
			Str("transaction_id", txID).
			Str("amount", domain.FormatAmount(cents)).
			Msg("donation insert failed")
		a.fail(w, "failed to save donation")
		return
	}

	metrics.DonationsSavedTotal.Inc()
	metrics.DonationsAmountCents.Add(float64(cents))

	totals, err := a.Tracker.Refresh(r.Context())
	if err != nil {
		// The ledger row is in; only the widget-facing cache is stale
		// until the next donation refreshes it. Answer from the ledger.
		a.Logger.Error().Err(err).Msg("aggregate refresh failed")
		a.respondTotal(w, r)
		return
	}

	a.json(w, http.StatusOK, map[string]any{
		"success":       true,
		"current_total": totals.TotalAmount(),
	})
}

// respondTotal answers success with the live ledger total, used on the paths
// where the tracker result is unavailable.
func (a *App) respondTotal(w http.ResponseWriter, r *http.Request) {
	totals, err := a.Donations.Totals(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("ledger totals unavailable")
		a.json(w, http.StatusOK, map[string]any{"success": true})
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"success":       true,
		"current_total": totals.TotalAmount(),
	})
}
