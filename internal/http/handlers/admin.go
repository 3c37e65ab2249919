package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"donations/internal/domain"
)

// AdminDonations serves the dashboard data: live totals, percent of goal, and
// the full donation list newest first. It reads the ledger directly, never
// the cached counters, so the numbers are correct even when the cache lags.
func (a *App) AdminDonations(w http.ResponseWriter, r *http.Request) {
	totals, err := a.Donations.Totals(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load totals")
		return
	}

	values, err := a.Settings.All(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load settings")
		return
	}
	settings := domain.SettingsFromMap(values)

	list, err := a.Donations.List(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load donations")
		return
	}

	items := make([]map[string]any, 0, len(list))
	for _, d := range list {
		item := map[string]any{
			"id":             d.ID,
			"transaction_id": d.TransactionID,
			"amount":         d.Amount(),
			"created_at":     d.CreatedAt,
		}
		if d.DonorName != "" {
			item["donor_name"] = d.DonorName
		}
		if d.DonorEmail != "" {
			item["donor_email"] = d.DonorEmail
		}
		if d.ButtonID != "" {
			item["button_id"] = d.ButtonID
		}
		items = append(items, item)
	}

	a.json(w, http.StatusOK, map[string]any{
		"total_raised":    totals.TotalAmount(),
		"donation_count":  totals.Count,
		"goal":            settings.Goal,
		"percent_of_goal": domain.ProgressPercent(totals.TotalCents, settings.Goal),
		"items":           items,
	})
}

// AdminSettingsGet returns every stored setting merged over the defaults.
func (a *App) AdminSettingsGet(w http.ResponseWriter, r *http.Request) {
	values, err := a.Settings.All(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load settings")
		return
	}
	settings := domain.SettingsFromMap(values)

	a.json(w, http.StatusOK, map[string]any{
		domain.SettingGoal:             settings.Goal,
		domain.SettingPayPalButtonID:   settings.PayPalButtonID,
		domain.SettingCTAParagraph:     settings.CTAParagraph,
		domain.SettingContentAlignment: settings.ContentAlignment,
		domain.SettingShowAmountRaised: settings.ShowAmountRaised,
		domain.SettingShowPercentage:   settings.ShowPercentage,
		domain.SettingShowCount:        settings.ShowCount,
		domain.SettingShowCTA:          settings.ShowCTA,
		domain.SettingTextColor:        settings.TextColor,
		domain.SettingBarColor:         settings.BarColor,
		domain.SettingBarHeight:        settings.BarHeight,
		domain.SettingWellColor:        settings.WellColor,
		domain.SettingWellWidth:        settings.WellWidth,
		domain.SettingBorderRadius:     settings.BorderRadius,
	})
}

// AdminSettingsUpdate accepts a flat JSON object of setting values. Only the
// editable keys are writable; the cached counters stay tracker-owned.
func (a *App) AdminSettingsUpdate(w http.ResponseWriter, r *http.Request) {
	var req map[string]string
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	editable := make(map[string]struct{}, len(domain.EditableSettingKeys))
	for _, key := range domain.EditableSettingKeys {
		editable[key] = struct{}{}
	}

	for key, value := range req {
		if _, ok := editable[key]; !ok {
			a.error(w, http.StatusBadRequest, "bad_request", "unknown setting "+key)
			return
		}
		if key == domain.SettingGoal {
			if _, err := strconv.ParseInt(value, 10, 64); err != nil {
				a.error(w, http.StatusBadRequest, "bad_request", "goal must be an integer")
				return
			}
		}
	}

	for key, value := range req {
		sanitized := domain.SanitizeText(value)
		if err := a.Settings.Set(r.Context(), key, sanitized); err != nil {
			a.Logger.Error().Err(err).Str("key", key).Msg("setting update failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to store setting")
			return
		}
	}

	a.json(w, http.StatusOK, map[string]any{"updated": len(req)})
}
