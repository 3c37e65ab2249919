package handlers

import (
	"fmt"
	"html/template"
	"net/http"

	"donations/internal/domain"
	"donations/internal/i18n"
	"donations/internal/middleware"
)

// WidgetRender serves the embeddable donation widget: CTA, stat lines,
// progress bar, and the PayPal Donate SDK bootstrap that posts completions
// back to the ingestion endpoint. It replaces the plugin's shortcode output.
func (a *App) WidgetRender(w http.ResponseWriter, r *http.Request) {
	values, err := a.Settings.All(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("widget: settings unavailable")
		http.Error(w, "widget unavailable", http.StatusInternalServerError)
		return
	}
	settings := domain.SettingsFromMap(values)

	totals, err := a.Donations.Totals(r.Context())
	if err != nil {
		a.Logger.Error().Err(err).Msg("widget: ledger totals unavailable")
		http.Error(w, "widget unavailable", http.StatusInternalServerError)
		return
	}

	msg := i18n.For(middleware.LocaleFromContext(r.Context()))
	cta := settings.CTAParagraph
	if cta == "" {
		cta = msg.DefaultCTA
	}

	percent := domain.ProgressPercent(totals.TotalCents, settings.Goal)
	data := widgetData{
		Settings:    settings,
		Msg:         msg,
		CTA:         cta,
		Currency:    a.Cfg.CurrencySymbol,
		Total:       domain.FormatAmount(totals.TotalCents),
		TotalWhole:  totals.TotalCents / 100,
		Count:       totals.Count,
		Percent:     fmt.Sprintf("%.2f", percent),
		FillPercent: domain.ClampPercent(percent),
		Nonce:       middleware.SignNonce(a.Cfg.JWTSecret, a.Cfg.NonceTTL),
		PayPalEnv:   a.Cfg.PayPalEnv,
		SDKURL:      a.Cfg.PayPalSDKURL,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := widgetTemplate.Execute(w, data); err != nil {
		a.Logger.Error().Err(err).Msg("widget: template render failed")
	}
}

// WidgetSummary returns the numbers the widget script uses to update the
// progress DOM without a full reload, plus a fresh nonce.
func (a *App) WidgetSummary(w http.ResponseWriter, r *http.Request) {
	values, err := a.Settings.All(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load settings")
		return
	}
	settings := domain.SettingsFromMap(values)

	totals, err := a.Donations.Totals(r.Context())
	if err != nil {
		a.error(w, http.StatusInternalServerError, "internal", "failed to load totals")
		return
	}

	percent := domain.ProgressPercent(totals.TotalCents, settings.Goal)
	a.json(w, http.StatusOK, map[string]any{
		"goal":            settings.Goal,
		"current_total":   totals.TotalAmount(),
		"donation_count":  totals.Count,
		"percent_of_goal": domain.ClampPercent(percent),
		"nonce":           middleware.SignNonce(a.Cfg.JWTSecret, a.Cfg.NonceTTL),
	})
}

type widgetData struct {
	Settings    domain.Settings
	Msg         i18n.Messages
	CTA         string
	Currency    string
	Total       string
	TotalWhole  int64
	Count       int64
	Percent     string
	FillPercent float64
	Nonce       string
	PayPalEnv   string
	SDKURL      string
}

var widgetTemplate = template.Must(template.New("widget").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
.donations-module { padding: 20px; }
.donations-module .cta-paragraph { font-size: 1.2em; margin-bottom: 20px; }
.donations-module .donation-stats { margin-bottom: 20px; }
.donations-module .donation-stats p { margin: 5px 0; font-weight: bold; }
#paypal-button-container { max-width: 100%; margin-bottom: 20px; }
#donation-progress { max-width: 400px; overflow: hidden; }
#progress-bar { height: 100%; transition: width 0.5s ease-in-out; text-align: center; color: #fff; font-weight: bold; }
#donation-summary { font-size: 1.2em; font-weight: bold; }
</style>
</head>
<body>
<div class="donations-module" style="color: {{.Settings.TextColor}}; text-align: {{.Settings.ContentAlignment}};">
  {{if .Settings.ShowCTA}}<p class="cta-paragraph">{{.CTA}}</p>{{end}}
  <div class="donation-stats">
    {{if .Settings.ShowAmountRaised}}<p><strong>{{.Msg.AmountRaised}}</strong> {{.Currency}}{{.Total}}</p>{{end}}
    {{if .Settings.ShowPercentage}}<p><strong>{{.Msg.PercentOfGoal}}</strong> {{.Percent}}%</p>{{end}}
    {{if .Settings.ShowCount}}<p><strong>{{.Msg.DonationCount}}</strong> {{.Count}}</p>{{end}}
  </div>
  <form id="donations-form" class="donations-form" onsubmit="return false;">
    <input type="hidden" name="button_id" value="{{.Settings.PayPalButtonID}}">
    <input type="hidden" name="donation_nonce" value="{{.Nonce}}">
    <div id="paypal-button-container"></div>
    <div id="form-feedback" role="alert" style="display:none; color:red;"></div>
  </form>
  <div id="donation-progress" role="progressbar" aria-valuenow="{{.FillPercent}}" aria-valuemin="0" aria-valuemax="100"
       style="background-color: {{.Settings.WellColor}}; width: {{.Settings.WellWidth}}%; height: {{.Settings.BarHeight}}px; border-radius: {{.Settings.BorderRadius}}px;">
    <div id="progress-bar" style="width: {{.FillPercent}}%; background-color: {{.Settings.BarColor}}; line-height: {{.Settings.BarHeight}}px;">{{.Percent}}%</div>
  </div>
  <p id="donation-summary">{{.Currency}}{{.TotalWhole}} {{.Msg.GoalSeparator}} {{.Currency}}{{.Settings.Goal}}</p>
</div>
<script src="{{.SDKURL}}"></script>
<script>
document.addEventListener('DOMContentLoaded', function() {
  PayPal.Donation.Button({
    env: '{{.PayPalEnv}}',
    hosted_button_id: '{{.Settings.PayPalButtonID}}',
    onComplete: function(data) {
      var params = new URLSearchParams({
        action: 'save_donation',
        donation_nonce: '{{.Nonce}}',
        transaction_id: data.tx,
        donation_amount: data.amt,
        button_id: '{{.Settings.PayPalButtonID}}'
      });
      fetch('/v1/donations', {
        method: 'POST',
        headers: { 'Content-Type': 'application/x-www-form-urlencoded' },
        body: params
      })
      .then(function(response) { return response.json(); })
      .then(function(result) {
        if (result.success) {
          location.reload();
        } else {
          var feedback = document.getElementById('form-feedback');
          feedback.textContent = result.message;
          feedback.style.display = 'block';
        }
      })
      .catch(function(err) { console.error('donation save failed:', err); });
    }
  }).render('#paypal-button-container');
});
</script>
</body>
</html>
`))
