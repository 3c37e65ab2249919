package handlers

import (
	"encoding/json"
	"net/http"

	"donations/internal/adapter/repo"
	"donations/internal/aggregate"
	"donations/internal/domain"
	"donations/internal/infra"
)

// App bundles everything the handlers need: config snapshot, logger, the SQL
// runner, and the repositories built on top of it.
type App struct {
	Cfg       *infra.Config
	Logger    infra.Logger
	SQL       infra.SQLExecutor
	Donations domain.DonationRepository
	Settings  domain.SettingsRepository
	Tracker   *aggregate.Tracker
}

func NewApp(cfg *infra.Config, logger infra.Logger, sql infra.SQLExecutor) *App {
	donations := repo.NewDonationRepository(sql)
	settings := repo.NewSettingsRepository(sql)
	return &App{
		Cfg:       cfg,
		Logger:    logger,
		SQL:       sql,
		Donations: donations,
		Settings:  settings,
		Tracker:   aggregate.NewTracker(donations, settings),
	}
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, msg string) {
	a.json(w, code, map[string]any{"error": errCode, "message": msg})
}

// fail emits the donation result envelope the widget script expects. The
// plugin answered every rejected submission with HTTP 200 plus
// success=false, and the embedded script keys off that field.
func (a *App) fail(w http.ResponseWriter, msg string) {
	a.json(w, http.StatusOK, map[string]any{"success": false, "message": msg})
}
