package domain

import "strconv"

// Setting keys, carried over from the plugin era so existing option values
// migrate one to one.
const (
	SettingGoal             = "donations_goal"
	SettingPayPalButtonID   = "paypal_hosted_button_id"
	SettingCTAParagraph     = "cta_paragraph"
	SettingContentAlignment = "content_alignment"
	SettingShowAmountRaised = "show_amount_raised"
	SettingShowPercentage   = "show_percentage_of_goal"
	SettingShowCount        = "show_number_of_donations"
	SettingShowCTA          = "show_cta_paragraph"
	SettingTextColor        = "donations_text_color"
	SettingBarColor         = "progress_bar_color"
	SettingBarHeight        = "progress_bar_height"
	SettingWellColor        = "progress_bar_well_color"
	SettingWellWidth        = "progress_bar_well_width"
	SettingBorderRadius     = "progress_bar_border_radius"

	// Denormalized counters maintained by the aggregate tracker. Read
	// optimizations only; the donations table stays the source of truth.
	SettingTotalRaised   = "total_amount_raised"
	SettingDonationCount = "number_of_donations"
)

// EditableSettingKeys lists the keys the admin settings endpoint accepts.
// The cached counters are deliberately absent: only the tracker writes them.
var EditableSettingKeys = []string{
	SettingGoal,
	SettingPayPalButtonID,
	SettingCTAParagraph,
	SettingContentAlignment,
	SettingShowAmountRaised,
	SettingShowPercentage,
	SettingShowCount,
	SettingShowCTA,
	SettingTextColor,
	SettingBarColor,
	SettingBarHeight,
	SettingWellColor,
	SettingWellWidth,
	SettingBorderRadius,
}

// Settings is the typed view of the key/value store consumed by the widget
// renderer. It is loaded once per request and passed in explicitly.
type Settings struct {
	Goal             int64
	PayPalButtonID   string
	CTAParagraph     string
	ContentAlignment string
	ShowAmountRaised bool
	ShowPercentage   bool
	ShowCount        bool
	ShowCTA          bool
	TextColor        string
	BarColor         string
	BarHeight        int
	WellColor        string
	WellWidth        int
	BorderRadius     int
}

// DefaultSettings mirrors the defaults the plugin registered.
func DefaultSettings() Settings {
	return Settings{
		Goal:             0,
		ContentAlignment: "center",
		ShowAmountRaised: true,
		ShowPercentage:   true,
		ShowCount:        true,
		ShowCTA:          true,
		TextColor:        "#333333",
		BarColor:         "#00ff00",
		BarHeight:        20,
		WellColor:        "#eeeeee",
		WellWidth:        100,
		BorderRadius:     0,
	}
}

// SettingsFromMap overlays stored values onto the defaults. Unparseable
// numeric values keep their default.
func SettingsFromMap(values map[string]string) Settings {
	s := DefaultSettings()
	if v, ok := values[SettingGoal]; ok {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.Goal = n
		}
	}
	if v, ok := values[SettingPayPalButtonID]; ok {
		s.PayPalButtonID = v
	}
	if v, ok := values[SettingCTAParagraph]; ok {
		s.CTAParagraph = v
	}
	if v, ok := values[SettingContentAlignment]; ok && v != "" {
		s.ContentAlignment = v
	}
	if v, ok := values[SettingShowAmountRaised]; ok {
		s.ShowAmountRaised = truthy(v)
	}
	if v, ok := values[SettingShowPercentage]; ok {
		s.ShowPercentage = truthy(v)
	}
	if v, ok := values[SettingShowCount]; ok {
		s.ShowCount = truthy(v)
	}
	if v, ok := values[SettingShowCTA]; ok {
		s.ShowCTA = truthy(v)
	}
	if v, ok := values[SettingTextColor]; ok && v != "" {
		s.TextColor = v
	}
	if v, ok := values[SettingBarColor]; ok && v != "" {
		s.BarColor = v
	}
	if v, ok := values[SettingWellColor]; ok && v != "" {
		s.WellColor = v
	}
	if v, ok := values[SettingBarHeight]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.BarHeight = n
		}
	}
	if v, ok := values[SettingWellWidth]; ok {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			s.WellWidth = n
		}
	}
	if v, ok := values[SettingBorderRadius]; ok {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			s.BorderRadius = n
		}
	}
	return s
}

func truthy(v string) bool {
	return v == "1" || v == "true" || v == "on"
}
