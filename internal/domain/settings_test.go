package domain

import "testing"

func TestSettingsFromMapEmptyUsesDefaults(t *testing.T) {
	s := SettingsFromMap(nil)
	d := DefaultSettings()
	if s != d {
		t.Fatalf("SettingsFromMap(nil) = %+v, want defaults %+v", s, d)
	}
	if !s.ShowAmountRaised || !s.ShowPercentage || !s.ShowCount || !s.ShowCTA {
		t.Fatalf("display toggles should default on: %+v", s)
	}
	if s.ContentAlignment != "center" || s.BarColor != "#00ff00" || s.BarHeight != 20 {
		t.Fatalf("styling defaults wrong: %+v", s)
	}
}

func TestSettingsFromMapOverlay(t *testing.T) {
	s := SettingsFromMap(map[string]string{
		SettingGoal:             "1000",
		SettingPayPalButtonID:   "ABC1DEFGHIJ2K",
		SettingShowCount:        "0",
		SettingContentAlignment: "left",
		SettingBarHeight:        "32",
		SettingBorderRadius:     "4",
	})
	if s.Goal != 1000 {
		t.Fatalf("Goal = %d, want 1000", s.Goal)
	}
	if s.PayPalButtonID != "ABC1DEFGHIJ2K" {
		t.Fatalf("PayPalButtonID = %q", s.PayPalButtonID)
	}
	if s.ShowCount {
		t.Fatal("ShowCount should be off")
	}
	if s.ShowAmountRaised != true {
		t.Fatal("untouched toggle should keep default")
	}
	if s.ContentAlignment != "left" || s.BarHeight != 32 || s.BorderRadius != 4 {
		t.Fatalf("styling overlay wrong: %+v", s)
	}
}

func TestSettingsFromMapIgnoresGarbageNumbers(t *testing.T) {
	s := SettingsFromMap(map[string]string{
		SettingGoal:      "not-a-number",
		SettingBarHeight: "-5",
	})
	if s.Goal != 0 {
		t.Fatalf("Goal = %d, want default 0", s.Goal)
	}
	if s.BarHeight != 20 {
		t.Fatalf("BarHeight = %d, want default 20", s.BarHeight)
	}
}

func TestEditableSettingKeysExcludeCounters(t *testing.T) {
	for _, key := range EditableSettingKeys {
		if key == SettingTotalRaised || key == SettingDonationCount {
			t.Fatalf("cached counter %s must not be editable", key)
		}
	}
}
