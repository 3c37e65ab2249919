// Package i18n holds the widget's display strings. The plugin shipped
// Spanish-only copy; the English set was added for embeds outside
// Spanish-speaking markets.
package i18n

// Messages are the locale-dependent strings the widget renders.
type Messages struct {
	DefaultCTA    string
	AmountRaised  string
	PercentOfGoal string
	DonationCount string
	GoalSeparator string
}

var spanish = Messages{
	DefaultCTA:    "¡Ayúdanos a alcanzar nuestra meta! Dona ahora a través de PayPal y marca la diferencia.",
	AmountRaised:  "Monto recaudado:",
	PercentOfGoal: "Porcentaje de la meta:",
	DonationCount: "Número de donaciones:",
	GoalSeparator: "de",
}

var english = Messages{
	DefaultCTA:    "Help us reach our goal! Donate now through PayPal and make a difference.",
	AmountRaised:  "Amount raised:",
	PercentOfGoal: "Percent of goal:",
	DonationCount: "Number of donations:",
	GoalSeparator: "of",
}

// For returns the message set for a locale, defaulting to Spanish.
func For(locale string) Messages {
	if locale == "en" {
		return english
	}
	return spanish
}
