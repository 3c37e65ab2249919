package domain

import "testing"

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain text untouched", raw: "Jane Donor", want: "Jane Donor"},
		{name: "tags stripped", raw: "<b>Jane</b> Donor", want: "Jane Donor"},
		{name: "script tags stripped", raw: "<script>alert(1)</script>TX-1", want: "alert(1)TX-1"},
		{name: "control characters dropped", raw: "TX\x00-\x071", want: "TX-1"},
		{name: "whitespace collapsed", raw: "  Jane \t Donor \n", want: "Jane Donor"},
		{name: "empty", raw: "", want: ""},
		{name: "only markup", raw: "<div></div>", want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SanitizeText(tc.raw); got != tc.want {
				t.Fatalf("SanitizeText(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestValidEmail(t *testing.T) {
	valid := []string{"donor@example.com", "a.b+c@sub.example.org"}
	for _, v := range valid {
		if !ValidEmail(v) {
			t.Fatalf("ValidEmail(%q) = false, want true", v)
		}
	}
	invalid := []string{"", "not-an-email", "missing@tld@twice", "Jane <donor@example.com>", "spaces in@example.com"}
	for _, v := range invalid {
		if ValidEmail(v) {
			t.Fatalf("ValidEmail(%q) = true, want false", v)
		}
	}
}
