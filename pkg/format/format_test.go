package format

import "testing"

func TestDate_ISODate(t *testing.T) {
	if got := Date("2025-03-07"); got != "07/03/2025" {
		t.Fatalf("expected 07/03/2025, got %q", got)
	}
}

func TestDate_ISODateTime(t *testing.T) {
	if got := Date("2025-03-07T14:30"); got != "07/03/2025 às 14:30" {
		t.Fatalf("expected 07/03/2025 às 14:30, got %q", got)
	}
}

func TestDate_SecondsTruncated(t *testing.T) {
	if got := Date("2025-03-07T14:30:59"); got != "07/03/2025 às 14:30" {
		t.Fatalf("expected seconds dropped, got %q", got)
	}
}

func TestDate_MalformedTimeDegradesToDateOnly(t *testing.T) {
	cases := []string{"2025-03-07Tjunk!", "2025-03-07T14h30", "2025-03-07T9:30"}
	for _, raw := range cases {
		if got := Date(raw); got != "07/03/2025" {
			t.Fatalf("Date(%q): expected date-only rendering, got %q", raw, got)
		}
	}
}

func TestDate_InvalidYieldsPlaceholder(t *testing.T) {
	cases := []string{"", "hoje", "2025/03/07", "07-03", "aaaa-bb-cc"}
	for _, raw := range cases {
		if got := Date(raw); got != DatePlaceholder {
			t.Fatalf("Date(%q): expected placeholder, got %q", raw, got)
		}
	}
}

func TestCurrency_ThousandsAndDecimals(t *testing.T) {
	if got := Currency("1234.56"); got != "R$ 1.234,56" {
		t.Fatalf("expected R$ 1.234,56, got %q", got)
	}
}

func TestCurrency_CommaDecimalInput(t *testing.T) {
	if got := Currency("1234,56"); got != "R$ 1.234,56" {
		t.Fatalf("expected R$ 1.234,56, got %q", got)
	}
}

func TestCurrency_WholeNumber(t *testing.T) {
	if got := Currency("150"); got != "R$ 150,00" {
		t.Fatalf("expected R$ 150,00, got %q", got)
	}
}

func TestCurrency_EmptyOrInvalidYieldsZero(t *testing.T) {
	for _, raw := range []string{"", "abc"} {
		if got := Currency(raw); got != CurrencyZero {
			t.Fatalf("Currency(%q): expected %q, got %q", raw, CurrencyZero, got)
		}
	}
}

func TestCurrency_LargeAmount(t *testing.T) {
	if got := Currency("1234567.8"); got != "R$ 1.234.567,80" {
		t.Fatalf("expected R$ 1.234.567,80, got %q", got)
	}
}
