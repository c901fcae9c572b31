package model

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStatusFromExpiry(t *testing.T) {
	t.Parallel()

	today := date(2026, 3, 10)

	cases := []struct {
		name   string
		expiry time.Time
		window int
		want   CertStatus
	}{
		{"expired yesterday", date(2026, 3, 9), 30, StatusExpired},
		{"expires today counts as expiring", date(2026, 3, 10), 30, StatusExpiring},
		{"inside window", date(2026, 4, 8), 30, StatusExpiring},
		{"window boundary inclusive", date(2026, 4, 9), 30, StatusExpiring},
		{"just outside window", date(2026, 4, 10), 30, StatusValid},
		{"narrow window", date(2026, 3, 25), 7, StatusValid},
	}

	for _, tc := range cases {
		got := StatusFromExpiry(tc.expiry, today, tc.window)
		if got != tc.want {
			t.Errorf("%s: got %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	expiry := time.Date(2026, 3, 12, 1, 0, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 23, 30, 0, 0, time.UTC)

	if got := DaysUntil(expiry, today); got != 2 {
		t.Fatalf("DaysUntil = %d, want 2", got)
	}
}

func TestWorse(t *testing.T) {
	t.Parallel()

	if got := Worse(StatusValid, StatusExpiring); got != StatusExpiring {
		t.Errorf("Worse(VALID, EXPIRING) = %s", got)
	}
	if got := Worse(StatusExpired, StatusExpiring); got != StatusExpired {
		t.Errorf("Worse(EXPIRED, EXPIRING) = %s", got)
	}
	if got := Worse(StatusValid, StatusValid); got != StatusValid {
		t.Errorf("Worse(VALID, VALID) = %s", got)
	}
}

func TestBadge(t *testing.T) {
	t.Parallel()

	cases := map[CertStatus]string{
		StatusValid:    "✅ VALID",
		StatusExpiring: "🟠 EXPIRING",
		StatusExpired:  "🔴 EXPIRED",
		StatusMissing:  "⚫ MISSING",
	}
	for status, want := range cases {
		if got := status.Badge(); got != want {
			t.Errorf("Badge(%s) = %q, want %q", status, got, want)
		}
	}
}

func TestParseDateRejectsBadInput(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "2026/01/31", "31-01-2026", "2026-02-30", "not a date"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) should fail", s)
		}
	}

	if _, err := ParseDate("2026-01-31"); err != nil {
		t.Fatalf("ParseDate valid input: %v", err)
	}
}
