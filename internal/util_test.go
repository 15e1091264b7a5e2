/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"testing"
)

func TestParseDateOrZero(t *testing.T) {
	got, err := ParseDateOrZero("")
	if err != nil || !got.IsZero() {
		t.Errorf("expected zero time for empty input, got %v/%v", got, err)
	}
	got, err = ParseDateOrZero("null")
	if err != nil || !got.IsZero() {
		t.Errorf("expected zero time for null input, got %v/%v", got, err)
	}

	// operator-supplied dates arrive in assorted formats
	for _, s := range []string{"2024-02-10", "02/10/2024", "Feb 10, 2024"} {
		got, err := ParseDateOrZero(s)
		if err != nil {
			t.Errorf("ParseDateOrZero(%q) error: %v", s, err)
			continue
		}
		if got.Year() != 2024 || got.Month() != 2 || got.Day() != 10 {
			t.Errorf("ParseDateOrZero(%q) = %v", s, got)
		}
	}

	if _, err := ParseDateOrZero("not a date"); err == nil {
		t.Errorf("expected error for unparseable input")
	}
}

func TestNormalizeName(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"AVERY CHEN", "Avery Chen"},
		{"blake ito", "Blake Ito"},
		{"  Casey   Morgan ", "Casey Morgan"},
		{"McKenna Park", "McKenna Park"}, // mixed case left alone
		{"", ""},
	}

	for _, tc := range testCases {
		if got := NormalizeName(tc.in); got != tc.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
