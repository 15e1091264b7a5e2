/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tdf

import (
	"errors"
	"testing"
	"time"
)

func TestParseExternalDate(t *testing.T) {
	got, err := ParseExternalDate("02/10/2024")
	if err != nil {
		t.Fatalf("ParseExternalDate error: %v", err)
	}
	want := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestParseExternalDateRejects(t *testing.T) {
	testCases := []string{
		"02/30/2024", // not a real calendar day
		"13/01/2024", // month out of range
		"2024-02-10", // ISO order
		"2/10/2024",  // missing zero padding
		"02/10/24",
		"",
	}

	for _, tc := range testCases {
		_, err := ParseExternalDate(tc)
		if err == nil {
			t.Errorf("expected error for %q", tc)
			continue
		}
		var dfe *DateFormatError
		if !errors.As(err, &dfe) {
			t.Errorf("expected DateFormatError for %q, got %v", tc, err)
		}
	}
}

func TestExternalDateRoundTrip(t *testing.T) {
	for _, s := range []string{"01/01/2000", "12/31/1999", "02/29/2024"} {
		parsed, err := ParseExternalDate(s)
		if err != nil {
			t.Fatalf("ParseExternalDate(%q) error: %v", s, err)
		}
		back, err := FormatExternalDate(parsed)
		if err != nil {
			t.Fatalf("FormatExternalDate error: %v", err)
		}
		if back != s {
			t.Errorf("round trip of %q produced %q", s, back)
		}
	}
}

func TestFormatExternalDateZero(t *testing.T) {
	if _, err := FormatExternalDate(time.Time{}); err == nil {
		t.Errorf("expected error formatting the zero time")
	}
}

func TestParseExternalTimestamp(t *testing.T) {
	got, err := ParseExternalTimestamp("01/05/2024 09:30:00")
	if err != nil {
		t.Fatalf("ParseExternalTimestamp error: %v", err)
	}
	want := time.Date(2024, time.January, 5, 9, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// a bare date is not a timestamp
	if _, err := ParseExternalTimestamp("01/05/2024"); err == nil {
		t.Errorf("expected error for date without time component")
	}
	if _, err := ParseExternalTimestamp("01/05/2024 25:00:00"); err == nil {
		t.Errorf("expected error for out of range hour")
	}
}
