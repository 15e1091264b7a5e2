/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tdf

import (
	"regexp"
	"time"
)

// The external software writes calendar dates as MM/DD/YYYY and player
// record timestamps as MM/DD/YYYY HH:MM:SS. No timezone is encoded;
// both are treated as local wall-clock values.
const (
	ExternalDateLayout      = "01/02/2006"
	ExternalTimestampLayout = "01/02/2006 15:04:05"
)

var (
	externalDateRe      = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	externalTimestampRe = regexp.MustCompile(`^\d{2}/\d{2}/\d{4} \d{2}:\d{2}:\d{2}$`)
)

// ParseExternalDate converts an external MM/DD/YYYY date into a local
// calendar date at midnight. Values that match the pattern but are not
// real calendar dates (e.g. 02/30/2024) are rejected rather than
// normalized.
func ParseExternalDate(s string) (time.Time, error) {
	if !externalDateRe.MatchString(s) {
		return time.Time{}, &DateFormatError{Value: s, Pattern: "MM/DD/YYYY"}
	}
	t, err := time.ParseInLocation(ExternalDateLayout, s, time.Local)
	if err != nil {
		// time.Parse catches out of range day/month values
		return time.Time{}, &DateFormatError{Value: s, Pattern: "MM/DD/YYYY"}
	}
	return t, nil
}

// FormatExternalDate is the inverse of ParseExternalDate. The zero time
// is rejected so that an unset date cannot silently serialize as
// 01/01/0001.
func FormatExternalDate(t time.Time) (string, error) {
	if t.IsZero() {
		return "", &DateFormatError{Value: "(zero time)", Pattern: "MM/DD/YYYY"}
	}
	return t.Format(ExternalDateLayout), nil
}

// ParseExternalTimestamp converts an external MM/DD/YYYY HH:MM:SS
// timestamp, as used on player creation/modification fields.
func ParseExternalTimestamp(s string) (time.Time, error) {
	if !externalTimestampRe.MatchString(s) {
		return time.Time{},
			&DateFormatError{Value: s, Pattern: "MM/DD/YYYY HH:MM:SS"}
	}
	t, err := time.ParseInLocation(ExternalTimestampLayout, s, time.Local)
	if err != nil {
		return time.Time{},
			&DateFormatError{Value: s, Pattern: "MM/DD/YYYY HH:MM:SS"}
	}
	return t, nil
}

// FormatExternalTimestamp is the inverse of ParseExternalTimestamp.
func FormatExternalTimestamp(t time.Time) (string, error) {
	if t.IsZero() {
		return "", &DateFormatError{Value: "(zero time)",
			Pattern: "MM/DD/YYYY HH:MM:SS"}
	}
	return t.Format(ExternalTimestampLayout), nil
}
