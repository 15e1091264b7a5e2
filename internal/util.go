/* Copyright © 2025 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package internal

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDateOrZero returns a parsed time or zero if input is empty or "null".
// Used for operator-supplied dates on the CLI, which may arrive in any
// common format; document-internal dates are parsed strictly by the tdf
// package instead.
func ParseDateOrZero(s string) (time.Time, error) {
	if s == "" || s == "null" {
		return time.Time{}, nil
	}
	return dateparse.ParseAny(s)
}

// NormalizeName collapses runs of whitespace and title-cases
// all-upper or all-lower names as exported by registration systems.
func NormalizeName(name string) string {
	fields := strings.Fields(name)
	for i, f := range fields {
		if f == strings.ToUpper(f) || f == strings.ToLower(f) {
			r := []rune(strings.ToLower(f))
			if len(r) > 0 {
				r[0] = []rune(strings.ToUpper(string(r[0])))[0]
			}
			fields[i] = string(r)
		}
	}
	return strings.Join(fields, " ")
}
