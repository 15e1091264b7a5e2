/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tdf

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"time"
)

var (
	userIDRe       = regexp.MustCompile(`^\d{1,7}$`)
	tournamentIDRe = regexp.MustCompile(`^\d{2}-\d{2}-\d{6}$`)
)

// ValidUserID reports whether s has the external player-id shape
// (1-7 digit numeric string).
func ValidUserID(s string) bool {
	return userIDRe.MatchString(s)
}

// ValidTournamentID reports whether s has the external tournament-id
// shape YY-MM-XXXXXX (year, month, sequence).
func ValidTournamentID(s string) bool {
	return tournamentIDRe.MatchString(s)
}

// GenerateUserID derives an external player id from seed, typically an
// internal participant id. Seeds carrying at least 7 digits produce a
// deterministic id (their first 7 digits); anything else falls back to
// a random 7-digit value. The result is a namespace key scoped to a
// single document, not a true identity, so the random fallback
// tolerates collisions across calls.
func GenerateUserID(seed string) UserID {
	var digits []byte
	for i := 0; i < len(seed) && len(digits) < 7; i++ {
		if seed[i] >= '0' && seed[i] <= '9' {
			digits = append(digits, seed[i])
		}
	}
	if len(digits) == 7 {
		return UserID(digits)
	}
	return UserID(fmt.Sprintf("%07d", rand.IntN(10000000)))
}

// NewTournamentID produces a fresh external tournament id for the given
// start date, with a random 6-digit sequence component.
func NewTournamentID(start time.Time) string {
	if start.IsZero() {
		start = time.Now()
	}
	return fmt.Sprintf("%02d-%02d-%06d",
		start.Year()%100, int(start.Month()), rand.IntN(1000000))
}
