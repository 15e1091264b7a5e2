/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tdf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidFileFormat indicates malformed XML or a well-formed
	// document missing required tournament-identifying fields. Wrapped
	// errors carry the decoder diagnostic or the offending field name.
	ErrInvalidFileFormat = errors.New("invalid tdf document")

	// ErrGenerationValidation indicates a freshly generated document
	// failed its own post-generation check. This is a codec bug; callers
	// should treat it as fatal rather than retry.
	ErrGenerationValidation = errors.New("generated tdf failed validation")
)

// UnsupportedTypeError reports a well-formed document whose
// gametype/mode pair is not in the codec's closed mapping table.
type UnsupportedTypeError struct {
	GameType  string
	Mode      string
	Supported []TournamentType
}

func (e *UnsupportedTypeError) Error() string {
	names := make([]string, 0, len(e.Supported))
	for _, t := range e.Supported {
		names = append(names, t.String())
	}
	return fmt.Sprintf("unsupported tournament type %q/%q (supported: %v)",
		e.GameType, e.Mode, strings.Join(names, ", "))
}

// DateFormatError reports a date or timestamp that failed conversion in
// either direction.
type DateFormatError struct {
	Value   string
	Pattern string
}

func (e *DateFormatError) Error() string {
	return fmt.Sprintf("invalid date %q (expected %v)", e.Value, e.Pattern)
}
