/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tdf

// TournamentType is our closed internal enumeration of supported play
// formats. The external software encodes the same information as a
// (gametype, mode) string pair.
type TournamentType int

const (
	TypeTCGStandard TournamentType = iota
	TypeTCGExpanded
	TypeVGCStandard
	TypeGOStandard
)

func (t TournamentType) String() string {
	switch t {
	case TypeTCGStandard:
		return "tcg-standard"
	case TypeTCGExpanded:
		return "tcg-expanded"
	case TypeVGCStandard:
		return "vgc-standard"
	case TypeGOStandard:
		return "go-standard"
	}
	return "?"
}

// SupportedTypes returns every internal tournament type, in declaration
// order.
func SupportedTypes() []TournamentType {
	return []TournamentType{
		TypeTCGStandard,
		TypeTCGExpanded,
		TypeVGCStandard,
		TypeGOStandard,
	}
}

// The (gametype, mode) table is intentionally a closed switch rather
// than a map with a default branch: adding a new external combination
// must be a reviewable source change here and in MapInternalType.

// MapExternalType classifies an external (gametype, mode) pair into the
// internal enumeration. Unknown combinations fail with
// *UnsupportedTypeError carrying the offending pair and the supported
// set.
func MapExternalType(gametype, mode string) (TournamentType, error) {
	switch gametype + "/" + mode {
	case "TRADING_CARD_GAME/TCGSTANDARD":
		return TypeTCGStandard, nil
	case "TRADING_CARD_GAME/TCGEXPANDED":
		return TypeTCGExpanded, nil
	case "VIDEO_GAME/VGSTANDARD":
		return TypeVGCStandard, nil
	case "GO/GOSTANDARD":
		return TypeGOStandard, nil
	}
	return 0, &UnsupportedTypeError{
		GameType:  gametype,
		Mode:      mode,
		Supported: SupportedTypes(),
	}
}

// MapInternalType returns the canonical external (gametype, mode) pair
// for an internal tournament type. It is total over the enumeration;
// scratch generation relies on that.
func MapInternalType(t TournamentType) (gametype, mode string) {
	switch t {
	case TypeTCGExpanded:
		return "TRADING_CARD_GAME", "TCGEXPANDED"
	case TypeVGCStandard:
		return "VIDEO_GAME", "VGSTANDARD"
	case TypeGOStandard:
		return "GO", "GOSTANDARD"
	case TypeTCGStandard:
		fallthrough
	default:
		return "TRADING_CARD_GAME", "TCGSTANDARD"
	}
}
