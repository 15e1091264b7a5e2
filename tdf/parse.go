/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tdf

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

// The external software stamps each export with a schema version; we
// process any 1.x document. Players with no recorded birthdate get
// DefaultBirthdate so downstream age-division logic always has a value.
const (
	supportedVersionPrefix = "1."
	DefaultBirthdate       = "01/01/2000"
)

// Wire-level document shape. Only the subtree the codec models is
// declared here; merge-mode generation never round-trips through these
// structs, so unknown siblings are not at risk.
type xmlTournament struct {
	XMLName  xml.Name    `xml:"tournament"`
	Type     string      `xml:"type,attr"`
	Stage    string      `xml:"stage,attr"`
	Version  string      `xml:"version,attr"`
	GameType string      `xml:"gametype,attr"`
	Mode     string      `xml:"mode,attr"`
	Data     xmlData     `xml:"data"`
	Players  []xmlPlayer `xml:"players>player"`
	Pods     []xmlPod    `xml:"pods>pod"`
}

type xmlData struct {
	Name            string       `xml:"name"`
	ID              string       `xml:"id"`
	City            string       `xml:"city"`
	State           string       `xml:"state"`
	Country         string       `xml:"country"`
	RoundTime       string       `xml:"roundtime"`
	FinalsRoundTime string       `xml:"finalsroundtime"`
	Organizer       xmlOrganizer `xml:"organizer"`
	StartDate       string       `xml:"startdate"`
}

type xmlOrganizer struct {
	PopID string `xml:"popid,attr"`
	Name  string `xml:"name,attr"`
}

type xmlPlayer struct {
	UserID       string   `xml:"userid,attr"`
	FirstName    string   `xml:"firstname"`
	LastName     string   `xml:"lastname"`
	Birthdate    string   `xml:"birthdate"`
	CreationDate string   `xml:"creationdate"`
	LastModified string   `xml:"lastmodifieddate"`
	Dropped      *xmlDrop `xml:"dropped"`
}

type xmlDrop struct {
	Round string `xml:"round,attr"`
}

type xmlPod struct {
	Category string     `xml:"category,attr"`
	Stage    string     `xml:"stage,attr"`
	Rounds   []xmlRound `xml:"rounds>round"`
}

type xmlRound struct {
	Number  string     `xml:"number,attr"`
	Matches []xmlMatch `xml:"matches>match"`
}

type xmlMatch struct {
	Outcome     string        `xml:"outcome,attr"`
	Player1     *xmlPlayerRef `xml:"player1"`
	Player2     *xmlPlayerRef `xml:"player2"`
	Single      *xmlPlayerRef `xml:"player"`
	TableNumber string        `xml:"tablenumber"`
}

type xmlPlayerRef struct {
	UserID string `xml:"userid,attr"`
}

// Outcome codes as written by the external software. Codes we do not
// model decode to OutcomeUnknown and contribute nothing to standings.
func parseOutcome(code string) MatchOutcome {
	switch code {
	case "1":
		return OutcomePlayer1Wins
	case "2":
		return OutcomePlayer2Wins
	case "3":
		return OutcomeDraw
	case "5":
		return OutcomeBye
	}
	return OutcomeUnknown
}

func formatOutcome(o MatchOutcome) string {
	switch o {
	case OutcomePlayer1Wins:
		return "1"
	case OutcomePlayer2Wins:
		return "2"
	case OutcomeDraw:
		return "3"
	case OutcomeBye:
		return "5"
	}
	return "0"
}

// Parse decodes a TDF document into tournament metadata, the ordered
// player list, the pod/round/match tree, and computed standings. A
// document with zero players is a first-class case: it means the
// tournament is open for online registration and has no match history
// yet.
func Parse(xmlText string) (*Tournament, error) {
	var doc xmlTournament
	if err := xml.Unmarshal([]byte(xmlText), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFileFormat, err)
	}

	meta, err := parseMetadata(&doc)
	if err != nil {
		return nil, err
	}

	players, err := parsePlayers(doc.Players)
	if err != nil {
		return nil, err
	}

	pods, err := parsePods(doc.Pods, players)
	if err != nil {
		return nil, err
	}

	return &Tournament{
		Metadata:  *meta,
		Players:   players,
		Pods:      pods,
		Standings: computeStandings(players, pods),
	}, nil
}

func parseMetadata(doc *xmlTournament) (*Metadata, error) {
	data := &doc.Data
	if strings.TrimSpace(data.ID) == "" {
		return nil, fmt.Errorf("%w: missing tournament id", ErrInvalidFileFormat)
	}
	if strings.TrimSpace(data.Name) == "" {
		return nil, fmt.Errorf("%w: missing tournament name",
			ErrInvalidFileFormat)
	}
	if strings.TrimSpace(data.StartDate) == "" {
		return nil, fmt.Errorf("%w: missing tournament startdate",
			ErrInvalidFileFormat)
	}

	start, err := ParseExternalDate(data.StartDate)
	if err != nil {
		return nil, fmt.Errorf("tournament startdate: %w", err)
	}

	roundTime, err := parseMinutes("roundtime", data.RoundTime)
	if err != nil {
		return nil, err
	}
	// finalsroundtime is optional in practice
	finalsTime, err := parseMinutes("finalsroundtime", data.FinalsRoundTime)
	if err != nil {
		return nil, err
	}

	return &Metadata{
		ID:              strings.TrimSpace(data.ID),
		Name:            strings.TrimSpace(data.Name),
		City:            strings.TrimSpace(data.City),
		State:           strings.TrimSpace(data.State),
		Country:         strings.TrimSpace(data.Country),
		StartDate:       start,
		OrganizerName:   strings.TrimSpace(data.Organizer.Name),
		OrganizerPopID:  strings.TrimSpace(data.Organizer.PopID),
		GameType:        doc.GameType,
		Mode:            doc.Mode,
		RoundTime:       roundTime,
		FinalsRoundTime: finalsTime,
		Version:         doc.Version,
	}, nil
}

func parseMinutes(field, s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %v %q is not a minute count",
			ErrInvalidFileFormat, field, s)
	}
	return n, nil
}

func parsePlayers(in []xmlPlayer) ([]PlayerRecord, error) {
	var players []PlayerRecord
	for i, xp := range in {
		rec := PlayerRecord{
			UserID:    UserID(strings.TrimSpace(xp.UserID)),
			FirstName: strings.TrimSpace(xp.FirstName),
			LastName:  strings.TrimSpace(xp.LastName),
			Birthdate: strings.TrimSpace(xp.Birthdate),
			Dropped:   xp.Dropped != nil,
		}

		if rec.Birthdate == "" {
			rec.Birthdate = DefaultBirthdate
		} else if _, err := ParseExternalDate(rec.Birthdate); err != nil {
			return nil, fmt.Errorf("player %d birthdate: %w", i+1, err)
		}

		if ts := strings.TrimSpace(xp.CreationDate); ts != "" {
			t, err := ParseExternalTimestamp(ts)
			if err != nil {
				return nil, fmt.Errorf("player %d creationdate: %w", i+1, err)
			}
			rec.CreationDate = t
		}
		if ts := strings.TrimSpace(xp.LastModified); ts != "" {
			t, err := ParseExternalTimestamp(ts)
			if err != nil {
				return nil, fmt.Errorf("player %d lastmodifieddate: %w",
					i+1, err)
			}
			rec.LastModified = t
		}

		players = append(players, rec)
	}

	return players, nil
}

func parsePods(in []xmlPod, players []PlayerRecord) ([]Pod, error) {
	known := make(map[UserID]bool, len(players))
	for _, p := range players {
		if p.UserID != "" {
			known[p.UserID] = true
		}
	}

	var pods []Pod
	for pi, xp := range in {
		pod := Pod{
			Category: atoiOrZero(xp.Category),
			Stage:    atoiOrZero(xp.Stage),
		}
		lastRound := 0
		for _, xr := range xp.Rounds {
			num, err := strconv.Atoi(strings.TrimSpace(xr.Number))
			if err != nil {
				return nil, fmt.Errorf("%w: pod %d round number %q",
					ErrInvalidFileFormat, pi+1, xr.Number)
			}
			if num <= lastRound {
				return nil, fmt.Errorf("%w: pod %d round %d out of order",
					ErrInvalidFileFormat, pi+1, num)
			}
			lastRound = num

			round := Round{Number: num}
			for mi, xm := range xr.Matches {
				m, err := parseMatch(&xm, known)
				if err != nil {
					return nil, fmt.Errorf("pod %d round %d match %d: %w",
						pi+1, num, mi+1, err)
				}
				round.Matches = append(round.Matches, *m)
			}
			pod.Rounds = append(pod.Rounds, round)
		}
		pods = append(pods, pod)
	}

	return pods, nil
}

func parseMatch(xm *xmlMatch, known map[UserID]bool) (*Match, error) {
	m := &Match{
		Outcome:     parseOutcome(xm.Outcome),
		TableNumber: atoiOrZero(xm.TableNumber),
	}

	// byes are written with a single <player> reference
	switch {
	case xm.Single != nil:
		m.Player1 = UserID(strings.TrimSpace(xm.Single.UserID))
	case xm.Player1 != nil:
		m.Player1 = UserID(strings.TrimSpace(xm.Player1.UserID))
		if xm.Player2 != nil {
			m.Player2 = UserID(strings.TrimSpace(xm.Player2.UserID))
		}
	default:
		return nil, fmt.Errorf("%w: match has no player references",
			ErrInvalidFileFormat)
	}

	if m.Outcome == OutcomeBye && m.Player2 != "" {
		return nil, fmt.Errorf("%w: bye match references two players",
			ErrInvalidFileFormat)
	}
	if m.Outcome != OutcomeBye && xm.Single == nil && m.Player2 == "" {
		return nil, fmt.Errorf("%w: non-bye match references only one player",
			ErrInvalidFileFormat)
	}

	for _, id := range []UserID{m.Player1, m.Player2} {
		if id != "" && !known[id] {
			return nil, fmt.Errorf("%w: match references unknown player %v",
				ErrInvalidFileFormat, id)
		}
	}

	return m, nil
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// IsCompatible performs a light pre-parse assessment of whether a
// document's version and play format are safe for this codec to
// process. It never fails: malformed input yields an incompatible
// result with a reason, not an error. Callers wanting structural
// validation use Parse.
func IsCompatible(xmlText string) CompatibilityResult {
	decoder := xml.NewDecoder(strings.NewReader(xmlText))
	for {
		tok, err := decoder.Token()
		if err != nil {
			return CompatibilityResult{
				Compatible: false,
				Reason:     fmt.Sprintf("not well-formed XML: %v", err),
			}
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "tournament" {
			return CompatibilityResult{
				Compatible: false,
				Reason: fmt.Sprintf("root element is <%v>, not <tournament>",
					start.Name.Local),
			}
		}

		var version, gametype, mode string
		for _, attr := range start.Attr {
			switch attr.Name.Local {
			case "version":
				version = attr.Value
			case "gametype":
				gametype = attr.Value
			case "mode":
				mode = attr.Value
			}
		}

		if !strings.HasPrefix(version, supportedVersionPrefix) {
			return CompatibilityResult{
				Compatible: false,
				Reason:     fmt.Sprintf("unsupported schema version %q", version),
			}
		}
		if _, err := MapExternalType(gametype, mode); err != nil {
			return CompatibilityResult{Compatible: false, Reason: err.Error()}
		}

		return CompatibilityResult{Compatible: true}
	}
}
