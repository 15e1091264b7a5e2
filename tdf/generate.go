/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tdf

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// DefaultRoundTime is applied when scratch generation is given no round
// time, matching the external software's default of 30 minute rounds.
const DefaultRoundTime = 30

// CurrentVersion is the schema version stamped on documents we
// generate from scratch.
const CurrentVersion = "1.80"

// ValidationResult is the outcome of the post-generation self-check.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors,omitempty"`
}

// Generation-side document shape. Scratch documents carry one pod with
// zero rounds: registration-only documents have no match history.
type genTournament struct {
	XMLName     xml.Name   `xml:"tournament"`
	Type        string     `xml:"type,attr"`
	Stage       string     `xml:"stage,attr"`
	Version     string     `xml:"version,attr"`
	GameType    string     `xml:"gametype,attr"`
	Mode        string     `xml:"mode,attr"`
	Data        genData    `xml:"data"`
	TimeElapsed int        `xml:"timeelapsed"`
	Players     genPlayers `xml:"players"`
	Pods        genPods    `xml:"pods"`
}

type genData struct {
	Name            string       `xml:"name"`
	ID              string       `xml:"id"`
	City            string       `xml:"city"`
	State           string       `xml:"state"`
	Country         string       `xml:"country"`
	RoundTime       int          `xml:"roundtime"`
	FinalsRoundTime int          `xml:"finalsroundtime"`
	Organizer       genOrganizer `xml:"organizer"`
	StartDate       string       `xml:"startdate"`
}

type genOrganizer struct {
	PopID string `xml:"popid,attr"`
	Name  string `xml:"name,attr"`
}

type genPlayers struct {
	XMLName xml.Name    `xml:"players"`
	Players []genPlayer `xml:"player"`
}

type genPlayer struct {
	UserID       string `xml:"userid,attr"`
	FirstName    string `xml:"firstname"`
	LastName     string `xml:"lastname"`
	Birthdate    string `xml:"birthdate"`
	CreationDate string `xml:"creationdate"`
	LastModified string `xml:"lastmodifieddate"`
}

type genPods struct {
	Pods []genPod `xml:"pod"`
}

type genPod struct {
	Category int       `xml:"category,attr"`
	Stage    int       `xml:"stage,attr"`
	Rounds   genRounds `xml:"rounds"`
}

type genRounds struct{}

// GenerateFromScratch synthesizes a minimal valid TDF document from
// tournament metadata and a participant list, with no prior document.
// Every serialized participant resolves to a non-empty external user
// id; ids are synthesized from the participant's internal id where
// absent. Waitlisted and dropped participants are not serialized.
// Validation of the metadata itself is the caller's
// pre-condition; missing identifying fields are defaulted, not
// rejected.
func GenerateFromScratch(meta Metadata,
	participants []Participant) (*GeneratedDocument, error) {

	now := time.Now()
	meta = fillMetadataDefaults(meta, now)

	roster := buildRoster(participants, now)
	doc := genTournament{
		Type:     "2",
		Stage:    "1",
		Version:  meta.Version,
		GameType: meta.GameType,
		Mode:     meta.Mode,
		Data: genData{
			Name:            meta.Name,
			ID:              meta.ID,
			City:            meta.City,
			State:           meta.State,
			Country:         meta.Country,
			RoundTime:       meta.RoundTime,
			FinalsRoundTime: meta.FinalsRoundTime,
			Organizer: genOrganizer{
				PopID: meta.OrganizerPopID,
				Name:  meta.OrganizerName,
			},
			StartDate: meta.StartDate.Format(ExternalDateLayout),
		},
		Players: genPlayers{Players: roster},
		Pods:    genPods{Pods: []genPod{{Category: 0, Stage: 1}}},
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationValidation, err)
	}
	xmlContent := xml.Header + string(body) + "\n"

	if result := ValidateGenerated(xmlContent); !result.IsValid {
		return nil, fmt.Errorf("%w: %v", ErrGenerationValidation,
			strings.Join(result.Errors, "; "))
	}

	return &GeneratedDocument{
		XMLContent:  xmlContent,
		Metadata:    meta,
		PlayerCount: len(roster),
		GeneratedAt: now,
	}, nil
}

// UpdateWithPlayers merges a fresh participant list into a previously
// produced document's text. Only the <players> element is re-serialized;
// every other byte of the original, including elements and attributes
// this codec does not model, is left untouched. If the original cannot
// be parsed, or has no players element to replace, the merge fails with
// ErrInvalidFileFormat; falling back to scratch generation in that case
// is a caller policy, never this function's.
func UpdateWithPlayers(originalXML string,
	participants []Participant) (*GeneratedDocument, error) {

	start, end, err := locatePlayersRegion(originalXML)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	roster := buildRoster(participants, now)
	block, err := xml.MarshalIndent(genPlayers{Players: roster}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationValidation, err)
	}

	// keep the original element's indentation so a merged document
	// re-merges without drift
	prefix := leadingIndent(originalXML, start)
	replacement := strings.ReplaceAll(string(block), "\n", "\n"+prefix)

	merged := originalXML[:start] + replacement + originalXML[end:]

	if result := ValidateGenerated(merged); !result.IsValid {
		return nil, fmt.Errorf("%w: %v", ErrGenerationValidation,
			strings.Join(result.Errors, "; "))
	}

	meta := mergedMetadata(merged)

	return &GeneratedDocument{
		XMLContent:  merged,
		Metadata:    meta,
		PlayerCount: len(roster),
		GeneratedAt: now,
	}, nil
}

// locatePlayersRegion finds the byte range [start, end) of the
// top-level <players> element, scanning the whole document so malformed
// trailing content is caught here rather than after splicing.
func locatePlayersRegion(xmlText string) (start, end int, err error) {
	decoder := xml.NewDecoder(strings.NewReader(xmlText))
	depth := 0
	found := false
	var prevOffset int64
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %v", ErrInvalidFileFormat, err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 1 && t.Name.Local == "players" && !found {
				found = true
				start = int(prevOffset)
				if err := decoder.Skip(); err != nil {
					return 0, 0, fmt.Errorf("%w: %v", ErrInvalidFileFormat, err)
				}
				end = int(decoder.InputOffset())
			} else {
				depth++
			}
		case xml.EndElement:
			depth--
		}
		prevOffset = decoder.InputOffset()
	}

	if !found {
		return 0, 0, fmt.Errorf("%w: no players element to replace",
			ErrInvalidFileFormat)
	}
	return start, end, nil
}

// leadingIndent returns the whitespace between offset's line start and
// offset, when the intervening bytes are all indentation.
func leadingIndent(s string, offset int) string {
	lineStart := strings.LastIndexByte(s[:offset], '\n') + 1
	indent := s[lineStart:offset]
	if strings.TrimSpace(indent) != "" {
		return ""
	}
	return indent
}

// mergedMetadata best-effort decodes the identifying fields of a merged
// document for the returned envelope. The merge itself has already
// verified well-formedness; identifying fields missing from the
// original stay empty here rather than failing the merge.
func mergedMetadata(xmlText string) Metadata {
	var doc xmlTournament
	if err := xml.Unmarshal([]byte(xmlText), &doc); err != nil {
		return Metadata{}
	}
	meta := Metadata{
		ID:             strings.TrimSpace(doc.Data.ID),
		Name:           strings.TrimSpace(doc.Data.Name),
		City:           strings.TrimSpace(doc.Data.City),
		State:          strings.TrimSpace(doc.Data.State),
		Country:        strings.TrimSpace(doc.Data.Country),
		OrganizerName:  strings.TrimSpace(doc.Data.Organizer.Name),
		OrganizerPopID: strings.TrimSpace(doc.Data.Organizer.PopID),
		GameType:       doc.GameType,
		Mode:           doc.Mode,
		Version:        doc.Version,
	}
	meta.RoundTime = atoiOrZero(doc.Data.RoundTime)
	meta.FinalsRoundTime = atoiOrZero(doc.Data.FinalsRoundTime)
	if t, err := ParseExternalDate(strings.TrimSpace(doc.Data.StartDate)); err == nil {
		meta.StartDate = t
	}
	return meta
}

func fillMetadataDefaults(meta Metadata, now time.Time) Metadata {
	if meta.StartDate.IsZero() {
		meta.StartDate = now
	}
	if meta.ID == "" {
		meta.ID = NewTournamentID(meta.StartDate)
	}
	if meta.GameType == "" || meta.Mode == "" {
		meta.GameType, meta.Mode = MapInternalType(TypeTCGStandard)
	}
	if meta.RoundTime == 0 {
		meta.RoundTime = DefaultRoundTime
	}
	if meta.Version == "" {
		meta.Version = CurrentVersion
	}
	return meta
}

// buildRoster projects participants into serializable player entries.
// Only registered and confirmed participants appear in the document.
func buildRoster(participants []Participant, now time.Time) []genPlayer {
	var roster []genPlayer
	for _, p := range participants {
		if p.Status == StatusWaitlist || p.Status == StatusDropped {
			continue
		}

		userID := p.UserID
		if userID == "" {
			userID = GenerateUserID(p.ID)
		}

		birthdate := p.Birthdate
		if birthdate == "" {
			birthdate = DefaultBirthdate
		}

		created := p.CreationDate
		if created.IsZero() {
			created = p.RegisteredAt
		}
		if created.IsZero() {
			created = now
		}
		modified := p.LastModified
		if modified.IsZero() {
			modified = created
		}

		roster = append(roster, genPlayer{
			UserID:       string(userID),
			FirstName:    p.FirstName,
			LastName:     p.LastName,
			Birthdate:    birthdate,
			CreationDate: created.Format(ExternalTimestampLayout),
			LastModified: modified.Format(ExternalTimestampLayout),
		})
	}
	return roster
}

// ValidateGenerated is the post-generation self-check both generation
// paths run before returning: well-formedness plus presence of the
// required elements. A failure here means a codec bug, not bad caller
// input.
func ValidateGenerated(xmlText string) ValidationResult {
	var errs []string

	var doc xmlTournament
	if err := xml.Unmarshal([]byte(xmlText), &doc); err != nil {
		return ValidationResult{Errors: []string{err.Error()}}
	}

	if strings.TrimSpace(doc.Data.ID) == "" {
		errs = append(errs, "missing tournament id")
	}
	if strings.TrimSpace(doc.Data.Name) == "" {
		errs = append(errs, "missing tournament name")
	}
	if strings.TrimSpace(doc.Data.StartDate) == "" {
		errs = append(errs, "missing tournament startdate")
	}
	if _, _, err := locatePlayersRegion(xmlText); err != nil {
		if errors.Is(err, ErrInvalidFileFormat) {
			errs = append(errs, "missing players element")
		} else {
			errs = append(errs, err.Error())
		}
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// Filename returns the deterministic download name for a tournament's
// document, incorporating the external tournament id so repeated
// downloads of the same tournament are identifiable.
func Filename(meta Metadata) string {
	slug := nameSlug(meta.Name)
	if slug == "" {
		return meta.ID + ".tdf"
	}
	return meta.ID + "_" + slug + ".tdf"
}

func nameSlug(name string) string {
	var sb strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				sb.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimRight(sb.String(), "-")
}
