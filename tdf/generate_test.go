/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tdf

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func sampleParticipants() []Participant {
	reg := time.Date(2024, time.January, 5, 9, 30, 0, 0, time.Local)
	return []Participant{
		{
			ID:           "reg-88001723",
			UserID:       "5001234",
			FirstName:    "Avery",
			LastName:     "Chen",
			Birthdate:    "03/15/2001",
			RegisteredAt: reg,
			Status:       StatusConfirmed,
		},
		{
			// no external account yet; an id gets synthesized
			ID:           "reg-88001724",
			FirstName:    "Blake",
			LastName:     "Ito",
			RegisteredAt: reg.Add(time.Hour),
			Status:       StatusRegistered,
		},
		{
			ID:        "reg-88001725",
			UserID:    "5003456",
			FirstName: "Casey",
			LastName:  "Morgan",
			Status:    StatusWaitlist,
		},
	}
}

func TestGenerateFromScratch(t *testing.T) {
	meta := Metadata{
		Name:           "Cambridge League Challenge",
		City:           "Cambridge",
		State:          "MA",
		Country:        "US",
		StartDate:      time.Date(2024, time.February, 10, 0, 0, 0, 0, time.Local),
		OrganizerName:  "Jordan Ellis",
		OrganizerPopID: "1234567",
	}

	doc, err := GenerateFromScratch(meta, sampleParticipants())
	if err != nil {
		t.Fatalf("GenerateFromScratch error: %v", err)
	}

	// waitlisted participants do not appear in the document
	if doc.PlayerCount != 2 {
		t.Fatalf("expected 2 serialized players, got %d", doc.PlayerCount)
	}

	// unset fields default rather than fail
	if !ValidTournamentID(doc.Metadata.ID) {
		t.Errorf("generated id %q is not well-formed", doc.Metadata.ID)
	}
	if doc.Metadata.Version != CurrentVersion {
		t.Errorf("expected version %v, got %v", CurrentVersion,
			doc.Metadata.Version)
	}
	if doc.Metadata.RoundTime != DefaultRoundTime {
		t.Errorf("expected roundtime %v, got %v", DefaultRoundTime,
			doc.Metadata.RoundTime)
	}

	if result := ValidateGenerated(doc.XMLContent); !result.IsValid {
		t.Fatalf("generated document fails validation: %v", result.Errors)
	}

	// the generated document must parse with our own parser
	tourney, err := Parse(doc.XMLContent)
	if err != nil {
		t.Fatalf("Parse of generated document error: %v", err)
	}
	if len(tourney.Players) != 2 {
		t.Fatalf("expected 2 players after reparse, got %d",
			len(tourney.Players))
	}
	if tourney.Players[0].UserID != "5001234" {
		t.Errorf("expected provided id to be preserved, got %v",
			tourney.Players[0].UserID)
	}
	synth := tourney.Players[1].UserID
	if !ValidUserID(string(synth)) || len(synth) != 7 {
		t.Errorf("expected synthesized 7 digit id, got %v", synth)
	}
	if tourney.Players[1].Birthdate != DefaultBirthdate {
		t.Errorf("expected default birthdate, got %v",
			tourney.Players[1].Birthdate)
	}
	if tourney.Metadata.Name != meta.Name {
		t.Errorf("expected name %v, got %v", meta.Name, tourney.Metadata.Name)
	}
}

// mergeFixture carries XML this codec does not model (a ruleset element
// and a comment); a merge must preserve those bytes exactly.
const mergeFixture = `<?xml version="1.0" encoding="UTF-8"?>
<tournament type="2" stage="1" version="1.74" gametype="TRADING_CARD_GAME" mode="TCGEXPANDED">
  <data>
    <name>Somerville Winter Open</name>
    <id>24-01-000777</id>
    <city>Somerville</city>
    <state>MA</state>
    <country>US</country>
    <roundtime>40</roundtime>
    <finalsroundtime>60</finalsroundtime>
    <organizer popid="7654321" name="Sam Rivera"></organizer>
    <startdate>01/20/2024</startdate>
  </data>
  <!-- exported by desktop build 1.74.2 -->
  <ruleset revision="7">
    <banlist>2024-winter</banlist>
  </ruleset>
  <players>
    <player userid="4000001">
      <firstname>Old</firstname>
      <lastname>Entry</lastname>
    </player>
  </players>
  <pods>
    <pod category="0" stage="1">
      <rounds>
      </rounds>
    </pod>
  </pods>
</tournament>
`

func TestUpdateWithPlayers(t *testing.T) {
	doc, err := UpdateWithPlayers(mergeFixture, sampleParticipants())
	if err != nil {
		t.Fatalf("UpdateWithPlayers error: %v", err)
	}
	if doc.PlayerCount != 2 {
		t.Fatalf("expected 2 serialized players, got %d", doc.PlayerCount)
	}

	// everything outside the players element is byte-identical
	origStart := strings.Index(mergeFixture, "<players>")
	mergedStart := strings.Index(doc.XMLContent, "<players>")
	if mergedStart < 0 {
		t.Fatalf("merged document has no players element")
	}
	if mergeFixture[:origStart] != doc.XMLContent[:mergedStart] {
		t.Errorf("prefix before players element was modified")
	}
	origEnd := strings.Index(mergeFixture, "</players>") + len("</players>")
	mergedEnd := strings.Index(doc.XMLContent, "</players>") + len("</players>")
	if mergeFixture[origEnd:] != doc.XMLContent[mergedEnd:] {
		t.Errorf("suffix after players element was modified")
	}
	if !strings.Contains(doc.XMLContent, "<banlist>2024-winter</banlist>") {
		t.Errorf("unmodeled elements were not preserved")
	}
	if !strings.Contains(doc.XMLContent, "desktop build 1.74.2") {
		t.Errorf("comments were not preserved")
	}

	// the old roster is gone, the new one is present
	if strings.Contains(doc.XMLContent, "4000001") {
		t.Errorf("stale player entry survived the merge")
	}
	tourney, err := Parse(doc.XMLContent)
	if err != nil {
		t.Fatalf("Parse of merged document error: %v", err)
	}
	if len(tourney.Players) != 2 || tourney.Players[0].UserID != "5001234" {
		t.Fatalf("unexpected merged roster: %+v", tourney.Players)
	}

	// envelope metadata reflects the original, untouched fields
	if doc.Metadata.ID != "24-01-000777" || doc.Metadata.RoundTime != 40 {
		t.Errorf("unexpected merged metadata: %+v", doc.Metadata)
	}
	if doc.Metadata.Version != "1.74" {
		t.Errorf("merge must not restamp the version, got %v",
			doc.Metadata.Version)
	}
}

// merging the same roster into an already merged document changes
// nothing outside timestamps
func TestUpdateWithPlayersIdempotent(t *testing.T) {
	participants := sampleParticipants()
	// pin the timestamps so the serialized entries are stable
	created := time.Date(2024, time.January, 5, 9, 30, 0, 0, time.Local)
	for i := range participants {
		participants[i].CreationDate = created
		participants[i].LastModified = created
	}

	first, err := UpdateWithPlayers(mergeFixture, participants)
	if err != nil {
		t.Fatalf("first merge error: %v", err)
	}
	second, err := UpdateWithPlayers(first.XMLContent, participants)
	if err != nil {
		t.Fatalf("second merge error: %v", err)
	}
	if first.XMLContent != second.XMLContent {
		t.Errorf("re-merge drifted:\nfirst:\n%v\nsecond:\n%v",
			first.XMLContent, second.XMLContent)
	}
}

func TestUpdateWithPlayersNoPlayersElement(t *testing.T) {
	doc := strings.Replace(mergeFixture,
		"<players>\n    <player userid=\"4000001\">\n      <firstname>Old</firstname>\n      <lastname>Entry</lastname>\n    </player>\n  </players>\n", "", 1)
	_, err := UpdateWithPlayers(doc, sampleParticipants())
	if !errors.Is(err, ErrInvalidFileFormat) {
		t.Fatalf("expected ErrInvalidFileFormat, got %v", err)
	}
}

func TestUpdateWithPlayersMalformed(t *testing.T) {
	_, err := UpdateWithPlayers("<tournament><players></tournament>",
		sampleParticipants())
	if !errors.Is(err, ErrInvalidFileFormat) {
		t.Fatalf("expected ErrInvalidFileFormat, got %v", err)
	}
}

func TestValidateGenerated(t *testing.T) {
	result := ValidateGenerated(mergeFixture)
	if !result.IsValid {
		t.Fatalf("expected fixture to validate, got %v", result.Errors)
	}

	missing := strings.Replace(mergeFixture, "<id>24-01-000777</id>", "", 1)
	result = ValidateGenerated(missing)
	if result.IsValid {
		t.Fatalf("expected validation failure for missing id")
	}
	if len(result.Errors) != 1 ||
		!strings.Contains(result.Errors[0], "id") {
		t.Errorf("unexpected validation errors: %v", result.Errors)
	}
}

func TestFilename(t *testing.T) {
	testCases := []struct {
		meta Metadata
		want string
	}{
		{Metadata{ID: "24-02-000123", Name: "Cambridge League Challenge"},
			"24-02-000123_cambridge-league-challenge.tdf"},
		{Metadata{ID: "24-02-000123", Name: "Üñïcode & Co."},
			"24-02-000123_code-co.tdf"},
		{Metadata{ID: "24-02-000123", Name: ""},
			"24-02-000123.tdf"},
	}

	for _, tc := range testCases {
		if got := Filename(tc.meta); got != tc.want {
			t.Errorf("Filename(%+v) = %v, want %v", tc.meta, got, tc.want)
		}
	}
}
