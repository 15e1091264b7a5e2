/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tdf

import (
	"strings"
	"testing"
)

func TestBuildStandingsOutput(t *testing.T) {
	tourney, err := Parse(playedDoc)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	out := BuildStandingsOutput(tourney)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// title, blank, header, three player rows
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d:\n%v", len(lines), out)
	}
	if !strings.Contains(lines[0], "Cambridge League Challenge") {
		t.Errorf("title missing tournament name: %v", lines[0])
	}
	if !strings.HasPrefix(lines[2], "Place") {
		t.Errorf("unexpected header: %v", lines[2])
	}
	// ordered by final standing, not document order
	if !strings.Contains(lines[3], "Avery Chen") ||
		!strings.Contains(lines[4], "Casey Morgan") ||
		!strings.Contains(lines[5], "Blake Ito") {
		t.Errorf("rows out of order:\n%v", out)
	}
	if !strings.Contains(lines[3], "1-0-1") {
		t.Errorf("expected 1-0-1 record for the leader: %v", lines[3])
	}
}

func TestBuildStandingsOutputEmpty(t *testing.T) {
	tourney, err := Parse(registrationOnlyDoc)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	out := BuildStandingsOutput(tourney)
	if !strings.Contains(out, "No players") {
		t.Errorf("unexpected empty output: %v", out)
	}
}

func TestBuildRosterOutput(t *testing.T) {
	tourney, err := Parse(playedDoc)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	out := BuildRosterOutput(tourney)
	if !strings.Contains(out, "Players registered for Cambridge League Challenge: 3") {
		t.Errorf("missing roster summary:\n%v", out)
	}
	if !strings.Contains(out, "5001234") {
		t.Errorf("missing user id:\n%v", out)
	}
	if !strings.Contains(out, "dropped") {
		t.Errorf("dropped player not flagged:\n%v", out)
	}
}

func TestBuildInfoOutput(t *testing.T) {
	tourney, err := Parse(playedDoc)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	out := BuildInfoOutput(tourney, "")
	for _, want := range []string{
		"Tournament: Cambridge League Challenge",
		"ID: 24-02-000123",
		"Location: Cambridge, MA, US",
		"Format: tcg-standard",
		"Players: 3",
		"Rounds Played: 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in info output:\n%v", want, out)
		}
	}

	// markdown mode wraps labels
	out = BuildInfoOutput(tourney, "**")
	if !strings.Contains(out, "**Tournament**: Cambridge League Challenge") {
		t.Errorf("expected bold labels:\n%v", out)
	}
}
