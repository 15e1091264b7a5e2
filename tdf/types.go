/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tdf

import (
	"time"
)

// UserID is an identifier in the external tournament software's player
// namespace: a numeric string of 1-7 digits. It is distinct from our
// internal account and participant ids.
type UserID string

// Metadata holds the tournament-identifying fields of a TDF document.
type Metadata struct {
	// External tournament id in YY-MM-XXXXXX form; unique per document.
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Country       string    `json:"country"`
	StartDate     time.Time `json:"startDate"`
	OrganizerName string    `json:"organizerName"`
	// Organizer popid: the organizer's id in the external namespace.
	OrganizerPopID string `json:"organizerPopid"`
	GameType       string `json:"gametype"`
	Mode           string `json:"mode"`
	// RoundTime and FinalsRoundTime are in minutes; FinalsRoundTime may
	// be zero when the document omits it.
	RoundTime       int    `json:"roundTime"`
	FinalsRoundTime int    `json:"finalsRoundTime"`
	Version         string `json:"version"`
}

// PlayerRecord is a single player entry from a TDF document. Records may
// lack a UserID; such records can never be reconciled to an account.
type PlayerRecord struct {
	UserID    UserID `json:"userid"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	// Birthdate in external MM/DD/YYYY form; empty when the document
	// omits it.
	Birthdate    string    `json:"birthdate"`
	CreationDate time.Time `json:"creationDate"`
	LastModified time.Time `json:"lastModifiedDate"`
	Dropped      bool      `json:"dropped"`
}

// MatchOutcome enumerates the recorded result of a single match.
type MatchOutcome int

const (
	OutcomeUnknown MatchOutcome = iota
	OutcomePlayer1Wins
	OutcomePlayer2Wins
	OutcomeDraw
	OutcomeBye
)

func (o MatchOutcome) String() string {
	switch o {
	case OutcomePlayer1Wins:
		return "player1-wins"
	case OutcomePlayer2Wins:
		return "player2-wins"
	case OutcomeDraw:
		return "draw"
	case OutcomeBye:
		return "bye"
	}
	return "?"
}

// Match references one or two players from the document's player list.
// A bye references exactly one (Player1) and has no Player2.
type Match struct {
	Player1     UserID       `json:"player1"`
	Player2     UserID       `json:"player2"`
	Outcome     MatchOutcome `json:"outcome"`
	TableNumber int          `json:"tableNumber"`
}

// Round is an ordered set of matches within a pod.
type Round struct {
	Number  int     `json:"number"`
	Matches []Match `json:"matches"`
}

// Pod groups rounds by age division; round numbers increase
// monotonically within a pod.
type Pod struct {
	Category int     `json:"category"`
	Stage    int     `json:"stage"`
	Rounds   []Round `json:"rounds"`
}

// Standing is a single player's computed record and rank. Standings are
// derived from the match history, never read verbatim from the document.
type Standing struct {
	UserID        UserID `json:"userid"`
	PlayerName    string `json:"playerName"`
	Wins          int    `json:"wins"`
	Losses        int    `json:"losses"`
	Draws         int    `json:"draws"`
	Byes          int    `json:"byes"`
	Points        int    `json:"points"`
	FinalStanding int    `json:"finalStanding"`
}

// Tournament is the result of parsing a TDF document.
type Tournament struct {
	Metadata  Metadata       `json:"metadata"`
	Players   []PlayerRecord `json:"players"`
	Pods      []Pod          `json:"pods"`
	Standings []Standing     `json:"standings"`
}

// CompatibilityResult reports whether a document's version and shape are
// safe for this codec to process. Incompatibility is distinct from a
// parse failure: an incompatible document may still be well-formed.
type CompatibilityResult struct {
	Compatible bool   `json:"compatible"`
	Reason     string `json:"reason,omitempty"`
}

// GeneratedDocument is the envelope returned by both generation paths.
// It is never mutated after construction; persisting it is the caller's
// responsibility.
type GeneratedDocument struct {
	XMLContent  string    `json:"xmlContent"`
	Metadata    Metadata  `json:"metadata"`
	PlayerCount int       `json:"playerCount"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// ParticipantStatus is the registration status of an internal
// participant as supplied by the calling system.
type ParticipantStatus string

const (
	StatusRegistered ParticipantStatus = "registered"
	StatusConfirmed  ParticipantStatus = "confirmed"
	StatusWaitlist   ParticipantStatus = "waitlist"
	StatusDropped    ParticipantStatus = "dropped"
)

// Participant is the projection of an internal registration row used
// when generating a document. The codec only reads these; it never
// retains them across calls.
type Participant struct {
	ID        string `json:"id"`
	UserID    UserID `json:"userid"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	// Birthdate in external MM/DD/YYYY form; defaulted when empty.
	Birthdate    string            `json:"birthdate"`
	RegisteredAt time.Time         `json:"registeredAt"`
	Status       ParticipantStatus `json:"status"`
	CreationDate time.Time         `json:"creationDate"`
	LastModified time.Time         `json:"lastModifiedDate"`
}

// DisplayName returns "First Last" with empty halves elided.
func (p Participant) DisplayName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
