/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tdf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mikeb26/pokemon-tdftool/internal"
)

// BuildStandingsOutput formats computed standings into an aligned
// plain-text table, ordered by final standing.
func BuildStandingsOutput(t *Tournament) string {
	if len(t.Standings) == 0 {
		return "No players in this tournament yet\n"
	}

	standings := make([]Standing, len(t.Standings))
	copy(standings, t.Standings)
	sort.Slice(standings, func(i, j int) bool {
		return standings[i].FinalStanding < standings[j].FinalStanding
	})

	headers := []string{"Place", "Name", "W-L-D", "Byes", "Pts"}
	var rows [][]string
	for _, s := range standings {
		rows = append(rows, []string{
			fmt.Sprintf("%d.", s.FinalStanding),
			internal.NormalizeName(s.PlayerName),
			fmt.Sprintf("%d-%d-%d", s.Wins, s.Losses, s.Draws),
			fmt.Sprintf("%d", s.Byes),
			fmt.Sprintf("%d", s.Points),
		})
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Standings for %v:\n\n", t.Metadata.Name))
	writeTable(&sb, headers, rows)

	return sb.String()
}

// BuildRosterOutput formats the player list in document order.
func BuildRosterOutput(t *Tournament) string {
	if len(t.Players) == 0 {
		return "No players in this tournament yet\n"
	}

	headers := []string{"No", "Name", "UserID", "Birthdate", "Status"}
	var rows [][]string
	for i, p := range t.Players {
		userID := string(p.UserID)
		if userID == "" {
			userID = "<none>"
		}
		status := "active"
		if p.Dropped {
			status = "dropped"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d.", i+1),
			internal.NormalizeName(p.FirstName + " " + p.LastName),
			userID,
			p.Birthdate,
			status,
		})
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Players registered for %v: %v\n\n",
		t.Metadata.Name, len(t.Players)))
	writeTable(&sb, headers, rows)

	return sb.String()
}

// BuildInfoOutput formats tournament metadata into a pretty printed
// string. boldTag wraps field labels; pass "" for plain output or "**"
// for markdown.
func BuildInfoOutput(t *Tournament, boldTag string) string {
	var sb strings.Builder

	meta := &t.Metadata
	sb.WriteString(fmt.Sprintf("%vTournament%v: %v\n", boldTag, boldTag,
		meta.Name))
	sb.WriteString(fmt.Sprintf("%vID%v: %v\n", boldTag, boldTag, meta.ID))
	location := meta.City
	if meta.State != "" {
		location += ", " + meta.State
	}
	if meta.Country != "" {
		location += ", " + meta.Country
	}
	if location != "" {
		sb.WriteString(fmt.Sprintf("%vLocation%v: %v\n", boldTag, boldTag,
			location))
	}
	if !meta.StartDate.IsZero() {
		sb.WriteString(fmt.Sprintf("%vDate%v: %v\n", boldTag, boldTag,
			meta.StartDate.Format("2006-01-02")))
	}
	if meta.OrganizerName != "" {
		sb.WriteString(fmt.Sprintf("%vOrganizer%v: %v (popid:%v)\n", boldTag,
			boldTag, meta.OrganizerName, meta.OrganizerPopID))
	}
	if ttype, err := MapExternalType(meta.GameType, meta.Mode); err == nil {
		sb.WriteString(fmt.Sprintf("%vFormat%v: %v\n", boldTag, boldTag, ttype))
	} else {
		sb.WriteString(fmt.Sprintf("%vFormat%v: %v/%v (unsupported)\n",
			boldTag, boldTag, meta.GameType, meta.Mode))
	}
	sb.WriteString(fmt.Sprintf("%vRound Time%v: %v min\n", boldTag, boldTag,
		meta.RoundTime))
	if meta.FinalsRoundTime != 0 {
		sb.WriteString(fmt.Sprintf("%vFinals Round Time%v: %v min\n", boldTag,
			boldTag, meta.FinalsRoundTime))
	}
	rounds := 0
	for _, pod := range t.Pods {
		rounds += len(pod.Rounds)
	}
	sb.WriteString(fmt.Sprintf("%vPlayers%v: %v\n", boldTag, boldTag,
		len(t.Players)))
	sb.WriteString(fmt.Sprintf("%vRounds Played%v: %v\n", boldTag, boldTag,
		rounds))

	return sb.String()
}

// writeTable emits an aligned table with per-column widths computed
// from the widest cell.
func writeTable(sb *strings.Builder, headers []string, rows [][]string) {
	colWidths := make([]int, len(headers))
	for i, h := range headers {
		colWidths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > colWidths[i] {
				colWidths[i] = len(cell)
			}
		}
	}

	var fmtStrBuilder strings.Builder
	for _, w := range colWidths {
		fmtStrBuilder.WriteString(fmt.Sprintf("%%-%ds  ", w))
	}
	fmtStr := strings.TrimRight(fmtStrBuilder.String(), " ") + "\n"

	sb.WriteString(fmt.Sprintf(fmtStr, toAnySlice(headers)...))
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf(fmtStr, toAnySlice(row)...))
	}
}

// toAnySlice converts a slice of any type to a slice of any (interface{}).
func toAnySlice[T any](slice []T) []any {
	result := make([]any, len(slice))
	for i, v := range slice {
		result[i] = v
	}
	return result
}
