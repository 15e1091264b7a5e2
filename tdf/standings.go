/* Copyright © 2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package tdf

import (
	"sort"
)

// Match points as scored by the external software.
const (
	pointsPerWin  = 3
	pointsPerDraw = 1
	pointsPerLoss = 0
	pointsPerBye  = 3
)

// computeStandings derives each player's record from the full match
// history and ranks the result. Ranking is by point total descending;
// ties keep the original player-list order. The external schema does
// not define a finer tiebreak (e.g. opponent resistance), so list
// order is our documented, deterministic policy rather than an
// accident of sort stability.
func computeStandings(players []PlayerRecord, pods []Pod) []Standing {
	if len(players) == 0 {
		return nil
	}

	index := make(map[UserID]int, len(players))
	standings := make([]Standing, len(players))
	for i, p := range players {
		name := p.FirstName + " " + p.LastName
		standings[i] = Standing{UserID: p.UserID, PlayerName: name}
		if p.UserID != "" {
			index[p.UserID] = i
		}
	}

	record := func(id UserID, apply func(s *Standing)) {
		if id == "" {
			return
		}
		if i, ok := index[id]; ok {
			apply(&standings[i])
		}
	}

	for _, pod := range pods {
		for _, round := range pod.Rounds {
			for _, m := range round.Matches {
				switch m.Outcome {
				case OutcomePlayer1Wins:
					record(m.Player1, func(s *Standing) { s.Wins++ })
					record(m.Player2, func(s *Standing) { s.Losses++ })
				case OutcomePlayer2Wins:
					record(m.Player2, func(s *Standing) { s.Wins++ })
					record(m.Player1, func(s *Standing) { s.Losses++ })
				case OutcomeDraw:
					record(m.Player1, func(s *Standing) { s.Draws++ })
					record(m.Player2, func(s *Standing) { s.Draws++ })
				case OutcomeBye:
					record(m.Player1, func(s *Standing) { s.Byes++ })
				}
			}
		}
	}

	for i := range standings {
		s := &standings[i]
		s.Points = s.Wins*pointsPerWin + s.Draws*pointsPerDraw +
			s.Losses*pointsPerLoss + s.Byes*pointsPerBye
	}

	// rank by points, stable so list order breaks ties
	ranked := make([]int, len(standings))
	for i := range ranked {
		ranked[i] = i
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return standings[ranked[a]].Points > standings[ranked[b]].Points
	})
	for place, i := range ranked {
		standings[i].FinalStanding = place + 1
	}

	return standings
}
