package domain

// RoundResult describes how a round ended.
type RoundResult struct {
	// Winner is the winning seat, or 0 for a tied block.
	Winner int `json:"winner"`
	// PipsBySeat holds each seat's remaining pip total.
	PipsBySeat map[int]int `json:"pips_by_seat"`
	// Domino is true when the winner emptied their hand.
	Domino bool `json:"domino"`
	// Points is what the round-end scoring awarded the winner.
	Points int `json:"points"`
}

func (r RoundResult) clone() RoundResult {
	out := r
	out.PipsBySeat = make(map[int]int, len(r.PipsBySeat))
	for k, v := range r.PipsBySeat {
		out.PipsBySeat[k] = v
	}
	return out
}

// RoundWinner computes the winner of the round as it stands: a seat with an
// empty hand wins outright, otherwise the strictly lowest pip total wins and a
// shared minimum yields no winner.
func RoundWinner(s GameState) RoundResult {
	res := RoundResult{PipsBySeat: make(map[int]int, s.PlayerCount)}
	for seat := 1; seat <= s.PlayerCount; seat++ {
		res.PipsBySeat[seat] = HandPips(s.Hands[seat-1])
	}

	for seat := 1; seat <= s.PlayerCount; seat++ {
		if len(s.Hands[seat-1]) == 0 {
			res.Winner = seat
			res.Domino = true
			return res
		}
	}

	best, tied := 0, false
	for seat := 1; seat <= s.PlayerCount; seat++ {
		switch {
		case best == 0 || res.PipsBySeat[seat] < res.PipsBySeat[best]:
			best, tied = seat, false
		case res.PipsBySeat[seat] == res.PipsBySeat[best]:
			tied = true
		}
	}
	if !tied {
		res.Winner = best
	}
	return res
}

// RoundToFive rounds n to the nearest multiple of five, halves rounding up.
func RoundToFive(n int) int {
	return (n + 2) / 5 * 5
}

func resolveRound(next GameState) GameState {
	res := RoundWinner(next)
	next.RoundOver = true

	switch next.RuleType {
	case RuleFives:
		if res.Winner > 0 {
			opponents := 0
			for seat, pips := range res.PipsBySeat {
				if seat != res.Winner {
					opponents += pips
				}
			}
			res.Points = RoundToFive(opponents)
			next.Scores[res.Winner-1] += res.Points
		}
		for seat := 1; seat <= next.PlayerCount; seat++ {
			if next.TargetScore > 0 && next.Scores[seat-1] >= next.TargetScore {
				next.MatchOver = true
			}
		}
	default:
		if res.Winner > 0 {
			res.Points = 1
			next.Scores[res.Winner-1]++
		}
		next.MatchOver = true
	}

	next.LastResult = &res
	return next
}
