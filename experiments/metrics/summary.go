package metrics

import "checkers/game"

// Summary aggregates the outcomes of an experiment.
type Summary struct {
	Games      int
	WhiteWins  int
	BlackWins  int
	Undecided  int
	MeanRounds float64
}

func Summarize(records []GameRecord) Summary {
	s := Summary{Games: len(records)}
	rounds := 0
	for _, r := range records {
		switch r.Status {
		case game.WhiteWin:
			s.WhiteWins++
		case game.BlackWin:
			s.BlackWins++
		default:
			s.Undecided++
		}
		rounds += r.Rounds
	}
	if s.Games > 0 {
		s.MeanRounds = float64(rounds) / float64(s.Games)
	}
	return s
}
