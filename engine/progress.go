package engine

// Progress holds the cumulative placement counts for one session. It is owned
// by the caller; Fold never mutates its input.
type Progress struct {
	TotalMoves     int
	CorrectMoves   int
	IncorrectMoves int
}

// Fold applies one verdict to the session progress and reports whether the
// game has been won. The win condition is a correct placement that empties
// the player's hand.
func Fold(p Progress, verdict Verdict, handSizeAfter int) (Progress, bool) {
	p.TotalMoves++
	if verdict.IsCorrect {
		p.CorrectMoves++
	} else {
		p.IncorrectMoves++
	}

	wonGame := verdict.IsCorrect && handSizeAfter == 0
	return p, wonGame
}
