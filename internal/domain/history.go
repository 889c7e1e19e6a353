package domain

// GameResult is one finished game as seen by the account that played it.
type GameResult struct {
	opponentName string
	isWin        bool
	ratingValue  int
}

func (r GameResult) OpponentName() string { return r.opponentName }

func (r GameResult) IsWin() bool { return r.isWin }

// RatingValue is the value the game policy computed, stored as is.
func (r GameResult) RatingValue() int { return r.ratingValue }

// GameHistory is an append-only log in play order.
type GameHistory struct {
	results []GameResult
}

func (h *GameHistory) append(r GameResult) {
	h.results = append(h.results, r)
}

func (h *GameHistory) Len() int {
	return len(h.results)
}

// Results returns a copy of the log.
func (h *GameHistory) Results() []GameResult {
	results := make([]GameResult, len(h.results))
	copy(results, h.results)
	return results
}
