package domain

import (
	"github.com/goserg/ratingtracker/internal/adjustment"
	"github.com/goserg/ratingtracker/internal/rating"

	"github.com/google/uuid"
)

// Games are always scored against an opponent rating of 0, whoever the opponent is.
const opponentRating = 0

// Account tracks one player's rating and games.
// Account is not safe for concurrent use; callers that share one must serialize Win and Lose.
type Account struct {
	id          uuid.UUID
	name        string
	rating      int
	gamesPlayed int
	history     GameHistory
	adjustment  adjustment.Policy
}

func NewAccount(name string, initialRating int, adj adjustment.Policy) *Account {
	return &Account{
		id:         uuid.New(),
		name:       name,
		rating:     initialRating,
		adjustment: adj,
	}
}

func (a *Account) ID() uuid.UUID { return a.id }

func (a *Account) Name() string { return a.name }

func (a *Account) Rating() int { return a.rating }

func (a *Account) GamesPlayed() int { return a.gamesPlayed }

func (a *Account) Kind() adjustment.Kind { return a.adjustment.Kind() }

// Win records a won game against opponentName.
func (a *Account) Win(opponentName string, game rating.Policy) {
	a.record(opponentName, true, game)
}

// Lose records a lost game against opponentName.
func (a *Account) Lose(opponentName string, game rating.Policy) {
	a.record(opponentName, false, game)
}

func (a *Account) record(opponentName string, isWin bool, game rating.Policy) {
	value := game.Compute(a.rating, opponentRating)
	newRating := a.adjustment.Apply(a.rating, isWin, value)

	a.rating = newRating
	a.history.append(GameResult{
		opponentName: opponentName,
		isWin:        isWin,
		ratingValue:  value,
	})
	a.gamesPlayed++
}

// History returns the games in the order they were played.
func (a *Account) History() []GameResult {
	return a.history.Results()
}

// Snapshot is a read-only copy of an account.
type Snapshot struct {
	ID          uuid.UUID
	Name        string
	Kind        adjustment.Kind
	Rating      int
	GamesPlayed int
	History     []GameResult
}

func (a *Account) Snapshot() Snapshot {
	return Snapshot{
		ID:          a.id,
		Name:        a.name,
		Kind:        a.adjustment.Kind(),
		Rating:      a.rating,
		GamesPlayed: a.gamesPlayed,
		History:     a.History(),
	}
}
