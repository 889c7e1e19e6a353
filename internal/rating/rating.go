package rating

import (
	"errors"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Kind selects the game mode used to compute a game rating.
type Kind string

const (
	Standard Kind = "standard"
	Training Kind = "training"
	Solo     Kind = "solo"
)

var ErrUnknownPolicyKind = errors.New("unknown game kind")

// Policy computes the rating value of one game.
// self - rating of the player the game is recorded for.
// opponent - rating of the other side.
type Policy interface {
	Kind() Kind
	Compute(self int, opponent int) int
}

// Kinds returns every game kind New accepts.
func Kinds() mapset.Set[Kind] {
	return mapset.NewSet[Kind](Standard, Training, Solo)
}

// New returns the policy for kind.
func New(kind Kind) (Policy, error) {
	switch kind {
	case Standard:
		return StandardGame{}, nil
	case Training:
		return TrainingGame{}, nil
	case Solo:
		return SoloGame{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicyKind, string(kind))
}

func ParseKind(name string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	if !Kinds().Contains(kind) {
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicyKind, name)
	}
	return kind, nil
}

// StandardGame averages both ratings. Division truncates toward zero.
type StandardGame struct{}

func (StandardGame) Kind() Kind { return Standard }

func (StandardGame) Compute(self int, opponent int) int {
	return (self + opponent) / 2
}

// TrainingGame ignores the opponent and returns the player's own rating.
type TrainingGame struct{}

func (TrainingGame) Kind() Kind { return Training }

func (TrainingGame) Compute(self int, _ int) int {
	return self
}

// SoloGame has no real opponent: only the player's rating counts.
type SoloGame struct{}

func (SoloGame) Kind() Kind { return Solo }

func (SoloGame) Compute(self int, _ int) int {
	return self
}
