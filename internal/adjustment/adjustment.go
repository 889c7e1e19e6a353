package adjustment

import (
	"errors"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Kind is the account type. It decides how a game rating moves the account rating.
type Kind string

const (
	Standard       Kind = "standard"
	ReducedPenalty Kind = "reduced_penalty"
)

// specific accounts score exactly like standard ones.
const specificAlias = "specific"

var ErrUnknownAdjustmentKind = errors.New("unknown account kind")

type Policy interface {
	Kind() Kind
	// Apply returns the new rating. Ratings are not clamped and may go negative.
	Apply(current int, isWin bool, value int) int
}

func Kinds() mapset.Set[Kind] {
	return mapset.NewSet[Kind](Standard, ReducedPenalty)
}

func New(kind Kind) (Policy, error) {
	switch kind {
	case Standard:
		return StandardAccount{}, nil
	case ReducedPenalty:
		return ReducedPenaltyAccount{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAdjustmentKind, string(kind))
}

func ParseKind(name string) (Kind, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "-", "_")
	if normalized == specificAlias {
		return Standard, nil
	}
	kind := Kind(normalized)
	if !Kinds().Contains(kind) {
		return "", fmt.Errorf("%w: %q", ErrUnknownAdjustmentKind, name)
	}
	return kind, nil
}

// StandardAccount adds the game rating on a win and subtracts it on a loss.
type StandardAccount struct{}

func (StandardAccount) Kind() Kind { return Standard }

func (StandardAccount) Apply(current int, isWin bool, value int) int {
	if isWin {
		return current + value
	}
	return current - value
}

// ReducedPenaltyAccount loses only half of the game rating, truncated toward zero.
type ReducedPenaltyAccount struct{}

func (ReducedPenaltyAccount) Kind() Kind { return ReducedPenalty }

func (ReducedPenaltyAccount) Apply(current int, isWin bool, value int) int {
	if isWin {
		return current + value
	}
	return current - value/2
}
