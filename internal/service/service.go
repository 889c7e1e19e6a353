package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goserg/ratingtracker/internal/adjustment"
	"github.com/goserg/ratingtracker/internal/cache/mem"
	"github.com/goserg/ratingtracker/internal/config"
	"github.com/goserg/ratingtracker/internal/domain"
	"github.com/goserg/ratingtracker/internal/rating"
	"github.com/goserg/ratingtracker/internal/report"

	"github.com/sirupsen/logrus"
)

var (
	ErrAccountNotFound  = mem.ErrAccountNotFound
	ErrDuplicateAccount = mem.ErrDuplicateAccount
	ErrUnknownResult    = errors.New("unknown game result")
)

// Game is one result to record for Player.
type Game struct {
	Player   string
	Opponent string
	Win      bool
	Mode     rating.Kind
}

type TrackerService struct {
	accounts *mem.Cache
	log      logrus.FieldLogger
}

func New(accounts *mem.Cache, log logrus.FieldLogger) *TrackerService {
	return &TrackerService{
		accounts: accounts,
		log:      log,
	}
}

func (s *TrackerService) CreateAccount(name string, initialRating int, kind adjustment.Kind) (domain.Snapshot, error) {
	adj, err := adjustment.New(kind)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("create account %q: %w", name, err)
	}
	account := domain.NewAccount(name, initialRating, adj)
	if err := s.accounts.Add(account); err != nil {
		return domain.Snapshot{}, fmt.Errorf("create account %q: %w", name, err)
	}
	s.log.WithFields(logrus.Fields{
		"id":     account.ID(),
		"name":   name,
		"rating": initialRating,
		"kind":   kind,
	}).Debug("account created")
	return account.Snapshot(), nil
}

// Play records game for its player only. The opponent's account, if any, is not touched.
func (s *TrackerService) Play(game Game) error {
	policy, err := rating.New(game.Mode)
	if err != nil {
		return fmt.Errorf("play %s vs %s: %w", game.Player, game.Opponent, err)
	}
	var before, after int
	err = s.accounts.Update(game.Player, func(a *domain.Account) {
		before = a.Rating()
		if game.Win {
			a.Win(game.Opponent, policy)
		} else {
			a.Lose(game.Opponent, policy)
		}
		after = a.Rating()
	})
	if err != nil {
		return fmt.Errorf("play %s vs %s: %w", game.Player, game.Opponent, err)
	}
	s.log.WithFields(logrus.Fields{
		"player":   game.Player,
		"opponent": game.Opponent,
		"win":      game.Win,
		"mode":     game.Mode,
		"before":   before,
		"after":    after,
	}).Debug("game recorded")
	return nil
}

// RunScenario creates the configured accounts, then plays the configured games in order.
// It stops at the first error.
func (s *TrackerService) RunScenario(scenario config.Scenario) error {
	for _, acc := range scenario.Accounts {
		kind, err := adjustment.ParseKind(acc.Kind)
		if err != nil {
			return fmt.Errorf("account %q: %w", acc.Name, err)
		}
		if _, err := s.CreateAccount(acc.Name, acc.Rating, kind); err != nil {
			return err
		}
	}
	for i, g := range scenario.Games {
		game, err := convertGame(g)
		if err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}
		if err := s.Play(game); err != nil {
			return fmt.Errorf("game %d: %w", i+1, err)
		}
	}
	s.log.WithFields(logrus.Fields{
		"accounts": len(scenario.Accounts),
		"games":    len(scenario.Games),
	}).Info("scenario finished")
	return nil
}

func convertGame(g config.Game) (Game, error) {
	mode, err := rating.ParseKind(g.Mode)
	if err != nil {
		return Game{}, err
	}
	var win bool
	switch strings.ToLower(strings.TrimSpace(g.Result)) {
	case "win":
		win = true
	case "lose", "loss":
		win = false
	default:
		return Game{}, fmt.Errorf("%w: %q", ErrUnknownResult, g.Result)
	}
	return Game{
		Player:   g.Player,
		Opponent: g.Opponent,
		Win:      win,
		Mode:     mode,
	}, nil
}

func (s *TrackerService) Get(name string) (domain.Snapshot, error) {
	account, ok := s.accounts.GetAccountByName(name)
	if !ok {
		return domain.Snapshot{}, fmt.Errorf("%q: %w", name, ErrAccountNotFound)
	}
	return account, nil
}

func (s *TrackerService) List() []domain.Snapshot {
	return s.accounts.List()
}

func (s *TrackerService) GetRatings() []domain.Snapshot {
	return s.accounts.GetRatings()
}

// Stats renders the game history of the named account.
func (s *TrackerService) Stats(name string) (string, error) {
	account, err := s.Get(name)
	if err != nil {
		return "", err
	}
	return report.History(account.Name, account.History), nil
}
