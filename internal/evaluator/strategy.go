package evaluator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/rahulraj/boardcore/internal/board"
)

const (
	StrategySearch = "search"
	StrategyRandom = "random"
	StrategyGreedy = "greedy"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy picks a move for the player to move. Slow strategies stop with
// ctx's error once ctx is done.
type Strategy interface {
	Choose(ctx context.Context, b board.Board, player board.Player) (board.Position, error)
}

// NewStrategy builds a strategy by name. The seed only matters for random
// play, the options only for search.
func NewStrategy(name string, rules board.Rules, seed int64, opts ...Option) (Strategy, error) {
	switch name {
	case StrategySearch:
		return New(rules, opts...), nil
	case StrategyRandom:
		return NewRandom(rules, seed), nil
	case StrategyGreedy:
		return NewGreedy(rules), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Random plays a uniformly chosen legal move. It is not safe for concurrent use.
type Random struct {
	rules board.Rules
	rng   *rand.Rand
}

func NewRandom(rules board.Rules, seed int64) *Random {
	return &Random{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)), //nolint: gosec // move choice, not crypto
	}
}

func (that *Random) Choose(_ context.Context, b board.Board, player board.Player) (board.Position, error) {
	plays := that.rules.LegalPlays(b, player)
	if len(plays) == 0 {
		return 0, fmt.Errorf("%w: %s on %s", ErrNoLegalMove, player, b.Key())
	}

	return plays[that.rng.Intn(len(plays))], nil
}

// Greedy maximises the number of its own marks right after the move.
type Greedy struct {
	rules board.Rules
}

func NewGreedy(rules board.Rules) *Greedy {
	return &Greedy{rules: rules}
}

func (that *Greedy) Choose(_ context.Context, b board.Board, player board.Player) (board.Position, error) {
	plays := that.rules.LegalPlays(b, player)
	if len(plays) == 0 {
		return 0, fmt.Errorf("%w: %s on %s", ErrNoLegalMove, player, b.Key())
	}

	best, bestCount := plays[0], -1
	for _, pos := range plays {
		next, err := that.rules.Play(b, player, pos)
		if err != nil {
			return 0, fmt.Errorf("greedy failed to play %d: %w", pos, err)
		}

		if count := next.Count(player.Mark()); count > bestCount {
			best, bestCount = pos, count
		}
	}

	return best, nil
}
