package evaluator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/rahulraj/boardcore/internal/board"
)

// DefaultGoodMoveWeight is the probability the opponent is assumed to play its
// best reply.
const DefaultGoodMoveWeight = 0.9

const unbounded = -1

// LargeBoardDepth is the search depth DefaultMaxDepth gives boards whose game
// tree cannot be searched to the end.
const LargeBoardDepth = 2

// fullSearchCells is the largest board searched to the end by default.
const fullSearchCells = 16

var ErrNoLegalMove = errors.New("no legal move")

// MoveScore is the score of one candidate move from the mover's point of view.
type MoveScore struct {
	Position board.Position `json:"position"`
	Score    float64        `json:"score"`
}

// Evaluator scores positions by searching the game tree. Instead of pure
// minimax, each node mixes the worst child with the mean of the others:
//
//	score = W*min + (1-W)*mean(children above min)
//
// W = 1 gives plain minimax.
type Evaluator struct {
	logger   *slog.Logger
	rules    board.Rules
	weight   float64
	maxDepth int
	cache    Cache
	parallel bool
}

type Option func(*Evaluator)

// WithGoodMoveWeight sets W. Values outside [0, 1] are clamped.
func WithGoodMoveWeight(weight float64) Option {
	return func(e *Evaluator) {
		e.weight = min(max(weight, 0), 1)
	}
}

// WithMaxDepth bounds the number of plies searched beyond a candidate move.
// Positions at the horizon are estimated by the rules when they implement
// board.Estimator, and scored 0 otherwise. Zero or less means unbounded.
func WithMaxDepth(depth int) Option {
	return func(e *Evaluator) {
		if depth <= 0 {
			e.maxDepth = unbounded
			return
		}
		e.maxDepth = depth
	}
}

// DefaultMaxDepth is the depth used when none is configured: unbounded for
// boards up to 4x4, LargeBoardDepth above that.
func DefaultMaxDepth(rules board.Rules) int {
	if rules.Rows()*rules.Cols() <= fullSearchCells {
		return 0
	}
	return LargeBoardDepth
}

func WithCache(cache Cache) Option {
	return func(e *Evaluator) {
		e.cache = cache
	}
}

// WithParallel scores the candidate moves of BestMove concurrently. The
// chosen move is the same as in a sequential scan.
func WithParallel(parallel bool) Option {
	return func(e *Evaluator) {
		e.parallel = parallel
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Evaluator) {
		e.logger = logger
	}
}

func New(rules board.Rules, opts ...Option) *Evaluator {
	e := &Evaluator{
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		rules:    rules,
		weight:   DefaultGoodMoveWeight,
		maxDepth: unbounded,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Score rates b for player, who has just moved, in [-1, 1]: 1 when player has
// won or will win, -1 when the opponent has won or can win at once, and 0 for
// a draw.
func (that *Evaluator) Score(b board.Board, player board.Player) float64 {
	// A background context is never done.
	score, _ := that.score(context.Background(), b, player, that.maxDepth)
	return score
}

// ScoreContext is Score stopping early with ctx's error once ctx is done.
func (that *Evaluator) ScoreContext(ctx context.Context, b board.Board, player board.Player) (float64, error) {
	return that.score(ctx, b, player, that.maxDepth)
}

// BestMove returns the legal play with the highest score for player. Ties go
// to the lowest position.
func (that *Evaluator) BestMove(b board.Board, player board.Player) (board.Position, error) {
	return that.BestMoveContext(context.Background(), b, player)
}

func (that *Evaluator) BestMoveContext(ctx context.Context, b board.Board, player board.Player) (board.Position, error) {
	moves, err := that.AnalyzeContext(ctx, b, player)
	if err != nil {
		return 0, err
	}

	best := Best(moves)

	that.logger.Debug("best move selected",
		"rules", that.rules.Name(), "player", player.String(),
		"position", int(best.Position), "score", best.Score)

	return best.Position, nil
}

// Choose makes the evaluator usable as a Strategy.
func (that *Evaluator) Choose(ctx context.Context, b board.Board, player board.Player) (board.Position, error) {
	return that.BestMoveContext(ctx, b, player)
}

// Analyze scores every legal play of player, in ascending position order.
func (that *Evaluator) Analyze(b board.Board, player board.Player) ([]MoveScore, error) {
	return that.AnalyzeContext(context.Background(), b, player)
}

// AnalyzeContext is Analyze checking ctx at every searched position.
func (that *Evaluator) AnalyzeContext(ctx context.Context, b board.Board, player board.Player) ([]MoveScore, error) {
	plays := that.rules.LegalPlays(b, player)
	if len(plays) == 0 {
		return nil, fmt.Errorf("%w: %s on %s", ErrNoLegalMove, player, b.Key())
	}

	moves := make([]MoveScore, len(plays))
	rate := func(ctx context.Context, i int) error {
		next := that.mustPlay(b, player, plays[i])
		score, err := that.score(ctx, next, player, that.maxDepth)
		if err != nil {
			return err
		}
		moves[i] = MoveScore{Position: plays[i], Score: score}
		return nil
	}

	if !that.parallel {
		for i := range plays {
			if err := rate(ctx, i); err != nil {
				return nil, fmt.Errorf("search stopped: %w", err)
			}
		}
		return moves, nil
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))
	for i := range plays {
		group.Go(func() error {
			return rate(groupCtx, i)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("search stopped: %w", err)
	}

	return moves, nil
}

// Best picks the highest scored move. Ties go to the first one, which is the
// lowest position for moves from Analyze. moves must not be empty.
func Best(moves []MoveScore) MoveScore {
	best := 0
	for i := range moves {
		if moves[i].Score > moves[best].Score {
			best = i
		}
	}
	return moves[best]
}

func (that *Evaluator) score(ctx context.Context, b board.Board, player board.Player, depth int) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var key string
	if that.cache != nil {
		key = CacheKey(that.rules.Name(), b, player, depth, that.weight)
		if cached, ok := that.cache.Load(key); ok {
			return cached, nil
		}
	}

	result, err := that.search(ctx, b, player, depth)
	if err != nil {
		return 0, err
	}

	if that.cache != nil {
		that.cache.Store(key, result)
	}

	return result, nil
}

func (that *Evaluator) search(ctx context.Context, b board.Board, player board.Player, depth int) (float64, error) {
	opponent := player.Other()

	if that.rules.HasWon(b, player) {
		return 1, nil
	}

	if that.rules.HasWon(b, opponent) || board.CanWinInOneMove(that.rules, b, opponent) {
		return -1, nil
	}

	plays := that.rules.LegalPlays(b, opponent)
	if len(plays) == 0 {
		if !board.CanMove(that.rules, b, player) {
			return 0, nil
		}
		// The opponent passes and player moves again.
		score, err := that.score(ctx, b, opponent, depth)
		return -score, err
	}

	if depth == 0 {
		return that.estimate(b, player), nil
	}

	childDepth := depth
	if depth > 0 {
		childDepth--
	}

	scores := make([]float64, len(plays))
	for i, pos := range plays {
		next := that.mustPlay(b, opponent, pos)
		score, err := that.score(ctx, next, opponent, childDepth)
		if err != nil {
			return 0, err
		}
		scores[i] = -score
	}

	return that.combine(scores), nil
}

func (that *Evaluator) combine(scores []float64) float64 {
	lowest := scores[0]
	for _, s := range scores[1:] {
		if s < lowest {
			lowest = s
		}
	}

	var sum float64
	var count int
	for _, s := range scores {
		if s != lowest {
			sum += s
			count++
		}
	}

	if count == 0 {
		return lowest
	}

	return clamp(that.weight*lowest + (1-that.weight)*(sum/float64(count)))
}

func (that *Evaluator) estimate(b board.Board, player board.Player) float64 {
	estimator, ok := that.rules.(board.Estimator)
	if !ok {
		return 0
	}
	return clamp(estimator.Estimate(b, player))
}

// mustPlay applies a play taken from LegalPlays; the rules guarantee it is
// accepted.
func (that *Evaluator) mustPlay(b board.Board, player board.Player, pos board.Position) board.Board {
	next, err := that.rules.Play(b, player, pos)
	if err != nil {
		panic(fmt.Errorf("legal play %d rejected by %s: %w", pos, that.rules.Name(), err))
	}
	return next
}

func clamp(score float64) float64 {
	return min(max(score, -1), 1)
}
