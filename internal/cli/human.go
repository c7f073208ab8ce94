package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rahulraj/boardcore/internal/board"
	"github.com/rahulraj/boardcore/internal/evaluator"
)

var errNoInput = errors.New("input closed before a move was entered")

// human reads moves from an input stream, asking again until a legal play is
// entered.
type human struct {
	rules board.Rules
	in    *bufio.Scanner
	out   io.Writer
}

func newHuman(rules board.Rules, in io.Reader, out io.Writer) *human {
	return &human{rules: rules, in: bufio.NewScanner(in), out: out}
}

func (that *human) Choose(ctx context.Context, b board.Board, player board.Player) (board.Position, error) {
	plays := that.rules.LegalPlays(b, player)
	if len(plays) == 0 {
		return 0, fmt.Errorf("%w: %s on %s", evaluator.ErrNoLegalMove, player, b.Key())
	}

	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		fmt.Fprintf(that.out, "%s to move: ", player)

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return 0, fmt.Errorf("failed to read move: %w", err)
			}
			return 0, errNoInput
		}

		pos, err := parseMove(b, that.in.Text())
		if err != nil {
			fmt.Fprintf(that.out, "%v\n", err)
			continue
		}

		if !slices.Contains(plays, pos) {
			fmt.Fprintf(that.out, "%d is not a legal move\n", pos)
			continue
		}

		return pos, nil
	}
}

// parseMove accepts a cell index or a "row col" pair.
func parseMove(b board.Board, line string) (board.Position, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})

	numbers := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", field)
		}
		numbers = append(numbers, n)
	}

	switch len(numbers) {
	case 1:
		pos := board.Position(numbers[0])
		if !b.Contains(pos) {
			return 0, fmt.Errorf("%w: %d", board.ErrOutOfRange, pos)
		}
		return pos, nil
	case 2:
		return b.Position(numbers[0], numbers[1])
	default:
		return 0, fmt.Errorf("enter a cell index or a row and column, got %q", line)
	}
}
