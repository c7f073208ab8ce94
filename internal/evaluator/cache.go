package evaluator

import (
	"fmt"
	"strconv"

	"github.com/rahulraj/boardcore/internal/board"
)

// Cache memoises scores by search key. Implementations must be safe for
// concurrent use when the evaluator runs in parallel.
type Cache interface {
	Load(key string) (float64, bool)
	Store(key string, score float64)
}

// CacheKey identifies one score computation. Depth is the remaining search
// depth, -1 when unbounded.
func CacheKey(rules string, b board.Board, player board.Player, depth int, weight float64) string {
	return fmt.Sprintf("%s:%s:%s:%d:%s", rules, b.Key(), player, depth, strconv.FormatFloat(weight, 'g', -1, 64))
}
