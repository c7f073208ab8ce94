package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/rahulraj/boardcore/internal/board"
	"github.com/rahulraj/boardcore/internal/config"
	"github.com/rahulraj/boardcore/internal/evaluator"
	"github.com/rahulraj/boardcore/internal/logger"
	"github.com/rahulraj/boardcore/internal/repository"
	"github.com/rahulraj/boardcore/internal/repository/storage"
)

// app is shared by the commands once the root has loaded the config.
type app struct {
	conf   *config.Config
	logger *slog.Logger
}

func Root() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "boardcore",
		Short: "Play and analyse tic-tac-toe and Othello",
		Long: heredoc.Doc(`
			Play and analyse two-player board games.

			Configuration is read from --config, else config.yml in the working
			directory, else boardcore/config.yml in the XDG config directories.
			BOARDCORE_* environment variables override the file.
		`),

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to read --config: %w", err)
			}
			if path == "" {
				path = config.DefaultPath()
			}

			conf, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("unable to load config: %w", err)
			}

			a.conf = conf
			a.logger = logger.New(conf.LogLevel, cmd.ErrOrStderr())
			a.logger.Debug("config loaded", "component", "cli", "path", path)

			return nil
		},
	}

	// global flags
	root.PersistentFlags().String("config", "", "Path to the config file")

	root.AddCommand(Play(a))
	root.AddCommand(BestMove(a))

	return root
}

// evaluatorOptions builds search options from the config. A negative depth
// keeps the configured one, and zero picks the default for the rules.
func (that *app) evaluatorOptions(rules board.Rules, cache evaluator.Cache, depth int) []evaluator.Option {
	if depth < 0 {
		depth = that.conf.Evaluator.MaxDepth
	}
	if depth == 0 {
		depth = evaluator.DefaultMaxDepth(rules)
	}

	return []evaluator.Option{
		evaluator.WithGoodMoveWeight(that.conf.Evaluator.GoodMoveWeight),
		evaluator.WithMaxDepth(depth),
		evaluator.WithParallel(that.conf.Evaluator.Parallel),
		evaluator.WithLogger(that.logger.With("component", "evaluator")),
		evaluator.WithCache(cache),
	}
}

// cache returns the score cache and a function releasing it.
func (that *app) cache(ctx context.Context) (evaluator.Cache, func(), error) {
	memory := repository.NewMemoryCache()
	if !that.conf.Redis.Enabled {
		return memory, func() {}, nil
	}

	redisStorage, err := storage.NewRedisStorage(ctx, that.conf.Redis.GetRedisAddr())
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	scoreRepo := repository.NewScoreRepository(redisStorage.Connection, that.conf.Redis.TTL)
	cache := repository.NewTieredCache(memory, repository.NewRedisCache(ctx, scoreRepo, that.logger))

	release := func() {
		if err := redisStorage.Close(); err != nil {
			that.logger.Error("could not close redis storage", "error", err)
		}
	}

	return cache, release, nil
}
