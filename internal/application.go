package application

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rahulraj/boardcore/internal/cli"
)

// RunApp - runs the command line with args, cancelling on SIGINT or SIGTERM.
func RunApp(args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			fmt.Fprintf(os.Stderr, "received %s, shutting down\n", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	root := cli.Root()
	root.SetArgs(args)

	if err := root.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("%s: %w", root.Name(), err)
	}

	return nil
}
