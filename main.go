package main

import (
	"fmt"
	"os"

	app "github.com/rahulraj/boardcore/internal"
)

// main - is the entry point of the application. Config and logging are set up by the command line.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := app.RunApp(os.Args[1:]); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}
