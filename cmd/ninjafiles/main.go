package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mibnrashid/NinjaFiles2/internal/cli"
	"github.com/mibnrashid/NinjaFiles2/pkg/ninja"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(ninja.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(ninja.ExitCodeForError(err))
	}
}
