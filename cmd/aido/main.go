package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aido-sh/aido/internal/infrastructure/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx := context.Background()

	root, err := cli.NewRootCmd(ctx, cli.Options{Verbose: verboseEnabled()})
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func verboseEnabled() bool {
	switch strings.ToLower(os.Getenv("AIDO_DEBUG")) {
	case "1", "true", "yes":
		return true
	}
	return false
}
