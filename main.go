package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agentflare-ai/go-readme/internal/logging"
	"github.com/agentflare-ai/go-readme/internal/update"
)

// Version is reported by --version.
var Version = "dev"

func main() {
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ctx := logging.WithLogger(context.Background(), logging.NewLoggerFromConfig(logging.DefaultConfig()))
	os.Exit(run(ctx, os.Args[1:], update.NewEnv(dir), os.Stdout, os.Stderr))
}
