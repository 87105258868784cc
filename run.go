package main

import (
	"context"
	"fmt"
	"io"

	"github.com/agentflare-ai/go-readme/internal/logging"
	"github.com/agentflare-ai/go-readme/internal/update"
)

type cliApp struct {
	env update.Env
}

// run executes the CLI and returns the process exit code. Failures print
// their message on stderr and exit with 1.
func run(ctx context.Context, argv []string, env update.Env, stdout, stderr io.Writer) int {
	if ctx == nil {
		ctx = context.Background()
	}
	cmd := newRootCmd(env, stdout)
	cmd.SetArgs(argv)
	if err := cmd.ExecuteContext(ctx); err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("dir", env.Dir).Msg("update failed")
		fmt.Fprintln(stderr, err.Error())
		return 1
	}
	return 0
}

func (app *cliApp) execute(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	return update.Update(ctx, app.env)
}
