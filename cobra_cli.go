package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentflare-ai/go-readme/internal/update"
)

const rootLongDesc = `
go-readme regenerates README.md from the package.json in the current directory.

The generated header holds the title, badges (semantic release, coverage, npm),
the package description, install instructions and an npx invocation. Everything
below the marker line

  <!-- anything below this line will be safe from template removal -->

is kept verbatim, so running go-readme again only refreshes the header.
`

func newRootCmd(env update.Env, stdout io.Writer) *cobra.Command {
	app := &cliApp{env: env}
	cmd := &cobra.Command{
		Use:           "go-readme",
		Short:         "Regenerate README.md from package.json",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return app.execute(cmd.Context())
	}
	return cmd
}
