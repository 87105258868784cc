package readme

import (
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/agentflare-ai/go-readme/internal/manifest"
)

const fence = "```"

// InstallSection renders the "## Install" block, or "" for an unnamed package.
// Packages with an executable are installed globally and the block shows how
// to invoke it.
func InstallSection(info *manifest.Info) string {
	name, ok := info.NpmName()
	if !ok {
		return ""
	}
	global, hasGlobal := info.GlobalExecutable()
	install := "npm install " + name
	if hasGlobal {
		install += " -g"
	}
	lines := []string{"## Install", "", fence, install}
	if hasGlobal {
		lines = append(lines, info.Usage(global))
	}
	lines = append(lines, fence)
	return strings.Join(lines, "\n")
}

// NpxSection renders the npx invocation block, or "" when the package
// declares no executable.
func NpxSection(info *manifest.Info) string {
	npx, ok := info.NpxExecutable()
	if !ok {
		return ""
	}
	return strings.Join([]string{
		"## Use directly via " + md.Code("npx"),
		"",
		fence,
		"npx " + info.Usage(npx),
		fence,
	}, "\n")
}
