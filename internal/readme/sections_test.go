package readme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgesRepositoryOnly(t *testing.T) {
	badges := Badges(infoFrom(t, `{"repository": {"url": "https://github.com/acme/widgets.git"}}`))

	labels := make([]string, 0, len(badges))
	for _, b := range badges {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{"semantic release", "coverage"}, labels)
}

func TestBadgesNone(t *testing.T) {
	badges := Badges(infoFrom(t, `{"description": "nothing to badge"}`))
	assert.Empty(t, badges)
	assert.Equal(t, "", BadgeLine(badges))
}

func TestBadgeMarkdown(t *testing.T) {
	b := Badge{Label: "npm", Image: "https://img", Link: "https://link"}
	assert.Equal(t, "[![npm](https://img)](https://link)", b.Markdown())
}

func TestInstallSectionScopedMapping(t *testing.T) {
	info := infoFrom(t, `{"name": "@scope/pkg", "usage": "CMD <file>", "bin": {"pkg": "./cli.js"}}`)

	assert.Equal(t, "## Install\n\n```\nnpm install @scope/pkg -g\npkg <file>\n```", InstallSection(info))
	assert.Equal(t, "## Use directly via `npx`\n\n```\nnpx -p @scope/pkg pkg <file>\n```", NpxSection(info))
}

func TestSectionsAbsent(t *testing.T) {
	info := infoFrom(t, `{"bin": "./cli.js"}`)

	assert.Equal(t, "", InstallSection(info))
	assert.Equal(t, "", NpxSection(info))
}
