// Package readme regenerates the templated header of a README while keeping
// the user-owned content below the marker line.
package readme

import (
	"strings"

	"github.com/agentflare-ai/go-readme/internal/manifest"
)

// FileName is the document regenerated in the working directory.
const FileName = "README.md"

// Marker separates the generated header from the kept tail.
const Marker = "<!-- anything below this line will be safe from template removal -->"

const untitled = "untitled"

// KeptTail returns everything after the first marker in prior, or "" when
// prior has no marker.
func KeptTail(prior string) string {
	_, tail, found := strings.Cut(prior, Marker)
	if !found {
		return ""
	}
	return tail
}

// Transform builds the new document for info. Sections are separated by a
// blank line and empty sections are skipped; the marker ends the header and
// the kept tail of prior follows it verbatim.
func Transform(info *manifest.Info, prior string) string {
	heading, ok := info.Heading()
	if !ok {
		heading = untitled
	}
	description, _ := info.Description()

	sections := make([]string, 0, 6)
	for _, section := range []string{
		"# " + heading,
		BadgeLine(Badges(info)),
		description,
		InstallSection(info),
		NpxSection(info),
		Marker,
	} {
		if section != "" {
			sections = append(sections, section)
		}
	}
	return strings.Join(sections, "\n\n") + KeptTail(prior)
}
