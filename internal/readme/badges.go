package readme

import (
	"strings"

	md "github.com/nao1215/markdown"

	"github.com/agentflare-ai/go-readme/internal/manifest"
)

// Badge is a labeled image link shown under the title.
type Badge struct {
	Label string
	Image string
	Link  string
}

// Markdown renders the badge as a linked image.
func (b Badge) Markdown() string {
	return md.Link(md.Image(b.Label, b.Image), b.Link)
}

// Badges returns the badges applicable to info, in rendering order: the
// GitHub workflow badges when the repository is known, then the npm badge
// when the package is named.
func Badges(info *manifest.Info) []Badge {
	var badges []Badge
	user, hasUser := info.GithubUser()
	repo, hasRepo := info.RepoName()
	if hasUser && hasRepo {
		badges = append(badges,
			Badge{
				Label: "semantic release",
				Image: "https://github.com/" + user + "/" + repo + "/workflows/semantic%20release/badge.svg",
				Link:  "https://github.com/" + user + "/" + repo + "/actions?query=workflow%3A%22semantic+release%22",
			},
			Badge{
				Label: "coverage",
				Image: "https://github.com/" + user + "/" + repo + "/workflows/coverage/badge.svg",
				Link:  "https://" + user + ".github.io/" + repo + "/",
			},
		)
	}
	if name, ok := info.NpmName(); ok {
		badges = append(badges, Badge{
			Label: "npm",
			Image: "https://badge.fury.io/js/" + name + ".svg",
			Link:  "https://www.npmjs.com/package/" + name,
		})
	}
	return badges
}

// BadgeLine joins the rendered badges with single spaces. It is empty when
// there are no badges.
func BadgeLine(badges []Badge) string {
	rendered := make([]string, 0, len(badges))
	for _, b := range badges {
		rendered = append(rendered, b.Markdown())
	}
	return strings.Join(rendered, " ")
}
