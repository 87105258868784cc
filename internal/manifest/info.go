package manifest

import (
	"regexp"
	"strings"
)

// usagePlaceholder is replaced by the command in a usage template.
const usagePlaceholder = "CMD"

var githubURL = regexp.MustCompile(`https?://github.com/(.+)/(.+).git`)

// field is an optional string with explicit presence. Empty strings are
// never present.
type field struct {
	value string
	ok    bool
}

func present(v string) field {
	return field{value: v, ok: v != ""}
}

func (f field) get() (string, bool) {
	return f.value, f.ok
}

// Info holds the descriptive fields derived from a manifest Record. It is
// immutable once built.
type Info struct {
	npmName     field
	description field
	githubUser  field
	repoName    field
	npx         field
	global      field
	usage       string
	scoped      bool
}

// NewInfo derives the descriptive fields of rec. A nil record yields an Info
// with every field absent.
func NewInfo(rec *Record) *Info {
	if rec == nil {
		rec = &Record{}
	}
	info := &Info{
		npmName:     present(rec.Name),
		description: present(rec.Description),
		usage:       rec.Usage,
		scoped:      isScoped(rec.Name),
	}
	info.githubUser, info.repoName = parseRepository(rec.Repository)
	info.npx = npxExecutable(rec.Name, info.scoped, rec.Bin)
	info.global = globalExecutable(rec.Name, rec.Bin)
	return info
}

// NpmName is the package name as written in the manifest.
func (i *Info) NpmName() (string, bool) { return i.npmName.get() }

func (i *Info) Description() (string, bool) { return i.description.get() }

func (i *Info) GithubUser() (string, bool) { return i.githubUser.get() }

func (i *Info) RepoName() (string, bool) { return i.repoName.get() }

// IsScoped reports whether the package name has the "scope/name" form.
func (i *Info) IsScoped() bool { return i.scoped }

// Heading is the repository name, falling back to the package name.
func (i *Info) Heading() (string, bool) {
	if repo, ok := i.repoName.get(); ok {
		return repo, true
	}
	return i.npmName.get()
}

// NpxExecutable is the argument list passed to npx to run the primary command.
func (i *Info) NpxExecutable() (string, bool) { return i.npx.get() }

// GlobalExecutable is the command name available after a global install.
func (i *Info) GlobalExecutable() (string, bool) { return i.global.get() }

// Usage substitutes command into the first CMD placeholder of the usage
// template. Without a template, or with an empty command, command is
// returned unchanged.
func (i *Info) Usage(command string) string {
	if command != "" && i.usage != "" {
		return strings.Replace(i.usage, usagePlaceholder, command, 1)
	}
	return command
}

func isScoped(name string) bool {
	return strings.Count(name, "/") == 1
}

func parseRepository(repo *Repository) (user, name field) {
	url := ""
	if repo != nil {
		url = repo.URL
	}
	match := githubURL.FindStringSubmatch(url)
	if match == nil {
		return field{}, field{}
	}
	return present(match[1]), present(match[2])
}

func npxExecutable(name string, scoped bool, bin *Bin) field {
	if bin == nil || name == "" {
		return field{}
	}
	if bin.Single() {
		if scoped {
			return present("-p " + name)
		}
		return present(name)
	}
	primary, ok := bin.Primary()
	if !ok {
		return field{}
	}
	switch {
	case scoped:
		return present("-p " + name + " " + primary)
	case primary == name:
		return present(name)
	default:
		return present(name + " " + primary)
	}
}

func globalExecutable(name string, bin *Bin) field {
	if bin == nil {
		return field{}
	}
	if bin.Single() {
		if name == "" {
			return field{}
		}
		parts := strings.Split(name, "/")
		if len(parts) == 2 {
			return present(parts[1])
		}
		return present(parts[0])
	}
	primary, ok := bin.Primary()
	if !ok {
		return field{}
	}
	return present(primary)
}
