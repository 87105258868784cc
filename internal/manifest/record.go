// Package manifest reads a package.json and derives the fields a README is
// generated from.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// FileName is the manifest looked up in the working directory.
const FileName = "package.json"

// Record is the subset of a package.json this tool reads.
type Record struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Usage       string      `json:"usage"`
	Bin         *Bin        `json:"bin"`
	Repository  *Repository `json:"repository"`
}

// Bin is the executable declaration of a package. It is either a single
// script path, in which case the command is named after the package, or a
// mapping of command names to script paths whose first entry is the primary
// command.
type Bin struct {
	script   string
	commands *orderedmap.OrderedMap[string, string]
}

// Single reports whether the declaration is the single-script string form.
func (b *Bin) Single() bool {
	return b.commands == nil
}

// Script returns the script path of the single-script form.
func (b *Bin) Script() (string, bool) {
	if !b.Single() {
		return "", false
	}
	return b.script, true
}

// Primary returns the first declared command name of the mapping form.
func (b *Bin) Primary() (string, bool) {
	if b.Single() {
		return "", false
	}
	oldest := b.commands.Oldest()
	if oldest == nil {
		return "", false
	}
	return oldest.Key, true
}

// Commands returns the declared command names in declaration order.
func (b *Bin) Commands() []string {
	if b.Single() {
		return nil
	}
	names := make([]string, 0, b.commands.Len())
	for pair := b.commands.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

func (b *Bin) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return errors.New("bin: empty value")
	}
	switch trimmed[0] {
	case '"':
		var script string
		if err := json.Unmarshal(trimmed, &script); err != nil {
			return errors.Wrap(err, "bin")
		}
		b.script, b.commands = script, nil
		return nil
	case '{':
		commands := orderedmap.New[string, string]()
		if err := commands.UnmarshalJSON(trimmed); err != nil {
			return errors.Wrap(err, "bin")
		}
		b.script, b.commands = "", commands
		return nil
	default:
		return fmt.Errorf("bin: expected a string or an object, got %s", trimmed)
	}
}

// Repository is the repository descriptor of a package. The string
// shorthand ("github:user/repo") is accepted but carries no URL.
type Repository struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

func (r *Repository) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var shorthand string
		return json.Unmarshal(trimmed, &shorthand)
	}
	type plain Repository
	return json.Unmarshal(trimmed, (*plain)(r))
}

// Parse decodes manifest content. Any decoding failure is reported as a
// *ParseError.
func Parse(data []byte) (*Record, error) {
	rec, err := decode(data)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return rec, nil
}

func decode(data []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Load reads and decodes the manifest in dir. A missing manifest yields a
// *NotFoundError and malformed content a *ParseError.
func Load(fs afero.Fs, dir string) (*Record, error) {
	path := filepath.Join(dir, FileName)
	fi, err := fs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, errors.Wrapf(err, "checking %s", path)
	}
	if fi.IsDir() {
		return nil, &NotFoundError{Path: path}
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	rec, err := decode(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return rec, nil
}
