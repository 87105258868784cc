// Package update regenerates the README of a package directory from its
// manifest.
package update

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/agentflare-ai/go-readme/internal/logging"
	"github.com/agentflare-ai/go-readme/internal/manifest"
	"github.com/agentflare-ai/go-readme/internal/readme"
)

// Env is the process environment an update runs against.
type Env struct {
	// Dir is the package directory holding the manifest and the README.
	Dir string
	// Fs stores the files. Defaults to the OS filesystem.
	Fs afero.Fs
}

// NewEnv returns an Env for dir on the OS filesystem.
func NewEnv(dir string) Env {
	return Env{Dir: dir, Fs: afero.NewOsFs()}
}

func (e Env) fs() afero.Fs {
	if e.Fs == nil {
		return afero.NewOsFs()
	}
	return e.Fs
}

// Update loads the manifest, merges it into the existing README and
// overwrites the README with the result. Nothing is written when loading
// fails.
func Update(ctx context.Context, env Env) error {
	logger := logging.FromContext(ctx)
	fs := env.fs()

	rec, err := manifest.Load(fs, env.Dir)
	if err != nil {
		return err
	}
	info := manifest.NewInfo(rec)

	target := filepath.Join(env.Dir, readme.FileName)
	prior, err := readPrior(fs, target)
	if err != nil {
		return err
	}
	if prior == "" {
		logger.Debug().Str("path", target).Msg("no existing readme content")
	}

	content := readme.Transform(info, prior)
	if err := afero.WriteFile(fs, target, []byte(content), 0o644); err != nil {
		return err
	}
	logger.Debug().Str("path", target).Int("bytes", len(content)).Msg("readme updated")
	return nil
}

func readPrior(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(data), nil
}
