package manifest

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBinForms(t *testing.T) {
	single := mustParse(t, `{"bin": "./cli.js"}`)
	require.NotNil(t, single.Bin)
	assert.True(t, single.Bin.Single())
	script, ok := single.Bin.Script()
	require.True(t, ok)
	assert.Equal(t, "./cli.js", script)
	_, ok = single.Bin.Primary()
	assert.False(t, ok)

	mapped := mustParse(t, `{"bin": {"zeta": "./z.js", "alpha": "./a.js", "mid": "./m.js"}}`)
	require.NotNil(t, mapped.Bin)
	assert.False(t, mapped.Bin.Single())
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, mapped.Bin.Commands())
	primary, ok := mapped.Bin.Primary()
	require.True(t, ok)
	assert.Equal(t, "zeta", primary)

	absent := mustParse(t, `{"bin": null}`)
	assert.Nil(t, absent.Bin)
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"not json":        `{ nope`,
		"bin array":       `{"bin": ["./cli.js"]}`,
		"bin number":      `{"bin": 3}`,
		"name number":     `{"name": 3}`,
		"command mapping": `{"bin": {"tool": 1}}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrManifestParse))
			assert.Equal(t, "there was an issue parsing the package.json file", err.Error())

			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr))
			assert.Error(t, parseErr.Unwrap())
		})
	}
}

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/work"
	require.NoError(t, fs.MkdirAll(dir, 0o755))
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, FileName), []byte(`{"name": "tool", "description": "A tool"}`), 0o644))

	rec, err := Load(fs, dir)
	require.NoError(t, err)
	assert.Equal(t, "tool", rec.Name)
	assert.Equal(t, "A tool", rec.Description)
}

func TestLoadNotFound(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work", 0o755))

	_, err := Load(fs, "/work")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrManifestNotFound))
	assert.Equal(t, "no package.json found in the root of this directory", err.Error())

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, filepath.Join("/work", FileName), notFound.Path)
}

func TestLoadDirectoryIsNotFound(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(filepath.Join("/work", FileName), 0o755))

	_, err := Load(fs, "/work")
	assert.True(t, errors.Is(err, ErrManifestNotFound))
}

func TestLoadParseError(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("/work", FileName)
	require.NoError(t, afero.WriteFile(fs, path, []byte(`not json`), 0o644))

	_, err := Load(fs, "/work")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrManifestParse))

	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, path, parseErr.Path)
}
