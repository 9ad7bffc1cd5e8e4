package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecalc/sparse"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "results", cfg.ResultsDir)
	assert.Equal(t, HeaderStrict, cfg.Header)
	assert.False(t, cfg.BoundsCheck)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	require.NoError(t, cfg.Validate())
	assert.Empty(t, cfg.ParseOptions())
}

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(`
results_dir: out
header: positional
bounds_check: true
log_level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, "out", cfg.ResultsDir)
	assert.Equal(t, HeaderPositional, cfg.Header)
	assert.True(t, cfg.BoundsCheck)
	assert.Equal(t, slog.LevelDebug, cfg.Level())

	o := sparse.NewOptions(cfg.ParseOptions()...)
	assert.False(t, o.StrictHeader())
	assert.True(t, o.BoundsCheck())
}

func TestDecode_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader("bounds_check: true\n"))
	require.NoError(t, err)
	assert.Equal(t, DefaultResultsDir, cfg.ResultsDir)
	assert.Equal(t, DefaultHeader, cfg.Header)
	assert.True(t, cfg.BoundsCheck)
}

func TestDecode_Empty(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestDecode_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "colour: blue\n",
		"bad header":    "header: loose\n",
		"bad level":     "log_level: loud\n",
		"empty dir":     "results_dir: \"  \"\n",
		"not a mapping": "- a\n- b\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}

	_, err := Decode(strings.NewReader("header: loose\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("results_dir: elsewhere\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "elsewhere", cfg.ResultsDir)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err, "an explicit path must exist")
}

func TestLoad_DefaultPathMissing(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
