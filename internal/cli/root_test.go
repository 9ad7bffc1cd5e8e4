package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecalc/internal/config"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "sparsecalc", cmd.Use)
	assert.Contains(t, cmd.Long, "interactive menu")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := map[string]string{
		"add":            "add",
		"addition":       "add",
		"subtract":       "subtract",
		"sub":            "subtract",
		"multiply":       "multiply",
		"mul":            "multiply",
		"multiplication": "multiply",
	}

	for name, canonical := range commands {
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{name})
			require.NoError(t, err, "Command %s should exist", name)
			require.NotNil(t, subCmd)
			assert.Equal(t, canonical, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	dirFlag := cmd.PersistentFlags().Lookup("results-dir")
	require.NotNil(t, dirFlag)
	assert.Equal(t, "o", dirFlag.Shorthand)

	for _, name := range []string{"config", "log-level", "bounds-check", "positional-header"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
}

func TestInvalidFormat(t *testing.T) {
	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--format", "xml", "add", fixtureA, fixtureB})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestSetup_ConfigAndOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sparsecalc.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("results_dir: from-file\nheader: positional\nlog_level: warn\n"), 0o600))

	opts := &RootOptions{Format: "text", ConfigPath: cfgPath, RunIDGenerator: func() string { return "fixed" }}
	cmd := NewAddCommand(opts)
	require.NoError(t, opts.setup(cmd))
	assert.Equal(t, "from-file", opts.cfg.ResultsDir)
	assert.Equal(t, config.HeaderPositional, opts.cfg.Header)
	assert.Equal(t, "warn", opts.cfg.LogLevel)
	assert.Equal(t, "fixed", opts.runID)

	opts = &RootOptions{
		Format:      "text",
		ConfigPath:  cfgPath,
		ResultsDir:  "from-flag",
		Verbose:     true,
		BoundsCheck: true,
	}
	require.NoError(t, opts.setup(cmd))
	assert.Equal(t, "from-flag", opts.cfg.ResultsDir)
	assert.Equal(t, "debug", opts.cfg.LogLevel)
	assert.True(t, opts.cfg.BoundsCheck)
	assert.Len(t, opts.runID, 36, "default run id is a UUID")
}

func TestSetup_BadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("header: sloppy\n"), 0o600))

	opts := &RootOptions{Format: "text", ConfigPath: cfgPath}
	err := opts.setup(NewAddCommand(opts))
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalid))
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	opts = &RootOptions{Format: "text", LogLevel: "shout"}
	assert.Error(t, opts.setup(NewAddCommand(opts)))
}
