package cli

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), err
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "regmap", cmd.Use)
	assert.Contains(t, cmd.Long, "CTU CAN FD")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"generate", "list", "decode", "encode", "layout", "check", "dump"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
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

	require.NotNil(t, cmd.PersistentFlags().Lookup("log-level"))
}

func TestSourceFlags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"list", "decode", "encode", "layout", "check", "dump"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err)
		assert.NotNil(t, sub.Flags().Lookup("in"), name)
		assert.NotNil(t, sub.Flags().Lookup("block"), name)
	}
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "--format", "yaml", "list")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `invalid format "yaml"`)
}

func TestUsageErrors(t *testing.T) {
	_, err := execute(t, "decode", "MODE")
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "list", "--no-such-flag")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(errors.New("plain")))
	assert.Equal(t, ExitCommandError, GetExitCode(NewExitError(ExitCommandError, "usage")))

	wrapped := WrapExitError(ExitFailure, "inconsistent", errors.New("overlap"))
	assert.Equal(t, "inconsistent: overlap", wrapped.Error())
	assert.Equal(t, ExitFailure, GetExitCode(wrapped))
}

func TestSubcommandStandalone(t *testing.T) {
	var buf bytes.Buffer
	cmd := NewLayoutCommand(&RootOptions{Format: "text"})
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"TX_STATUS"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "uint32_t tx1s")
}
