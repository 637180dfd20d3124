package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/VedantPanchal23/Web-IDE/internal/config"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCommand(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetOut(out)
	return cmd
}

func TestRunFixture(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()

	t.Run("bare invocation emits the python transcript", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runFixture(newTestCommand(&out), nil))

		assert.True(t, strings.HasPrefix(out.String(), "🐍 Hello from Python!\n"))
		assert.Contains(t, out.String(), "Math: 10 + 5 * 2 = 20")
		assert.Contains(t, out.String(), "Squares: [1, 4, 9, 16, 25]")
		assert.True(t, strings.HasSuffix(out.String(), "✅ Python execution complete!\n"))
	})

	t.Run("explicit fixture argument", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, runFixture(newTestCommand(&out), []string{"go"}))

		assert.True(t, strings.HasPrefix(out.String(), "Hello from Go!\n"))
		assert.Contains(t, out.String(), "10 + 20 = 30")
	})

	t.Run("configured default is honoured", func(t *testing.T) {
		cfg = config.DefaultConfig()
		cfg.Demos.Default = "rust"
		defer func() { cfg = config.DefaultConfig() }()

		var out bytes.Buffer
		require.NoError(t, runFixture(newTestCommand(&out), nil))
		assert.True(t, strings.HasPrefix(out.String(), "🦀 Hello from Rust!\n"))
	})

	t.Run("unknown fixture is an error", func(t *testing.T) {
		var out bytes.Buffer
		err := runFixture(newTestCommand(&out), []string{"cobol"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown fixture")
	})
}

func TestRunList(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()

	var out bytes.Buffer
	require.NoError(t, runList(newTestCommand(&out), nil))

	for _, want := range []string{"python", "go", "cpp", "rust", "java", "Language"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestRunVerify(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()

	var out bytes.Buffer
	require.NoError(t, runVerify(newTestCommand(&out), nil))

	assert.Equal(t, "✓ 5 fixtures verified deterministic\n", out.String())
}

func TestDeterministicAcrossInvocations(t *testing.T) {
	logger = zap.NewNop()
	cfg = config.DefaultConfig()

	var first, second bytes.Buffer
	require.NoError(t, runFixture(newTestCommand(&first), nil))
	require.NoError(t, runFixture(newTestCommand(&second), nil))

	assert.Equal(t, first.Bytes(), second.Bytes())
}
