package demo

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stream closed")
}

func TestRunnerRun(t *testing.T) {
	t.Run("writes transcript to output", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRunner(&buf, zap.NewNop())

		f, ok := DefaultRegistry().Lookup("python")
		require.True(t, ok)
		require.NoError(t, r.Run(context.Background(), f))

		assert.Equal(t, pythonTranscript, buf.String())
	})

	t.Run("propagates writer failure", func(t *testing.T) {
		r := NewRunner(failingWriter{}, nil)

		f, _ := DefaultRegistry().Lookup("python")
		err := r.Run(context.Background(), f)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "run fixture python")
	})

	t.Run("honours cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		var buf bytes.Buffer
		r := NewRunner(&buf, nil)
		f, _ := DefaultRegistry().Lookup("go")

		require.ErrorIs(t, r.Run(ctx, f), context.Canceled)
		assert.Zero(t, buf.Len())
	})
}

func TestRunnerRunNamed(t *testing.T) {
	reg := DefaultRegistry()

	t.Run("known fixture", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRunner(&buf, nil)

		require.NoError(t, r.RunNamed(context.Background(), reg, "rust"))
		assert.Equal(t, rustTranscript, buf.String())
	})

	t.Run("unknown fixture", func(t *testing.T) {
		r := NewRunner(&bytes.Buffer{}, nil)

		err := r.RunNamed(context.Background(), reg, "cobol")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown fixture "cobol"`)
	})
}

func TestRunnerVerify(t *testing.T) {
	t.Run("all built-in fixtures are deterministic", func(t *testing.T) {
		r := NewRunner(&bytes.Buffer{}, zap.NewNop())

		checked, err := r.Verify(context.Background(), DefaultRegistry())
		require.NoError(t, err)
		assert.Equal(t, 5, checked)
	})

	t.Run("reports the failing fixture", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register(Fixture{
			Name: "broken",
			Write: func(w io.Writer) error {
				return errors.New("boom")
			},
		})

		r := NewRunner(&bytes.Buffer{}, nil)
		checked, err := r.Verify(context.Background(), reg)
		assert.Zero(t, checked)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "verify fixture broken")
	})
}
