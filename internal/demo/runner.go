package demo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Runner executes fixtures against a single output writer. Transcript bytes
// go only to that writer; diagnostics go through the logger so the
// transcript stays byte-stable.
type Runner struct {
	out    io.Writer
	logger *zap.Logger
}

// NewRunner creates a Runner. A nil logger is replaced with a no-op logger.
func NewRunner(out io.Writer, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{out: out, logger: logger}
}

// Run writes the fixture's transcript to the runner's output.
func (r *Runner) Run(ctx context.Context, f Fixture) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	runID := uuid.NewString()
	start := time.Now()

	if err := f.Write(r.out); err != nil {
		r.logger.Error("fixture run failed",
			zap.String("run_id", runID),
			zap.String("fixture", f.Name),
			zap.Error(err))
		return fmt.Errorf("run fixture %s: %w", f.Name, err)
	}

	r.logger.Debug("fixture run complete",
		zap.String("run_id", runID),
		zap.String("fixture", f.Name),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// RunNamed resolves name in the registry and runs it.
func (r *Runner) RunNamed(ctx context.Context, reg *Registry, name string) error {
	f, ok := reg.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown fixture %q (known: %v)", name, reg.Names())
	}
	return r.Run(ctx, f)
}

// Verify runs every registered fixture twice into scratch buffers and
// confirms both passes produced identical bytes. Returns the number of
// fixtures checked.
func (r *Runner) Verify(ctx context.Context, reg *Registry) (int, error) {
	checked := 0
	for _, f := range reg.Fixtures() {
		if err := ctx.Err(); err != nil {
			return checked, err
		}

		var first, second bytes.Buffer
		if err := f.Write(&first); err != nil {
			return checked, fmt.Errorf("verify fixture %s: %w", f.Name, err)
		}
		if err := f.Write(&second); err != nil {
			return checked, fmt.Errorf("verify fixture %s: %w", f.Name, err)
		}
		if !bytes.Equal(first.Bytes(), second.Bytes()) {
			return checked, fmt.Errorf("fixture %s is not deterministic: output differs between runs", f.Name)
		}

		r.logger.Debug("fixture verified",
			zap.String("fixture", f.Name),
			zap.Int("bytes", first.Len()))
		checked++
	}
	return checked, nil
}
