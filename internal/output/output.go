// Package output writes per-frame body positions to plain text files,
// the sink described in spec.md §6: one file per frame, whitespace
// separated "x y" per line in body insertion order, no header, no id
// column.
package output

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/johnxnguyen/newton/vector"
)

// ErrIOFailure wraps any error writing or creating output files.
var ErrIOFailure = errors.New("output: io failure")

// Sink writes frames to a directory, created on first use.
type Sink struct {
	dir    string
	logger *zap.Logger
}

// NewSink returns a Sink rooted at dir. The directory is created lazily
// on the first WriteFrame call so an unused Sink never touches the
// filesystem.
func NewSink(dir string, logger *zap.Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{dir: dir, logger: logger}
}

// WriteFrame writes positions to a zero-padded file named for frame,
// e.g. frame_00042.txt.
func (s *Sink) WriteFrame(frame int, positions []vector.Point) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("output: create dir %q: %w: %v", s.dir, ErrIOFailure, err)
	}

	path := filepath.Join(s.dir, fmt.Sprintf("frame_%05d.txt", frame))
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("output: create file %q: %w: %v", path, ErrIOFailure, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, p := range positions {
		if _, err := fmt.Fprintf(w, "%g %g\n", p.X, p.Y); err != nil {
			return fmt.Errorf("output: write %q: %w: %v", path, ErrIOFailure, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("output: flush %q: %w: %v", path, ErrIOFailure, err)
	}

	s.logger.Debug("wrote frame",
		zap.Int("frame", frame),
		zap.Int("bodies", len(positions)),
		zap.String("path", path),
	)
	return nil
}
