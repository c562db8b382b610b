package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnxnguyen/newton/internal/output"
	"github.com/johnxnguyen/newton/vector"
)

func TestWriteFrameCreatesDirAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	sink := output.NewSink(dir, nil)

	positions := []vector.Point{{X: 1, Y: 2}, {X: -3.5, Y: 0}}
	require.NoError(t, sink.WriteFrame(3, positions))

	data, err := os.ReadFile(filepath.Join(dir, "frame_00003.txt"))
	require.NoError(t, err)
	assert.Equal(t, "1 2\n-3.5 0\n", string(data))
}

func TestWriteFrameEmptyField(t *testing.T) {
	dir := t.TempDir()
	sink := output.NewSink(dir, nil)

	require.NoError(t, sink.WriteFrame(0, nil))
	data, err := os.ReadFile(filepath.Join(dir, "frame_00000.txt"))
	require.NoError(t, err)
	assert.Equal(t, "", string(data))
}
