package exif

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectWithoutExif(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favicon.ico")
	require.NoError(t, os.WriteFile(path, []byte("\x00\x00\x01\x00 not a jpeg"), 0o644))

	_, _, err := Reader{}.Inspect(context.Background(), path)
	assert.ErrorIs(t, err, ErrNoMetadata)
}

func TestInspectMissingFile(t *testing.T) {
	_, _, err := Reader{}.Inspect(context.Background(), filepath.Join(t.TempDir(), "absent.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestInspectCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := Reader{}.Inspect(ctx, "unused")
	assert.ErrorIs(t, err, context.Canceled)
}
