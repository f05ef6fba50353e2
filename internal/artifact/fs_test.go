package artifact

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dkoroteev/streethunt/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFSStore_Put(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFSStore(dir)
	require.NoError(t, err)

	loc, err := s.Put(context.Background(), "report.pdf", []byte("%PDF-1.4 test"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "report.pdf"), loc)

	data, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 test", string(data))

	// no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestFSStore_PutOverwrites(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	loc1, err := s.Put(ctx, "report.pdf", []byte("one"))
	require.NoError(t, err)
	loc2, err := s.Put(ctx, "report.pdf", []byte("two"))
	require.NoError(t, err)
	assert.Equal(t, loc1, loc2)

	data, err := os.ReadFile(loc2)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestFSStore_StripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFSStore(dir)
	require.NoError(t, err)

	loc, err := s.Put(context.Background(), "../escape.pdf", []byte("x"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "escape.pdf"), loc)
}

func TestFSStore_CancelledContext(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Put(ctx, "report.pdf", []byte("x"))
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	cfg := &config.Config{ExportBackend: "fs", ExportDir: t.TempDir()}
	store, err := NewFromConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.IsType(t, &FSStore{}, store)

	cfg = &config.Config{ExportBackend: "carrier-pigeon"}
	_, err = NewFromConfig(context.Background(), cfg)
	assert.Error(t, err)

	cfg = &config.Config{ExportBackend: "s3"}
	_, err = NewFromConfig(context.Background(), cfg)
	assert.Error(t, err) // bucket missing
}
