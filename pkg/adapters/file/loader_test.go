package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/advent/pkg/adapters/file"
	"github.com/aretw0/advent/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ ports.InputLoader = (*file.Loader)(nil)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single newline", "\n", nil},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"no trailing newline", "a\nb", []string{"a", "b"}},
		{"crlf", "a\r\n\r\nb\r\n", []string{"a", "", "b"}},
		{"keeps inner blank", "a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, file.SplitLines(tt.in))
		})
	}
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "8.in"), []byte("LR\n\nAAA = (ZZZ, ZZZ)\n"), 0644))

	loader := file.NewLoader(dir)
	assert.Equal(t, filepath.Join(dir, "8.in"), loader.Path(8))

	lines, err := loader.Load(context.Background(), 8)
	require.NoError(t, err)
	assert.Equal(t, []string{"LR", "", "AAA = (ZZZ, ZZZ)"}, lines)

	_, err = loader.Load(context.Background(), 2)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_DefaultDir(t *testing.T) {
	loader := file.NewLoader("")
	assert.Equal(t, filepath.Join("data", "6.in"), loader.Path(6))
}

func TestLoader_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := file.NewLoader(t.TempDir()).Load(ctx, 8)
	assert.ErrorIs(t, err, context.Canceled)
}
