package docctx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDirMissing(t *testing.T) {
	lib, err := LoadDir(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)

	assert.Empty(t, lib.Topics())
	assert.Nil(t, lib.Chunks("Loops"))
	assert.Equal(t, "", lib.RandomChunk("Loops"))
}

func TestLoadDirIgnoresNonPDF(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not study material"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Loops.pdf"), 0o755))

	lib, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, lib.Topics())
}
