package iox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReaderTXTSkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regexes.txt")
	require.NoError(t, os.WriteFile(path, []byte("a|b\n\n  ab*cd*  \n\nz+(a|b)\n"), 0o644))

	lines, err := ReaderTXT(path)
	require.NoError(t, err)
	require.Equal(t, []string{"a|b", "ab*cd*", "z+(a|b)"}, lines)
}

func TestReaderTXTMissingFile(t *testing.T) {
	_, err := ReaderTXT(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
