package wordlist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	in := "Crane\n  slate \n\ncrane\ncranes\nab-cd\nTRAIN\r\nfour\n"
	words, err := Read(strings.NewReader(in), 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate", "train"}, words)

	words, err = Read(strings.NewReader(in), 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"four"}, words)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte("crane\nslate\n"), 0o644))

	words, err := Load(path, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"crane", "slate"}, words)

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"), 5)
	assert.Error(t, err)
}

func TestLoadOrSample(t *testing.T) {
	dir := t.TempDir()

	words, warning, err := LoadOrSample(filepath.Join(dir, "missing.txt"), 5)
	require.NoError(t, err)
	assert.Equal(t, Sample, words)
	assert.Contains(t, warning, "not found")

	path := filepath.Join(dir, "sixes.txt")
	require.NoError(t, os.WriteFile(path, []byte("planet\n"), 0o644))
	words, warning, err = LoadOrSample(path, 5)
	require.NoError(t, err)
	assert.Equal(t, Sample, words)
	assert.Contains(t, warning, "no 5-letter words")

	words, warning, err = LoadOrSample(path, 6)
	require.NoError(t, err)
	assert.Equal(t, []string{"planet"}, words)
	assert.Empty(t, warning)
}
