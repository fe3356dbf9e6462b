package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUpFromGoldenFile(t *testing.T) {
	filename := SetUpFromGoldenFile(t)

	assert.Equal(t, "TestSetUpFromGoldenFile.md", filepath.Base(filename))
	bytes, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, GoldenFileNamed(t, "TestSetUpFromGoldenFile.md"), bytes)
}

func TestSetUpFromFileContent(t *testing.T) {
	filename := SetUpFromFileContent(t, "note.md", "# A note\n")

	assert.Equal(t, "note.md", filepath.Base(filename))
	bytes, err := os.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "# A note\n", string(bytes))
}

func TestGoldenFile(t *testing.T) {
	assert.Equal(t, "# Notes\n\nMy personal notes.\n", string(GoldenFile(t)))
}
