package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")

	_, err := New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestReadMissingDocumentMaterializesDefault(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	def := []string{"a", "b"}
	doc, err := Read(s, "tags", def)
	require.NoError(t, err)
	assert.Equal(t, def, doc)

	// The default must now exist on disk: a second read sees the same
	// document even if the default changes.
	doc2, err := Read(s, "tags", []string{})
	require.NoError(t, err)
	assert.Equal(t, def, doc2)

	_, err = os.Stat(filepath.Join(s.dir, "tags.json"))
	assert.NoError(t, err)
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	want := doc{Name: "lot-a", Count: 3}
	require.NoError(t, Write(s, "site", want))

	got, err := Read(s, "site", doc{})
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestWriteOverwritesWholeDocument(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, Write(s, "list", []int{1, 2, 3}))
	require.NoError(t, Write(s, "list", []int{9}))

	got, err := Read(s, "list", []int{})
	require.NoError(t, err)
	assert.Equal(t, []int{9}, got)
}

func TestReadMalformedFilePropagatesError(t *testing.T) {
	s, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(s.dir, "broken.json"), []byte("{not json"), 0o644))

	_, err = Read(s, "broken", map[string]string{})
	assert.Error(t, err)
}
