package archive_test

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renamer-service/internal/archive"
	"renamer-service/internal/rename/model"
)

func buildZip(t *testing.T, files map[string]string) *zip.Reader {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	return zr
}

func TestStemAndExt(t *testing.T) {
	tests := []struct {
		path string
		stem string
		ext  string
	}{
		{"folder/Promo_300x600.jpg", "Promo_300x600", ".jpg"},
		{"banner.html", "banner", ".html"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"noext", "noext", ""},
		{".hidden", ".hidden", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.stem, archive.Stem(tt.path), "stem of %q", tt.path)
		assert.Equal(t, tt.ext, archive.Ext(tt.path), "ext of %q", tt.path)
	}
}

func TestEntriesSkipsDirectories(t *testing.T) {
	zr := buildZip(t, map[string]string{
		"dir/":      "",
		"dir/a.jpg": "a",
	})
	entries := archive.Entries(zr)
	require.Len(t, entries, 1)
	assert.Equal(t, "dir/a.jpg", entries[0].Path)
}

func TestBuildRenamed(t *testing.T) {
	zr := buildZip(t, map[string]string{
		"a/one.jpg": "one",
		"two.jpg":   "two",
		"three.jpg": "three",
	})
	entries := archive.Entries(zr)
	require.Len(t, entries, 3)

	canonical := "Brand_BEFR_300x250"
	matches := make([]model.MatchResult, 3)
	for i, e := range entries {
		matches[i] = model.MatchResult{FileStem: e.Stem}
	}
	// first two collide on the same canonical name, third is unmatched
	matches[0].MatchedName = &canonical
	matches[0].Score = 91.5
	matches[1].MatchedName = &canonical
	matches[1].Score = 88.0

	out, logRows, err := archive.BuildRenamed(zr, entries, matches)
	require.NoError(t, err)
	require.Len(t, logRows, 3)

	outZr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)

	var names []string
	for _, f := range outZr.File {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "Brand_BEFR_300x250.jpg")
	assert.Contains(t, names, "Brand_BEFR_300x250_1.jpg")
	// unmatched files keep their stem
	assert.Contains(t, names, entries[2].Stem+".jpg")
	assert.Equal(t, 91.5, logRows[0].MatchPct)
}

func TestBuildRenamedLengthMismatch(t *testing.T) {
	zr := buildZip(t, map[string]string{"a.jpg": "a"})
	_, _, err := archive.BuildRenamed(zr, archive.Entries(zr), nil)
	assert.Error(t, err)
}

func TestCompare(t *testing.T) {
	z1 := buildZip(t, map[string]string{
		"shared.jpg":  "same bytes",
		"changed.jpg": "old",
		"gone.jpg":    "x",
	})
	z2 := buildZip(t, map[string]string{
		"sub/shared.jpg": "same bytes",
		"changed.jpg":    "new",
		"added.jpg":      "y",
	})

	res := archive.Compare(z1, z2)
	assert.Equal(t, []string{"shared.jpg"}, res.SameContent)
	assert.Equal(t, []string{"changed.jpg"}, res.DifferentContent)
	assert.Equal(t, []string{"gone.jpg"}, res.OnlyIn1)
	assert.Equal(t, []string{"added.jpg"}, res.OnlyIn2)
	assert.Equal(t, 1, res.Summary.SameContentCount)
	assert.Equal(t, 1, res.Summary.OnlyIn2Count)
}
