package html5_test

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renamer-service/internal/html5"
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

func TestValidateOK(t *testing.T) {
	zr := buildZip(t, map[string]string{
		"ad/index.html": "<html></html>",
		"ad/app.js":     "console.log(1)",
	})
	rep := html5.Validate(zr)
	assert.True(t, rep.Valid)
	assert.Empty(t, rep.Errors)
	assert.Equal(t, 2, rep.FileCount)
	assert.Equal(t, "ad/index.html", rep.IndexPath)
}

func TestValidateMissingIndex(t *testing.T) {
	zr := buildZip(t, map[string]string{"banner.js": "x"})
	rep := html5.Validate(zr)
	assert.False(t, rep.Valid)
	require.Len(t, rep.Errors, 1)
	assert.Contains(t, rep.Errors[0], "index.html")
}

func TestValidateInitialLoadWarning(t *testing.T) {
	zr := buildZip(t, map[string]string{
		"index.htm": strings.Repeat("a", 300*1024),
	})
	rep := html5.Validate(zr)
	assert.True(t, rep.Valid)
	require.Len(t, rep.Warnings, 1)
	assert.Greater(t, rep.InitialLoadKB, float64(html5.MaxInitialLoadKB))
}
