package handler_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renamer-service/internal/rename/handler"
	"renamer-service/internal/rename/model"
	"renamer-service/internal/rename/service"
)

func multipartUpload(t *testing.T, files map[string][2]string, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for field, nameAndContent := range files {
		fw, err := mw.CreateFormFile(field, nameAndContent[0])
		require.NoError(t, err)
		_, err = fw.Write([]byte(nameAndContent[1]))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func creativesZip(t *testing.T, names ...string) string {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, n := range names {
		w, err := zw.Create(n)
		require.NoError(t, err)
		_, err = w.Write([]byte("pixels"))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.String()
}

func traffickingCSV() string {
	return strings.Join([]string{
		"Creative Name",
		"Belgium_Q12026_Promo_SPRINGGLASS_300x600_BEFR",
		"Belgium_Q12026_Promo_SPRINGGLASS_300x250_BEFR",
		"Belgium_Q12026_Promo_WINTERGLASS_728x90_BENL",
	}, "\n")
}

func doPreview(t *testing.T, fields map[string]string, zipContent string) *httptest.ResponseRecorder {
	t.Helper()
	body, ctype := multipartUpload(t,
		map[string][2]string{
			"zip_file": {"creatives.zip", zipContent},
			"sheet":    {"t-sheet.csv", traffickingCSV()},
		}, fields)
	req := httptest.NewRequest(http.MethodPost, "/api/preview", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	handler.Preview(service.Default(), zerolog.Nop())(rec, req)
	return rec
}

func TestPreviewEndToEnd(t *testing.T) {
	zipContent := creativesZip(t,
		"assets/Promo_SPRINGGLASS_300x600_FR.jpg",
		"assets/unrelated_noise.txt",
	)
	rec := doPreview(t, map[string]string{"threshold": "0,5"}, zipContent)
	require.Equal(t, http.StatusOK, rec.Code)

	var res model.PreviewResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Preview, 2)
	assert.Equal(t, 3, res.SheetNamesCount)

	first := res.Preview[0]
	assert.Equal(t, "assets/Promo_SPRINGGLASS_300x600_FR.jpg", first.FilePath)
	assert.Equal(t, "Promo_SPRINGGLASS_300x600_FR", first.FileStem)
	require.NotNil(t, first.MatchedName)
	// size 300x600 and region FR pin the right sheet row
	assert.Equal(t, "Belgium_Q12026_Promo_SPRINGGLASS_300x600_BEFR", *first.MatchedName)
	assert.Equal(t, ".jpg", first.Extension)

	assert.Nil(t, res.Preview[1].MatchedName)
}

func TestPreviewRejectsNonZip(t *testing.T) {
	body, ctype := multipartUpload(t,
		map[string][2]string{
			"zip_file": {"creatives.rar", "x"},
			"sheet":    {"t.csv", traffickingCSV()},
		}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/preview", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	handler.Preview(service.Default(), zerolog.Nop())(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreviewRejectsNamelessSheet(t *testing.T) {
	body, ctype := multipartUpload(t,
		map[string][2]string{
			"zip_file": {"creatives.zip", creativesZip(t, "a.jpg")},
			"sheet":    {"t.csv", "no,names\nhere,atall\n"},
		}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/preview", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	handler.Preview(service.Default(), zerolog.Nop())(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No creative names")
}

func TestRenameStreamsZip(t *testing.T) {
	body, ctype := multipartUpload(t,
		map[string][2]string{
			"zip_file": {"creatives.zip", creativesZip(t, "Promo_SPRINGGLASS_300x600_FR.jpg")},
			"sheet":    {"t.csv", traffickingCSV()},
		}, map[string]string{"threshold": "0.5"})
	req := httptest.NewRequest(http.MethodPost, "/api/rename", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	handler.Rename(service.Default(), zerolog.Nop())(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/zip", rec.Header().Get("Content-Type"))

	zr, err := zip.NewReader(bytes.NewReader(rec.Body.Bytes()), int64(rec.Body.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	assert.Equal(t, "Belgium_Q12026_Promo_SPRINGGLASS_300x600_BEFR.jpg", zr.File[0].Name)
}

func TestLogReturnsCSV(t *testing.T) {
	body, ctype := multipartUpload(t,
		map[string][2]string{
			"zip_file": {"creatives.zip", creativesZip(t, "Promo_SPRINGGLASS_300x600_FR.jpg")},
			"sheet":    {"t.csv", traffickingCSV()},
		}, map[string]string{"threshold": "0.5"})
	req := httptest.NewRequest(http.MethodPost, "/api/log", body)
	req.Header.Set("Content-Type", ctype)
	rec := httptest.NewRecorder()
	handler.Log(service.Default(), zerolog.Nop())(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var res map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Contains(t, res["csv"], "Old Name,New Name,Match %")
	assert.Contains(t, res["csv"], "Belgium_Q12026_Promo_SPRINGGLASS_300x600_BEFR.jpg")
}
