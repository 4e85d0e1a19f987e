package handlers

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(code)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

// readZipUpload reads one multipart field that must be a ZIP archive.
func readZipUpload(r *http.Request, field string) (*zip.Reader, error) {
	f, hdr, err := r.FormFile(field)
	if err != nil {
		return nil, fmt.Errorf("missing %s: %w", field, err)
	}
	defer f.Close()
	if !strings.HasSuffix(strings.ToLower(hdr.Filename), ".zip") {
		return nil, fmt.Errorf("%s must be a ZIP", field)
	}
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	zr, err := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		return nil, fmt.Errorf("invalid ZIP: %w", err)
	}
	return zr, nil
}
