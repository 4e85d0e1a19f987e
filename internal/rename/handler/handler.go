package handler

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"renamer-service/internal/archive"
	"renamer-service/internal/fileio"
	"renamer-service/internal/rename/model"
	renSvc "renamer-service/internal/rename/service"
)

const defaultThreshold = 0.7

// request is one parsed preview/rename upload: the creatives archive, the
// resolved canonical name list and the resolution results.
type request struct {
	zipReader *zip.Reader
	entries   []archive.Entry
	names     []string
	matches   []model.MatchResult
}

func parseRequest(w http.ResponseWriter, r *http.Request, engine *renSvc.Engine) (*request, bool) {
	defer r.Body.Close()
	if err := r.ParseMultipartForm(64 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
		return nil, false
	}

	zipBytes, zipName, err := readUpload(r, "zip_file")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	if !isZipName(zipName) {
		writeError(w, http.StatusBadRequest, "Please upload a ZIP file for creatives.")
		return nil, false
	}
	sheetBytes, sheetName, err := readUpload(r, "sheet")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}

	opts := fileio.NamesOptions{
		SheetName:    r.FormValue("sheet_name"),
		ColumnHeader: r.FormValue("column_header"),
		ColumnIndex:  -1,
	}
	if v := r.FormValue("column_index"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			opts.ColumnIndex = i
		}
	}
	names, err := fileio.ReadAnyNames(bytes.NewReader(sheetBytes), sheetName, opts)
	if err != nil {
		if errors.Is(err, fileio.ErrNoNames) {
			writeError(w, http.StatusBadRequest,
				"No creative names found in the sheet. Check that a column contains CM360-style names (e.g. with underscores).")
		} else {
			writeError(w, http.StatusBadRequest, "sheet error: "+err.Error())
		}
		return nil, false
	}

	zr, err := openZip(zipBytes)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid ZIP: "+err.Error())
		return nil, false
	}
	entries := archive.Entries(zr)
	stems := make([]string, len(entries))
	for i, e := range entries {
		stems[i] = e.Stem
	}

	threshold := toFloat(r.FormValue("threshold"), defaultThreshold)
	if threshold < 0 || threshold > 1 {
		threshold = defaultThreshold
	}

	return &request{
		zipReader: zr,
		entries:   entries,
		names:     names,
		matches:   engine.ResolveAll(stems, names, threshold),
	}, true
}

func previewResult(req *request) model.PreviewResult {
	rows := make([]model.PreviewRow, len(req.entries))
	for i, e := range req.entries {
		rows[i] = model.PreviewRow{
			FilePath:    e.Path,
			FileStem:    req.matches[i].FileStem,
			MatchedName: req.matches[i].MatchedName,
			Score:       req.matches[i].Score,
			Extension:   e.Ext,
		}
	}
	return model.PreviewResult{Preview: rows, SheetNamesCount: len(req.names)}
}

// Preview returns the mapping without touching the archive.
func Preview(engine *renSvc.Engine, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		req, ok := parseRequest(w, r, engine)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, previewResult(req))
		logger.Info().
			Int("files", len(req.entries)).
			Int("sheet_names", len(req.names)).
			Dur("elapsed", time.Since(start)).
			Msg("preview done")
	}
}

// Rename streams back the renamed archive.
func Rename(engine *renSvc.Engine, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		req, ok := parseRequest(w, r, engine)
		if !ok {
			return
		}
		out, logRows, err := archive.BuildRenamed(req.zipReader, req.entries, req.matches)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to build archive: "+err.Error())
			return
		}
		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", "attachment; filename=renamed-creatives.zip")
		_, _ = w.Write(out)
		logger.Info().
			Int("files", len(logRows)).
			Dur("elapsed", time.Since(start)).
			Msg("rename done")
	}
}

// Log returns the rename log as CSV text, so the frontend can offer it as
// a download next to the archive.
func Log(engine *renSvc.Engine, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := parseRequest(w, r, engine)
		if !ok {
			return
		}
		var buf bytes.Buffer
		cw := csv.NewWriter(&buf)
		_ = cw.Write([]string{"Old Name", "New Name", "Match %"})
		for i, e := range req.entries {
			base := e.Stem
			if req.matches[i].MatchedName != nil {
				base = *req.matches[i].MatchedName
			}
			_ = cw.Write([]string{
				e.Path,
				base + e.Ext,
				strconv.FormatFloat(req.matches[i].Score, 'f', 1, 64),
			})
		}
		cw.Flush()
		writeJSON(w, http.StatusOK, map[string]string{"csv": buf.String()})
		logger.Debug().Int("files", len(req.entries)).Msg("log built")
	}
}
