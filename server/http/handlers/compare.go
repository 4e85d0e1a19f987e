package handlers

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"renamer-service/internal/archive"
)

// Compare diffs two uploaded archives by basename and content hash.
func Compare(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer r.Body.Close()
		if err := r.ParseMultipartForm(64 << 20); err != nil {
			writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return
		}
		z1, err := readZipUpload(r, "zip1")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		z2, err := readZipUpload(r, "zip2")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		res := archive.Compare(z1, z2)
		writeJSON(w, http.StatusOK, res)
		logger.Info().
			Int("same", res.Summary.SameContentCount).
			Int("different", res.Summary.DifferentContentCount).
			Dur("elapsed", time.Since(start)).
			Msg("compare done")
	}
}
