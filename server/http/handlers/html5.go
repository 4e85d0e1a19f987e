package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"renamer-service/internal/html5"
)

// HTML5Validate checks the structure of an uploaded HTML5 creative bundle.
func HTML5Validate(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		if err := r.ParseMultipartForm(64 << 20); err != nil {
			writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return
		}
		zr, err := readZipUpload(r, "zip_file")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		rep := html5.Validate(zr)
		writeJSON(w, http.StatusOK, rep)
		logger.Debug().Bool("valid", rep.Valid).Int("files", rep.FileCount).Msg("html5 validated")
	}
}
