package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"renamer-service/internal/vast"
)

// VASTPreview fetches a VAST tag URL and returns its parsed structure.
func VASTPreview(client *vast.Client, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawURL := r.FormValue("vast_url")
		if rawURL == "" {
			writeError(w, http.StatusBadRequest, "Please paste a VAST tag URL.")
			return
		}
		p, err := client.Fetch(r.Context(), rawURL)
		if err != nil {
			if errors.Is(err, vast.ErrBadURL) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			logger.Warn().Err(err).Msg("vast fetch failed")
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}
