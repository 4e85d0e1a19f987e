package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"renamer-service/internal/adtag"
)

// AdTagPreview stores a pasted HTML ad tag and hands back the test page URL.
func AdTagPreview(cache *adtag.Cache, baseURL string, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		html := strings.TrimSpace(r.FormValue("html"))
		if html == "" {
			writeError(w, http.StatusBadRequest, "Please paste an HTML ad tag.")
			return
		}
		id := cache.Put(html)
		testURL := "/test/" + id
		if baseURL != "" {
			testURL = baseURL + testURL
		}
		logger.Debug().Str("preview_id", id).Msg("ad tag cached")
		writeJSON(w, http.StatusOK, map[string]string{
			"preview_id":    id,
			"test_page_url": testURL,
			"script":        html,
		})
	}
}

// AdTagTestPage renders the stored tag inside a neutral page so it can be
// eyeballed at actual size.
func AdTagTestPage(cache *adtag.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "previewID")
		html, ok := cache.Get(id)
		if !ok {
			writeError(w, http.StatusNotFound, "Preview not found or expired.")
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprintf(w, `<!DOCTYPE html>
<html><head><meta charset="utf-8"><base target="_blank"></head>
<body style="margin:0;padding:0;min-height:100vh;display:flex;align-items:center;justify-content:center;background:#1e293b;">
<div style="min-width:300px;min-height:250px;background:#fff;">
%s
</div>
</body></html>`, html)
	}
}
