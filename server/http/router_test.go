package serverhttp_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"renamer-service/internal/config"
	serverhttp "renamer-service/server/http"
)

func TestRouterHealth(t *testing.T) {
	r := serverhttp.NewRouter(config.Config{}, zerolog.Nop())

	for _, path := range []string{"/health", "/api/health"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Contains(t, rec.Body.String(), "ok")
	}
}

func TestRouterUnknownPreviewPage(t *testing.T) {
	r := serverhttp.NewRouter(config.Config{}, zerolog.Nop())
	req := httptest.NewRequest(http.MethodGet, "/test/doesnotexist", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
