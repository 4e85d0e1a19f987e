package serverhttp

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"renamer-service/internal/adtag"
	"renamer-service/internal/config"
	"renamer-service/internal/middleware"
	renHnd "renamer-service/internal/rename/handler"
	renSvc "renamer-service/internal/rename/service"
	"renamer-service/internal/vast"
	"renamer-service/server/http/handlers"
)

func NewRouter(cfg config.Config, logger zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	engine := renSvc.Default()
	tagCache, err := adtag.NewCache(cfg.AdTagCache)
	if err != nil {
		logger.Fatal().Err(err).Msg("ad tag cache")
	}
	vastClient := vast.NewClient()

	r.Get("/health", handlers.Health)
	r.Get("/api/health", handlers.Health)

	r.Post("/api/preview", renHnd.Preview(engine, logger))
	r.Post("/api/rename", renHnd.Rename(engine, logger))
	r.Post("/api/log", renHnd.Log(engine, logger))
	r.Post("/api/compare", handlers.Compare(logger))

	r.Post("/api/ad-tag/preview", handlers.AdTagPreview(tagCache, cfg.BaseURL, logger))
	r.Get("/test/{previewID}", handlers.AdTagTestPage(tagCache))

	r.Post("/api/html5/validate", handlers.HTML5Validate(logger))
	r.Post("/api/vast/preview", handlers.VASTPreview(vastClient, logger))

	// serve the SPA build when it is deployed next to the binary
	if st, err := os.Stat(cfg.StaticDir); err == nil && st.IsDir() {
		fs := http.FileServer(http.Dir(cfg.StaticDir))
		r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
			fs.ServeHTTP(w, req)
		})
		logger.Info().Str("dir", cfg.StaticDir).Msg("serving static build")
	}

	return r
}
