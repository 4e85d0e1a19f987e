package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Host         string
	Port         int
	AllowOrigins []string
	LogLevel     string
	MaxUploadMB  int
	LogFile      string
	BaseURL      string // public base URL for preview links, "" = relative
	StaticDir    string // SPA build dir, served when it exists
	AdTagCache   int    // max cached ad-tag previews
}

func Load() Config {
	_ = godotenv.Load()

	port, _ := strconv.Atoi(getenv("PORT", "8082"))
	mb, _ := strconv.Atoi(getenv("MAX_UPLOAD_MB", "256"))
	cache, _ := strconv.Atoi(getenv("ADTAG_CACHE", "100"))
	origins := strings.Split(getenv("ALLOW_ORIGINS", "*"), ",")
	return Config{
		Host:         getenv("HOST", "127.0.0.1"),
		Port:         port,
		AllowOrigins: origins,
		LogLevel:     getenv("LOG_LEVEL", "info"),
		MaxUploadMB:  mb,
		LogFile:      getenv("LOG_FILE", "logs/renamer-service.log"),
		BaseURL:      strings.TrimRight(getenv("BASE_URL", ""), "/"),
		StaticDir:    getenv("STATIC_DIR", "static"),
		AdTagCache:   cache,
	}
}

func (c Config) Addr() string { return fmt.Sprintf("%s:%d", c.Host, c.Port) }

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
