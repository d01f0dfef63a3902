package httpkit

import (
	"net/http"
	"time"

	"ttt/internal/platform/config"
	"ttt/internal/platform/net/middleware"
)

// CommonStack is the API middleware stack configured from TTT_API_* keys:
// CORS_ORIGINS (comma separated) and SLOW (access log warn threshold)
func CommonStack(cfg config.Conf) []func(http.Handler) http.Handler {
	return middleware.Defaults(
		middleware.CORSOptions{AllowedOrigins: cfg.MayList("CORS_ORIGINS", nil)},
		cfg.MayDuration("SLOW", 500*time.Millisecond),
	)
}
