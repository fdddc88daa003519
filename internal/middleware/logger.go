package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/httplog/v2"
)

// Logger returns the structured access log middleware. Production logs are
// JSON; development logs stay concise.
func Logger(service, env string) func(http.Handler) http.Handler {
	prod := env == "production"
	logger := httplog.NewLogger(service, httplog.Options{
		JSON:             prod,
		LogLevel:         slog.LevelInfo,
		Concise:          !prod,
		MessageFieldName: "message",
		Tags: map[string]string{
			"env": env,
		},
		QuietDownRoutes: []string{"/health"},
		QuietDownPeriod: 10 * time.Second,
	})
	return httplog.RequestLogger(logger)
}
