package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/lmittmann/tint"

	"github.com/wassat/website/internal/logging"
)

// requestLogger logs one line per request.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				level := slog.LevelInfo
				switch {
				case status >= 500:
					level = slog.LevelError
				case r.URL.Path == "/healthz" || status < 400 && isAsset(r.URL.Path):
					level = slog.LevelDebug
				}
				logger.LogAttrs(r.Context(), level, "request",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					tint.Attr(logging.StatusColor(status), slog.Int("status", status)),
					slog.Int("bytes", ww.BytesWritten()),
					tint.Attr(logging.ColorDim, slog.Duration("duration", time.Since(start))),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func isAsset(path string) bool {
	return len(path) >= len("/assets/") && path[:len("/assets/")] == "/assets/"
}
