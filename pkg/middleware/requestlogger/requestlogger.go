package requestlogger

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/dot721-indexer/pkg/logger"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	// Disable skips logging of successful requests.
	Disable bool `mapstructure:"disable"`

	WithRequestQuery bool `mapstructure:"request_query"`
}

// New logs every completed request, failed requests are logged at error level.
func New(config Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		latency := time.Since(start)
		status := c.Response().StatusCode()

		level := slog.LevelInfo
		attrs := []slog.Attr{
			slog.String("event", "api_request"),
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("route", c.Route().Path),
			slog.String("ip", c.IP()),
			slog.Int("status", status),
			slog.Int64("latency", latency.Milliseconds()),
			slog.String("latencyHuman", latency.String()),
		}
		if config.WithRequestQuery {
			attrs = append(attrs, slog.String("query", string(c.Request().URI().QueryString())))
		}
		if err != nil || status >= http.StatusInternalServerError {
			level = slog.LevelError
			logErr := err
			if logErr == nil {
				logErr = fiber.NewError(status)
			}
			attrs = append(attrs, slog.Any("error", logErr))
		}

		if config.Disable && level == slog.LevelInfo {
			return errors.WithStack(err)
		}
		logger.LogAttrs(c.UserContext(), level, "Request Completed", attrs...)
		return errors.WithStack(err)
	}
}
