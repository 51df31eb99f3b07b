package requestcontext

import (
	"context"

	"github.com/gaze-network/dot721-indexer/pkg/logger"
	"github.com/gaze-network/dot721-indexer/pkg/logger/slogx"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	fiberutils "github.com/gofiber/fiber/v2/utils"
)

type Option func(ctx context.Context, c *fiber.Ctx) context.Context

// New sets up the user context of each request with the given options.
func New(opts ...Option) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.UserContext()
		for _, opt := range opts {
			ctx = opt(ctx, c)
		}
		c.SetUserContext(ctx)
		return c.Next()
	}
}

type requestIDKey struct{}

// GetRequestID returns the request id of the context, or an empty string if not set.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}

// WithRequestID adds the request id to the context and its logger. The id set by
// the requestid middleware is reused, else it's taken from the request header or generated.
func WithRequestID() Option {
	return func(ctx context.Context, c *fiber.Ctx) context.Context {
		id, ok := c.Locals(requestid.ConfigDefault.ContextKey).(string)
		if !ok || id == "" {
			id = c.Get(requestid.ConfigDefault.Header, fiberutils.UUID())
			c.Set(requestid.ConfigDefault.Header, id)
			c.Locals(requestid.ConfigDefault.ContextKey, id)
		}
		ctx = context.WithValue(ctx, requestIDKey{}, id)
		return logger.WithContext(ctx, slogx.String("request_id", id))
	}
}
