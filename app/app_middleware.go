package app

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jalexanderII/spatial-todo/config"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
)

// FiberMiddleware provides Fiber's built-in middlewares.
// See: https://docs.gofiber.io/api/middleware
func FiberMiddleware(a *fiber.App, cfg *config.Config, l *logrus.Logger) {
	a.Use(
		// recover from panic
		recover.New(),
		// Tag every request so access and error logs can be joined.
		requestid.New(requestid.Config{
			Generator: func() string {
				return gonanoid.Must()
			},
		}),
		// Access log, written through logrus.
		logger.New(logger.Config{
			Format: "[${ip}]:${port} ${locals:requestid} ${status} - ${method} ${path} ${latency}\n",
			Output: l.Writer(),
		}),
		// Add CORS to each route.
		cors.New(cors.Config{
			AllowOrigins: "*",
			AllowMethods: "GET,HEAD,PUT,PATCH,POST,DELETE",
			AllowHeaders: "Content-Type,Authorization,X-Requested-With",
		}),
	)

	if cfg.RateLimitMax > 0 {
		// add rate limiter
		a.Use(limiter.New(limiter.Config{
			Max:               cfg.RateLimitMax,
			Expiration:        cfg.RateLimitWindow(),
			LimiterMiddleware: limiter.SlidingWindow{},
		}))
	}
}
