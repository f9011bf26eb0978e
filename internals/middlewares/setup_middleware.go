package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"santri_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global; recover harus paling luar.
func SetupMiddlewares(app *fiber.App, requestTimeout time.Duration) {
	app.Use(RecoveryMiddleware())

	// ⚙️ performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())

	// 🔎 Request-ID + timing + timeout (selaras dengan statement_timeout di DB)
	app.Use(RequestContext(requestTimeout))

	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
