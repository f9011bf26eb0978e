package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	waliAuthController "santri_backend/internals/features/wali/auth/controller"
	"santri_backend/internals/features/wali/auth/session"
	rateLimiter "santri_backend/internals/middlewares"
)

// WaliAuthRoutes: /api/wali/auth. Login & logout publik; me & change-password dijaga Guard (bagian wali).
func WaliAuthRoutes(wali fiber.Router, db *gorm.DB, sessions *session.Store) {
	ctrl := waliAuthController.NewWaliAuthController(db, sessions)

	g := wali.Group("/auth")
	g.Post("/login", rateLimiter.WaliLoginRateLimiter(), ctrl.Login)
	g.Post("/logout", ctrl.Logout)
	g.Get("/me", ctrl.Me)
	g.Post("/change-password", ctrl.ChangePassword)
}
