// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "santri_backend/internals/features/users/auth/controller"
	rateLimiter "santri_backend/internals/middlewares"
	authMw "santri_backend/internals/middlewares/auth"
)

// AuthRoutes: /api/auth (staff). Login publik, sisanya wajib sesi staff.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	baseAuth := r.Group("/auth")
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/logout", authController.Logout)

	protectedAuth := baseAuth.Group("", authMw.RequireStaff())
	protectedAuth.Get("/me", authController.Me)
	protectedAuth.Post("/change-password", authController.ChangePassword)
}

