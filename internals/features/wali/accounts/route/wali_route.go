package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	waliController "santri_backend/internals/features/wali/accounts/controller"
	"santri_backend/internals/features/wali/auth/session"
)

// WaliAccountAdminRoutes: /api/admin/wali
func WaliAccountAdminRoutes(admin fiber.Router, db *gorm.DB, sessions *session.Store) {
	ctrl := waliController.NewWaliController(db, sessions)

	g := admin.Group("/wali")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Detail)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Patch("/:id/toggle", ctrl.Toggle)
	g.Post("/:id/reset-password", ctrl.ResetPassword)
	g.Put("/:id/children", ctrl.SetChildren)
	g.Delete("/:id", ctrl.Delete)
}
