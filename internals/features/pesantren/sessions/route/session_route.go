package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sesController "santri_backend/internals/features/pesantren/sessions/controller"
)

// SessionAdminRoutes: /api/admin/sessions
func SessionAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := sesController.NewSessionController(db)

	g := admin.Group("/sessions")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Patch("/:id/toggle", ctrl.Toggle)
	g.Delete("/:id", ctrl.Delete)
}

// SessionTeacherRoutes: /api/ustadz/sessions (read-only)
func SessionTeacherRoutes(ustadz fiber.Router, db *gorm.DB) {
	ctrl := sesController.NewSessionController(db)
	ustadz.Get("/sessions", ctrl.List)
}
