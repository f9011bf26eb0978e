package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tController "santri_backend/internals/features/pesantren/teachers/controller"
)

// TeacherAdminRoutes: /api/admin/teachers
func TeacherAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := tController.NewTeacherController(db)

	g := admin.Group("/teachers")
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.Detail)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Patch("/:id/toggle", ctrl.Toggle)
	g.Post("/:id/reset-password", ctrl.ResetPassword)
	g.Delete("/:id", ctrl.Delete)
}
