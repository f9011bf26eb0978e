package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sController "santri_backend/internals/features/pesantren/students/controller"
)

// StudentAdminRoutes: /api/admin/students (CRUD)
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := sController.NewStudentController(db)

	g := admin.Group("/students")
	g.Get("/", ctrl.List)
	g.Get("/halaqah", ctrl.Halaqahs)
	g.Get("/:id", ctrl.Detail)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Delete("/:id", ctrl.Delete)
}

// StudentTeacherRoutes: /api/ustadz/students (read-only)
func StudentTeacherRoutes(ustadz fiber.Router, db *gorm.DB) {
	ctrl := sController.NewStudentController(db)

	g := ustadz.Group("/students")
	g.Get("/", ctrl.List)
	g.Get("/halaqah", ctrl.Halaqahs)
	g.Get("/:id", ctrl.Detail)
}
