package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	cController "santri_backend/internals/features/pesantren/criteria/controller"
)

// CriteriaAdminRoutes: /api/admin/criteria
func CriteriaAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := cController.NewCriteriaController(db)

	g := admin.Group("/criteria")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Patch("/:id/toggle", ctrl.Toggle)
	g.Delete("/:id", ctrl.Delete)
}

// CriteriaTeacherRoutes: /api/ustadz/criteria (read-only, untuk form penilaian)
func CriteriaTeacherRoutes(ustadz fiber.Router, db *gorm.DB) {
	ctrl := cController.NewCriteriaController(db)
	ustadz.Get("/criteria", ctrl.List)
}
