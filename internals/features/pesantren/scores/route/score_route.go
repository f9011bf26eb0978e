package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	scController "santri_backend/internals/features/pesantren/scores/controller"
)

// ScoreTeacherRoutes: /api/ustadz/scores
func ScoreTeacherRoutes(ustadz fiber.Router, db *gorm.DB) {
	ctrl := scController.NewScoreController(db)

	g := ustadz.Group("/scores")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Delete("/:id", ctrl.Delete)
}

// ScoreAdminRoutes: /api/admin/scores (read-only)
func ScoreAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := scController.NewScoreController(db)
	admin.Get("/scores", ctrl.List)
}
