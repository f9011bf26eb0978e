package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	aController "santri_backend/internals/features/pesantren/assessments/controller"
)

// AssessmentTeacherRoutes: /api/ustadz/assessments (input harian)
func AssessmentTeacherRoutes(ustadz fiber.Router, db *gorm.DB) {
	ctrl := aController.NewAssessmentController(db)

	g := ustadz.Group("/assessments")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Save)
	g.Get("/attendance-summary", ctrl.AttendanceSummary)
}

// AssessmentAdminRoutes: /api/admin/assessments (read-only + rekap)
func AssessmentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := aController.NewAssessmentController(db)

	g := admin.Group("/assessments")
	g.Get("/", ctrl.List)
	g.Get("/attendance-summary", ctrl.AttendanceSummary)
}
