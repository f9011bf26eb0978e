package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dController "santri_backend/internals/features/pesantren/dashboard/controller"
)

// DashboardDispatchRoute: GET /dashboard
func DashboardDispatchRoute(app fiber.Router, db *gorm.DB) {
	ctrl := dController.NewDashboardController(db)
	app.Get("/dashboard", ctrl.Dispatch)
}

func DashboardAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := dController.NewDashboardController(db)
	admin.Get("/dashboard", ctrl.Admin)
}

func DashboardTeacherRoutes(ustadz fiber.Router, db *gorm.DB) {
	ctrl := dController.NewDashboardController(db)
	ustadz.Get("/dashboard", ctrl.Teacher)
}
