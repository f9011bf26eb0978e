package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wdController "santri_backend/internals/features/wali/dashboard/controller"
)

// WaliDashboardRoutes: /api/wali/children & /api/wali/dashboard
func WaliDashboardRoutes(wali fiber.Router, db *gorm.DB) {
	ctrl := wdController.NewWaliDashboardController(db)
	wali.Get("/children", ctrl.Children)
	wali.Get("/dashboard", ctrl.Summary)
}
