package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	AnnouncementRoutes "santri_backend/internals/features/pesantren/announcements/route"
	WaliDashboardRoutes "santri_backend/internals/features/wali/dashboard/route"
)

// WaliRoutes: /api/wali/* (sesi wali wajib, dijaga Guard)
func WaliRoutes(wali fiber.Router, db *gorm.DB) {
	WaliDashboardRoutes.WaliDashboardRoutes(wali, db)
	AnnouncementRoutes.AnnouncementWaliRoutes(wali, db)
}
