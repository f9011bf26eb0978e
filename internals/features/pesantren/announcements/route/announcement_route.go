package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"santri_backend/internals/constants"
	anController "santri_backend/internals/features/pesantren/announcements/controller"
)

// AnnouncementAdminRoutes: /api/admin/announcements
func AnnouncementAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := anController.NewAnnouncementController(db)

	g := admin.Group("/announcements")
	g.Get("/", ctrl.List)
	g.Post("/", ctrl.Create)
	g.Patch("/:id", ctrl.Update)
	g.Patch("/:id/toggle", ctrl.Toggle)
	g.Delete("/:id", ctrl.Delete)
}

// AnnouncementTeacherRoutes: /api/ustadz/announcements
func AnnouncementTeacherRoutes(ustadz fiber.Router, db *gorm.DB) {
	ctrl := anController.NewAnnouncementController(db)
	ustadz.Get("/announcements", ctrl.ForAudience(constants.AudienceUstadz))
}

// AnnouncementWaliRoutes: /api/wali/announcements
func AnnouncementWaliRoutes(wali fiber.Router, db *gorm.DB) {
	ctrl := anController.NewAnnouncementController(db)
	wali.Get("/announcements", ctrl.ForAudience(constants.AudienceWali))
}
