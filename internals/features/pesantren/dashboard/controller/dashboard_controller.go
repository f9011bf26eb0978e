package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dService "santri_backend/internals/features/pesantren/dashboard/service"
	scService "santri_backend/internals/features/pesantren/scores/service"
	helper "santri_backend/internals/helpers"
	helperAuth "santri_backend/internals/helpers/auth"
	"santri_backend/internals/helpers/dbtime"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /dashboard → 303 ke beranda sesuai identitas (anonim → /login)
func (h *DashboardController) Dispatch(c *fiber.Ctx) error {
	return helper.JsonRedirect(c, helperAuth.HomeFor(helperAuth.GetIdentity(c)))
}

// GET /api/admin/dashboard
func (h *DashboardController) Admin(c *fiber.Ctx) error {
	out, err := dService.AdminSummary(c.UserContext(), h.DB, dbtime.Today())
	if err != nil {
		log.Printf("[ERROR] dashboard admin: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat dashboard")
	}
	return helper.JsonOK(c, "Ringkasan dashboard admin", out)
}

// GET /api/ustadz/dashboard
func (h *DashboardController) Teacher(c *fiber.Ctx) error {
	staff, err := helperAuth.MustStaff(c)
	if err != nil {
		return err
	}
	out, err := dService.TeacherSummary(c.UserContext(), h.DB, scService.UstadzIDOf(staff), dbtime.Today())
	if err != nil {
		log.Printf("[ERROR] dashboard ustadz: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat dashboard")
	}
	return helper.JsonOK(c, "Ringkasan dashboard ustadz", out)
}
