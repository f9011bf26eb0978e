package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	wdService "santri_backend/internals/features/wali/dashboard/service"
	helper "santri_backend/internals/helpers"
	helperAuth "santri_backend/internals/helpers/auth"
	"santri_backend/internals/helpers/dbtime"
)

type WaliDashboardController struct {
	DB *gorm.DB
}

func NewWaliDashboardController(db *gorm.DB) *WaliDashboardController {
	return &WaliDashboardController{DB: db}
}

// GET /api/wali/children
func (h *WaliDashboardController) Children(c *fiber.Ctx) error {
	p, err := helperAuth.MustParent(c)
	if err != nil {
		return err
	}
	rows, err := wdService.ChildrenByPhone(c.UserContext(), h.DB, p.Phone)
	if err != nil {
		log.Printf("[ERROR] anak wali %s: %v", p.WaliID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}
	return helper.JsonOK(c, "Daftar anak", rows)
}

// GET /api/wali/dashboard
func (h *WaliDashboardController) Summary(c *fiber.Ctx) error {
	p, err := helperAuth.MustParent(c)
	if err != nil {
		return err
	}
	sum, err := wdService.DashboardSummary(c.UserContext(), h.DB, p.Phone, dbtime.Today())
	if err != nil {
		log.Printf("[ERROR] dashboard wali %s: %v", p.WaliID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memuat dashboard")
	}
	return helper.JsonOK(c, "Ringkasan dashboard wali", sum)
}
