package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	aDTO "santri_backend/internals/features/pesantren/assessments/dto"
	"santri_backend/internals/features/pesantren/assessments/service"
	helper "santri_backend/internals/helpers"
	helperAuth "santri_backend/internals/helpers/auth"
	"santri_backend/internals/helpers/dbtime"
)

type AssessmentController struct {
	DB *gorm.DB
}

func NewAssessmentController(db *gorm.DB) *AssessmentController {
	return &AssessmentController{DB: db}
}

// GET /assessments?date=YYYY-MM-DD&session_id=&halaqah=
func (h *AssessmentController) List(c *fiber.Ctx) error {
	date, err := dbtime.ParseDate(c.Query("date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	var sessionID *uuid.UUID
	if v := strings.TrimSpace(c.Query("session_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "session_id tidak valid")
		}
		sessionID = &id
	}

	rows, err := service.ListByDay(c.UserContext(), h.DB, date, sessionID, c.Query("halaqah"))
	if err != nil {
		log.Printf("[ERROR] list penilaian: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil penilaian")
	}
	return helper.JsonOK(c, "Penilaian harian", aDTO.NewAssessmentResponses(rows))
}

// POST /assessments: upsert satu lembar (tanggal + sesi)
func (h *AssessmentController) Save(c *fiber.Ctx) error {
	var req aDTO.SaveAssessmentsRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	date, err := dbtime.ParseDate(req.Date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}

	var assessedBy *uuid.UUID
	if staff, err := helperAuth.MustStaff(c); err == nil {
		id := staff.ProfileID
		assessedBy = &id
	}

	n, err := service.SaveBulk(c.UserContext(), h.DB, date, req.SessionID, req.Items, assessedBy)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "Penilaian berhasil disimpan", fiber.Map{
		"date":       dbtime.FormatDate(date),
		"session_id": req.SessionID,
		"saved":      n,
	})
}

// GET /assessments/attendance-summary?date=&halaqah=
func (h *AssessmentController) AttendanceSummary(c *fiber.Ctx) error {
	date, err := dbtime.ParseDate(c.Query("date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
	}
	halaqah := strings.TrimSpace(c.Query("halaqah"))

	summary, students, critID, err := service.DaySummary(c.UserContext(), h.DB, date, halaqah)
	if err != nil {
		log.Printf("[ERROR] rekap kehadiran: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung rekap kehadiran")
	}
	return helper.JsonOK(c, "Rekap kehadiran", aDTO.AttendanceSummaryResponse{
		Date:       dbtime.FormatDate(date),
		Halaqah:    halaqah,
		CriteriaID: critID,
		Summary:    summary,
		Students:   students,
	})
}
