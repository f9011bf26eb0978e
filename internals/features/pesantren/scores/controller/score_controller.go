package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"santri_backend/internals/constants"
	scDTO "santri_backend/internals/features/pesantren/scores/dto"
	"santri_backend/internals/features/pesantren/scores/service"
	helper "santri_backend/internals/helpers"
	helperAuth "santri_backend/internals/helpers/auth"
	"santri_backend/internals/helpers/dbtime"
)

type ScoreController struct {
	DB *gorm.DB
}

func NewScoreController(db *gorm.DB) *ScoreController {
	return &ScoreController{DB: db}
}

// POST /scores
func (h *ScoreController) Create(c *fiber.Ctx) error {
	staff, err := helperAuth.MustStaff(c)
	if err != nil {
		return err
	}
	var req scDTO.CreateScoreRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	score, standing, err := service.Create(c.UserContext(), h.DB, service.UstadzIDOf(staff), req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Nilai berhasil disimpan", fiber.Map{
		"score":   scDTO.NewScoreResponse(score),
		"student": standing,
	})
}

// GET /scores?student_id=&date=&mine=true&page=&per_page=
func (h *ScoreController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)
	f := service.ListFilter{Limit: p.Limit, Offset: p.Offset}

	if v := strings.TrimSpace(c.Query("student_id")); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		f.StudentID = &id
	}
	if v := strings.TrimSpace(c.Query("date")); v != "" {
		d, err := dbtime.ParseDate(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format tanggal harus YYYY-MM-DD")
		}
		f.Date = &d
	}
	if b := helper.ParseBoolQuery(c, "mine"); b != nil && *b {
		staff, err := helperAuth.MustStaff(c)
		if err != nil {
			return err
		}
		id := service.UstadzIDOf(staff)
		f.UstadzID = &id
	}

	rows, total, err := service.List(c.UserContext(), h.DB, f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil nilai")
	}
	return helper.JsonList(c, "Daftar nilai", scDTO.NewScoreResponses(rows), p.Pagination(total))
}

// DELETE /scores/:id: ustadz hanya nilai miliknya; super_admin bebas.
func (h *ScoreController) Delete(c *fiber.Ctx) error {
	staff, err := helperAuth.MustStaff(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID nilai tidak valid")
	}

	var owner *uuid.UUID
	if staff.Role != constants.RoleSuperAdmin {
		uid := service.UstadzIDOf(staff)
		owner = &uid
	}

	standing, err := service.Delete(c.UserContext(), h.DB, id, owner)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonDeleted(c, "Nilai dihapus", fiber.Map{"id": id, "student": standing})
}
