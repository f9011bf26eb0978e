package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	cDTO "santri_backend/internals/features/pesantren/criteria/dto"
	cModel "santri_backend/internals/features/pesantren/criteria/model"
	helper "santri_backend/internals/helpers"
)

type CriteriaController struct {
	DB *gorm.DB
}

func NewCriteriaController(db *gorm.DB) *CriteriaController {
	return &CriteriaController{DB: db}
}

// GET /criteria?aspect=&active=
func (h *CriteriaController) List(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.UserContext()).Model(&cModel.CriteriaRefModel{})
	if v := strings.TrimSpace(c.Query("aspect")); v != "" {
		q = q.Where("aspect = ?", v)
	}
	if b := helper.ParseBoolQuery(c, "active"); b != nil {
		q = q.Where("is_active = ?", *b)
	}

	var rows []cModel.CriteriaRefModel
	if err := q.Order("aspect ASC, sort_order ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kriteria")
	}
	return helper.JsonOK(c, "Daftar kriteria", rows)
}

// POST /criteria: sort_order = jumlah kriteria di aspek tsb + 1
func (h *CriteriaController) Create(c *fiber.Ctx) error {
	var req cDTO.CreateCriteriaRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	var m *cModel.CriteriaRefModel
	err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		next, err := helper.NextSortOrder(tx, &cModel.CriteriaRefModel{}, func(q *gorm.DB) *gorm.DB {
			return q.Where("aspect = ?", req.Aspect)
		})
		if err != nil {
			return err
		}
		m = req.ToModel(next)
		return tx.Create(m).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Kriteria ditambahkan", m)
}

// PATCH /criteria/:id
func (h *CriteriaController) Update(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}
	var req cDTO.UpdateCriteriaRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	changes := req.Changes()
	if len(changes) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada perubahan")
	}

	if err := h.DB.WithContext(c.UserContext()).Model(m).Updates(changes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kriteria")
	}
	if err := h.DB.WithContext(c.UserContext()).First(m, "id = ?", m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kriteria")
	}
	return helper.JsonUpdated(c, "Kriteria diperbarui", m)
}

// PATCH /criteria/:id/toggle: hanya membalik is_active
func (h *CriteriaController) Toggle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID kriteria tidak valid")
	}

	db := h.DB.WithContext(c.UserContext())
	found, err := helper.ToggleActive(db, &cModel.CriteriaRefModel{}, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status kriteria")
	}
	if !found {
		return helper.JsonError(c, fiber.StatusNotFound, "Kriteria tidak ditemukan")
	}

	var m cModel.CriteriaRefModel
	if err := db.First(&m, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kriteria")
	}
	msg := "Kriteria dinonaktifkan"
	if m.IsActive {
		msg = "Kriteria diaktifkan"
	}
	return helper.JsonUpdated(c, msg, m)
}

// DELETE /criteria/:id: ditolak bila sudah dipakai penilaian (nonaktifkan saja)
func (h *CriteriaController) Delete(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}

	db := h.DB.WithContext(c.UserContext())
	var used int64
	if err := db.Table("daily_assessments").Where("criteria_id = ?", m.ID).Count(&used).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa penggunaan kriteria")
	}
	if used > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Kriteria sudah dipakai penilaian, nonaktifkan saja")
	}

	if err := db.Delete(&cModel.CriteriaRefModel{}, "id = ?", m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus kriteria")
	}
	return helper.JsonDeleted(c, "Kriteria dihapus", fiber.Map{"id": m.ID})
}

func (h *CriteriaController) findByID(c *fiber.Ctx) (*cModel.CriteriaRefModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID kriteria tidak valid")
	}
	var m cModel.CriteriaRefModel
	if err := h.DB.WithContext(c.UserContext()).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kriteria tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil kriteria")
	}
	return &m, nil
}
