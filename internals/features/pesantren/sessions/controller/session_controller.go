package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sesDTO "santri_backend/internals/features/pesantren/sessions/dto"
	sesModel "santri_backend/internals/features/pesantren/sessions/model"
	helper "santri_backend/internals/helpers"
)

type SessionController struct {
	DB *gorm.DB
}

func NewSessionController(db *gorm.DB) *SessionController {
	return &SessionController{DB: db}
}

// GET /sessions?active=
func (h *SessionController) List(c *fiber.Ctx) error {
	q := h.DB.WithContext(c.UserContext()).Model(&sesModel.SessionRefModel{})
	if b := helper.ParseBoolQuery(c, "active"); b != nil {
		q = q.Where("is_active = ?", *b)
	}
	var rows []sesModel.SessionRefModel
	if err := q.Order("sort_order ASC").Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}
	return helper.JsonOK(c, "Daftar sesi", rows)
}

// POST /sessions: sort_order = jumlah sesi + 1
func (h *SessionController) Create(c *fiber.Ctx) error {
	var req sesDTO.CreateSessionRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	var m *sesModel.SessionRefModel
	err := h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		next, err := helper.NextSortOrder(tx, &sesModel.SessionRefModel{}, nil)
		if err != nil {
			return err
		}
		m, err = req.ToModel(next)
		if err != nil {
			return fiber.NewError(fiber.StatusUnprocessableEntity, err.Error())
		}
		return tx.Create(m).Error
	})
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Sesi ditambahkan", m)
}

// PATCH /sessions/:id
func (h *SessionController) Update(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}
	var req sesDTO.UpdateSessionRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	changes, err := req.Changes(m)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if len(changes) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada perubahan")
	}

	db := h.DB.WithContext(c.UserContext())
	if err := db.Model(m).Updates(changes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui sesi")
	}
	if err := db.First(m, "id = ?", m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}
	return helper.JsonUpdated(c, "Sesi diperbarui", m)
}

// PATCH /sessions/:id/toggle
func (h *SessionController) Toggle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID sesi tidak valid")
	}

	db := h.DB.WithContext(c.UserContext())
	found, err := helper.ToggleActive(db, &sesModel.SessionRefModel{}, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status sesi")
	}
	if !found {
		return helper.JsonError(c, fiber.StatusNotFound, "Sesi tidak ditemukan")
	}

	var m sesModel.SessionRefModel
	if err := db.First(&m, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}
	msg := "Sesi dinonaktifkan"
	if m.IsActive {
		msg = "Sesi diaktifkan"
	}
	return helper.JsonUpdated(c, msg, m)
}

// DELETE /sessions/:id
func (h *SessionController) Delete(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}

	db := h.DB.WithContext(c.UserContext())
	var used int64
	if err := db.Table("daily_assessments").Where("session_id = ?", m.ID).Count(&used).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa penggunaan sesi")
	}
	if used > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Sesi sudah dipakai penilaian, nonaktifkan saja")
	}
	if err := db.Delete(&sesModel.SessionRefModel{}, "id = ?", m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus sesi")
	}
	return helper.JsonDeleted(c, "Sesi dihapus", fiber.Map{"id": m.ID})
}

func (h *SessionController) findByID(c *fiber.Ctx) (*sesModel.SessionRefModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID sesi tidak valid")
	}
	var m sesModel.SessionRefModel
	if err := h.DB.WithContext(c.UserContext()).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Sesi tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}
	return &m, nil
}
