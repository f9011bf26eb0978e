package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	anDTO "santri_backend/internals/features/pesantren/announcements/dto"
	anModel "santri_backend/internals/features/pesantren/announcements/model"
	"santri_backend/internals/features/pesantren/announcements/service"
	helper "santri_backend/internals/helpers"
	helperAuth "santri_backend/internals/helpers/auth"
)

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

// GET /api/admin/announcements?audience=&active=
func (h *AnnouncementController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)
	q := h.DB.WithContext(c.UserContext()).Model(&anModel.AnnouncementModel{})
	if v := strings.TrimSpace(c.Query("audience")); v != "" {
		q = q.Where("audience = ?", v)
	}
	if b := helper.ParseBoolQuery(c, "active"); b != nil {
		q = q.Where("is_active = ?", *b)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung pengumuman")
	}
	var rows []anModel.AnnouncementModel
	if err := q.Order("created_at DESC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}
	return helper.JsonList(c, "Daftar pengumuman", anDTO.NewAnnouncementResponses(rows), p.Pagination(total))
}

// ForAudience: daftar pengumuman aktif untuk ustadz / wali.
func (h *AnnouncementController) ForAudience(audience string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rows, err := service.ListActive(c.UserContext(), h.DB, audience, 50)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
		}
		return helper.JsonOK(c, "Pengumuman", anDTO.NewAnnouncementResponses(rows))
	}
}

// POST /api/admin/announcements
func (h *AnnouncementController) Create(c *fiber.Ctx) error {
	var req anDTO.CreateAnnouncementRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	var createdBy *uuid.UUID
	if staff, err := helperAuth.MustStaff(c); err == nil {
		id := staff.ProfileID
		createdBy = &id
	}

	m := req.ToModel(createdBy)
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pengumuman")
	}
	return helper.JsonCreated(c, "Pengumuman dibuat", anDTO.NewAnnouncementResponse(m))
}

// PATCH /api/admin/announcements/:id
func (h *AnnouncementController) Update(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}
	var req anDTO.UpdateAnnouncementRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	changes := req.Changes()
	if len(changes) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada perubahan")
	}

	db := h.DB.WithContext(c.UserContext())
	if err := db.Model(m).Updates(changes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pengumuman")
	}
	if err := db.First(m, "id = ?", m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}
	return helper.JsonUpdated(c, "Pengumuman diperbarui", anDTO.NewAnnouncementResponse(m))
}

// PATCH /api/admin/announcements/:id/toggle
func (h *AnnouncementController) Toggle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID pengumuman tidak valid")
	}
	db := h.DB.WithContext(c.UserContext())
	found, err := helper.ToggleActive(db, &anModel.AnnouncementModel{}, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status pengumuman")
	}
	if !found {
		return helper.JsonError(c, fiber.StatusNotFound, "Pengumuman tidak ditemukan")
	}
	var m anModel.AnnouncementModel
	if err := db.First(&m, "id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}
	return helper.JsonUpdated(c, "Status pengumuman diubah", anDTO.NewAnnouncementResponse(&m))
}

// DELETE /api/admin/announcements/:id
func (h *AnnouncementController) Delete(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}
	if err := h.DB.WithContext(c.UserContext()).Delete(&anModel.AnnouncementModel{}, "id = ?", m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pengumuman")
	}
	return helper.JsonDeleted(c, "Pengumuman dihapus", fiber.Map{"id": m.ID})
}

func (h *AnnouncementController) findByID(c *fiber.Ctx) (*anModel.AnnouncementModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID pengumuman tidak valid")
	}
	var m anModel.AnnouncementModel
	if err := h.DB.WithContext(c.UserContext()).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Pengumuman tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil pengumuman")
	}
	return &m, nil
}

