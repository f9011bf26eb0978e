package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	waliDTO "santri_backend/internals/features/wali/accounts/dto"
	waliModel "santri_backend/internals/features/wali/accounts/model"
	waliService "santri_backend/internals/features/wali/accounts/service"
	"santri_backend/internals/features/wali/auth/session"
	helper "santri_backend/internals/helpers"
	helperAuth "santri_backend/internals/helpers/auth"
	"santri_backend/internals/helpers/phone"
)

type WaliController struct {
	DB       *gorm.DB
	Sessions *session.Store
}

func NewWaliController(db *gorm.DB, sessions *session.Store) *WaliController {
	return &WaliController{DB: db, Sessions: sessions}
}

// GET /wali?q=&active=
func (h *WaliController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)
	q := h.DB.WithContext(c.UserContext()).Model(&waliModel.WaliSantriModel{})
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		pat := helper.ILikePattern(v)
		q = q.Where("(LOWER(name) LIKE ? OR phone LIKE ?)", pat, pat)
	}
	if b := helper.ParseBoolQuery(c, "active"); b != nil {
		q = q.Where("is_active = ?", *b)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung wali santri")
	}
	var rows []waliModel.WaliSantriModel
	if err := q.Order("name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil wali santri")
	}

	out := make([]waliDTO.WaliResponse, 0, len(rows))
	for i := range rows {
		out = append(out, waliDTO.NewWaliResponse(&rows[i], nil))
	}
	return helper.JsonList(c, "Daftar wali santri", out, p.Pagination(total))
}

// GET /wali/:id (beserta daftar anak)
func (h *WaliController) Detail(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}
	children, err := waliService.ChildrenOf(c.UserContext(), h.DB, m.ID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anak")
	}
	return helper.JsonOK(c, "Detail wali santri", waliDTO.NewWaliResponse(m, children))
}

// POST /wali: password kosong → 6 digit terakhir nomor HP
func (h *WaliController) Create(c *fiber.Ctx) error {
	var req waliDTO.CreateWaliRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	if phone.Normalize(req.Phone) == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nomor HP tidak valid")
	}
	hash, err := helperAuth.HashPassword(req.PlainPassword())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	m := req.ToModel(hash)
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor HP sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah wali santri")
	}
	return helper.JsonCreated(c, "Wali santri ditambahkan", waliDTO.NewWaliResponse(m, []waliDTO.ChildBrief{}))
}

// PATCH /wali/:id
func (h *WaliController) Update(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}
	var req waliDTO.UpdateWaliRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	changes := req.Changes()
	if len(changes) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada perubahan")
	}
	if v, ok := changes["phone"].(string); ok && v == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Nomor HP tidak valid")
	}

	oldPhone := m.Phone
	db := h.DB.WithContext(c.UserContext())
	if err := db.Model(m).Updates(changes).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor HP sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui wali santri")
	}
	if err := db.First(m, "id = ?", m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil wali santri")
	}
	// sesi lama menyimpan nomor lama
	if m.Phone != oldPhone {
		h.revoke(c, m.ID)
	}
	return helper.JsonUpdated(c, "Wali santri diperbarui", waliDTO.NewWaliResponse(m, nil))
}

// PATCH /wali/:id/toggle: menonaktifkan akun juga mencabut semua sesinya
func (h *WaliController) Toggle(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}
	db := h.DB.WithContext(c.UserContext())
	if _, err := helper.ToggleActive(db, &waliModel.WaliSantriModel{}, m.ID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status wali santri")
	}
	if err := db.First(m, "id = ?", m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil wali santri")
	}
	if !m.IsActive {
		h.revoke(c, m.ID)
	}
	return helper.JsonUpdated(c, "Status wali santri diubah", waliDTO.NewWaliResponse(m, nil))
}

// POST /wali/:id/reset-password → kembali ke password default
func (h *WaliController) ResetPassword(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}
	hash, err := helperAuth.HashPassword(phone.DefaultPassword(m.Phone))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := h.DB.WithContext(c.UserContext()).Model(m).Update("password", hash).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mereset password")
	}
	h.revoke(c, m.ID)
	return helper.JsonUpdated(c, "Password wali direset ke 6 digit terakhir nomor HP", nil)
}

// PUT /wali/:id/children
func (h *WaliController) SetChildren(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID wali tidak valid")
	}
	var req waliDTO.SetChildrenRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	res, err := waliService.ReplaceChildren(c.UserContext(), h.DB, id, req.StudentIDs)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Data anak diperbarui", res)
}

// DELETE /wali/:id
func (h *WaliController) Delete(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}
	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("wali_id = ?", m.ID).Delete(&waliModel.WaliSantriChildModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&waliModel.WaliSantriModel{}, "id = ?", m.ID).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus wali santri")
	}
	h.revoke(c, m.ID)
	return helper.JsonDeleted(c, "Wali santri dihapus", fiber.Map{"id": m.ID})
}

// revoke: kegagalan Redis tidak membatalkan perubahan data, cukup dicatat.
func (h *WaliController) revoke(c *fiber.Ctx, waliID uuid.UUID) {
	if h.Sessions == nil {
		return
	}
	if n, err := h.Sessions.RevokeWali(c.UserContext(), waliID); err != nil {
		log.Printf("[WARN] gagal mencabut sesi wali %s: %v", waliID, err)
	} else if n > 0 {
		log.Printf("[INFO] %d sesi wali %s dicabut", n, waliID)
	}
}

func (h *WaliController) findByID(c *fiber.Ctx) (*waliModel.WaliSantriModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID wali tidak valid")
	}
	var m waliModel.WaliSantriModel
	if err := h.DB.WithContext(c.UserContext()).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Wali santri tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil wali santri")
	}
	return &m, nil
}
