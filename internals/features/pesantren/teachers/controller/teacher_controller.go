package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"santri_backend/internals/constants"
	tDTO "santri_backend/internals/features/pesantren/teachers/dto"
	authDTO "santri_backend/internals/features/users/auth/dto"
	authModel "santri_backend/internals/features/users/auth/model"
	helper "santri_backend/internals/helpers"
	helperAuth "santri_backend/internals/helpers/auth"
)

// TeacherController: akun ustadz = baris profiles dengan role "ustadz".
type TeacherController struct {
	DB *gorm.DB
}

func NewTeacherController(db *gorm.DB) *TeacherController {
	return &TeacherController{DB: db}
}

func (h *TeacherController) scope(c *fiber.Ctx) *gorm.DB {
	return h.DB.WithContext(c.UserContext()).
		Model(&authModel.ProfileModel{}).
		Where("role = ?", constants.RoleUstadz)
}

func toResponses(rows []authModel.ProfileModel) []authDTO.ProfileResponse {
	out := make([]authDTO.ProfileResponse, 0, len(rows))
	for i := range rows {
		out = append(out, authDTO.NewProfileResponse(&rows[i]))
	}
	return out
}

// GET /teachers?q=&active=
func (h *TeacherController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)
	q := h.scope(c)
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		pat := helper.ILikePattern(v)
		q = q.Where("(LOWER(full_name) LIKE ? OR LOWER(email) LIKE ?)", pat, pat)
	}
	if b := helper.ParseBoolQuery(c, "active"); b != nil {
		q = q.Where("is_active = ?", *b)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung ustadz")
	}
	var rows []authModel.ProfileModel
	if err := q.Order("full_name ASC").Limit(p.Limit).Offset(p.Offset).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ustadz")
	}
	return helper.JsonList(c, "Daftar ustadz", toResponses(rows), p.Pagination(total))
}

// GET /teachers/:id
func (h *TeacherController) Detail(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Detail ustadz", authDTO.NewProfileResponse(m))
}

// POST /teachers
func (h *TeacherController) Create(c *fiber.Ctx) error {
	var req tDTO.CreateTeacherRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	hash, err := helperAuth.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	m := req.ToModel(hash)
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah ustadz")
	}
	return helper.JsonCreated(c, "Ustadz ditambahkan", authDTO.NewProfileResponse(m))
}

// PATCH /teachers/:id
func (h *TeacherController) Update(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}
	var req tDTO.UpdateTeacherRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	changes := req.Changes()
	if len(changes) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada perubahan")
	}

	db := h.DB.WithContext(c.UserContext())
	if err := db.Model(m).Updates(changes).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui ustadz")
	}
	if err := db.First(m, "id = ?", m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ustadz")
	}
	return helper.JsonUpdated(c, "Ustadz diperbarui", authDTO.NewProfileResponse(m))
}

// PATCH /teachers/:id/toggle
func (h *TeacherController) Toggle(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}
	db := h.DB.WithContext(c.UserContext())
	if _, err := helper.ToggleActive(db, &authModel.ProfileModel{}, m.ID); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengubah status ustadz")
	}
	if err := db.First(m, "id = ?", m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ustadz")
	}
	return helper.JsonUpdated(c, "Status ustadz diubah", authDTO.NewProfileResponse(m))
}

// POST /teachers/:id/reset-password
func (h *TeacherController) ResetPassword(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}
	var req tDTO.ResetTeacherPasswordRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	hash, err := helperAuth.HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}
	if err := h.DB.WithContext(c.UserContext()).Model(m).Update("password", hash).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mereset password")
	}
	return helper.JsonUpdated(c, "Password ustadz direset", nil)
}

// DELETE /teachers/:id: riwayat nilai tetap ada (ustadz_id tidak dihapus)
func (h *TeacherController) Delete(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}
	if err := h.DB.WithContext(c.UserContext()).Delete(&authModel.ProfileModel{}, "id = ?", m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus ustadz")
	}
	return helper.JsonDeleted(c, "Ustadz dihapus", fiber.Map{"id": m.ID})
}

func (h *TeacherController) findByID(c *fiber.Ctx) (*authModel.ProfileModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID ustadz tidak valid")
	}
	var m authModel.ProfileModel
	if err := h.scope(c).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Ustadz tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil ustadz")
	}
	return &m, nil
}
