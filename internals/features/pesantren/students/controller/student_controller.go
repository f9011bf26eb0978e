// internals/features/pesantren/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	aModel "santri_backend/internals/features/pesantren/assessments/model"
	scModel "santri_backend/internals/features/pesantren/scores/model"
	sDTO "santri_backend/internals/features/pesantren/students/dto"
	sModel "santri_backend/internals/features/pesantren/students/model"
	waliModel "santri_backend/internals/features/wali/accounts/model"
	helper "santri_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

/* ===================== HANDLERS ===================== */

// GET /students?halaqah=&status=&q=&page=&per_page=
func (h *StudentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 200)

	q := h.DB.WithContext(c.UserContext()).Model(&sModel.StudentModel{})
	if v := strings.TrimSpace(c.Query("halaqah")); v != "" {
		q = q.Where("halaqah = ?", v)
	}
	if v := strings.TrimSpace(c.Query("status")); v != "" {
		q = q.Where("status = ?", v)
	}
	if v := strings.TrimSpace(c.Query("q")); v != "" {
		q = q.Where("LOWER(name) LIKE ?", helper.ILikePattern(v))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data santri")
	}

	var rows []sModel.StudentModel
	if err := q.Order("halaqah ASC, name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}

	return helper.JsonList(c, "Daftar santri", sDTO.NewStudentResponses(rows), p.Pagination(total))
}

// GET /students/halaqah
func (h *StudentController) Halaqahs(c *fiber.Ctx) error {
	var out []string
	if err := h.DB.WithContext(c.UserContext()).
		Model(&sModel.StudentModel{}).
		Distinct("halaqah").
		Order("halaqah ASC").
		Pluck("halaqah", &out).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar halaqah")
	}
	if out == nil {
		out = []string{}
	}
	return helper.JsonOK(c, "Daftar halaqah", out)
}

// GET /students/:id
func (h *StudentController) Detail(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Detail santri", sDTO.NewStudentResponse(m))
}

// POST /students
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req sDTO.CreateStudentRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah santri")
	}
	return helper.JsonCreated(c, "Santri berhasil ditambahkan", sDTO.NewStudentResponse(m))
}

// PATCH /students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}

	var req sDTO.UpdateStudentRequest
	if ok, err := helper.BindAndValidate(c, &req); !ok {
		return err
	}
	changes := req.Changes()
	if len(changes) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tidak ada perubahan")
	}

	if err := h.DB.WithContext(c.UserContext()).Model(m).Updates(changes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui santri")
	}
	if err := h.DB.WithContext(c.UserContext()).First(m, "id = ?", m.ID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}
	return helper.JsonUpdated(c, "Santri diperbarui", sDTO.NewStudentResponse(m))
}

// DELETE /students/:id: ikut menghapus relasi wali, penilaian & nilai santri tsb.
func (h *StudentController) Delete(c *fiber.Ctx) error {
	m, err := h.findByID(c)
	if err != nil {
		return err
	}

	err = h.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("student_id = ?", m.ID).Delete(&waliModel.WaliSantriChildModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", m.ID).Delete(&aModel.DailyAssessmentModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("student_id = ?", m.ID).Delete(&scModel.DailyScoreModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&sModel.StudentModel{}, "id = ?", m.ID).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus santri")
	}
	return helper.JsonDeleted(c, "Santri dihapus", fiber.Map{"id": m.ID})
}

/* ===================== HELPERS ===================== */

func (h *StudentController) findByID(c *fiber.Ctx) (*sModel.StudentModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "ID santri tidak valid")
	}
	var m sModel.StudentModel
	if err := h.DB.WithContext(c.UserContext()).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Santri tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data santri")
	}
	return &m, nil
}
