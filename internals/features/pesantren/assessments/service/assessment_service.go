// internals/features/pesantren/assessments/service/assessment_service.go
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"santri_backend/internals/constants"
	aDTO "santri_backend/internals/features/pesantren/assessments/dto"
	aModel "santri_backend/internals/features/pesantren/assessments/model"
	cModel "santri_backend/internals/features/pesantren/criteria/model"
	sesModel "santri_backend/internals/features/pesantren/sessions/model"
	sModel "santri_backend/internals/features/pesantren/students/model"
	"santri_backend/internals/helpers/calc"
)

const upsertBatch = 500

// AttendanceCriteria: kriteria aspek discipline yang aktif dan judulnya memuat "hadir".
// nil (tanpa error) bila belum dikonfigurasi.
func AttendanceCriteria(ctx context.Context, db *gorm.DB) (*cModel.CriteriaRefModel, error) {
	var m cModel.CriteriaRefModel
	err := db.WithContext(ctx).
		Where("aspect = ? AND is_active = ?", constants.AspectDiscipline, true).
		Where("LOWER(title) LIKE ?", "%"+constants.AttendanceCriteriaKeyword+"%").
		Order("sort_order ASC").
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListByDay: baris penilaian satu tanggal, opsional per sesi / halaqah.
func ListByDay(ctx context.Context, db *gorm.DB, date datatypes.Date, sessionID *uuid.UUID, halaqah string) ([]aModel.DailyAssessmentModel, error) {
	q := db.WithContext(ctx).
		Model(&aModel.DailyAssessmentModel{}).
		Where("daily_assessments.date = ?", date)
	if sessionID != nil {
		q = q.Where("daily_assessments.session_id = ?", *sessionID)
	}
	if h := strings.TrimSpace(halaqah); h != "" {
		q = q.Joins("JOIN students ON students.id = daily_assessments.student_id").
			Where("students.halaqah = ?", h)
	}

	var rows []aModel.DailyAssessmentModel
	err := q.Order("daily_assessments.student_id ASC, daily_assessments.criteria_id ASC").Find(&rows).Error
	return rows, err
}

type assessmentKey struct {
	student  uuid.UUID
	criteria uuid.UUID
}

func normalizeReason(compliant bool, reason *string) *string {
	if compliant || reason == nil {
		return nil
	}
	r := strings.ToLower(strings.TrimSpace(*reason))
	if r == "" {
		return nil
	}
	return &r
}

// SaveBulk meng-upsert satu lembar penilaian dalam satu transaksi.
// Item duplikat (santri+kriteria sama) → yang terakhir dipakai.
func SaveBulk(ctx context.Context, db *gorm.DB, date datatypes.Date, sessionID uuid.UUID, items []aDTO.AssessmentItem, assessedBy *uuid.UUID) (int, error) {
	order := make([]assessmentKey, 0, len(items))
	byKey := make(map[assessmentKey]aDTO.AssessmentItem, len(items))
	for _, it := range items {
		k := assessmentKey{student: it.StudentID, criteria: it.CriteriaID}
		if _, seen := byKey[k]; !seen {
			order = append(order, k)
		}
		byKey[k] = it
	}

	studentSet := map[uuid.UUID]struct{}{}
	criteriaSet := map[uuid.UUID]struct{}{}
	for _, k := range order {
		studentSet[k.student] = struct{}{}
		criteriaSet[k.criteria] = struct{}{}
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sess sesModel.SessionRefModel
		if err := tx.Where("id = ?", sessionID).First(&sess).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "Sesi tidak ditemukan")
			}
			return err
		}
		if !sess.IsActive {
			return fiber.NewError(fiber.StatusUnprocessableEntity, "Sesi sedang nonaktif")
		}

		if err := ensureAll(tx, &sModel.StudentModel{}, keys(studentSet), "Ada santri yang tidak ditemukan"); err != nil {
			return err
		}
		if err := ensureAll(tx, &cModel.CriteriaRefModel{}, keys(criteriaSet), "Ada kriteria yang tidak ditemukan"); err != nil {
			return err
		}

		now := time.Now().UTC()
		rows := make([]aModel.DailyAssessmentModel, 0, len(order))
		for _, k := range order {
			it := byKey[k]
			rows = append(rows, aModel.DailyAssessmentModel{
				Date:          date,
				StudentID:     it.StudentID,
				SessionID:     sessionID,
				CriteriaID:    it.CriteriaID,
				IsCompliant:   it.IsCompliant,
				AbsenceReason: normalizeReason(it.IsCompliant, it.AbsenceReason),
				AssessedBy:    assessedBy,
				UpdatedAt:     now,
			})
		}

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "student_id"}, {Name: "date"}, {Name: "session_id"}, {Name: "criteria_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"is_compliant", "absence_reason", "assessed_by", "updated_at"}),
		}).CreateInBatches(&rows, upsertBatch).Error
	})
	if err != nil {
		return 0, err
	}
	return len(order), nil
}

func keys(set map[uuid.UUID]struct{}) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	return out
}

func ensureAll(tx *gorm.DB, model any, ids []uuid.UUID, msg string) error {
	if len(ids) == 0 {
		return nil
	}
	var n int64
	if err := tx.Model(model).Where("id IN ?", ids).Count(&n).Error; err != nil {
		return err
	}
	if int(n) != len(ids) {
		return fiber.NewError(fiber.StatusUnprocessableEntity, msg)
	}
	return nil
}

/* ===================== KEHADIRAN ===================== */

// AttendanceRow: baris kriteria kehadiran + tanggalnya (untuk rekap beberapa hari).
type AttendanceRow struct {
	StudentID     uuid.UUID
	Date          datatypes.Date
	IsCompliant   bool
	AbsenceReason *string
}

func (r AttendanceRow) Record() calc.AttendanceRecord {
	out := calc.AttendanceRecord{StudentID: r.StudentID, IsCompliant: r.IsCompliant}
	if r.AbsenceReason != nil {
		out.AbsenceReason = *r.AbsenceReason
	}
	return out
}

// AttendanceFilter: rentang tanggal inklusif; StudentIDs/Halaqah opsional.
type AttendanceFilter struct {
	From       datatypes.Date
	To         datatypes.Date
	StudentIDs []uuid.UUID
	Halaqah    string
}

// AttendanceRows membaca baris kriteria kehadiran. Tanpa kriteria kehadiran → kosong.
func AttendanceRows(ctx context.Context, db *gorm.DB, f AttendanceFilter) ([]AttendanceRow, *uuid.UUID, error) {
	crit, err := AttendanceCriteria(ctx, db)
	if err != nil || crit == nil {
		return nil, nil, err
	}

	q := db.WithContext(ctx).
		Model(&aModel.DailyAssessmentModel{}).
		Select("daily_assessments.student_id, daily_assessments.date, daily_assessments.is_compliant, daily_assessments.absence_reason").
		Where("daily_assessments.criteria_id = ?", crit.ID).
		Where("daily_assessments.date >= ? AND daily_assessments.date <= ?", f.From, f.To)
	if len(f.StudentIDs) > 0 {
		q = q.Where("daily_assessments.student_id IN ?", f.StudentIDs)
	}
	if h := strings.TrimSpace(f.Halaqah); h != "" {
		q = q.Joins("JOIN students ON students.id = daily_assessments.student_id").
			Where("students.halaqah = ?", h)
	}

	var rows []AttendanceRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, nil, err
	}
	return rows, &crit.ID, nil
}

// DaySummary: rekap kehadiran satu hari (opsional per halaqah).
func DaySummary(ctx context.Context, db *gorm.DB, date datatypes.Date, halaqah string) (calc.AttendanceSummary, []calc.StudentDay, *uuid.UUID, error) {
	rows, critID, err := AttendanceRows(ctx, db, AttendanceFilter{From: date, To: date, Halaqah: halaqah})
	if err != nil {
		return calc.AttendanceSummary{}, nil, nil, err
	}
	records := make([]calc.AttendanceRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.Record())
	}
	return calc.SummarizeAttendance(records), calc.ClassifyStudents(records), critID, nil
}
