package service

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	scDTO "santri_backend/internals/features/pesantren/scores/dto"
	scModel "santri_backend/internals/features/pesantren/scores/model"
	sModel "santri_backend/internals/features/pesantren/students/model"
	helperAuth "santri_backend/internals/helpers/auth"
	"santri_backend/internals/helpers/calc"
	"santri_backend/internals/helpers/dbtime"
)

// Create menyimpan nilai lalu menghitung ulang average_score & status santri dalam satu transaksi.
func Create(ctx context.Context, db *gorm.DB, ustadzID uuid.UUID, req scDTO.CreateScoreRequest) (*scModel.DailyScoreModel, *scDTO.StudentStanding, error) {
	var (
		score    *scModel.DailyScoreModel
		standing *scDTO.StudentStanding
	)
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var st sModel.StudentModel
		if err := tx.Where("id = ?", req.StudentID).First(&st).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Santri tidak ditemukan")
			}
			return err
		}

		snap, err := sonic.Marshal(scDTO.StudentSnapshot{Name: st.Name, Halaqah: st.Halaqah})
		if err != nil {
			return err
		}

		score = &scModel.DailyScoreModel{
			StudentID:       st.ID,
			UstadzID:        ustadzID,
			CurriculumID:    req.CurriculumID,
			Adab:            *req.Adab,
			Disiplin:        *req.Disiplin,
			Setoran:         *req.Setoran,
			Notes:           req.Notes,
			StudentSnapshot: datatypes.JSON(snap),
		}
		if err := tx.Create(score).Error; err != nil {
			return err
		}

		standing, err = Recompute(tx, st.ID)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return score, standing, nil
}

// Delete menghapus satu nilai. ownerID != nil → hanya boleh menghapus nilai milik ustadz tsb.
func Delete(ctx context.Context, db *gorm.DB, scoreID uuid.UUID, ownerID *uuid.UUID) (*scDTO.StudentStanding, error) {
	var standing *scDTO.StudentStanding
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sc scModel.DailyScoreModel
		if err := tx.Where("id = ?", scoreID).First(&sc).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Nilai tidak ditemukan")
			}
			return err
		}
		if ownerID != nil && sc.UstadzID != *ownerID {
			return fiber.NewError(fiber.StatusForbidden, "Hanya ustadz penilai yang boleh menghapus nilai ini")
		}
		if err := tx.Delete(&scModel.DailyScoreModel{}, "id = ?", sc.ID).Error; err != nil {
			return err
		}
		s, err := Recompute(tx, sc.StudentID)
		standing = s
		return err
	})
	return standing, err
}

// Recompute: rata-rata dari semua nilai santri (tiap nilai = rata-rata 3 dimensi), lalu status.
func Recompute(tx *gorm.DB, studentID uuid.UUID) (*scDTO.StudentStanding, error) {
	var rows []scModel.DailyScoreModel
	if err := tx.Select("adab", "disiplin", "setoran").
		Where("student_id = ?", studentID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	per := make([]float64, 0, len(rows))
	for _, r := range rows {
		per = append(per, calc.ScoreAverage(r.Adab, r.Disiplin, r.Setoran))
	}
	avg := calc.Round2(calc.Average(per))
	status := calc.StatusFor(avg)

	if err := tx.Model(&sModel.StudentModel{}).
		Where("id = ?", studentID).
		Updates(map[string]any{
			"average_score": avg,
			"status":        status,
			"updated_at":    time.Now().UTC(),
		}).Error; err != nil {
		return nil, err
	}
	return &scDTO.StudentStanding{
		StudentID:    studentID,
		AverageScore: avg,
		Status:       status,
		ScoreCount:   len(rows),
	}, nil
}

// ListFilter: semua field opsional.
type ListFilter struct {
	StudentID *uuid.UUID
	UstadzID  *uuid.UUID
	Date      *datatypes.Date
	Limit     int
	Offset    int
}

func List(ctx context.Context, db *gorm.DB, f ListFilter) ([]scModel.DailyScoreModel, int64, error) {
	q := db.WithContext(ctx).Model(&scModel.DailyScoreModel{})
	if f.StudentID != nil {
		q = q.Where("student_id = ?", *f.StudentID)
	}
	if f.UstadzID != nil {
		q = q.Where("ustadz_id = ?", *f.UstadzID)
	}
	if f.Date != nil {
		y, m, d := time.Time(*f.Date).Date()
		start := time.Date(y, m, d, 0, 0, 0, 0, dbtime.Location()).UTC()
		q = q.Where("created_at >= ? AND created_at < ?", start, start.Add(24*time.Hour))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []scModel.DailyScoreModel
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, total, err
}

// UstadzIDOf: daily_scores.ustadz_id = teacher_id bila ada, selain itu id profil.
func UstadzIDOf(staff *helperAuth.StaffIdentity) uuid.UUID {
	if staff.TeacherID != nil && *staff.TeacherID != uuid.Nil {
		return *staff.TeacherID
	}
	return staff.ProfileID
}
