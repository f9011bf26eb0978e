package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"santri_backend/internals/constants"
	anModel "santri_backend/internals/features/pesantren/announcements/model"
	aService "santri_backend/internals/features/pesantren/assessments/service"
	dDTO "santri_backend/internals/features/pesantren/dashboard/dto"
	scDTO "santri_backend/internals/features/pesantren/scores/dto"
	scService "santri_backend/internals/features/pesantren/scores/service"
	sModel "santri_backend/internals/features/pesantren/students/model"
	authModel "santri_backend/internals/features/users/auth/model"
	waliModel "santri_backend/internals/features/wali/accounts/model"
	"santri_backend/internals/helpers/calc"
	"santri_backend/internals/helpers/dbtime"
)

const recentScoreLimit = 10

func todayAttendance(ctx context.Context, db *gorm.DB, date datatypes.Date) (dDTO.TodayAttendance, error) {
	sum, _, critID, err := aService.DaySummary(ctx, db, date, "")
	if err != nil {
		return dDTO.TodayAttendance{}, err
	}
	return dDTO.TodayAttendance{
		Date:               dbtime.FormatDate(date),
		CriteriaConfigured: critID != nil,
		Summary:            sum,
	}, nil
}

// AdminSummary: jumlah data master, rata-rata nilai seluruh santri, sebaran status, kehadiran hari ini.
func AdminSummary(ctx context.Context, db *gorm.DB, today datatypes.Date) (*dDTO.AdminDashboard, error) {
	tx := db.WithContext(ctx)
	out := &dDTO.AdminDashboard{}

	if err := tx.Model(&sModel.StudentModel{}).Count(&out.Students).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&authModel.ProfileModel{}).
		Where("role = ? AND is_active = ?", constants.RoleUstadz, true).
		Count(&out.Teachers).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&waliModel.WaliSantriModel{}).Count(&out.Walis).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&anModel.AnnouncementModel{}).
		Where("is_active = ?", true).
		Count(&out.ActiveNotices).Error; err != nil {
		return nil, err
	}

	var avg float64
	if err := tx.Model(&sModel.StudentModel{}).
		Select("COALESCE(AVG(average_score), 0)").
		Scan(&avg).Error; err != nil {
		return nil, err
	}
	out.AverageScore = calc.Round2(avg)

	var counts []struct {
		Status string
		Total  int64
	}
	if err := tx.Model(&sModel.StudentModel{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	for _, r := range counts {
		switch r.Status {
		case constants.StatusMutqin:
			out.StatusCounts.Mutqin = r.Total
		case constants.StatusMutawassith:
			out.StatusCounts.Mutawassith = r.Total
		case constants.StatusDhaif:
			out.StatusCounts.Dhaif = r.Total
		}
	}

	att, err := todayAttendance(ctx, db, today)
	if err != nil {
		return nil, err
	}
	out.Attendance = att
	return out, nil
}

// TeacherSummary: kehadiran hari ini + nilai terbaru yang diinput ustadz ini.
func TeacherSummary(ctx context.Context, db *gorm.DB, ustadzID uuid.UUID, today datatypes.Date) (*dDTO.TeacherDashboard, error) {
	att, err := todayAttendance(ctx, db, today)
	if err != nil {
		return nil, err
	}
	rows, _, err := scService.List(ctx, db, scService.ListFilter{UstadzID: &ustadzID, Limit: recentScoreLimit})
	if err != nil {
		return nil, err
	}
	_, todayCount, err := scService.List(ctx, db, scService.ListFilter{UstadzID: &ustadzID, Date: &today, Limit: 1})
	if err != nil {
		return nil, err
	}
	return &dDTO.TeacherDashboard{
		Attendance:   att,
		RecentScores: scDTO.NewScoreResponses(rows),
		ScoresToday:  todayCount,
	}, nil
}
