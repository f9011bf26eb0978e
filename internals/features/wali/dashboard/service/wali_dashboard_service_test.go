package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"santri_backend/internals/constants"
	"santri_backend/internals/databases/dbtest"
	aModel "santri_backend/internals/features/pesantren/assessments/model"
	cModel "santri_backend/internals/features/pesantren/criteria/model"
	scModel "santri_backend/internals/features/pesantren/scores/model"
	sModel "santri_backend/internals/features/pesantren/students/model"
	waliModel "santri_backend/internals/features/wali/accounts/model"
	"santri_backend/internals/helpers/dbtime"
)

func TestWindow(t *testing.T) {
	today := dbtime.DateOf(time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC))
	from, to := Window(today)
	assert.Equal(t, "2024-03-02", dbtime.FormatDate(from))
	assert.Equal(t, "2024-03-31", dbtime.FormatDate(to))
}

func TestChildrenByPhoneAndSummary(t *testing.T) {
	db := dbtest.Open(t,
		&sModel.StudentModel{}, &waliModel.WaliSantriModel{}, &waliModel.WaliSantriChildModel{},
		&cModel.CriteriaRefModel{}, &aModel.DailyAssessmentModel{}, &scModel.DailyScoreModel{},
	)
	ctx := context.Background()

	ahmad := sModel.StudentModel{Name: "Ahmad", Halaqah: "Abu Bakar", Status: constants.StatusMutqin, AverageScore: 90}
	zaid := sModel.StudentModel{Name: "Zaid", Halaqah: "Abu Bakar"}
	orangLain := sModel.StudentModel{Name: "Bilal", Halaqah: "Umar"}
	require.NoError(t, db.Create(&ahmad).Error)
	require.NoError(t, db.Create(&zaid).Error)
	require.NoError(t, db.Create(&orangLain).Error)

	w := waliModel.WaliSantriModel{Phone: "081234567890", Name: "Bu Aminah", Password: "x", IsActive: true}
	require.NoError(t, db.Create(&w).Error)
	require.NoError(t, db.Create(&[]waliModel.WaliSantriChildModel{
		{WaliID: w.ID, StudentID: zaid.ID},
		{WaliID: w.ID, StudentID: ahmad.ID},
	}).Error)

	hadir := cModel.CriteriaRefModel{Aspect: constants.AspectDiscipline, Title: "Kehadiran (Hadir)", IsActive: true, SortOrder: 1}
	require.NoError(t, db.Create(&hadir).Error)

	kids, err := ChildrenByPhone(ctx, db, "+62 812 3456 7890")
	require.NoError(t, err)
	require.Len(t, kids, 2)
	assert.Equal(t, "Ahmad", kids[0].Name)
	assert.Equal(t, "Zaid", kids[1].Name)

	today := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	session1, session2 := uuid.New(), uuid.New()
	alpha := "alpha"
	mk := func(student uuid.UUID, day time.Time, session uuid.UUID, ok bool, reason *string) aModel.DailyAssessmentModel {
		return aModel.DailyAssessmentModel{
			Date: dbtime.DateOf(day), StudentID: student, SessionID: session,
			CriteriaID: hadir.ID, IsCompliant: ok, AbsenceReason: reason,
		}
	}
	rows := []aModel.DailyAssessmentModel{
		mk(ahmad.ID, today, session1, true, nil),
		mk(ahmad.ID, today.AddDate(0, 0, -1), session1, true, nil),
		mk(ahmad.ID, today.AddDate(0, 0, -2), session1, true, nil),
		// satu sesi alpha → hari itu alpha
		mk(ahmad.ID, today.AddDate(0, 0, -3), session1, true, nil),
		mk(ahmad.ID, today.AddDate(0, 0, -3), session2, false, &alpha),
		// di luar jendela 30 hari
		mk(ahmad.ID, today.AddDate(0, 0, -40), session1, false, &alpha),
		mk(orangLain.ID, today, session1, false, &alpha),
	}
	require.NoError(t, db.Create(&rows).Error)

	require.NoError(t, db.Create(&scModel.DailyScoreModel{
		StudentID: ahmad.ID, UstadzID: uuid.New(), Adab: 80, Disiplin: 90, Setoran: 100,
	}).Error)

	sum, err := DashboardSummary(ctx, db, "081234567890", dbtime.DateOf(today))
	require.NoError(t, err)
	assert.Equal(t, AttendanceWindowDays, sum.WindowDays)
	assert.Equal(t, "2024-03-31", sum.To)
	require.Len(t, sum.Children, 2)

	a := sum.Children[0]
	assert.Equal(t, ahmad.ID, a.StudentID)
	assert.Equal(t, constants.StatusMutqin, a.Status)
	assert.Equal(t, 4, a.DaysRecorded)
	assert.Equal(t, 3, a.DaysPresent)
	assert.Equal(t, 75, a.AttendancePercent)
	require.NotNil(t, a.LastScore)
	assert.InDelta(t, 90.0, a.LastScore.Average, 0.001)

	z := sum.Children[1]
	assert.Equal(t, zaid.ID, z.StudentID)
	assert.Zero(t, z.DaysRecorded)
	assert.Zero(t, z.AttendancePercent)
	assert.Nil(t, z.LastScore)
}

func TestDashboardSummaryUnknownPhone(t *testing.T) {
	db := dbtest.Open(t,
		&sModel.StudentModel{}, &waliModel.WaliSantriModel{}, &waliModel.WaliSantriChildModel{},
		&cModel.CriteriaRefModel{}, &aModel.DailyAssessmentModel{}, &scModel.DailyScoreModel{},
	)
	sum, err := DashboardSummary(context.Background(), db, "0800", dbtime.Today())
	require.NoError(t, err)
	assert.Empty(t, sum.Children)
}
