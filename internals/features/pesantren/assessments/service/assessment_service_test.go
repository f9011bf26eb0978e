package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"santri_backend/internals/constants"
	"santri_backend/internals/databases/dbtest"
	aDTO "santri_backend/internals/features/pesantren/assessments/dto"
	aModel "santri_backend/internals/features/pesantren/assessments/model"
	cModel "santri_backend/internals/features/pesantren/criteria/model"
	sesModel "santri_backend/internals/features/pesantren/sessions/model"
	sModel "santri_backend/internals/features/pesantren/students/model"
	"santri_backend/internals/helpers/calc"
	"santri_backend/internals/helpers/dbtime"
)

type fixture struct {
	db        *gorm.DB
	students  []sModel.StudentModel
	hadir     cModel.CriteriaRefModel
	salam     cModel.CriteriaRefModel
	subuh     sesModel.SessionRefModel
	ashar     sesModel.SessionRefModel
	nonaktif  sesModel.SessionRefModel
	reference time.Time
}

func mustTod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	v, err := dbtime.Parse(s)
	require.NoError(t, err)
	return v
}

func setup(t *testing.T) fixture {
	t.Helper()
	db := dbtest.Open(t,
		&sModel.StudentModel{}, &cModel.CriteriaRefModel{},
		&sesModel.SessionRefModel{}, &aModel.DailyAssessmentModel{},
	)

	students := []sModel.StudentModel{
		{Name: "Ahmad", Halaqah: "Abu Bakar"},
		{Name: "Fatimah", Halaqah: "Aisyah"},
		{Name: "Umar", Halaqah: "Abu Bakar"},
	}
	require.NoError(t, db.Create(&students).Error)

	hadir := cModel.CriteriaRefModel{Aspect: constants.AspectDiscipline, Title: "Hadir tepat waktu", IsActive: true, SortOrder: 1}
	salam := cModel.CriteriaRefModel{Aspect: constants.AspectAdab, Title: "Mengucap salam", IsActive: true, SortOrder: 1}
	require.NoError(t, db.Create(&hadir).Error)
	require.NoError(t, db.Create(&salam).Error)

	subuh := sesModel.SessionRefModel{Name: "Subuh", TimeStart: mustTod(t, "04:45"), TimeEnd: mustTod(t, "06:00"), SortOrder: 1, IsActive: true}
	ashar := sesModel.SessionRefModel{Name: "Ashar", TimeStart: mustTod(t, "15:45"), TimeEnd: mustTod(t, "17:00"), SortOrder: 2, IsActive: true}
	nonaktif := sesModel.SessionRefModel{Name: "Isya", TimeStart: mustTod(t, "19:30"), TimeEnd: mustTod(t, "20:30"), SortOrder: 3, IsActive: false}
	require.NoError(t, db.Create(&subuh).Error)
	require.NoError(t, db.Create(&ashar).Error)
	require.NoError(t, db.Create(&nonaktif).Error)

	return fixture{
		db: db, students: students, hadir: hadir, salam: salam,
		subuh: subuh, ashar: ashar, nonaktif: nonaktif,
		reference: time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
	}
}

func strp(s string) *string { return &s }

func TestAttendanceCriteriaFindsHadir(t *testing.T) {
	f := setup(t)
	got, err := AttendanceCriteria(context.Background(), f.db)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, f.hadir.ID, got.ID)
}

func TestAttendanceCriteriaMissing(t *testing.T) {
	db := dbtest.Open(t, &cModel.CriteriaRefModel{})
	got, err := AttendanceCriteria(context.Background(), db)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveBulkUpsertsInPlace(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	date := dbtime.DateOf(f.reference)
	ahmad := f.students[0].ID

	n, err := SaveBulk(ctx, f.db, date, f.subuh.ID, []aDTO.AssessmentItem{
		{StudentID: ahmad, CriteriaID: f.hadir.ID, IsCompliant: true},
		{StudentID: ahmad, CriteriaID: f.salam.ID, IsCompliant: true},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = SaveBulk(ctx, f.db, date, f.subuh.ID, []aDTO.AssessmentItem{
		{StudentID: ahmad, CriteriaID: f.hadir.ID, IsCompliant: false, AbsenceReason: strp(" Sakit ")},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	rows, err := ListByDay(ctx, f.db, date, nil, "")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	var att aModel.DailyAssessmentModel
	require.NoError(t, f.db.Where("student_id = ? AND criteria_id = ?", ahmad, f.hadir.ID).First(&att).Error)
	assert.False(t, att.IsCompliant)
	require.NotNil(t, att.AbsenceReason)
	assert.Equal(t, constants.AbsenceSick, *att.AbsenceReason)
}

func TestSaveBulkDuplicateItemsLastWins(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	date := dbtime.DateOf(f.reference)
	umar := f.students[2].ID

	n, err := SaveBulk(ctx, f.db, date, f.subuh.ID, []aDTO.AssessmentItem{
		{StudentID: umar, CriteriaID: f.salam.ID, IsCompliant: true},
		{StudentID: umar, CriteriaID: f.salam.ID, IsCompliant: false},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var rows []aModel.DailyAssessmentModel
	require.NoError(t, f.db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsCompliant)
}

func TestSaveBulkRejectsInactiveSessionAndUnknownStudent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	date := dbtime.DateOf(f.reference)

	_, err := SaveBulk(ctx, f.db, date, f.nonaktif.ID, []aDTO.AssessmentItem{
		{StudentID: f.students[0].ID, CriteriaID: f.hadir.ID, IsCompliant: true},
	}, nil)
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)

	_, err = SaveBulk(ctx, f.db, date, f.subuh.ID, []aDTO.AssessmentItem{
		{StudentID: f.students[0].ID, CriteriaID: f.hadir.ID, IsCompliant: true},
		{StudentID: uuid.New(), CriteriaID: f.hadir.ID, IsCompliant: true},
	}, nil)
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusUnprocessableEntity, fe.Code)

	var count int64
	require.NoError(t, f.db.Model(&aModel.DailyAssessmentModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDaySummaryAppliesPrecedence(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	date := dbtime.DateOf(f.reference)
	ahmad, fatimah, umar := f.students[0].ID, f.students[1].ID, f.students[2].ID

	_, err := SaveBulk(ctx, f.db, date, f.subuh.ID, []aDTO.AssessmentItem{
		{StudentID: ahmad, CriteriaID: f.hadir.ID, IsCompliant: true},
		{StudentID: fatimah, CriteriaID: f.hadir.ID, IsCompliant: false, AbsenceReason: strp("sakit")},
		{StudentID: umar, CriteriaID: f.hadir.ID, IsCompliant: true},
	}, nil)
	require.NoError(t, err)
	// Ahmad alpha di sesi kedua → seluruh hari alpha
	_, err = SaveBulk(ctx, f.db, date, f.ashar.ID, []aDTO.AssessmentItem{
		{StudentID: ahmad, CriteriaID: f.hadir.ID, IsCompliant: false, AbsenceReason: strp("alpha")},
		{StudentID: umar, CriteriaID: f.hadir.ID, IsCompliant: true},
	}, nil)
	require.NoError(t, err)

	sum, days, critID, err := DaySummary(ctx, f.db, date, "")
	require.NoError(t, err)
	require.NotNil(t, critID)
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 1, sum.Present)
	assert.Equal(t, 1, sum.Sick)
	assert.Equal(t, 1, sum.Unexcused)
	assert.Equal(t, 33, sum.PresentPercent)
	require.Len(t, days, 3)

	byStudent := map[uuid.UUID]calc.DayStatus{}
	for _, d := range days {
		byStudent[d.StudentID] = d.Status
	}
	assert.Equal(t, calc.DayUnexcused, byStudent[ahmad])
	assert.Equal(t, calc.DaySick, byStudent[fatimah])
	assert.Equal(t, calc.DayPresent, byStudent[umar])

	sum, _, _, err = DaySummary(ctx, f.db, date, "Aisyah")
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Total)
	assert.Equal(t, 1, sum.Sick)
}

func TestDaySummaryEmptyDay(t *testing.T) {
	f := setup(t)
	sum, days, _, err := DaySummary(context.Background(), f.db, dbtime.DateOf(f.reference.AddDate(0, 0, 1)), "")
	require.NoError(t, err)
	assert.Zero(t, sum.Total)
	assert.Zero(t, sum.PresentPercent)
	assert.Empty(t, days)
}
