// internals/features/wali/dashboard/service/wali_dashboard_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	aService "santri_backend/internals/features/pesantren/assessments/service"
	scModel "santri_backend/internals/features/pesantren/scores/model"
	wdDTO "santri_backend/internals/features/wali/dashboard/dto"
	"santri_backend/internals/helpers/calc"
	"santri_backend/internals/helpers/dbtime"
	"santri_backend/internals/helpers/phone"
)

// AttendanceWindowDays: rentang rekap kehadiran di dashboard wali (termasuk hari ini).
const AttendanceWindowDays = 30

// ChildrenByPhone: santri yang tertaut ke akun wali dengan nomor HP tsb (urut nama).
func ChildrenByPhone(ctx context.Context, db *gorm.DB, rawPhone string) ([]wdDTO.ChildRow, error) {
	out := []wdDTO.ChildRow{}
	p := phone.Normalize(rawPhone)
	if p == "" {
		return out, nil
	}
	err := db.WithContext(ctx).
		Table("wali_santri AS w").
		Select("s.id AS student_id, s.name, s.halaqah, s.status, s.average_score").
		Joins("JOIN wali_santri_children AS wsc ON wsc.wali_id = w.id").
		Joins("JOIN students AS s ON s.id = wsc.student_id").
		Where("w.phone = ?", p).
		Order("s.name ASC").
		Scan(&out).Error
	return out, err
}

// Window: [today-29, today] menurut zona waktu pesantren.
func Window(today datatypes.Date) (datatypes.Date, datatypes.Date) {
	from := time.Time(today).AddDate(0, 0, -(AttendanceWindowDays - 1))
	return dbtime.DateOf(from), today
}

type dayKey struct {
	student uuid.UUID
	date    string
}

// DashboardSummary: per anak status, rata-rata nilai, dan persentase hadir 30 hari terakhir.
// Persentase = hari hadir / hari yang punya catatan kehadiran.
func DashboardSummary(ctx context.Context, db *gorm.DB, rawPhone string, today datatypes.Date) (*wdDTO.DashboardSummary, error) {
	from, to := Window(today)
	res := &wdDTO.DashboardSummary{
		WindowDays: AttendanceWindowDays,
		From:       dbtime.FormatDate(from),
		To:         dbtime.FormatDate(to),
		Children:   []wdDTO.ChildSummary{},
	}

	children, err := ChildrenByPhone(ctx, db, rawPhone)
	if err != nil || len(children) == 0 {
		return res, err
	}
	ids := make([]uuid.UUID, 0, len(children))
	for _, ch := range children {
		ids = append(ids, ch.StudentID)
	}

	rows, _, err := aService.AttendanceRows(ctx, db, aService.AttendanceFilter{From: from, To: to, StudentIDs: ids})
	if err != nil {
		return nil, err
	}
	perDay := map[dayKey][]calc.AttendanceRecord{}
	for _, r := range rows {
		k := dayKey{student: r.StudentID, date: dbtime.FormatDate(r.Date)}
		perDay[k] = append(perDay[k], r.Record())
	}
	recorded := map[uuid.UUID]int{}
	present := map[uuid.UUID]int{}
	for k, recs := range perDay {
		recorded[k.student]++
		if calc.ClassifyDay(recs) == calc.DayPresent {
			present[k.student]++
		}
	}

	last, err := lastScores(ctx, db, ids)
	if err != nil {
		return nil, err
	}

	for _, ch := range children {
		res.Children = append(res.Children, wdDTO.ChildSummary{
			ChildRow:          ch,
			AttendancePercent: calc.Percent(present[ch.StudentID], recorded[ch.StudentID]),
			DaysRecorded:      recorded[ch.StudentID],
			DaysPresent:       present[ch.StudentID],
			LastScore:         last[ch.StudentID],
		})
	}
	return res, nil
}

func lastScores(ctx context.Context, db *gorm.DB, ids []uuid.UUID) (map[uuid.UUID]*wdDTO.RecentScore, error) {
	var rows []scModel.DailyScoreModel
	if err := db.WithContext(ctx).
		Where("student_id IN ?", ids).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[uuid.UUID]*wdDTO.RecentScore, len(ids))
	for _, r := range rows {
		if _, ok := out[r.StudentID]; ok {
			continue
		}
		out[r.StudentID] = &wdDTO.RecentScore{
			Adab:      r.Adab,
			Disiplin:  r.Disiplin,
			Setoran:   r.Setoran,
			Average:   calc.ScoreAverage(r.Adab, r.Disiplin, r.Setoran),
			CreatedAt: r.CreatedAt,
		}
	}
	return out, nil
}
