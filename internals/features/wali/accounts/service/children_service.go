// file: internals/features/wali/accounts/service/children_service.go
package service

import (
	"context"
	"errors"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sModel "santri_backend/internals/features/pesantren/students/model"
	waliDTO "santri_backend/internals/features/wali/accounts/dto"
	waliModel "santri_backend/internals/features/wali/accounts/model"
)

// diffChildren: desired vs existing → yang perlu ditambah & dihapus (urut agar deterministik).
func diffChildren(existing, desired []uuid.UUID) (added, removed []uuid.UUID) {
	want := make(map[uuid.UUID]struct{}, len(desired))
	for _, id := range desired {
		want[id] = struct{}{}
	}
	have := make(map[uuid.UUID]struct{}, len(existing))
	for _, id := range existing {
		have[id] = struct{}{}
		if _, ok := want[id]; !ok {
			removed = append(removed, id)
		}
	}
	for id := range want {
		if _, ok := have[id]; !ok {
			added = append(added, id)
		}
	}
	sortIDs(added)
	sortIDs(removed)
	return added, removed
}

func sortIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })
}

// ReplaceChildren mengganti seluruh relasi wali ↔ santri dalam satu transaksi.
// Semua atau tidak sama sekali: bila satu santri tidak ada, tidak ada yang berubah.
func ReplaceChildren(ctx context.Context, db *gorm.DB, waliID uuid.UUID, studentIDs []uuid.UUID) (*waliDTO.ReconcileResult, error) {
	desired := dedupe(studentIDs)
	res := &waliDTO.ReconcileResult{WaliID: waliID, Added: []uuid.UUID{}, Removed: []uuid.UUID{}}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var wali waliModel.WaliSantriModel
		if err := tx.Select("id").Where("id = ?", waliID).First(&wali).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Wali santri tidak ditemukan")
			}
			return err
		}

		if len(desired) > 0 {
			var n int64
			if err := tx.Model(&sModel.StudentModel{}).Where("id IN ?", desired).Count(&n).Error; err != nil {
				return err
			}
			if int(n) != len(desired) {
				return fiber.NewError(fiber.StatusUnprocessableEntity, "Ada santri yang tidak ditemukan")
			}
		}

		var existing []uuid.UUID
		if err := tx.Model(&waliModel.WaliSantriChildModel{}).
			Where("wali_id = ?", waliID).
			Pluck("student_id", &existing).Error; err != nil {
			return err
		}

		added, removed := diffChildren(existing, desired)
		if len(removed) > 0 {
			if err := tx.Where("wali_id = ? AND student_id IN ?", waliID, removed).
				Delete(&waliModel.WaliSantriChildModel{}).Error; err != nil {
				return err
			}
		}
		if len(added) > 0 {
			rows := make([]waliModel.WaliSantriChildModel, 0, len(added))
			for _, sid := range added {
				rows = append(rows, waliModel.WaliSantriChildModel{WaliID: waliID, StudentID: sid})
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		if added != nil {
			res.Added = added
		}
		if removed != nil {
			res.Removed = removed
		}
		res.Total = len(desired)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ChildrenOf: ringkasan santri milik satu wali (urut nama).
func ChildrenOf(ctx context.Context, db *gorm.DB, waliID uuid.UUID) ([]waliDTO.ChildBrief, error) {
	var out []waliDTO.ChildBrief
	err := db.WithContext(ctx).
		Table("wali_santri_children AS wsc").
		Select("s.id AS student_id, s.name, s.halaqah").
		Joins("JOIN students AS s ON s.id = wsc.student_id").
		Where("wsc.wali_id = ?", waliID).
		Order("s.name ASC").
		Scan(&out).Error
	if out == nil {
		out = []waliDTO.ChildBrief{}
	}
	return out, err
}
