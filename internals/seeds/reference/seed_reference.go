package reference

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"strings"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	cModel "santri_backend/internals/features/pesantren/criteria/model"
	sesModel "santri_backend/internals/features/pesantren/sessions/model"
	helper "santri_backend/internals/helpers"
	"santri_backend/internals/helpers/dbtime"
)

//go:embed data_criteria.json
var criteriaJSON []byte

//go:embed data_sessions.json
var sessionsJSON []byte

type CriteriaSeed struct {
	Aspect      string  `json:"aspect"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
}

type SessionSeed struct {
	Name      string `json:"name"`
	TimeStart string `json:"time_start"`
	TimeEnd   string `json:"time_end"`
}

// SeedCriteria menambahkan kriteria bawaan yang belum ada (dicocokkan per aspek + judul).
func SeedCriteria(ctx context.Context, db *gorm.DB) (int, error) {
	var seeds []CriteriaSeed
	if err := sonic.Unmarshal(criteriaJSON, &seeds); err != nil {
		return 0, fmt.Errorf("decode data_criteria.json: %w", err)
	}

	inserted := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range seeds {
			var n int64
			if err := tx.Model(&cModel.CriteriaRefModel{}).
				Where("aspect = ? AND LOWER(title) = ?", s.Aspect, strings.ToLower(s.Title)).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				log.Printf("ℹ️ Kriteria '%s' sudah ada, dilewati.", s.Title)
				continue
			}

			aspect := s.Aspect
			order, err := helper.NextSortOrder(tx, &cModel.CriteriaRefModel{}, func(q *gorm.DB) *gorm.DB {
				return q.Where("aspect = ?", aspect)
			})
			if err != nil {
				return err
			}
			if err := tx.Create(&cModel.CriteriaRefModel{
				Aspect:      s.Aspect,
				Title:       s.Title,
				Description: s.Description,
				IsActive:    true,
				SortOrder:   order,
			}).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	return inserted, err
}

// SeedSessions menambahkan sesi bawaan yang belum ada (dicocokkan per nama).
func SeedSessions(ctx context.Context, db *gorm.DB) (int, error) {
	var seeds []SessionSeed
	if err := sonic.Unmarshal(sessionsJSON, &seeds); err != nil {
		return 0, fmt.Errorf("decode data_sessions.json: %w", err)
	}

	inserted := 0
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, s := range seeds {
			var n int64
			if err := tx.Model(&sesModel.SessionRefModel{}).Where("name = ?", s.Name).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				log.Printf("ℹ️ Sesi '%s' sudah ada, dilewati.", s.Name)
				continue
			}

			start, err := dbtime.Parse(s.TimeStart)
			if err != nil {
				return fmt.Errorf("sesi %q: %w", s.Name, err)
			}
			end, err := dbtime.Parse(s.TimeEnd)
			if err != nil {
				return fmt.Errorf("sesi %q: %w", s.Name, err)
			}
			order, err := helper.NextSortOrder(tx, &sesModel.SessionRefModel{}, nil)
			if err != nil {
				return err
			}
			if err := tx.Create(&sesModel.SessionRefModel{
				Name:      s.Name,
				TimeStart: start,
				TimeEnd:   end,
				SortOrder: order,
				IsActive:  true,
			}).Error; err != nil {
				return err
			}
			inserted++
		}
		return nil
	})
	return inserted, err
}
