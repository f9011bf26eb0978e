package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"santri_backend/internals/databases/dbtest"
)

type orderedRow struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Group     string    `gorm:"column:grp"`
	SortOrder int       `gorm:"column:sort_order"`
	IsActive  bool      `gorm:"column:is_active"`
}

func (orderedRow) TableName() string { return "ordered_rows" }

func seedRows(t *testing.T, db *gorm.DB, group string, orders ...int) []orderedRow {
	t.Helper()
	rows := make([]orderedRow, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, orderedRow{ID: uuid.New(), Group: group, SortOrder: o, IsActive: true})
	}
	require.NoError(t, db.Create(&rows).Error)
	return rows
}

func TestNextSortOrder(t *testing.T) {
	db := dbtest.Open(t, &orderedRow{})

	next, err := NextSortOrder(db, &orderedRow{}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, next)

	seedRows(t, db, "adab", 1, 2)
	seedRows(t, db, "discipline", 1, 3)

	byGroup := func(g string) func(*gorm.DB) *gorm.DB {
		return func(q *gorm.DB) *gorm.DB { return q.Where("grp = ?", g) }
	}

	next, err = NextSortOrder(db, &orderedRow{}, byGroup("adab"))
	require.NoError(t, err)
	assert.Equal(t, 3, next)

	// count+1 = 3 sudah terpakai → max+1
	next, err = NextSortOrder(db, &orderedRow{}, byGroup("discipline"))
	require.NoError(t, err)
	assert.Equal(t, 4, next)
}

func TestToggleActiveFlipsExactlyOneRow(t *testing.T) {
	db := dbtest.Open(t, &orderedRow{})
	rows := seedRows(t, db, "adab", 1, 2, 3)
	target := rows[1]

	found, err := ToggleActive(db, &orderedRow{}, target.ID)
	require.NoError(t, err)
	assert.True(t, found)

	var after []orderedRow
	require.NoError(t, db.Order("sort_order").Find(&after).Error)
	require.Len(t, after, 3)
	for i, r := range after {
		assert.Equal(t, rows[i].SortOrder, r.SortOrder)
		assert.Equal(t, r.ID != target.ID, r.IsActive, "row %d", i)
	}

	found, err = ToggleActive(db, &orderedRow{}, target.ID)
	require.NoError(t, err)
	assert.True(t, found)
	var again orderedRow
	require.NoError(t, db.First(&again, "id = ?", target.ID).Error)
	assert.True(t, again.IsActive)
}

func TestToggleActiveUnknownID(t *testing.T) {
	db := dbtest.Open(t, &orderedRow{})
	found, err := ToggleActive(db, &orderedRow{}, uuid.New())
	require.NoError(t, err)
	assert.False(t, found)
}
