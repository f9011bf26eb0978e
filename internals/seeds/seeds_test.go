package seeds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"santri_backend/internals/constants"
	"santri_backend/internals/databases/dbtest"
	cModel "santri_backend/internals/features/pesantren/criteria/model"
	sesModel "santri_backend/internals/features/pesantren/sessions/model"
	authModel "santri_backend/internals/features/users/auth/model"
	"santri_backend/internals/seeds/reference"
	"santri_backend/internals/seeds/staff"
)

func TestRunAllSeedsIsIdempotent(t *testing.T) {
	db := dbtest.Open(t, &authModel.ProfileModel{}, &cModel.CriteriaRefModel{}, &sesModel.SessionRefModel{})
	ctx := context.Background()
	t.Setenv("SEED_ADMIN_EMAIL", "Super@Pesantren.id")
	t.Setenv("SEED_ADMIN_PASSWORD", "bismillah")

	require.NoError(t, RunAllSeeds(ctx, db))
	require.NoError(t, RunAllSeeds(ctx, db))

	var admins []authModel.ProfileModel
	require.NoError(t, db.Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "super@pesantren.id", admins[0].Email)
	assert.Equal(t, constants.RoleSuperAdmin, admins[0].Role)
	assert.True(t, admins[0].IsActive)

	var crit []cModel.CriteriaRefModel
	require.NoError(t, db.Order("aspect, sort_order").Find(&crit).Error)
	assert.Len(t, crit, 6)

	var sessions []sesModel.SessionRefModel
	require.NoError(t, db.Order("sort_order").Find(&sessions).Error)
	require.Len(t, sessions, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{sessions[0].SortOrder, sessions[1].SortOrder, sessions[2].SortOrder})
	assert.True(t, sessions[0].TimeStart.Before(sessions[0].TimeEnd))
}

func TestSeedCriteriaProvidesAttendanceCriterion(t *testing.T) {
	db := dbtest.Open(t, &cModel.CriteriaRefModel{})
	n, err := reference.SeedCriteria(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	var hadir cModel.CriteriaRefModel
	require.NoError(t, db.
		Where("aspect = ? AND LOWER(title) LIKE ?", constants.AspectDiscipline, "%"+constants.AttendanceCriteriaKeyword+"%").
		First(&hadir).Error)
	assert.Equal(t, 1, hadir.SortOrder)
	assert.True(t, hadir.IsActive)
}

func TestSeedSuperAdminRequiresCredentials(t *testing.T) {
	db := dbtest.Open(t, &authModel.ProfileModel{})
	_, err := staff.SeedSuperAdmin(context.Background(), db, "", "", "")
	assert.ErrorIs(t, err, staff.ErrMissingCredentials)
}
