package helper

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	id := uuid.New()
	tok, exp, err := SignAccessToken("rahasia", StaffIdentity{ProfileID: id, Role: "admin"}, time.Now(), time.Hour)
	require.NoError(t, err)
	assert.True(t, exp.After(time.Now()))

	got, gotExp, err := ParseAccessToken("rahasia", tok)
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, exp.Unix(), gotExp.Unix())
}

func TestAccessTokenRejects(t *testing.T) {
	id := uuid.New()
	tok, _, err := SignAccessToken("rahasia", StaffIdentity{ProfileID: id}, time.Now(), time.Hour)
	require.NoError(t, err)

	_, _, err = ParseAccessToken("lain", tok)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired, _, err := SignAccessToken("rahasia", StaffIdentity{ProfileID: id}, time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)
	_, _, err = ParseAccessToken("rahasia", expired)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, _, err = SignAccessToken("", StaffIdentity{ProfileID: id}, time.Now(), time.Hour)
	assert.Error(t, err)
}
