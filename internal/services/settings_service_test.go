package services

import (
	"testing"

	"github.com/devfolio/portfolio-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsSingleRow(t *testing.T) {
	svc := NewSettingsService(newTestDB(t))

	_, err := svc.Get()
	assert.ErrorIs(t, err, ErrSettingsNotFound)

	created, err := svc.Create(&dto.SettingsRequest{SiteName: "My Portfolio"})
	require.NoError(t, err)
	assert.Equal(t, "My Portfolio", created.SiteName)

	// A second create must be rejected, the row is a singleton.
	_, err = svc.Create(&dto.SettingsRequest{SiteName: "Another"})
	assert.ErrorIs(t, err, ErrSettingsExist)

	updated, err := svc.Update(&dto.SettingsRequest{SiteName: "Renamed", ContactEmail: "me@example.com"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Renamed", updated.SiteName)
	assert.Equal(t, "me@example.com", updated.ContactEmail)
}

func TestSettingsUpdateBeforeCreate(t *testing.T) {
	svc := NewSettingsService(newTestDB(t))

	_, err := svc.Update(&dto.SettingsRequest{SiteName: "My Portfolio"})
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}
