package services

import (
	"testing"

	"github.com/devfolio/portfolio-backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestExperienceDateParsing(t *testing.T) {
	svc := NewExperienceService(newTestDB(t))

	exp, err := svc.Create(&dto.ExperienceRequest{
		Title: "Engineer", Company: "Acme",
		StartDate: "2022-01-15", EndDate: strPtr("2023-06-30"),
	})
	require.NoError(t, err)
	assert.Equal(t, 2022, exp.StartDate.Year())
	require.NotNil(t, exp.EndDate)
	assert.Equal(t, 2023, exp.EndDate.Year())

	_, err = svc.Create(&dto.ExperienceRequest{
		Title: "Engineer", Company: "Acme", StartDate: "15/01/2022",
	})
	assert.Error(t, err)
}

func TestExperienceCurrentRoleHasNoEndDate(t *testing.T) {
	svc := NewExperienceService(newTestDB(t))

	exp, err := svc.Create(&dto.ExperienceRequest{
		Title: "Engineer", Company: "Acme",
		StartDate: "2024-03-01", IsCurrent: boolPtr(true),
	})
	require.NoError(t, err)
	assert.True(t, exp.IsCurrent)
	assert.Nil(t, exp.EndDate)
}

func TestExperienceListOrderingAndVisibility(t *testing.T) {
	svc := NewExperienceService(newTestDB(t))

	_, err := svc.Create(&dto.ExperienceRequest{
		Title: "Second", Company: "B", StartDate: "2020-01-01", SortOrder: 2,
	})
	require.NoError(t, err)
	_, err = svc.Create(&dto.ExperienceRequest{
		Title: "First", Company: "A", StartDate: "2021-01-01", SortOrder: 1,
	})
	require.NoError(t, err)
	_, err = svc.Create(&dto.ExperienceRequest{
		Title: "Hidden", Company: "C", StartDate: "2022-01-01", IsActive: boolPtr(false),
	})
	require.NoError(t, err)

	public, err := svc.List(true)
	require.NoError(t, err)
	require.Len(t, public, 2)
	assert.Equal(t, "First", public[0].Title)

	all, err := svc.List(false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
