package donors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sage-backend/app/models"
)

func project(donorID, donorName string, countryID *string, regional bool, budget float64) *models.DonorProject {
	return &models.DonorProject{
		DonorID:     donorID,
		CountryID:   countryID,
		IsRegional:  regional,
		TotalBudget: budget,
		Donor:       &models.DonorOrganisation{ID: donorID, Name: donorName},
	}
}

func TestGroupByDonor(t *testing.T) {
	kenya := "country-ke"
	projects := []*models.DonorProject{
		project("d1", "World Bank", &kenya, false, 1000),
		project("d2", "GIZ", &kenya, false, 250),
		project("d1", "World Bank", nil, true, 500),
	}

	activity := GroupByDonor(projects)
	require.Len(t, activity.Donors, 2)
	assert.Equal(t, 1750.0, activity.TotalBudget)

	wb := activity.Donors[0]
	assert.Equal(t, "World Bank", wb.DonorName)
	assert.Equal(t, 2, wb.ProjectCount)
	assert.Equal(t, 1500.0, wb.TotalBudget)

	giz := activity.Donors[1]
	assert.Equal(t, 1, giz.ProjectCount)
	assert.Equal(t, 250.0, giz.TotalBudget)
}

// A regional project with no country belongs in every country's view;
// the WHERE clause includes it and the grouping must not drop it.
func TestGroupByDonorRegionalWithNilCountry(t *testing.T) {
	regional := project("d1", "FCDO", nil, true, 900)

	activity := GroupByDonor([]*models.DonorProject{regional})
	require.Len(t, activity.Donors, 1)
	assert.Equal(t, 900.0, activity.TotalBudget)
	assert.Equal(t, 1, activity.Donors[0].ProjectCount)
}

func TestGroupByDonorEmpty(t *testing.T) {
	activity := GroupByDonor(nil)
	assert.NotNil(t, activity.Donors)
	assert.Empty(t, activity.Donors)
	assert.Zero(t, activity.TotalBudget)
}
