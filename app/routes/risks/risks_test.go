package risks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sage-backend/app/models"
)

func TestRecalculateOverridesClientScore(t *testing.T) {
	for likelihood := 1; likelihood <= 5; likelihood++ {
		for impact := 1; impact <= 5; impact++ {
			r := models.Risk{
				Likelihood: likelihood,
				Impact:     impact,
				RiskScore:  99, // client-supplied, must be ignored
			}
			r.Recalculate()
			assert.Equal(t, likelihood*impact, r.RiskScore)
		}
	}
}

func TestRiskValidationBounds(t *testing.T) {
	valid := models.Risk{Title: "Supplier insolvency", Likelihood: 3, Impact: 4}
	assert.NoError(t, validate.Struct(valid))

	outOfRange := models.Risk{Title: "x", Likelihood: 0, Impact: 6}
	assert.Error(t, validate.Struct(outOfRange))
}
