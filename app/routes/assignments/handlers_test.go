package assignments

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sage-backend/app/models"
)

func TestAssignmentValidationBounds(t *testing.T) {
	valid := models.Assignment{
		ToRID:         "2f0c9a34-6c1a-4b9e-8a58-3f6f2d9b7c11",
		Title:         "Evaluation lead",
		Status:        models.AssignmentStatusActive,
		ContractedLoE: 45,
		DailyRate:     850,
	}
	assert.NoError(t, validate.Struct(valid))

	// An unrecognised status would silently fall out of the working set
	// and every dashboard count, so it must be rejected up front.
	bogusStatus := valid
	bogusStatus.Status = "Bogus"
	assert.Error(t, validate.Struct(bogusStatus))

	negativeLoE := valid
	negativeLoE.ContractedLoE = -3
	assert.Error(t, validate.Struct(negativeLoE))

	negativeRate := valid
	negativeRate.DailyRate = -1
	assert.Error(t, validate.Struct(negativeRate))
}
