package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRatioZeroGuard(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(10, 0))
	assert.Equal(t, 0.0, Ratio(10, -5))
	assert.Equal(t, 0.0, Ratio(0, 0))
	assert.Equal(t, 50.0, Ratio(1, 2))
	assert.False(t, math.IsNaN(Ratio(0, 0)))
	assert.False(t, math.IsInf(Ratio(100, 0), 1))
}

func TestUsageFixedPoint(t *testing.T) {
	// Reference figures: 28.5 days against 45 contracted at rate 850.
	u := Usage(45, 28.5)
	assert.Equal(t, 28.5, u.TotalLoEUsed)
	assert.Equal(t, 63.33, u.BurnRate)
	assert.Equal(t, 16.5, u.RemainingLoE)
}

func TestUsageOverBurn(t *testing.T) {
	u := Usage(10, 12)
	assert.Equal(t, 120.0, u.BurnRate)
	assert.Equal(t, 0.0, u.RemainingLoE)
}

func TestUsageZeroContracted(t *testing.T) {
	u := Usage(0, 5)
	assert.Equal(t, 0.0, u.BurnRate)
	assert.Equal(t, 0.0, u.RemainingLoE)
}

func TestDeriveBudget(t *testing.T) {
	d := DeriveBudget(100000, 40000, 65000)
	assert.Equal(t, 60000.0, d.Variance)
	assert.Equal(t, 60.0, d.VariancePercentage)
	assert.Equal(t, 40.0, d.BurnRate)
	assert.Equal(t, 35000.0, d.Available)
}

func TestDeriveBudgetZeroAllocation(t *testing.T) {
	d := DeriveBudget(0, 500, 200)
	assert.Equal(t, -500.0, d.Variance)
	assert.Equal(t, 0.0, d.VariancePercentage)
	assert.Equal(t, 0.0, d.BurnRate)
}

func TestProgress(t *testing.T) {
	assert.Equal(t, 75.0, Progress(75, 100))
	assert.Equal(t, 0.0, Progress(75, 0))
	assert.Equal(t, 33.33, Progress(1, 3))
}
