// Package finance holds the derived financial computations: zero-guarded
// ratios, assignment LoE usage, budget variance and the cross-entity
// roll-up behind the comprehensive dashboard. Nothing here is persisted;
// every figure is recomputed from stored amounts at read time.
package finance

import "math"

// Ratio returns num/den as a percentage. A denominator of zero or less
// yields exactly 0, never NaN or Inf. Every ratio in the system goes
// through this guard.
func Ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return num / den * 100
}

// Round2 rounds to two decimal places for reporting figures.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// AssignmentUsage is the derived LoE position of one assignment.
type AssignmentUsage struct {
	ContractedLoE float64 `json:"contracted_loe"`
	TotalLoEUsed  float64 `json:"total_loe_used"`
	BurnRate      float64 `json:"burn_rate"`
	RemainingLoE  float64 `json:"remaining_loe"`
}

func Usage(contracted, used float64) AssignmentUsage {
	remaining := contracted - used
	if remaining < 0 {
		remaining = 0
	}
	return AssignmentUsage{
		ContractedLoE: contracted,
		TotalLoEUsed:  used,
		BurnRate:      Round2(Ratio(used, contracted)),
		RemainingLoE:  Round2(remaining),
	}
}

// BudgetDerived is the derived position of one budget line.
type BudgetDerived struct {
	Variance           float64 `json:"variance"`
	VariancePercentage float64 `json:"variance_percentage"`
	BurnRate           float64 `json:"burn_rate"`
	Available          float64 `json:"available"`
}

func DeriveBudget(allocated, actual, committed float64) BudgetDerived {
	variance := allocated - actual
	return BudgetDerived{
		Variance:           variance,
		VariancePercentage: Round2(Ratio(variance, allocated)),
		BurnRate:           Round2(Ratio(actual, allocated)),
		Available:          allocated - committed,
	}
}

// Progress is the indicator actual-vs-target percentage, zero-guarded
// like every other ratio.
func Progress(actual, target float64) float64 {
	return Round2(Ratio(actual, target))
}
