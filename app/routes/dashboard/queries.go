package dashboard

import (
	"database/sql"

	"sage-backend/app/finance"
)

type RegionalStats struct {
	Programmes         int     `json:"programmes"`
	Workstreams        int     `json:"workstreams"`
	ActiveAssignments  int     `json:"active_assignments"`
	ConsultantsEngaged int     `json:"consultants_engaged"`
	OpenRisks          int     `json:"open_risks"`
	HighRisks          int     `json:"high_risks"` // risk_score >= 15
	IndicatorProgress  float64 `json:"indicator_progress"`
	DonorProjects      int     `json:"donor_projects"`
	DonorBudget        float64 `json:"donor_budget"`
}

func regionalStats(db *sql.DB) (*RegionalStats, error) {
	stats := &RegionalStats{}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM programmes`, &stats.Programmes},
		{`SELECT COUNT(*) FROM workstreams`, &stats.Workstreams},
		{`SELECT COUNT(*) FROM assignments WHERE status = 'Active'`, &stats.ActiveAssignments},
		{`SELECT COUNT(DISTINCT consultant_id) FROM assignments WHERE consultant_id IS NOT NULL AND status IN ('Active', 'Mobilising')`, &stats.ConsultantsEngaged},
		{`SELECT COUNT(*) FROM risks WHERE status = 'Open'`, &stats.OpenRisks},
		{`SELECT COUNT(*) FROM risks WHERE status = 'Open' AND risk_score >= 15`, &stats.HighRisks},
		{`SELECT COUNT(*) FROM donor_projects`, &stats.DonorProjects},
	}
	for _, c := range counts {
		if err := db.QueryRow(c.query).Scan(c.dest); err != nil {
			return nil, err
		}
	}

	var actual, target float64
	err := db.QueryRow(`SELECT COALESCE(SUM(actual), 0), COALESCE(SUM(target), 0) FROM indicators`).
		Scan(&actual, &target)
	if err != nil {
		return nil, err
	}
	stats.IndicatorProgress = finance.Progress(actual, target)

	err = db.QueryRow(`SELECT COALESCE(SUM(total_budget), 0) FROM donor_projects`).
		Scan(&stats.DonorBudget)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

type CountryStats struct {
	Assignments           int `json:"assignments"`
	ActiveAssignments     int `json:"active_assignments"`
	ConsultantsDeployed   int `json:"consultants_deployed"`
	SafeguardingIncidents int `json:"safeguarding_incidents"`
}

func countryStats(db *sql.DB, countryID string) (*CountryStats, error) {
	stats := &CountryStats{}

	counts := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM assignments WHERE country_id = $1`, &stats.Assignments},
		{`SELECT COUNT(*) FROM assignments WHERE country_id = $1 AND status = 'Active'`, &stats.ActiveAssignments},
		{`SELECT COUNT(DISTINCT consultant_id) FROM assignments WHERE country_id = $1 AND consultant_id IS NOT NULL`, &stats.ConsultantsDeployed},
		{`SELECT COUNT(*) FROM safeguarding_incidents WHERE country_id = $1`, &stats.SafeguardingIncidents},
	}
	for _, c := range counts {
		if err := db.QueryRow(c.query, countryID).Scan(c.dest); err != nil {
			return nil, err
		}
	}
	return stats, nil
}

type workstreamBudget struct {
	ID              string                `json:"id"`
	FiscalYear      string                `json:"fiscal_year"`
	AllocatedAmount float64               `json:"allocated_amount"`
	CommittedAmount float64               `json:"committed_amount"`
	ActualSpend     float64               `json:"actual_spend"`
	ForecastSpend   float64               `json:"forecast_spend"`
	Derived         finance.BudgetDerived `json:"derived"`
}

type workstreamIndicator struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Baseline float64 `json:"baseline"`
	Target   float64 `json:"target"`
	Actual   float64 `json:"actual"`
	Progress float64 `json:"progress"`
}

type workstreamRisk struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	RiskScore int    `json:"risk_score"`
	Status    string `json:"status"`
}

type WorkstreamStats struct {
	Budgets     []workstreamBudget    `json:"budgets"`
	Indicators  []workstreamIndicator `json:"indicators"`
	Risks       []workstreamRisk      `json:"risks"`
	ToRs        int                   `json:"tors"`
	Assignments int                   `json:"assignments"`
}

func workstreamStats(db *sql.DB, workstreamID string) (*WorkstreamStats, error) {
	stats := &WorkstreamStats{
		Budgets:    []workstreamBudget{},
		Indicators: []workstreamIndicator{},
		Risks:      []workstreamRisk{},
	}

	rows, err := db.Query(`SELECT id, fiscal_year, allocated_amount, committed_amount, actual_spend, forecast_spend
						   FROM budgets WHERE workstream_id = $1 ORDER BY fiscal_year`, workstreamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var b workstreamBudget
		if err := rows.Scan(&b.ID, &b.FiscalYear, &b.AllocatedAmount, &b.CommittedAmount, &b.ActualSpend, &b.ForecastSpend); err != nil {
			return nil, err
		}
		b.Derived = finance.DeriveBudget(b.AllocatedAmount, b.ActualSpend, b.CommittedAmount)
		stats.Budgets = append(stats.Budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	irows, err := db.Query(`SELECT id, name, baseline, target, actual
							FROM indicators WHERE workstream_id = $1 ORDER BY name`, workstreamID)
	if err != nil {
		return nil, err
	}
	defer irows.Close()
	for irows.Next() {
		var i workstreamIndicator
		if err := irows.Scan(&i.ID, &i.Name, &i.Baseline, &i.Target, &i.Actual); err != nil {
			return nil, err
		}
		i.Progress = finance.Progress(i.Actual, i.Target)
		stats.Indicators = append(stats.Indicators, i)
	}
	if err := irows.Err(); err != nil {
		return nil, err
	}

	rrows, err := db.Query(`SELECT id, title, risk_score, status
							FROM risks WHERE workstream_id = $1 ORDER BY risk_score DESC`, workstreamID)
	if err != nil {
		return nil, err
	}
	defer rrows.Close()
	for rrows.Next() {
		var r workstreamRisk
		if err := rrows.Scan(&r.ID, &r.Title, &r.RiskScore, &r.Status); err != nil {
			return nil, err
		}
		stats.Risks = append(stats.Risks, r)
	}
	if err := rrows.Err(); err != nil {
		return nil, err
	}

	if err := db.QueryRow(`SELECT COUNT(*) FROM tors WHERE workstream_id = $1`, workstreamID).Scan(&stats.ToRs); err != nil {
		return nil, err
	}
	err = db.QueryRow(`SELECT COUNT(*) FROM assignments a JOIN tors t ON a.tor_id = t.id WHERE t.workstream_id = $1`,
		workstreamID).Scan(&stats.Assignments)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
