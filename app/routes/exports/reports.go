package exports

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"sage-backend/app/finance"
)

type reviewIndicator struct {
	Name     string  `json:"name"`
	Unit     string  `json:"unit,omitempty"`
	Baseline float64 `json:"baseline"`
	Target   float64 `json:"target"`
	Actual   float64 `json:"actual"`
	Progress float64 `json:"progress"`
}

type reviewRisk struct {
	Title     string `json:"title"`
	RiskScore int    `json:"risk_score"`
	Status    string `json:"status"`
}

type reviewBudget struct {
	FiscalYear string                `json:"fiscal_year"`
	Allocated  float64               `json:"allocated"`
	Actual     float64               `json:"actual"`
	Derived    finance.BudgetDerived `json:"derived"`
}

type reviewWorkstream struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	RAGStatus  string            `json:"rag_status,omitempty"`
	Budgets    []reviewBudget    `json:"budgets"`
	Indicators []reviewIndicator `json:"indicators"`
	OpenRisks  []reviewRisk      `json:"open_risks"`
}

type reviewProgramme struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	RAGStatus   string             `json:"rag_status,omitempty"`
	Workstreams []reviewWorkstream `json:"workstreams"`
}

type annualReview struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Programmes  []reviewProgramme `json:"programmes"`
}

// AnnualReviewHandler assembles the programme -> workstream -> evidence
// hierarchy the annual review template expects: every workstream with
// its budgets, indicator progress and open risks.
func AnnualReviewHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		review := annualReview{GeneratedAt: time.Now().UTC(), Programmes: []reviewProgramme{}}

		rows, err := db.Query(`SELECT id, name, COALESCE(rag_status, '') FROM programmes ORDER BY name ASC`)
		if err != nil {
			return err
		}
		defer rows.Close()
		for rows.Next() {
			p := reviewProgramme{Workstreams: []reviewWorkstream{}}
			if err := rows.Scan(&p.ID, &p.Name, &p.RAGStatus); err != nil {
				return err
			}
			review.Programmes = append(review.Programmes, p)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		for i := range review.Programmes {
			workstreams, err := reviewWorkstreams(db, review.Programmes[i].ID)
			if err != nil {
				return err
			}
			review.Programmes[i].Workstreams = workstreams
		}
		return c.JSON(review)
	}
}

func reviewWorkstreams(db *sql.DB, programmeID string) ([]reviewWorkstream, error) {
	rows, err := db.Query(`SELECT id, name, COALESCE(rag_status, '')
		FROM workstreams WHERE programme_id = $1 ORDER BY name ASC`, programmeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workstreams := []reviewWorkstream{}
	for rows.Next() {
		ws := reviewWorkstream{Budgets: []reviewBudget{}, Indicators: []reviewIndicator{}, OpenRisks: []reviewRisk{}}
		if err := rows.Scan(&ws.ID, &ws.Name, &ws.RAGStatus); err != nil {
			return nil, err
		}
		workstreams = append(workstreams, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range workstreams {
		if err := fillWorkstream(db, &workstreams[i]); err != nil {
			return nil, err
		}
	}
	return workstreams, nil
}

func fillWorkstream(db *sql.DB, ws *reviewWorkstream) error {
	budgets, err := db.Query(`SELECT fiscal_year, allocated_amount, committed_amount, actual_spend
		FROM budgets WHERE workstream_id = $1 ORDER BY fiscal_year DESC`, ws.ID)
	if err != nil {
		return err
	}
	defer budgets.Close()
	for budgets.Next() {
		var b reviewBudget
		var committed float64
		if err := budgets.Scan(&b.FiscalYear, &b.Allocated, &committed, &b.Actual); err != nil {
			return err
		}
		b.Derived = finance.DeriveBudget(b.Allocated, b.Actual, committed)
		ws.Budgets = append(ws.Budgets, b)
	}
	if err := budgets.Err(); err != nil {
		return err
	}

	indicators, err := db.Query(`SELECT name, COALESCE(unit, ''), baseline, target, actual
		FROM indicators WHERE workstream_id = $1 ORDER BY name ASC`, ws.ID)
	if err != nil {
		return err
	}
	defer indicators.Close()
	for indicators.Next() {
		var ind reviewIndicator
		if err := indicators.Scan(&ind.Name, &ind.Unit, &ind.Baseline, &ind.Target, &ind.Actual); err != nil {
			return err
		}
		ind.Progress = finance.Progress(ind.Actual, ind.Target)
		ws.Indicators = append(ws.Indicators, ind)
	}
	if err := indicators.Err(); err != nil {
		return err
	}

	risks, err := db.Query(`SELECT title, risk_score, status
		FROM risks WHERE workstream_id = $1 AND status != 'Closed'
		ORDER BY risk_score DESC`, ws.ID)
	if err != nil {
		return err
	}
	defer risks.Close()
	for risks.Next() {
		var r reviewRisk
		if err := risks.Scan(&r.Title, &r.RiskScore, &r.Status); err != nil {
			return err
		}
		ws.OpenRisks = append(ws.OpenRisks, r)
	}
	return risks.Err()
}

// ActivityStreamHandler reshapes the recent-activity feed into the flat
// event list the external reporting tool ingests.
func ActivityStreamHandler(service *finance.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		feed, err := service.RecentActivity()
		if err != nil {
			return err
		}

		type event struct {
			EventType  string    `json:"eventType"`
			Summary    string    `json:"summary"`
			Actor      string    `json:"actor"`
			OccurredAt time.Time `json:"occurredAt"`
		}
		events := make([]event, len(feed))
		for i, a := range feed {
			events[i] = event{
				EventType:  a.Type,
				Summary:    a.Title,
				Actor:      a.Actor,
				OccurredAt: a.Timestamp,
			}
		}
		return c.JSON(fiber.Map{
			"generatedAt": time.Now().UTC(),
			"events":      events,
		})
	}
}
