// Package budgets serves budget CRUD. Variance, burn rate and available
// are derived from the stored amounts on every read and never persisted.
package budgets

import (
	"database/sql"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"sage-backend/app/crud"
	"sage-backend/app/finance"
	"sage-backend/app/models"
	"sage-backend/app/pagination"
	"sage-backend/app/routes/auth"
)

var budgetColumns = []string{
	"id", "workstream_id", "fiscal_year", "allocated_amount", "committed_amount",
	"actual_spend", "forecast_spend", "created_at", "updated_at",
}

func scanBudget(r crud.Row) (*models.Budget, error) {
	b := &models.Budget{}
	err := r.Scan(&b.ID, &b.WorkstreamID, &b.FiscalYear, &b.AllocatedAmount,
		&b.CommittedAmount, &b.ActualSpend, &b.ForecastSpend, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

var budgetEntity = &crud.Entity[models.Budget]{
	Table:   "budgets",
	Columns: budgetColumns,
	Filters: map[string]string{
		"workstream_id": "workstream_id",
		"fiscal_year":   "fiscal_year",
	},
	Scan:       scanBudget,
	InsertCols: []string{"workstream_id", "fiscal_year", "allocated_amount", "committed_amount", "actual_spend", "forecast_spend"},
	InsertVals: func(b *models.Budget) []any {
		return []any{b.WorkstreamID, b.FiscalYear, b.AllocatedAmount, b.CommittedAmount, b.ActualSpend, b.ForecastSpend}
	},
}

// budgetView carries the stored row plus the derived position.
type budgetView struct {
	*models.Budget
	Derived finance.BudgetDerived `json:"derived"`
}

func view(b *models.Budget) budgetView {
	return budgetView{
		Budget:  b,
		Derived: finance.DeriveBudget(b.AllocatedAmount, b.ActualSpend, b.CommittedAmount),
	}
}

func SetupBudgetRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/budgets")
	api.Use(auth.AuthMiddleware)

	api.Get("/", ListBudgetsHandler(db))
	api.Get("/:id", GetBudgetHandler(db))
	api.Post("/", budgetEntity.Create(db))
	api.Put("/:id", budgetEntity.Update(db))
	api.Delete("/:id", auth.RequireRole(models.RoleAdmin), budgetEntity.Delete(db))
}

func ListBudgetsHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := pagination.FromCtx(c)

		var where string
		var args []any
		if ws := c.Query("workstream_id"); ws != "" {
			args = append(args, ws)
			where = " WHERE workstream_id = $1"
		}
		if fy := c.Query("fiscal_year"); fy != "" {
			args = append(args, fy)
			if where == "" {
				where = " WHERE fiscal_year = $1"
			} else {
				where += " AND fiscal_year = $2"
			}
		}

		var total int
		if err := db.QueryRow("SELECT COUNT(*) FROM budgets"+where, args...).Scan(&total); err != nil {
			return err
		}

		query := "SELECT id, workstream_id, fiscal_year, allocated_amount, committed_amount, actual_spend, forecast_spend, created_at, updated_at FROM budgets" +
			where + " ORDER BY created_at DESC LIMIT $" + strconv.Itoa(len(args)+1) + " OFFSET $" + strconv.Itoa(len(args)+2)
		args = append(args, page.Limit, page.Offset())

		rows, err := db.Query(query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		views := []budgetView{}
		for rows.Next() {
			b, err := scanBudget(rows)
			if err != nil {
				return err
			}
			views = append(views, view(b))
		}
		if err := rows.Err(); err != nil {
			return err
		}
		return c.JSON(pagination.Wrap(views, page, total))
	}
}

func GetBudgetHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		b, err := budgetEntity.ByID(db, id)
		if err != nil {
			return err
		}
		return c.JSON(view(b))
	}
}
