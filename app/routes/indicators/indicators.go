// Package indicators serves indicator and result CRUD. The indicator's
// actual is a live sum over its results: every result write recomputes
// the parent, so edits and deletions correct the total.
package indicators

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"sage-backend/app/apperr"
	"sage-backend/app/crud"
	"sage-backend/app/finance"
	"sage-backend/app/models"
	"sage-backend/app/routes/auth"
)

var indicatorColumns = []string{
	"id", "workstream_id", "name", "unit", "baseline", "target", "actual",
	"created_at", "updated_at",
}

func scanIndicator(r crud.Row) (*models.Indicator, error) {
	i := &models.Indicator{}
	err := r.Scan(&i.ID, &i.WorkstreamID, &i.Name, &i.Unit, &i.Baseline,
		&i.Target, &i.Actual, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return i, nil
}

var indicatorEntity = &crud.Entity[models.Indicator]{
	Table:      "indicators",
	Columns:    indicatorColumns,
	Filters:    map[string]string{"workstream_id": "workstream_id"},
	Scan:       scanIndicator,
	InsertCols: []string{"workstream_id", "name", "unit", "baseline", "target"},
	InsertVals: func(i *models.Indicator) []any {
		return []any{i.WorkstreamID, i.Name, i.Unit, i.Baseline, i.Target}
	},
	UpdateCols: []string{"workstream_id", "name", "unit", "baseline", "target"},
	UpdateVals: func(i *models.Indicator) []any {
		return []any{i.WorkstreamID, i.Name, i.Unit, i.Baseline, i.Target}
	},
}

var resultColumns = []string{
	"id", "indicator_id", "value", "result_date", "notes", "created_at", "updated_at",
}

func scanResult(r crud.Row) (*models.Result, error) {
	res := &models.Result{}
	err := r.Scan(&res.ID, &res.IndicatorID, &res.Value, &res.ResultDate,
		&res.Notes, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return res, nil
}

var resultEntity = &crud.Entity[models.Result]{
	Table:        "results",
	Columns:      resultColumns,
	Filters:      map[string]string{"indicator_id": "indicator_id"},
	DefaultOrder: "result_date DESC",
	Scan:         scanResult,
}

// indicatorView adds the derived progress percentage.
type indicatorView struct {
	*models.Indicator
	Progress float64 `json:"progress"`
}

func view(i *models.Indicator) indicatorView {
	return indicatorView{Indicator: i, Progress: finance.Progress(i.Actual, i.Target)}
}

func SetupIndicatorRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/indicators")
	api.Use(auth.AuthMiddleware)

	api.Get("/", indicatorEntity.List(db))
	api.Get("/:id", GetIndicatorHandler(db))
	api.Post("/", indicatorEntity.Create(db))
	api.Put("/:id", indicatorEntity.Update(db))
	api.Delete("/:id", auth.RequireRole(models.RoleAdmin), indicatorEntity.Delete(db))

	results := app.Group("/api/results")
	results.Use(auth.AuthMiddleware)
	results.Get("/", resultEntity.List(db))
	results.Get("/:id", resultEntity.Get(db))
	results.Post("/", CreateResultHandler(db))
	results.Put("/:id", UpdateResultHandler(db))
	results.Delete("/:id", DeleteResultHandler(db))
}

func GetIndicatorHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		i, err := indicatorEntity.ByID(db, id)
		if err != nil {
			return err
		}
		return c.JSON(view(i))
	}
}

// recomputeActual keeps the parent indicator's running total equal to
// the live sum of its results, in one statement.
func recomputeActual(db *sql.DB, indicatorID string) error {
	_, err := db.Exec(`UPDATE indicators
					   SET actual = (SELECT COALESCE(SUM(value), 0) FROM results WHERE indicator_id = $1),
						   updated_at = NOW()
					   WHERE id = $1`, indicatorID)
	return err
}

func CreateResultHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := &models.Result{}
		if err := c.BodyParser(res); err != nil {
			return apperr.Validationf("body", "invalid request body")
		}
		if res.IndicatorID == "" {
			return apperr.Validationf("indicator_id", "is required")
		}

		query := `INSERT INTO results (indicator_id, value, result_date, notes)
				  VALUES ($1, $2, $3, $4)
				  RETURNING id, indicator_id, value, result_date, notes, created_at, updated_at`
		created, err := scanResult(db.QueryRow(query, res.IndicatorID, res.Value, res.ResultDate, res.Notes))
		if err != nil {
			return err
		}
		if err := recomputeActual(db, created.IndicatorID); err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

func UpdateResultHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		res, err := resultEntity.ByID(db, id)
		if err != nil {
			return err
		}
		previousIndicator := res.IndicatorID
		if err := c.BodyParser(res); err != nil {
			return apperr.Validationf("body", "invalid request body")
		}

		query := `UPDATE results
				  SET indicator_id = $1, value = $2, result_date = $3, notes = $4, updated_at = NOW()
				  WHERE id = $5
				  RETURNING id, indicator_id, value, result_date, notes, created_at, updated_at`
		updated, err := scanResult(db.QueryRow(query, res.IndicatorID, res.Value, res.ResultDate, res.Notes, id))
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("result")
		}
		if err != nil {
			return err
		}

		if err := recomputeActual(db, updated.IndicatorID); err != nil {
			return err
		}
		// A result re-pointed at another indicator corrects both totals.
		if previousIndicator != updated.IndicatorID {
			if err := recomputeActual(db, previousIndicator); err != nil {
				return err
			}
		}
		return c.JSON(updated)
	}
}

func DeleteResultHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		res, err := resultEntity.ByID(db, id)
		if err != nil {
			return err
		}

		result, err := db.Exec(`DELETE FROM results WHERE id = $1`, id)
		if err != nil {
			return err
		}
		n, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return apperr.NotFound("result")
		}
		if err := recomputeActual(db, res.IndicatorID); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
