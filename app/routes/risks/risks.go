// Package risks serves risk CRUD. risk_score = likelihood * impact is
// recomputed server-side before every write; a client-supplied score is
// never trusted.
package risks

import (
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sage-backend/app/apperr"
	"sage-backend/app/crud"
	"sage-backend/app/models"
	"sage-backend/app/routes/auth"
)

var validate = validator.New()

var riskColumns = []string{
	"id", "workstream_id", "title", "description", "likelihood", "impact",
	"risk_score", "status", "mitigation", "raised_by", "raised_at",
	"created_at", "updated_at",
}

func scanRisk(r crud.Row) (*models.Risk, error) {
	risk := &models.Risk{}
	err := r.Scan(&risk.ID, &risk.WorkstreamID, &risk.Title, &risk.Description,
		&risk.Likelihood, &risk.Impact, &risk.RiskScore, &risk.Status,
		&risk.Mitigation, &risk.RaisedBy, &risk.RaisedAt, &risk.CreatedAt, &risk.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return risk, nil
}

var riskEntity = &crud.Entity[models.Risk]{
	Table:   "risks",
	Columns: riskColumns,
	Filters: map[string]string{
		"workstream_id": "workstream_id",
		"status":        "status",
	},
	Scan: scanRisk,
}

func SetupRiskRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/risks")
	api.Use(auth.AuthMiddleware)

	api.Get("/", riskEntity.List(db))
	api.Get("/:id", riskEntity.Get(db))
	api.Post("/", CreateRiskHandler(db))
	api.Put("/:id", UpdateRiskHandler(db))
	api.Delete("/:id", auth.RequireRole(models.RoleAdmin), riskEntity.Delete(db))
}

func CreateRiskHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		risk := &models.Risk{}
		if err := c.BodyParser(risk); err != nil {
			return apperr.Validationf("body", "invalid request body")
		}
		if err := validate.Struct(risk); err != nil {
			return apperr.FromValidator(err)
		}
		risk.Recalculate()
		if risk.Status == "" {
			risk.Status = "Open"
		}
		if userID := auth.UserID(c); userID != "" && risk.RaisedBy == nil {
			risk.RaisedBy = &userID
		}

		query := `INSERT INTO risks (workstream_id, title, description, likelihood, impact,
									 risk_score, status, mitigation, raised_by, raised_at)
				  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
				  RETURNING ` + columnList()

		created, err := scanRisk(db.QueryRow(query,
			risk.WorkstreamID, risk.Title, risk.Description, risk.Likelihood,
			risk.Impact, risk.RiskScore, risk.Status, risk.Mitigation, risk.RaisedBy))
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

func UpdateRiskHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		risk, err := riskEntity.ByID(db, id)
		if err != nil {
			return err
		}
		if err := c.BodyParser(risk); err != nil {
			return apperr.Validationf("body", "invalid request body")
		}
		if err := validate.Struct(risk); err != nil {
			return apperr.FromValidator(err)
		}
		risk.Recalculate()

		query := `UPDATE risks
				  SET workstream_id = $1, title = $2, description = $3, likelihood = $4,
					  impact = $5, risk_score = $6, status = $7, mitigation = $8,
					  updated_at = NOW()
				  WHERE id = $9
				  RETURNING ` + columnList()

		updated, err := scanRisk(db.QueryRow(query,
			risk.WorkstreamID, risk.Title, risk.Description, risk.Likelihood,
			risk.Impact, risk.RiskScore, risk.Status, risk.Mitigation, id))
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("risk")
		}
		if err != nil {
			return err
		}
		return c.JSON(updated)
	}
}

func columnList() string {
	list := riskColumns[0]
	for _, c := range riskColumns[1:] {
		list += ", " + c
	}
	return list
}
