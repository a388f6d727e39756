// Package donors serves donor project CRUD and the per-country donor
// activity aggregation: projects in the country plus every regional
// project, grouped by donor organisation.
package donors

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"sage-backend/app/crud"
	"sage-backend/app/models"
	"sage-backend/app/routes/auth"
)

var projectColumns = []string{
	"id", "donor_id", "country_id", "is_regional", "name", "sector",
	"total_budget", "status", "created_at", "updated_at",
}

func scanProject(r crud.Row) (*models.DonorProject, error) {
	p := &models.DonorProject{}
	err := r.Scan(&p.ID, &p.DonorID, &p.CountryID, &p.IsRegional, &p.Name,
		&p.Sector, &p.TotalBudget, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

var projectEntity = &crud.Entity[models.DonorProject]{
	Table:   "donor_projects",
	Columns: projectColumns,
	Filters: map[string]string{
		"donor_id":   "donor_id",
		"country_id": "country_id",
		"status":     "status",
		"sector":     "sector",
	},
	Scan:       scanProject,
	InsertCols: []string{"donor_id", "country_id", "is_regional", "name", "sector", "total_budget", "status"},
	InsertVals: func(p *models.DonorProject) []any {
		if p.Status == "" {
			p.Status = "Active"
		}
		return []any{p.DonorID, p.CountryID, p.IsRegional, p.Name, p.Sector, p.TotalBudget, p.Status}
	},
}

func SetupDonorRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/donor-projects")
	api.Use(auth.AuthMiddleware)
	projectEntity.Register(api, db, crud.Guards{
		Delete: []fiber.Handler{auth.RequireRole(models.RoleAdmin)},
	})

	activity := app.Group("/api/donors")
	activity.Use(auth.AuthMiddleware)
	activity.Get("/activity/:id", CountryActivityHandler(db))
}

// CountryActivityHandler aggregates donor activity for one country.
// Regional projects count towards every country queried.
func CountryActivityHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		countryID, err := crud.ParseID(c)
		if err != nil {
			return err
		}

		activity, err := ActivityForCountry(db, countryID)
		if err != nil {
			return err
		}
		return c.JSON(activity)
	}
}

// ActivityForCountry is also consumed by the country dashboard.
func ActivityForCountry(db *sql.DB, countryID string) (CountryActivity, error) {
	projects, err := projectsForCountry(db, countryID)
	if err != nil {
		return CountryActivity{}, err
	}
	return GroupByDonor(projects), nil
}

// projectsForCountry joins the donor name in one query. Every donor
// project must resolve a donor organisation; a dangling donor_id is a
// data-integrity violation, not a handled case.
func projectsForCountry(db *sql.DB, countryID string) ([]*models.DonorProject, error) {
	query := `SELECT p.id, p.donor_id, p.country_id, p.is_regional, p.name, p.sector,
					 p.total_budget, p.status, p.created_at, p.updated_at,
					 d.id, d.name, d.donor_type
			  FROM donor_projects p
			  JOIN donor_organisations d ON p.donor_id = d.id
			  WHERE p.country_id = $1 OR p.is_regional = true
			  ORDER BY p.created_at DESC`

	rows, err := db.Query(query, countryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*models.DonorProject{}
	for rows.Next() {
		p := &models.DonorProject{Donor: &models.DonorOrganisation{}}
		err := rows.Scan(&p.ID, &p.DonorID, &p.CountryID, &p.IsRegional, &p.Name,
			&p.Sector, &p.TotalBudget, &p.Status, &p.CreatedAt, &p.UpdatedAt,
			&p.Donor.ID, &p.Donor.Name, &p.Donor.DonorType)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}
