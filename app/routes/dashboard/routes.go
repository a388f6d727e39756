// Package dashboard serves the aggregation endpoints. The reads behind
// each payload are separate queries without a spanning transaction, so
// a response is an eventually-consistent snapshot under concurrent
// writes.
package dashboard

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"sage-backend/app/crud"
	"sage-backend/app/finance"
	"sage-backend/app/routes/auth"
	"sage-backend/app/routes/donors"
)

func SetupDashboardRoutes(app *fiber.App, db *sql.DB) {
	service := finance.NewService(NewStore(db))

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/regional", RegionalHandler(db))
	api.Get("/country/:id", CountryHandler(db))
	api.Get("/workstream/:id", WorkstreamHandler(db))
	api.Get("/comprehensive", ComprehensiveHandler(service))
}

func RegionalHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := regionalStats(db)
		if err != nil {
			return err
		}
		return c.JSON(stats)
	}
}

func CountryHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		countryID, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		stats, err := countryStats(db, countryID)
		if err != nil {
			return err
		}
		activity, err := donors.ActivityForCountry(db, countryID)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"stats":          stats,
			"donor_activity": activity,
		})
	}
}

func WorkstreamHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		workstreamID, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		stats, err := workstreamStats(db, workstreamID)
		if err != nil {
			return err
		}
		return c.JSON(stats)
	}
}

func ComprehensiveHandler(service *finance.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rollup, err := service.Comprehensive()
		if err != nil {
			return err
		}
		return c.JSON(rollup)
	}
}
