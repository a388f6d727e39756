package exports

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"sage-backend/app/apperr"
	"sage-backend/app/finance"
	"sage-backend/app/routes/auth"
	"sage-backend/app/routes/dashboard"
)

func SetupExportRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/exports")
	api.Use(auth.AuthMiddleware)
	api.Get("/:entity.:format", formatDispatch(db))

	service := finance.NewService(dashboard.NewStore(db))

	reports := app.Group("/api/reports")
	reports.Use(auth.AuthMiddleware)
	reports.Get("/annual-review", AnnualReviewHandler(db))
	reports.Get("/activity-stream", ActivityStreamHandler(service))
}

func formatDispatch(db *sql.DB) fiber.Handler {
	csvHandler := CSVHandler(db)
	jsonHandler := JSONHandler(db)
	return func(c *fiber.Ctx) error {
		switch c.Params("format") {
		case "csv":
			return csvHandler(c)
		case "json":
			return jsonHandler(c)
		default:
			return apperr.NotFound("export")
		}
	}
}
