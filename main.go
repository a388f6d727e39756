package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"sage-backend/app/apperr"
	"sage-backend/app/config"
	"sage-backend/app/database"
	"sage-backend/app/routes/assignments"
	"sage-backend/app/routes/auth"
	"sage-backend/app/routes/budgets"
	"sage-backend/app/routes/dashboard"
	"sage-backend/app/routes/donors"
	"sage-backend/app/routes/entities"
	"sage-backend/app/routes/exports"
	"sage-backend/app/routes/indicators"
	"sage-backend/app/routes/risks"
	"sage-backend/app/routes/tors"
)

func main() {
	cfg := config.Load()

	db, err := config.OpenDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: apperr.ErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())
	app.Use(limiter.New(limiter.Config{
		Max: 300,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := db.Ping(); err != nil {
			return fiber.NewError(fiber.StatusServiceUnavailable, "database unreachable")
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	auth.SetupAuthRoutes(app, db)
	entities.SetupEntityRoutes(app, db)
	tors.SetupToRRoutes(app, db)
	assignments.SetupAssignmentRoutes(app, db)
	budgets.SetupBudgetRoutes(app, db)
	risks.SetupRiskRoutes(app, db)
	indicators.SetupIndicatorRoutes(app, db)
	donors.SetupDonorRoutes(app, db)
	dashboard.SetupDashboardRoutes(app, db)
	exports.SetupExportRoutes(app, db)

	// Catch-all (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	log.Println("Server starting on :" + cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
