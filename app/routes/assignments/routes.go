package assignments

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"sage-backend/app/crud"
	"sage-backend/app/models"
	"sage-backend/app/routes/auth"
)

func SetupAssignmentRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/assignments")
	api.Use(auth.AuthMiddleware)

	api.Get("/", assignmentEntity.List(db))
	api.Get("/:id", assignmentEntity.Get(db))
	api.Post("/", assignmentEntity.Create(db))
	api.Put("/:id", UpdateAssignmentHandler(db))
	api.Delete("/:id", auth.RequireRole(models.RoleAdmin), assignmentEntity.Delete(db))

	// Derived views
	api.Get("/:id/summary", SummaryHandler(db))
	api.Get("/:id/loe-entries", ListAssignmentLoEHandler(db))
	api.Get("/:id/fees", FeesHandler(db))

	guards := crud.Guards{
		Delete: []fiber.Handler{auth.RequireRole(models.RoleAdmin)},
	}

	// LoE entries
	loe := app.Group("/api/loe-entries")
	loe.Use(auth.AuthMiddleware)
	loeEntity.Register(loe, db, guards)

	// Stored fees (milestone/bonus/adjustment rows)
	fees := app.Group("/api/fees")
	fees.Use(auth.AuthMiddleware)
	feeEntity.Register(fees, db, guards)

	// Expenses
	expenses := app.Group("/api/expenses")
	expenses.Use(auth.AuthMiddleware)
	expenseEntity.Register(expenses, db, guards)

	// Deliverable submission stamps the activity feed timestamp.
	deliverables := app.Group("/api/deliverables")
	deliverables.Use(auth.AuthMiddleware)
	deliverables.Post("/:id/submit", SubmitDeliverableHandler(db))
}
