package tors

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"sage-backend/app/models"
	"sage-backend/app/routes/auth"
)

func SetupToRRoutes(app *fiber.App, db *sql.DB) {
	svc := newService(newStore(db))

	api := app.Group("/api/tors")
	api.Use(auth.AuthMiddleware)

	api.Get("/", torEntity.List(db))
	api.Get("/:id", torEntity.Get(db))
	api.Post("/", torEntity.Create(db))
	api.Put("/:id", UpdateToRHandler(db, svc))
	api.Delete("/:id", auth.RequireRole(models.RoleAdmin), DeleteToRHandler(svc))

	// Workflow transitions
	api.Post("/:id/submit", SubmitHandler(svc))
	api.Post("/:id/approve", auth.RequireRole(models.RoleAdmin, models.RoleFCDOSRO), ApproveHandler(svc))
	api.Post("/:id/reject", auth.RequireRole(models.RoleAdmin, models.RoleFCDOSRO), RejectHandler(svc))
}
