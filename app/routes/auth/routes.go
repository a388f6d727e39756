package auth

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"

	"sage-backend/app/apperr"
	"sage-backend/app/models"
)

func SetupAuthRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/auth")

	// Public
	api.Post("/login", LoginHandler(db))

	// Protected
	api.Use(AuthMiddleware)
	api.Get("/me", MeHandler(db))
	api.Post("/change-password", ChangePasswordHandler(db))

	users := app.Group("/api/users")
	users.Use(AuthMiddleware)
	users.Get("/", RequireRole(models.RoleAdmin), ListUsersHandler(db))
	users.Get("/:id", RequireRole(models.RoleAdmin), GetUserHandler(db))
	users.Post("/", RequireRole(models.RoleAdmin), CreateUserHandler(db))
	users.Delete("/:id", RequireRole(models.RoleAdmin), DeleteUserHandler(db))
}

// AuthMiddleware validates the bearer token and sets the user context.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	if authHeader := c.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		tokenString = strings.TrimPrefix(authHeader, "Bearer ")
	}
	if tokenString == "" {
		tokenString = c.Cookies("jwt_token")
	}
	if tokenString == "" {
		return apperr.Unauthenticated("missing token")
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil {
		return apperr.Unauthenticated("invalid or expired token")
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("user_email", claims.Email)
	c.Locals("user_name", claims.FirstName+" "+claims.LastName)
	c.Locals("user_role", claims.Role)

	return c.Next()
}

// RequireRole gates a route to the given role allow-list.
func RequireRole(allowedRoles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("user_role").(string)
		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}
		return apperr.Forbidden("insufficient permissions")
	}
}

// UserID returns the acting user's id from the request context.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}
