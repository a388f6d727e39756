package auth

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"sage-backend/app/apperr"
	"sage-backend/app/crud"
	"sage-backend/app/database"
	"sage-backend/app/models"
	"sage-backend/app/pagination"
)

func LoginHandler(db *sql.DB) fiber.Handler {
	type loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	return func(c *fiber.Ctx) error {
		var req loginRequest
		if err := c.BodyParser(&req); err != nil {
			return apperr.Validationf("body", "invalid request body")
		}

		user, err := database.GetUserByEmail(db, req.Email)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperr.Unauthenticated("invalid credentials")
			}
			return err
		}
		if !database.CheckPasswordHash(req.Password, user.Password) {
			return apperr.Unauthenticated("invalid credentials")
		}

		token, err := GenerateJWT(user)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"token": token,
			"user":  user,
		})
	}
}

func MeHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := database.GetUserByID(db, UserID(c))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperr.NotFound("user")
			}
			return err
		}
		return c.JSON(user)
	}
}

func ChangePasswordHandler(db *sql.DB) fiber.Handler {
	type changePasswordRequest struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	return func(c *fiber.Ctx) error {
		var req changePasswordRequest
		if err := c.BodyParser(&req); err != nil {
			return apperr.Validationf("body", "invalid request body")
		}
		if len(req.NewPassword) < 8 {
			return apperr.Validationf("new_password", "must be at least 8 characters")
		}

		user, err := database.GetUserByID(db, UserID(c))
		if err != nil {
			return err
		}
		if !database.CheckPasswordHash(req.CurrentPassword, user.Password) {
			return apperr.Unauthenticated("current password is incorrect")
		}

		if err := database.UpdateUserPassword(db, user.ID, req.NewPassword); err != nil {
			return err
		}
		return c.JSON(fiber.Map{"message": "password updated"})
	}
}

func ListUsersHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := pagination.FromCtx(c)

		var total int
		if err := db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
			return err
		}

		rows, err := db.Query(`SELECT id, email, first_name, last_name, role, is_active, created_at, updated_at
							   FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
			page.Limit, page.Offset())
		if err != nil {
			return err
		}
		defer rows.Close()

		users := []*models.User{}
		for rows.Next() {
			u := &models.User{}
			if err := rows.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
				return err
			}
			users = append(users, u)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		return c.JSON(pagination.Wrap(users, page, total))
	}
}

func GetUserHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		user, err := database.GetUserByID(db, id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return apperr.NotFound("user")
			}
			return err
		}
		user.Password = ""
		return c.JSON(user)
	}
}

func CreateUserHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var user models.User
		if err := c.BodyParser(&user); err != nil {
			return apperr.Validationf("body", "invalid request body")
		}
		if user.Email == "" || user.Password == "" {
			return apperr.Validationf("email", "email and password are required")
		}
		if len(user.Password) < 8 {
			return apperr.Validationf("password", "must be at least 8 characters")
		}
		if user.Role == "" {
			user.Role = models.RoleViewer
		}
		user.IsActive = true

		if err := database.CreateUser(db, &user); err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(user)
	}
}

func DeleteUserHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		result, err := db.Exec(`DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return err
		}
		n, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return apperr.NotFound("user")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
