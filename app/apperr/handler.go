package apperr

import (
	"database/sql"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lib/pq"
)

// ErrorHandler is the single translation point from handler errors to
// HTTP responses. Wire it into fiber.Config.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var ae *Error
	if errors.As(err, &ae) {
		return respond(c, ae)
	}

	var pqe *pq.Error
	if errors.As(err, &pqe) {
		return respond(c, fromPQ(pqe))
	}

	if errors.Is(err, sql.ErrNoRows) {
		return respond(c, NotFound("record"))
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}

	log.Printf("unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "internal server error",
	})
}

func respond(c *fiber.Ctx, e *Error) error {
	body := fiber.Map{"error": e.Message}
	if len(e.Fields) > 0 {
		body["fields"] = e.Fields
	}
	return c.Status(statusFor(e.Kind)).JSON(body)
}

func statusFor(k Kind) int {
	switch k {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	case KindUnauthenticated:
		return fiber.StatusUnauthorized
	case KindForbidden:
		return fiber.StatusForbidden
	case KindValidation, KindInvalidReference, KindInvalidState:
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// Postgres error classes worth translating: unique_violation and
// foreign_key_violation; the remaining integrity classes surface as
// generic validation failures.
func fromPQ(pqe *pq.Error) *Error {
	switch pqe.Code {
	case "23505":
		return Conflict(constraintField(pqe.Constraint))
	case "23503":
		return InvalidReference()
	case "23502", "23514", "22P02":
		// Column is only populated for not-null violations, and not
		// always even then.
		field := pqe.Column
		if field == "" {
			field = "value"
		}
		return Validationf(field, "constraint violation: %s", pqe.Message)
	default:
		return &Error{Kind: 0, Message: pqe.Message}
	}
}

// constraintField derives a field name from an index name such as
// "users_email_key".
func constraintField(constraint string) string {
	s := strings.TrimSuffix(constraint, "_key")
	s = strings.TrimSuffix(s, "_idx")
	if i := strings.Index(s, "_"); i >= 0 && i+1 < len(s) {
		return s[i+1:]
	}
	if s == "" {
		return "value"
	}
	return s
}
