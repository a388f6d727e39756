package tors

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sage-backend/app/apperr"
	"sage-backend/app/crud"
	"sage-backend/app/routes/auth"
)

var validate = validator.New()

// UpdateToRHandler permits free-form field updates only while the ToR
// is in Draft or QA. The body is overlaid onto the stored row; status,
// approval stamps and rejection reason are never taken from the client.
func UpdateToRHandler(db *sql.DB, svc *service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		t, err := torEntity.ByID(db, id)
		if err != nil {
			return err
		}
		if !isEditable(t.Status) {
			return apperr.InvalidState("cannot update tor in status %q", t.Status)
		}

		stored := *t
		if err := c.BodyParser(t); err != nil {
			return apperr.Validationf("body", "invalid request body")
		}
		t.ID = stored.ID
		t.Status = stored.Status
		t.ApprovedBy = stored.ApprovedBy
		t.ApprovedDate = stored.ApprovedDate
		t.RejectionReason = stored.RejectionReason
		if err := validate.Struct(t); err != nil {
			return apperr.FromValidator(err)
		}

		updated, err := svc.Update(t)
		if err != nil {
			return err
		}
		return c.JSON(updated)
	}
}

func SubmitHandler(svc *service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		t, err := svc.Submit(id)
		if err != nil {
			return err
		}
		return c.JSON(t)
	}
}

func ApproveHandler(svc *service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		t, err := svc.Approve(id, auth.UserID(c))
		if err != nil {
			return err
		}
		return c.JSON(t)
	}
}

func RejectHandler(svc *service) fiber.Handler {
	type rejectRequest struct {
		Reason string `json:"reason"`
	}

	return func(c *fiber.Ctx) error {
		id, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		var req rejectRequest
		if err := c.BodyParser(&req); err != nil {
			return apperr.Validationf("body", "invalid request body")
		}
		if req.Reason == "" {
			return apperr.Validationf("reason", "rejection reason is required")
		}
		t, err := svc.Reject(id, auth.UserID(c), req.Reason)
		if err != nil {
			return err
		}
		return c.JSON(t)
	}
}

func DeleteToRHandler(svc *service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		if err := svc.Delete(id); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
