package assignments

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"sage-backend/app/apperr"
	"sage-backend/app/crud"
	"sage-backend/app/finance"
)

var validate = validator.New()

// UpdateAssignmentHandler merges the body over the stored row. A status
// change to Mobilising stamps mobilised_at, which feeds the recent
// activity feed.
func UpdateAssignmentHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		a, err := assignmentEntity.ByID(db, id)
		if err != nil {
			return err
		}
		if err := c.BodyParser(a); err != nil {
			return apperr.Validationf("body", "invalid request body")
		}
		a.ID = id
		if err := validate.Struct(a); err != nil {
			return apperr.FromValidator(err)
		}

		updated, err := updateAssignment(db, a)
		if err != nil {
			return err
		}
		return c.JSON(updated)
	}
}

// SummaryHandler returns the derived LoE position and financial totals
// for one assignment. Nothing here is read from stored derived columns;
// it is all recomputed.
func SummaryHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		a, err := assignmentEntity.ByID(db, id)
		if err != nil {
			return err
		}
		entries, err := loeEntriesFor(db, id)
		if err != nil {
			return err
		}
		fees, err := feesFor(db, id)
		if err != nil {
			return err
		}
		expenses, err := expensesFor(db, id)
		if err != nil {
			return err
		}

		af := finance.Assemble(a, entries, fees, expenses)
		return c.JSON(fiber.Map{
			"assignment": a,
			"usage":      af.Usage,
			"fees":       af.Fees,
			"totals": fiber.Map{
				"total_fees":     af.TotalFees,
				"total_expenses": af.TotalExpenses,
				"grand_total":    af.GrandTotal,
			},
		})
	}
}

// ListAssignmentLoEHandler serves GET /api/assignments/:id/loe-entries.
func ListAssignmentLoEHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		if _, err := assignmentEntity.ByID(db, id); err != nil {
			return err
		}
		entries, err := loeEntriesFor(db, id)
		if err != nil {
			return err
		}
		return c.JSON(entries)
	}
}

// FeesHandler returns the full fee picture for one assignment:
// LoE-derived calculated lines plus stored fee rows.
func FeesHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		a, err := assignmentEntity.ByID(db, id)
		if err != nil {
			return err
		}
		entries, err := loeEntriesFor(db, id)
		if err != nil {
			return err
		}
		fees, err := feesFor(db, id)
		if err != nil {
			return err
		}

		af := finance.Assemble(a, entries, fees, nil)
		return c.JSON(fiber.Map{
			"fees":       af.Fees,
			"total_fees": af.TotalFees,
		})
	}
}

func SubmitDeliverableHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := crud.ParseID(c)
		if err != nil {
			return err
		}
		d, err := submitDeliverable(db, id)
		if err != nil {
			return err
		}
		return c.JSON(d)
	}
}
