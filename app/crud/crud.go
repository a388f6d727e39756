// Package crud is a generic repository over the capability set
// {list, get, create, update, delete}, parameterized by entity type and
// its column/filter configuration. Entities with derived computations or
// workflow guards get their own route packages instead.
package crud

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sage-backend/app/apperr"
	"sage-backend/app/pagination"
)

var validate = validator.New()

// Row is the subset of sql.Row / sql.Rows an entity scanner needs.
type Row interface {
	Scan(dest ...any) error
}

// Entity maps one table onto the generic handlers. Columns is the full
// select list with id first; Filters is the allow-list of query
// parameters a list call may filter on.
type Entity[T any] struct {
	Table        string
	Columns      []string
	Filters      map[string]string
	DefaultOrder string
	Scan         func(r Row) (*T, error)
	InsertCols   []string
	InsertVals   func(t *T) []any
	// UpdateCols/UpdateVals default to the insert bindings.
	UpdateCols []string
	UpdateVals func(t *T) []any
}

// ParseID validates the :id path parameter against the UUID v4 shape
// before any query runs.
func ParseID(c *fiber.Ctx) (string, error) {
	raw := c.Params("id")
	u, err := uuid.Parse(raw)
	if err != nil || u.Version() != 4 {
		return "", apperr.Validationf("id", "must be a valid UUID")
	}
	return raw, nil
}

func (e *Entity[T]) selectList() string {
	return strings.Join(e.Columns, ", ")
}

func (e *Entity[T]) order() string {
	if e.DefaultOrder != "" {
		return e.DefaultOrder
	}
	return "created_at DESC"
}

func (e *Entity[T]) ByID(db *sql.DB, id string) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = $1", e.selectList(), e.Table)
	t, err := e.Scan(db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound(e.Table)
	}
	return t, err
}

func (e *Entity[T]) List(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page := pagination.FromCtx(c)

		var where []string
		var args []any
		for param, col := range e.Filters {
			if v := c.Query(param); v != "" {
				args = append(args, v)
				where = append(where, fmt.Sprintf("%s = $%d", col, len(args)))
			}
		}
		clause := ""
		if len(where) > 0 {
			clause = " WHERE " + strings.Join(where, " AND ")
		}

		var total int
		countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", e.Table, clause)
		if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
			return err
		}

		query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s LIMIT %d OFFSET %d",
			e.selectList(), e.Table, clause, e.order(), page.Limit, page.Offset())
		rows, err := db.Query(query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		items := []*T{}
		for rows.Next() {
			t, err := e.Scan(rows)
			if err != nil {
				return err
			}
			items = append(items, t)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		return c.JSON(pagination.Wrap(items, page, total))
	}
}

func (e *Entity[T]) Get(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParseID(c)
		if err != nil {
			return err
		}
		t, err := e.ByID(db, id)
		if err != nil {
			return err
		}
		return c.JSON(t)
	}
}

func (e *Entity[T]) Create(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		t := new(T)
		if err := c.BodyParser(t); err != nil {
			return apperr.Validationf("body", "invalid request body")
		}
		if err := validate.Struct(t); err != nil {
			return apperr.FromValidator(err)
		}

		placeholders := make([]string, len(e.InsertCols))
		for i := range placeholders {
			placeholders[i] = fmt.Sprintf("$%d", i+1)
		}
		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			e.Table, strings.Join(e.InsertCols, ", "),
			strings.Join(placeholders, ", "), e.selectList())

		created, err := e.Scan(db.QueryRow(query, e.InsertVals(t)...))
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

// Update reads the current row, overlays the request body onto it
// (partial merge, last write wins) and writes the result back.
func (e *Entity[T]) Update(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParseID(c)
		if err != nil {
			return err
		}
		t, err := e.ByID(db, id)
		if err != nil {
			return err
		}
		if err := c.BodyParser(t); err != nil {
			return apperr.Validationf("body", "invalid request body")
		}
		if err := validate.Struct(t); err != nil {
			return apperr.FromValidator(err)
		}

		cols := e.UpdateCols
		if cols == nil {
			cols = e.InsertCols
		}
		vals := e.UpdateVals
		if vals == nil {
			vals = e.InsertVals
		}

		set := make([]string, len(cols))
		for i, col := range cols {
			set[i] = fmt.Sprintf("%s = $%d", col, i+1)
		}
		args := append(vals(t), id)
		query := fmt.Sprintf("UPDATE %s SET %s, updated_at = NOW() WHERE id = $%d RETURNING %s",
			e.Table, strings.Join(set, ", "), len(args), e.selectList())

		updated, err := e.Scan(db.QueryRow(query, args...))
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound(e.Table)
		}
		if err != nil {
			return err
		}
		return c.JSON(updated)
	}
}

func (e *Entity[T]) Delete(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := ParseID(c)
		if err != nil {
			return err
		}
		result, err := db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = $1", e.Table), id)
		if err != nil {
			return err
		}
		n, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return apperr.NotFound(e.Table)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// Guards holds the role middleware applied ahead of mutating handlers.
type Guards struct {
	Write  []fiber.Handler
	Delete []fiber.Handler
}

// Register wires the five handlers onto a router group.
func (e *Entity[T]) Register(r fiber.Router, db *sql.DB, g Guards) {
	r.Get("/", e.List(db))
	r.Get("/:id", e.Get(db))
	r.Post("/", append(append([]fiber.Handler{}, g.Write...), e.Create(db))...)
	r.Put("/:id", append(append([]fiber.Handler{}, g.Write...), e.Update(db))...)
	r.Delete("/:id", append(append([]fiber.Handler{}, g.Delete...), e.Delete(db))...)
}
