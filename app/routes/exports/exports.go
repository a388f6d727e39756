// Package exports serves flat-file extracts (CSV and JSON) plus the two
// bespoke report payloads consumed by external reporting tools.
package exports

import (
	"bytes"
	"database/sql"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"sage-backend/app/apperr"
)

// exportDef fixes the column schema and row query for one exportable
// entity. Column order is part of the contract with downstream tools,
// so it never follows the table's natural order.
type exportDef struct {
	header []string
	query  string
	scan   func(rows *sql.Rows) ([]string, error)
}

var exportDefs = map[string]exportDef{
	"assignments": {
		header: []string{"id", "title", "status", "contracted_loe", "daily_rate", "total_value", "start_date", "end_date"},
		query: `SELECT id, title, status, contracted_loe, daily_rate, total_value, start_date, end_date
			FROM assignments ORDER BY created_at DESC`,
		scan: func(rows *sql.Rows) ([]string, error) {
			var id, title, status string
			var loe, rate, value float64
			var start, end *time.Time
			if err := rows.Scan(&id, &title, &status, &loe, &rate, &value, &start, &end); err != nil {
				return nil, err
			}
			return []string{id, title, status, num(loe), num(rate), num(value), day(start), day(end)}, nil
		},
	},
	"budgets": {
		header: []string{"id", "workstream_id", "fiscal_year", "allocated_amount", "committed_amount", "actual_spend", "forecast_spend"},
		query: `SELECT id, workstream_id, fiscal_year, allocated_amount, committed_amount, actual_spend, forecast_spend
			FROM budgets ORDER BY fiscal_year DESC, created_at DESC`,
		scan: func(rows *sql.Rows) ([]string, error) {
			var id, wsID, fy string
			var allocated, committed, actual, forecast float64
			if err := rows.Scan(&id, &wsID, &fy, &allocated, &committed, &actual, &forecast); err != nil {
				return nil, err
			}
			return []string{id, wsID, fy, num(allocated), num(committed), num(actual), num(forecast)}, nil
		},
	},
	"risks": {
		header: []string{"id", "workstream_id", "title", "likelihood", "impact", "risk_score", "status", "raised_at"},
		query: `SELECT id, workstream_id, title, likelihood, impact, risk_score, status, raised_at
			FROM risks ORDER BY risk_score DESC, raised_at DESC`,
		scan: func(rows *sql.Rows) ([]string, error) {
			var id, title, status string
			var wsID *string
			var likelihood, impact, score int
			var raisedAt time.Time
			if err := rows.Scan(&id, &wsID, &title, &likelihood, &impact, &score, &status, &raisedAt); err != nil {
				return nil, err
			}
			return []string{id, str(wsID), title, strconv.Itoa(likelihood), strconv.Itoa(impact),
				strconv.Itoa(score), status, raisedAt.Format(time.RFC3339)}, nil
		},
	},
	"tors": {
		header: []string{"id", "workstream_id", "title", "status", "approved_by", "approved_date"},
		query: `SELECT id, workstream_id, title, status, approved_by, approved_date
			FROM tors ORDER BY created_at DESC`,
		scan: func(rows *sql.Rows) ([]string, error) {
			var id, wsID, title, status string
			var approvedBy *string
			var approvedDate *time.Time
			if err := rows.Scan(&id, &wsID, &title, &status, &approvedBy, &approvedDate); err != nil {
				return nil, err
			}
			return []string{id, wsID, title, status, str(approvedBy), day(approvedDate)}, nil
		},
	},
	"expenses": {
		header: []string{"id", "assignment_id", "category", "amount", "expense_date", "status"},
		query: `SELECT id, assignment_id, category, amount, expense_date, status
			FROM expenses ORDER BY expense_date DESC`,
		scan: func(rows *sql.Rows) ([]string, error) {
			var id, assignmentID, category, status string
			var amount float64
			var expenseDate time.Time
			if err := rows.Scan(&id, &assignmentID, &category, &amount, &expenseDate, &status); err != nil {
				return nil, err
			}
			return []string{id, assignmentID, category, num(amount), expenseDate.Format("2006-01-02"), status}, nil
		},
	},
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func day(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func exportRows(db *sql.DB, def exportDef) ([][]string, error) {
	rows, err := db.Query(def.query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := [][]string{def.header}
	for rows.Next() {
		record, err := def.scan(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// CSVHandler streams the fixed-schema CSV extract for one entity.
func CSVHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entity := c.Params("entity")
		def, ok := exportDefs[entity]
		if !ok {
			return apperr.NotFound("export")
		}

		records, err := exportRows(db, def)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.WriteAll(records); err != nil {
			return err
		}

		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition,
			fmt.Sprintf(`attachment; filename="%s-%s.csv"`, entity, time.Now().Format("2006-01-02")))
		return c.Send(buf.Bytes())
	}
}

// JSONHandler returns the same fixed-schema extract as a list of
// header-keyed objects.
func JSONHandler(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entity := c.Params("entity")
		def, ok := exportDefs[entity]
		if !ok {
			return apperr.NotFound("export")
		}

		records, err := exportRows(db, def)
		if err != nil {
			return err
		}

		items := make([]map[string]string, 0, len(records)-1)
		for _, record := range records[1:] {
			item := make(map[string]string, len(def.header))
			for i, col := range def.header {
				item[col] = record[i]
			}
			items = append(items, item)
		}
		return c.JSON(fiber.Map{
			"entity":      entity,
			"exported_at": time.Now().UTC(),
			"count":       len(items),
			"data":        items,
		})
	}
}
