package entities

import (
	"sage-backend/app/crud"
	"sage-backend/app/models"
)

var deliverableEntity = &crud.Entity[models.Deliverable]{
	Table: "deliverables",
	Columns: []string{"id", "assignment_id", "title", "due_date", "submitted_at",
		"status", "created_at", "updated_at"},
	Filters:      map[string]string{"assignment_id": "assignment_id", "status": "status"},
	DefaultOrder: "due_date ASC NULLS LAST",
	Scan: func(r crud.Row) (*models.Deliverable, error) {
		d := &models.Deliverable{}
		err := r.Scan(&d.ID, &d.AssignmentID, &d.Title, &d.DueDate, &d.SubmittedAt,
			&d.Status, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return d, nil
	},
	InsertCols: []string{"assignment_id", "title", "due_date", "status"},
	InsertVals: func(d *models.Deliverable) []any {
		status := d.Status
		if status == "" {
			status = models.DeliverableStatusPending
		}
		return []any{d.AssignmentID, d.Title, d.DueDate, status}
	},
}

var commitmentEntity = &crud.Entity[models.Commitment]{
	Table:   "commitments",
	Columns: []string{"id", "budget_id", "amount", "reference", "created_at", "updated_at"},
	Filters: map[string]string{"budget_id": "budget_id"},
	Scan: func(r crud.Row) (*models.Commitment, error) {
		cm := &models.Commitment{}
		err := r.Scan(&cm.ID, &cm.BudgetID, &cm.Amount, &cm.Reference, &cm.CreatedAt, &cm.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return cm, nil
	},
	InsertCols: []string{"budget_id", "amount", "reference"},
	InsertVals: func(cm *models.Commitment) []any {
		return []any{cm.BudgetID, cm.Amount, cm.Reference}
	},
}

var invoiceEntity = &crud.Entity[models.Invoice]{
	Table: "invoices",
	Columns: []string{"id", "assignment_id", "amount", "invoice_date", "reference",
		"paid", "created_at", "updated_at"},
	Filters:      map[string]string{"assignment_id": "assignment_id"},
	DefaultOrder: "invoice_date DESC",
	Scan: func(r crud.Row) (*models.Invoice, error) {
		inv := &models.Invoice{}
		err := r.Scan(&inv.ID, &inv.AssignmentID, &inv.Amount, &inv.InvoiceDate,
			&inv.Reference, &inv.Paid, &inv.CreatedAt, &inv.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return inv, nil
	},
	InsertCols: []string{"assignment_id", "amount", "invoice_date", "reference", "paid"},
	InsertVals: func(inv *models.Invoice) []any {
		return []any{inv.AssignmentID, inv.Amount, inv.InvoiceDate, inv.Reference, inv.Paid}
	},
}
