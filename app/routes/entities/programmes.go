package entities

import (
	"sage-backend/app/crud"
	"sage-backend/app/models"
)

var programmeEntity = &crud.Entity[models.Programme]{
	Table:   "programmes",
	Columns: []string{"id", "name", "description", "start_date", "end_date", "rag_status", "created_at", "updated_at"},
	Scan: func(r crud.Row) (*models.Programme, error) {
		p := &models.Programme{}
		err := r.Scan(&p.ID, &p.Name, &p.Description, &p.StartDate, &p.EndDate,
			&p.RAGStatus, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return p, nil
	},
	InsertCols: []string{"name", "description", "start_date", "end_date", "rag_status"},
	InsertVals: func(p *models.Programme) []any {
		return []any{p.Name, p.Description, p.StartDate, p.EndDate, p.RAGStatus}
	},
}

var workstreamEntity = &crud.Entity[models.Workstream]{
	Table:   "workstreams",
	Columns: []string{"id", "programme_id", "name", "description", "lead", "rag_status", "created_at", "updated_at"},
	Filters: map[string]string{"programme_id": "programme_id"},
	Scan: func(r crud.Row) (*models.Workstream, error) {
		w := &models.Workstream{}
		err := r.Scan(&w.ID, &w.ProgrammeID, &w.Name, &w.Description, &w.Lead,
			&w.RAGStatus, &w.CreatedAt, &w.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return w, nil
	},
	InsertCols: []string{"programme_id", "name", "description", "lead", "rag_status"},
	InsertVals: func(w *models.Workstream) []any {
		return []any{w.ProgrammeID, w.Name, w.Description, w.Lead, w.RAGStatus}
	},
}
