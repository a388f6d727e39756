package entities

import (
	"sage-backend/app/crud"
	"sage-backend/app/models"
)

var evidenceEntity = &crud.Entity[models.Evidence]{
	Table: "evidence",
	Columns: []string{"id", "workstream_id", "result_id", "title", "evidence_type",
		"url", "created_at", "updated_at"},
	Filters: map[string]string{"workstream_id": "workstream_id", "result_id": "result_id"},
	Scan: func(r crud.Row) (*models.Evidence, error) {
		e := &models.Evidence{}
		err := r.Scan(&e.ID, &e.WorkstreamID, &e.ResultID, &e.Title, &e.EvidenceType,
			&e.URL, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return e, nil
	},
	InsertCols: []string{"workstream_id", "result_id", "title", "evidence_type", "url"},
	InsertVals: func(e *models.Evidence) []any {
		return []any{e.WorkstreamID, e.ResultID, e.Title, e.EvidenceType, e.URL}
	},
}

var issueEntity = &crud.Entity[models.Issue]{
	Table: "issues",
	Columns: []string{"id", "workstream_id", "title", "description", "severity",
		"status", "created_at", "updated_at"},
	Filters: map[string]string{"workstream_id": "workstream_id", "status": "status", "severity": "severity"},
	Scan: func(r crud.Row) (*models.Issue, error) {
		i := &models.Issue{}
		err := r.Scan(&i.ID, &i.WorkstreamID, &i.Title, &i.Description, &i.Severity,
			&i.Status, &i.CreatedAt, &i.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return i, nil
	},
	InsertCols: []string{"workstream_id", "title", "description", "severity", "status"},
	InsertVals: func(i *models.Issue) []any {
		status := i.Status
		if status == "" {
			status = "Open"
		}
		return []any{i.WorkstreamID, i.Title, i.Description, i.Severity, status}
	},
}

var decisionEntity = &crud.Entity[models.Decision]{
	Table: "decisions",
	Columns: []string{"id", "workstream_id", "title", "rationale", "decided_by",
		"decided_at", "created_at", "updated_at"},
	Filters:      map[string]string{"workstream_id": "workstream_id"},
	DefaultOrder: "decided_at DESC",
	Scan: func(r crud.Row) (*models.Decision, error) {
		d := &models.Decision{}
		err := r.Scan(&d.ID, &d.WorkstreamID, &d.Title, &d.Rationale, &d.DecidedBy,
			&d.DecidedAt, &d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return d, nil
	},
	InsertCols: []string{"workstream_id", "title", "rationale", "decided_by", "decided_at"},
	InsertVals: func(d *models.Decision) []any {
		return []any{d.WorkstreamID, d.Title, d.Rationale, d.DecidedBy, d.DecidedAt}
	},
}

var lessonEntity = &crud.Entity[models.Lesson]{
	Table: "lessons",
	Columns: []string{"id", "workstream_id", "title", "description", "theme",
		"created_at", "updated_at"},
	Filters: map[string]string{"workstream_id": "workstream_id", "theme": "theme"},
	Scan: func(r crud.Row) (*models.Lesson, error) {
		l := &models.Lesson{}
		err := r.Scan(&l.ID, &l.WorkstreamID, &l.Title, &l.Description, &l.Theme,
			&l.CreatedAt, &l.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return l, nil
	},
	InsertCols: []string{"workstream_id", "title", "description", "theme"},
	InsertVals: func(l *models.Lesson) []any {
		return []any{l.WorkstreamID, l.Title, l.Description, l.Theme}
	},
}

var safeguardingEntity = &crud.Entity[models.SafeguardingIncident]{
	Table: "safeguarding_incidents",
	Columns: []string{"id", "country_id", "summary", "severity", "status",
		"reported_at", "action_taken", "created_at", "updated_at"},
	Filters:      map[string]string{"country_id": "country_id", "status": "status", "severity": "severity"},
	DefaultOrder: "reported_at DESC",
	Scan: func(r crud.Row) (*models.SafeguardingIncident, error) {
		s := &models.SafeguardingIncident{}
		err := r.Scan(&s.ID, &s.CountryID, &s.Summary, &s.Severity, &s.Status,
			&s.ReportedAt, &s.ActionTaken, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		return s, nil
	},
	InsertCols: []string{"country_id", "summary", "severity", "status", "reported_at", "action_taken"},
	InsertVals: func(s *models.SafeguardingIncident) []any {
		status := s.Status
		if status == "" {
			status = "Reported"
		}
		return []any{s.CountryID, s.Summary, s.Severity, status, s.ReportedAt, s.ActionTaken}
	},
}
