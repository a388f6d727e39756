package models

import "time"

// Risk carries a likelihood x impact score on a 1-5 scale. The stored
// risk_score is always recomputed server-side before save; a score
// supplied by the client is ignored.
type Risk struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	WorkstreamID *string   `json:"workstream_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	Title        string    `json:"title" gorm:"not null" validate:"required"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	Likelihood   int       `json:"likelihood" gorm:"not null" validate:"required,gte=1,lte=5"`
	Impact       int       `json:"impact" gorm:"not null" validate:"required,gte=1,lte=5"`
	RiskScore    int       `json:"risk_score"`
	Status       string    `json:"status" gorm:"not null;default:'Open';type:varchar(20)" validate:"omitempty,oneof=Open Mitigating Closed"`
	Mitigation   string    `json:"mitigation,omitempty" gorm:"type:text"`
	RaisedBy     *string   `json:"raised_by,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	RaisedAt     time.Time `json:"raised_at"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Recalculate enforces risk_score = likelihood * impact.
func (r *Risk) Recalculate() {
	r.RiskScore = r.Likelihood * r.Impact
}

type Issue struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	WorkstreamID string    `json:"workstream_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Title        string    `json:"title" gorm:"not null" validate:"required"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	Severity     string    `json:"severity" gorm:"not null;type:varchar(20)" validate:"required,oneof=Low Medium High Critical"`
	Status       string    `json:"status" gorm:"not null;default:'Open';type:varchar(20)" validate:"omitempty,oneof=Open Resolved Closed"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
