package models

import "time"

// Indicator defines a baseline and target for a workstream. Actual is
// maintained as a live sum over the indicator's results, so editing or
// deleting a result corrects the running total.
type Indicator struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	WorkstreamID string    `json:"workstream_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name         string    `json:"name" gorm:"not null" validate:"required"`
	Unit         string    `json:"unit,omitempty" gorm:"type:varchar(50)"`
	Baseline     float64   `json:"baseline"`
	Target       float64   `json:"target" validate:"omitempty,gte=0"`
	Actual       float64   `json:"actual"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Result reports an actual value against an indicator at a point in time.
type Result struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	IndicatorID string    `json:"indicator_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Value       float64   `json:"value" gorm:"not null" validate:"required"`
	ResultDate  time.Time `json:"result_date" gorm:"not null;type:date" validate:"required"`
	Notes       string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type Evidence struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	WorkstreamID string    `json:"workstream_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ResultID     *string   `json:"result_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	Title        string    `json:"title" gorm:"not null" validate:"required"`
	EvidenceType string    `json:"evidence_type,omitempty" gorm:"type:varchar(50)"`
	URL          string    `json:"url,omitempty" validate:"omitempty,url"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
