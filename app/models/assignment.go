package models

import "time"

const (
	AssignmentStatusPlanned    = "Planned"
	AssignmentStatusMobilising = "Mobilising"
	AssignmentStatusActive     = "Active"
	AssignmentStatusCompleted  = "Completed"
	AssignmentStatusCancelled  = "Cancelled"
)

// Assignment engages a consultant against a ToR for a period.
// Burn rate and remaining LoE are derived at read time, never stored.
type Assignment struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ToRID         string     `json:"tor_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ConsultantID  *string    `json:"consultant_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	CountryID     *string    `json:"country_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	Title         string     `json:"title" gorm:"not null" validate:"required"`
	Status        string     `json:"status" gorm:"not null;default:'Planned';type:varchar(20)" validate:"omitempty,oneof=Planned Mobilising Active Completed Cancelled"`
	ContractedLoE float64    `json:"contracted_loe" validate:"omitempty,gte=0"`
	DailyRate     float64    `json:"daily_rate" validate:"omitempty,gte=0"`
	TotalValue    float64    `json:"total_value" validate:"omitempty,gte=0"`
	StartDate     *time.Time `json:"start_date,omitempty" gorm:"type:date"`
	EndDate       *time.Time `json:"end_date,omitempty" gorm:"type:date"`
	MobilisedAt   *time.Time `json:"mobilised_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// LoEEntry is a dated record of days worked against an assignment.
type LoEEntry struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AssignmentID string    `json:"assignment_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	EntryDate    time.Time `json:"entry_date" gorm:"not null;type:date" validate:"required"`
	Days         float64   `json:"days" gorm:"not null" validate:"required,gt=0"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

const (
	DeliverableStatusPending   = "Pending"
	DeliverableStatusSubmitted = "Submitted"
	DeliverableStatusAccepted  = "Accepted"
)

type Deliverable struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AssignmentID string     `json:"assignment_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Title        string     `json:"title" gorm:"not null" validate:"required"`
	DueDate      *time.Time `json:"due_date,omitempty" gorm:"type:date"`
	SubmittedAt  *time.Time `json:"submitted_at,omitempty"`
	Status       string     `json:"status" gorm:"not null;default:'Pending';type:varchar(20)" validate:"omitempty,oneof=Pending Submitted Accepted"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}
