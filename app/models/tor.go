package models

import "time"

// ToR statuses form a strict linear workflow:
// Draft -> QA -> Pending Approval -> Approved | Rejected.
const (
	ToRStatusDraft           = "Draft"
	ToRStatusQA              = "QA"
	ToRStatusPendingApproval = "Pending Approval"
	ToRStatusApproved        = "Approved"
	ToRStatusRejected        = "Rejected"
)

// ToR is a Terms of Reference document that assignments fulfil.
type ToR struct {
	ID              string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	WorkstreamID    string     `json:"workstream_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Title           string     `json:"title" gorm:"not null" validate:"required"`
	Objective       string     `json:"objective,omitempty" gorm:"type:text"`
	Scope           string     `json:"scope,omitempty" gorm:"type:text"`
	Status          string     `json:"status" gorm:"not null;default:'Draft';type:varchar(20)"`
	EstimatedDays   float64    `json:"estimated_days" validate:"omitempty,gte=0"`
	EstimatedValue  float64    `json:"estimated_value" validate:"omitempty,gte=0"`
	ApprovedBy      *string    `json:"approved_by,omitempty" gorm:"index;type:uuid"`
	ApprovedDate    *time.Time `json:"approved_date,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty" gorm:"type:text"`
	CreatedAt       time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}
