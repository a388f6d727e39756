package models

import "time"

// Programme is the top-level container for all SAGE delivery work.
type Programme struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Description string     `json:"description,omitempty" gorm:"type:text"`
	StartDate   *time.Time `json:"start_date,omitempty" gorm:"type:date"`
	EndDate     *time.Time `json:"end_date,omitempty" gorm:"type:date"`
	RAGStatus   string     `json:"rag_status,omitempty" gorm:"type:varchar(10)" validate:"omitempty,oneof=Red Amber Green"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

// Workstream groups ToRs, budgets, indicators and risks under a programme.
type Workstream struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ProgrammeID string    `json:"programme_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Name        string    `json:"name" gorm:"not null" validate:"required"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	Lead        string    `json:"lead,omitempty"`
	RAGStatus   string    `json:"rag_status,omitempty" gorm:"type:varchar(10)" validate:"omitempty,oneof=Red Amber Green"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
