package models

import "time"

type Decision struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	WorkstreamID *string   `json:"workstream_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	Title        string    `json:"title" gorm:"not null" validate:"required"`
	Rationale    string    `json:"rationale,omitempty" gorm:"type:text"`
	DecidedBy    string    `json:"decided_by,omitempty"`
	DecidedAt    time.Time `json:"decided_at" gorm:"not null" validate:"required"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type Lesson struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	WorkstreamID *string   `json:"workstream_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	Title        string    `json:"title" gorm:"not null" validate:"required"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	Theme        string    `json:"theme,omitempty" gorm:"type:varchar(50)"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type SafeguardingIncident struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CountryID   *string   `json:"country_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	Summary     string    `json:"summary" gorm:"not null" validate:"required"`
	Severity    string    `json:"severity" gorm:"not null;type:varchar(20)" validate:"required,oneof=Low Medium High Critical"`
	Status      string    `json:"status" gorm:"not null;default:'Reported';type:varchar(20)" validate:"omitempty,oneof=Reported Investigating Closed"`
	ReportedAt  time.Time `json:"reported_at" gorm:"not null" validate:"required"`
	ActionTaken string    `json:"action_taken,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
