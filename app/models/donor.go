package models

import "time"

type DonorOrganisation struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	DonorType string    `json:"donor_type,omitempty" gorm:"type:varchar(50)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// DonorProject is another donor's activity in a country. Regional
// projects have no country and count towards every country's activity
// view. Every project must resolve a donor organisation.
type DonorProject struct {
	ID          string             `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	DonorID     string             `json:"donor_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	CountryID   *string            `json:"country_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	IsRegional  bool               `json:"is_regional" gorm:"default:false"`
	Name        string             `json:"name" gorm:"not null" validate:"required"`
	Sector      string             `json:"sector,omitempty" gorm:"type:varchar(100)"`
	TotalBudget float64            `json:"total_budget" validate:"omitempty,gte=0"`
	Status      string             `json:"status" gorm:"not null;default:'Active';type:varchar(20)" validate:"omitempty,oneof=Pipeline Active Completed"`
	Donor       *DonorOrganisation `json:"donor,omitempty" gorm:"foreignKey:DonorID;references:ID"`
	CreatedAt   time.Time          `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time          `json:"updated_at" gorm:"autoUpdateTime"`
}
