package models

import "time"

type Country struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	ISOCode   string    `json:"iso_code" gorm:"uniqueIndex;type:varchar(3)" validate:"required,len=3"`
	Region    string    `json:"region,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type Organisation struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	OrgType   string    `json:"org_type,omitempty" gorm:"type:varchar(50)"`
	CountryID *string   `json:"country_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type Supplier struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	ContactEmail string    `json:"contact_email,omitempty" validate:"omitempty,email"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Consultant is an individual engaged against assignments.
type Consultant struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	FirstName      string    `json:"first_name" gorm:"not null" validate:"required"`
	LastName       string    `json:"last_name" gorm:"not null" validate:"required"`
	Email          string    `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	OrganisationID *string   `json:"organisation_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	Specialism     string    `json:"specialism,omitempty"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
