package models

import "time"

// Roles recognised by the role allow-list middleware.
const (
	RoleAdmin            = "Admin"
	RoleFCDOSRO          = "FCDO-SRO"
	RoleProgrammeManager = "Programme Manager"
	RoleViewer           = "Viewer"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null" validate:"required,email"`
	Password  string    `json:"-" gorm:"not null" validate:"required,min=8"`
	FirstName string    `json:"first_name" gorm:"not null" validate:"required"`
	LastName  string    `json:"last_name" gorm:"not null" validate:"required"`
	Role      string    `json:"role" gorm:"not null;type:varchar(50)" validate:"required,oneof=Admin FCDO-SRO 'Programme Manager' Viewer"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// DisplayName is used by the activity feed.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
