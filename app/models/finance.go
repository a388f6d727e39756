package models

import "time"

// Stored fee types. Daily-rate fees are computed from LoE entries on the
// fly and never persisted.
const (
	FeeTypeMilestone  = "Milestone"
	FeeTypeBonus      = "Bonus"
	FeeTypeAdjustment = "Adjustment"
)

type Fee struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AssignmentID string    `json:"assignment_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FeeType      string    `json:"fee_type" gorm:"not null;type:varchar(20)" validate:"required,oneof=Milestone Bonus Adjustment"`
	Amount       float64   `json:"amount" gorm:"not null" validate:"required"`
	FeeDate      time.Time `json:"fee_date" gorm:"not null;type:date" validate:"required"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

const (
	ExpenseStatusSubmitted = "Submitted"
	ExpenseStatusApproved  = "Approved"
	ExpenseStatusRejected  = "Rejected"
)

// Expense is a dated, categorised cost row tied to an assignment.
type Expense struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AssignmentID string    `json:"assignment_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Category     string    `json:"category" gorm:"not null" validate:"required"`
	Amount       float64   `json:"amount" gorm:"not null" validate:"required,gt=0"`
	ExpenseDate  time.Time `json:"expense_date" gorm:"not null;type:date" validate:"required"`
	Status       string    `json:"status" gorm:"not null;default:'Submitted';type:varchar(20)" validate:"omitempty,oneof=Submitted Approved Rejected"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// Budget is a fiscal-year allocation for a workstream. Variance, burn
// rate and available are derived at read time from the stored amounts.
type Budget struct {
	ID              string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	WorkstreamID    string    `json:"workstream_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FiscalYear      string    `json:"fiscal_year" gorm:"not null;type:varchar(10)" validate:"required"`
	AllocatedAmount float64   `json:"allocated_amount" validate:"omitempty,gte=0"`
	CommittedAmount float64   `json:"committed_amount" validate:"omitempty,gte=0"`
	ActualSpend     float64   `json:"actual_spend" validate:"omitempty,gte=0"`
	ForecastSpend   float64   `json:"forecast_spend" validate:"omitempty,gte=0"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type Commitment struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	BudgetID  string    `json:"budget_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount    float64   `json:"amount" gorm:"not null" validate:"required"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type Invoice struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	AssignmentID string    `json:"assignment_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Amount       float64   `json:"amount" gorm:"not null" validate:"required,gt=0"`
	InvoiceDate  time.Time `json:"invoice_date" gorm:"not null;type:date" validate:"required"`
	Reference    string    `json:"reference,omitempty"`
	Paid         bool      `json:"paid" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
