package models

import (
	"time"

	"gorm.io/gorm"
)

// BudgetLine is a named spending bucket ("category") inside one budget.
// Names are unique within their budget, compared case-insensitively.
type BudgetLine struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	BudgetID       uint           `json:"budget_id" gorm:"index;not null"`
	Name           string         `json:"category" gorm:"size:50;not null"`
	BudgetedAmount float64        `json:"budgeted_amount" gorm:"type:decimal(10,2);not null"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
	Budget         Budget         `json:"-" gorm:"foreignKey:BudgetID"`
}

// TableName sets the table name
func (BudgetLine) TableName() string {
	return "budget_lines"
}

// BudgetLineView is a BudgetLine plus the two derived amounts. The derived
// fields are recomputed from transaction rows on every read, never stored.
type BudgetLineView struct {
	BudgetLine
	ActualSpent float64 `json:"actual_spent"`
	Remaining   float64 `json:"remaining"`
}
