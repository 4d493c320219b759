package models

import (
	"time"

	"gorm.io/gorm"
)

// Transaction is a single recorded expense against a budget line. Amount is
// signed: refunds are recorded as negative rows rather than deletions.
type Transaction struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	BudgetLineID uint           `json:"budget_line_id" gorm:"index;not null"`
	Amount       float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Description  string         `json:"description" gorm:"size:255"`
	SpentAt      time.Time      `json:"spent_at" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"-" gorm:"index"`
	BudgetLine   BudgetLine     `json:"-" gorm:"foreignKey:BudgetLineID"`
}

// TableName sets the table name
func (Transaction) TableName() string {
	return "transactions"
}
