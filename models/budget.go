package models

import (
	"time"

	"gorm.io/gorm"
)

// Budget is the monthly plan container. At most one row exists per
// (user_id, month, year); the service layer enforces this on creation.
type Budget struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"index:idx_budget_period;not null"`
	Month     int            `json:"month" gorm:"index:idx_budget_period;not null"` // 1-12
	Year      int            `json:"year" gorm:"index:idx_budget_period;not null"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	User      User           `json:"-" gorm:"foreignKey:UserID"`
}

// TableName sets the table name
func (Budget) TableName() string {
	return "budgets"
}
