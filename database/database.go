package database

import (
	"fmt"
	"log"
	"time"

	"budgetbook/config"
	"budgetbook/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init opens the database connection and migrates the schema
func Init(cfg *config.Config) error {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DBName,
		cfg.Database.Charset,
	)

	var err error
	DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	if err := DB.AutoMigrate(
		&models.User{},
		&models.Budget{},
		&models.BudgetLine{},
		&models.Transaction{},
	); err != nil {
		return err
	}

	if err := seedDemoAccount(cfg); err != nil {
		return err
	}

	log.Println("database initialized")
	return nil
}

// seedDemoAccount creates the demo user and a starter budget for the current
// month. Runs only when the users table is empty so existing data is never
// touched.
func seedDemoAccount(cfg *config.Config) error {
	if !cfg.Demo.Enabled {
		return nil
	}

	var userCount int64
	DB.Model(&models.User{}).Count(&userCount)
	if userCount > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Demo.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash demo password: %w", err)
	}

	user := models.User{
		Username: cfg.Demo.Username,
		Password: string(hash),
		Email:    cfg.Demo.Email,
	}
	if err := DB.Create(&user).Error; err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	now := time.Now()
	budget := models.Budget{
		UserID: user.ID,
		Month:  int(now.Month()),
		Year:   now.Year(),
	}
	if err := DB.Create(&budget).Error; err != nil {
		return fmt.Errorf("seed demo budget: %w", err)
	}

	starter := []struct {
		Name   string
		Amount float64
	}{
		{"Groceries", 400},
		{"Rent", 1200},
		{"Transport", 150},
		{"Entertainment", 100},
		{"Savings", 300},
	}
	var lines []models.BudgetLine
	for _, item := range starter {
		lines = append(lines, models.BudgetLine{
			BudgetID:       budget.ID,
			Name:           item.Name,
			BudgetedAmount: item.Amount,
		})
	}
	if err := DB.Create(&lines).Error; err != nil {
		return fmt.Errorf("seed demo budget lines: %w", err)
	}

	log.Printf("seeded demo account %s with %d budget lines", user.Email, len(lines))
	return nil
}

// GetDB returns the database handle
func GetDB() *gorm.DB {
	return DB
}
