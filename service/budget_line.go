package service

import (
	"errors"
	"strings"
	"time"

	"budgetbook/database"
	"budgetbook/models"

	"gorm.io/gorm"
)

// Budget-line business rules. Handlers map these to HTTP status codes:
// ErrNotFound -> 404, ErrDuplicateName -> 409, the rest -> 400.
var (
	ErrNotFound        = errors.New("budget line not found")
	ErrDuplicateName   = errors.New("category name already exists in this budget")
	ErrHasTransactions = errors.New("category has transactions and cannot be deleted")
	ErrEmptyName       = errors.New("category name must not be empty")
	ErrNegativeAmount  = errors.New("budgeted amount must not be negative")
)

// BudgetLineService validates and mutates budget lines and derives
// actual_spent / remaining from transaction rows at query time.
type BudgetLineService struct{}

// NewBudgetLineService creates a budget line service
func NewBudgetLineService() *BudgetLineService {
	return &BudgetLineService{}
}

// CurrentBudget resolves the user's budget for the month containing now,
// creating it on demand. This is the single place the at-most-one-per
// (user, month, year) invariant is enforced.
func (s *BudgetLineService) CurrentBudget(userID uint, now time.Time) (*models.Budget, error) {
	month := int(now.Month())
	year := now.Year()

	var budget models.Budget
	err := database.DB.Where("user_id = ? AND month = ? AND year = ?", userID, month, year).First(&budget).Error
	if err == nil {
		return &budget, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	budget = models.Budget{UserID: userID, Month: month, Year: year}
	if err := database.DB.Create(&budget).Error; err != nil {
		return nil, err
	}
	return &budget, nil
}

// ListLines returns the budget's lines with derived amounts attached
func (s *BudgetLineService) ListLines(userID, budgetID uint) ([]models.BudgetLineView, error) {
	if _, err := s.ownedBudget(userID, budgetID); err != nil {
		return nil, err
	}

	var lines []models.BudgetLine
	if err := database.DB.Where("budget_id = ?", budgetID).Order("id ASC").Find(&lines).Error; err != nil {
		return nil, err
	}

	spent, err := s.spentByLine(lines)
	if err != nil {
		return nil, err
	}

	views := make([]models.BudgetLineView, 0, len(lines))
	for _, line := range lines {
		views = append(views, newView(line, spent[line.ID]))
	}
	return views, nil
}

// GetLine returns one line with derived amounts. Absent and not-owned rows
// are indistinguishable to the caller.
func (s *BudgetLineService) GetLine(userID, lineID uint) (*models.BudgetLineView, error) {
	line, err := s.ownedLine(userID, lineID)
	if err != nil {
		return nil, err
	}

	spent, err := s.spentByLine([]models.BudgetLine{*line})
	if err != nil {
		return nil, err
	}
	view := newView(*line, spent[line.ID])
	return &view, nil
}

// CreateLine validates and creates a line in the given budget
func (s *BudgetLineService) CreateLine(userID, budgetID uint, name string, amount float64) (*models.BudgetLineView, error) {
	if _, err := s.ownedBudget(userID, budgetID); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if amount < 0 {
		return nil, ErrNegativeAmount
	}
	if taken, err := s.nameTaken(budgetID, name, 0); err != nil {
		return nil, err
	} else if taken {
		return nil, ErrDuplicateName
	}

	line := models.BudgetLine{
		BudgetID:       budgetID,
		Name:           name,
		BudgetedAmount: amount,
	}
	if err := database.DB.Create(&line).Error; err != nil {
		return nil, err
	}

	view := newView(line, 0)
	return &view, nil
}

// UpdateLine applies a rename and/or a new budgeted amount. Nil fields are
// left untouched.
func (s *BudgetLineService) UpdateLine(userID, lineID uint, name *string, amount *float64) (*models.BudgetLineView, error) {
	line, err := s.ownedLine(userID, lineID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return nil, ErrEmptyName
		}
		if taken, err := s.nameTaken(line.BudgetID, trimmed, line.ID); err != nil {
			return nil, err
		} else if taken {
			return nil, ErrDuplicateName
		}
		updates["name"] = trimmed
	}
	if amount != nil {
		if *amount < 0 {
			return nil, ErrNegativeAmount
		}
		updates["budgeted_amount"] = *amount
	}

	if len(updates) > 0 {
		if err := database.DB.Model(line).Updates(updates).Error; err != nil {
			return nil, err
		}
		if err := database.DB.First(line, line.ID).Error; err != nil {
			return nil, err
		}
	}

	spent, err := s.spentByLine([]models.BudgetLine{*line})
	if err != nil {
		return nil, err
	}
	view := newView(*line, spent[line.ID])
	return &view, nil
}

// RenameLine renames a line, keeping its budgeted amount
func (s *BudgetLineService) RenameLine(userID, lineID uint, name string) (*models.BudgetLineView, error) {
	return s.UpdateLine(userID, lineID, &name, nil)
}

// DeleteLine removes a line. Refused while transactions still reference it.
func (s *BudgetLineService) DeleteLine(userID, lineID uint) error {
	line, err := s.ownedLine(userID, lineID)
	if err != nil {
		return err
	}

	var txCount int64
	if err := database.DB.Model(&models.Transaction{}).Where("budget_line_id = ?", line.ID).Count(&txCount).Error; err != nil {
		return err
	}
	if txCount > 0 {
		return ErrHasTransactions
	}

	return database.DB.Delete(line).Error
}

// ownedBudget fetches a budget and verifies ownership
func (s *BudgetLineService) ownedBudget(userID, budgetID uint) (*models.Budget, error) {
	var budget models.Budget
	if err := database.DB.Where("id = ? AND user_id = ?", budgetID, userID).First(&budget).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &budget, nil
}

// ownedLine fetches a line and verifies its budget belongs to the user
func (s *BudgetLineService) ownedLine(userID, lineID uint) (*models.BudgetLine, error) {
	var line models.BudgetLine
	if err := database.DB.First(&line, lineID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := s.ownedBudget(userID, line.BudgetID); err != nil {
		return nil, err
	}
	return &line, nil
}

// nameTaken reports whether another line in the budget already uses the name.
// Comparison is case-insensitive; excludeID skips the line being renamed.
func (s *BudgetLineService) nameTaken(budgetID uint, name string, excludeID uint) (bool, error) {
	query := database.DB.Model(&models.BudgetLine{}).
		Where("budget_id = ? AND LOWER(name) = LOWER(?)", budgetID, name)
	if excludeID > 0 {
		query = query.Where("id != ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// spentByLine sums transaction amounts per line in one grouped query
func (s *BudgetLineService) spentByLine(lines []models.BudgetLine) (map[uint]float64, error) {
	result := make(map[uint]float64, len(lines))
	if len(lines) == 0 {
		return result, nil
	}

	ids := make([]uint, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ID)
	}

	type lineTotal struct {
		BudgetLineID uint
		Total        float64
	}
	var totals []lineTotal
	err := database.DB.Model(&models.Transaction{}).
		Select("budget_line_id, COALESCE(SUM(amount), 0) as total").
		Where("budget_line_id IN ?", ids).
		Group("budget_line_id").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	for _, t := range totals {
		result[t.BudgetLineID] = t.Total
	}
	return result, nil
}

// newView attaches the derived amounts to a line
func newView(line models.BudgetLine, spent float64) models.BudgetLineView {
	return models.BudgetLineView{
		BudgetLine:  line,
		ActualSpent: spent,
		Remaining:   line.BudgetedAmount - spent,
	}
}
