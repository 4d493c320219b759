package api

import (
	"errors"
	"strconv"
	"time"

	"budgetbook/config"
	"budgetbook/database"
	"budgetbook/middleware"
	"budgetbook/models"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
)

// BudgetHandler manages monthly budgets and their summaries
type BudgetHandler struct {
	lines *service.BudgetLineService
	email *service.EmailService
}

// NewBudgetHandler creates a budget handler
func NewBudgetHandler(cfg *config.Config) *BudgetHandler {
	return &BudgetHandler{
		lines: service.NewBudgetLineService(),
		email: service.NewEmailService(&cfg.Email),
	}
}

// BudgetSummary is the aggregate view of one budget
type BudgetSummary struct {
	Budget         models.Budget           `json:"budget"`
	TotalBudgeted  float64                 `json:"total_budgeted"`
	TotalSpent     float64                 `json:"total_spent"`
	TotalRemaining float64                 `json:"total_remaining"`
	Lines          []models.BudgetLineView `json:"lines"`
}

// List returns all budgets of the current user
// @Summary List budgets
// @Description List the user's budgets, newest period first.
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.Budget} "ok"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/budgets [get]
func (h *BudgetHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var budgets []models.Budget
	if err := database.DB.Where("user_id = ?", userID).Order("year DESC, month DESC").Find(&budgets).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "listing budgets failed"))
		return
	}

	Success(c, budgets)
}

// GetCurrent returns the budget for the current month, creating it on demand
// @Summary Current budget
// @Description Resolve the budget for the current (month, year), creating it when absent.
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=models.Budget} "ok"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/budgets/current [get]
func (h *BudgetHandler) GetCurrent(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	budget, err := h.lines.CurrentBudget(userID, time.Now())
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "resolving current budget failed"))
		return
	}

	Success(c, budget)
}

// Summary returns budget totals and the per-line breakdown
// @Summary Budget summary
// @Description Aggregate budgeted, spent and remaining amounts over the budget's lines.
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Param id path int true "budget ID"
// @Success 200 {object} Response{data=BudgetSummary} "ok"
// @Failure 400 {object} Response "invalid ID"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 404 {object} Response "not found"
// @Router /api/budgets/{id}/summary [get]
func (h *BudgetHandler) Summary(c *gin.Context) {
	summary, ok := h.loadSummary(c)
	if !ok {
		return
	}
	Success(c, summary)
}

// SendSummaryEmail mails the summary to the user's address
// @Summary Email budget summary
// @Description Send the budget summary to the authenticated user's email address.
// @Tags budgets
// @Produce json
// @Security BearerAuth
// @Param id path int true "budget ID"
// @Success 200 {object} Response "sent"
// @Failure 400 {object} Response "invalid ID or email disabled"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 404 {object} Response "not found"
// @Router /api/budgets/{id}/summary/email [post]
func (h *BudgetHandler) SendSummaryEmail(c *gin.Context) {
	summary, ok := h.loadSummary(c)
	if !ok {
		return
	}

	userID := middleware.GetCurrentUserID(c)
	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		NotFound(c, "user not found")
		return
	}

	report := service.SummaryReport{
		Month:          summary.Budget.Month,
		Year:           summary.Budget.Year,
		TotalBudgeted:  summary.TotalBudgeted,
		TotalSpent:     summary.TotalSpent,
		TotalRemaining: summary.TotalRemaining,
		Lines:          summary.Lines,
	}
	if err := h.email.SendBudgetSummary(user.Email, user.Username, report); err != nil {
		BadRequest(c, SafeErrorMessage(err, "sending summary email failed"))
		return
	}

	SuccessWithMessage(c, "summary sent", nil)
}

// loadSummary resolves the budget from the path, checks ownership and
// aggregates its lines. Responds and returns false on failure.
func (h *BudgetHandler) loadSummary(c *gin.Context) (*BudgetSummary, bool) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid ID")
		return nil, false
	}

	var budget models.Budget
	if err := database.DB.Where("id = ? AND user_id = ?", id, userID).First(&budget).Error; err != nil {
		NotFound(c, "budget not found")
		return nil, false
	}

	views, err := h.lines.ListLines(userID, budget.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			NotFound(c, "budget not found")
		} else {
			InternalError(c, SafeErrorMessage(err, "aggregating budget failed"))
		}
		return nil, false
	}

	summary := BudgetSummary{Budget: budget, Lines: views}
	for _, v := range views {
		summary.TotalBudgeted += v.BudgetedAmount
		summary.TotalSpent += v.ActualSpent
		summary.TotalRemaining += v.Remaining
	}
	return &summary, true
}
