package api

import (
	"strconv"
	"time"

	"budgetbook/database"
	"budgetbook/middleware"
	"budgetbook/models"

	"github.com/gin-gonic/gin"
)

// TransactionHandler manages recorded expenses
type TransactionHandler struct{}

// NewTransactionHandler creates a transaction handler
func NewTransactionHandler() *TransactionHandler {
	return &TransactionHandler{}
}

// CreateTransactionRequest is the creation payload. Amount is signed, refunds
// go in as negative amounts.
type CreateTransactionRequest struct {
	CategoryID  uint    `json:"category_id" binding:"required" example:"1"`
	Amount      float64 `json:"amount" binding:"required" example:"19.99"`
	Description string  `json:"description" example:"weekly shop"`
	SpentAt     string  `json:"spent_at" binding:"required" example:"2024-01-15 12:30:00"`
}

// UpdateTransactionRequest is the update payload, omitted fields stay unchanged
type UpdateTransactionRequest struct {
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
	SpentAt     string   `json:"spent_at" example:"2024-01-15 12:30:00"`
}

// TransactionListRequest filters the transaction list
type TransactionListRequest struct {
	Page       int  `form:"page" example:"1"`
	PageSize   int  `form:"page_size" example:"10"`
	CategoryID uint `form:"category_id" example:"1"`
}

// ownedLineID verifies the budget line belongs to the user. Absent and
// not-owned lines are both reported as not found.
func ownedLineID(c *gin.Context, userID, lineID uint) bool {
	var line models.BudgetLine
	if err := database.DB.First(&line, lineID).Error; err != nil {
		NotFound(c, "category not found")
		return false
	}
	var budget models.Budget
	if err := database.DB.Where("id = ? AND user_id = ?", line.BudgetID, userID).First(&budget).Error; err != nil {
		NotFound(c, "category not found")
		return false
	}
	return true
}

// Create records an expense against a budget line
// @Summary Create transaction
// @Description Record a signed expense against a budget line of the current user.
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateTransactionRequest true "transaction"
// @Success 201 {object} Response{data=models.Transaction} "created"
// @Failure 400 {object} Response "malformed payload"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 404 {object} Response "category not found"
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid payload"))
		return
	}

	if !ownedLineID(c, userID, req.CategoryID) {
		return
	}

	spentAt, err := time.ParseInLocation("2006-01-02 15:04:05", req.SpentAt, time.Local)
	if err != nil {
		BadRequest(c, "spent_at format must be: 2006-01-02 15:04:05")
		return
	}

	tx := models.Transaction{
		BudgetLineID: req.CategoryID,
		Amount:       req.Amount,
		Description:  req.Description,
		SpentAt:      spentAt,
	}

	if err := database.DB.Create(&tx).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "creating transaction failed"))
		return
	}

	Created(c, tx)
}

// List returns the user's transactions, optionally scoped to one category
// @Summary List transactions
// @Description List transactions of the current user with pagination, newest first.
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param page query int false "page" default(1)
// @Param page_size query int false "page size" default(10)
// @Param category_id query int false "budget line filter"
// @Success 200 {object} Response{data=PageResponse{list=[]models.Transaction}} "ok"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req TransactionListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid query"))
		return
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 10
	}
	if req.PageSize > 100 {
		req.PageSize = 100
	}

	query := database.DB.Model(&models.Transaction{}).
		Joins("JOIN budget_lines ON budget_lines.id = transactions.budget_line_id").
		Joins("JOIN budgets ON budgets.id = budget_lines.budget_id").
		Where("budgets.user_id = ?", userID)

	if req.CategoryID > 0 {
		query = query.Where("transactions.budget_line_id = ?", req.CategoryID)
	}

	var total int64
	query.Count(&total)

	var txs []models.Transaction
	offset := (req.Page - 1) * req.PageSize
	if err := query.Order("transactions.spent_at DESC").Offset(offset).Limit(req.PageSize).Find(&txs).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "listing transactions failed"))
		return
	}

	Success(c, PageResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		List:     txs,
	})
}

// Get returns one transaction
// @Summary Get transaction
// @Description Fetch a single transaction of the current user.
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "transaction ID"
// @Success 200 {object} Response{data=models.Transaction} "ok"
// @Failure 400 {object} Response "invalid ID"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 404 {object} Response "not found"
// @Router /api/transactions/{id} [get]
func (h *TransactionHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	tx, ok := h.ownedTransaction(c, userID)
	if !ok {
		return
	}
	Success(c, tx)
}

// Update changes amount, description or timestamp of a transaction
// @Summary Update transaction
// @Description Update a transaction of the current user. Omitted fields stay unchanged.
// @Tags transactions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "transaction ID"
// @Param request body UpdateTransactionRequest true "fields to change"
// @Success 200 {object} Response{data=models.Transaction} "ok"
// @Failure 400 {object} Response "malformed payload"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 404 {object} Response "not found"
// @Router /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	tx, ok := h.ownedTransaction(c, userID)
	if !ok {
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid payload"))
		return
	}

	updates := make(map[string]interface{})
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.SpentAt != "" {
		spentAt, err := time.ParseInLocation("2006-01-02 15:04:05", req.SpentAt, time.Local)
		if err != nil {
			BadRequest(c, "spent_at format must be: 2006-01-02 15:04:05")
			return
		}
		updates["spent_at"] = spentAt
	}

	if len(updates) == 0 {
		SuccessWithMessage(c, "nothing to update", tx)
		return
	}

	if err := database.DB.Model(tx).Updates(updates).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "updating transaction failed"))
		return
	}

	database.DB.First(tx, tx.ID)
	SuccessWithMessage(c, "updated", tx)
}

// Delete removes a transaction
// @Summary Delete transaction
// @Description Delete a transaction of the current user.
// @Tags transactions
// @Produce json
// @Security BearerAuth
// @Param id path int true "transaction ID"
// @Success 200 {object} Response "deleted"
// @Failure 400 {object} Response "invalid ID"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 404 {object} Response "not found"
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	tx, ok := h.ownedTransaction(c, userID)
	if !ok {
		return
	}

	if err := database.DB.Delete(tx).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "deleting transaction failed"))
		return
	}

	SuccessWithMessage(c, "deleted", nil)
}

// ownedTransaction resolves :id and verifies the chain transaction -> line ->
// budget -> user. Responds and returns false on failure.
func (h *TransactionHandler) ownedTransaction(c *gin.Context, userID uint) (*models.Transaction, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid ID")
		return nil, false
	}

	var tx models.Transaction
	if err := database.DB.First(&tx, uint(id)).Error; err != nil {
		NotFound(c, "transaction not found")
		return nil, false
	}

	var line models.BudgetLine
	if err := database.DB.First(&line, tx.BudgetLineID).Error; err != nil {
		NotFound(c, "transaction not found")
		return nil, false
	}
	var budget models.Budget
	if err := database.DB.Where("id = ? AND user_id = ?", line.BudgetID, userID).First(&budget).Error; err != nil {
		NotFound(c, "transaction not found")
		return nil, false
	}

	return &tx, true
}
