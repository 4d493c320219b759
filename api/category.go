package api

import (
	"errors"
	"strconv"
	"time"

	"budgetbook/middleware"
	"budgetbook/service"

	"github.com/gin-gonic/gin"
)

// CategoryHandler exposes budget lines as "categories"
type CategoryHandler struct {
	lines *service.BudgetLineService
}

// NewCategoryHandler creates a category handler
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{lines: service.NewBudgetLineService()}
}

// CategoryCreateRequest is the creation payload
type CategoryCreateRequest struct {
	Category       string  `json:"category" binding:"required,min=1,max=50" example:"Groceries"`
	BudgetedAmount float64 `json:"budgeted_amount" example:"400"`
}

// CategoryUpdateRequest is the update payload, omitted fields stay unchanged
type CategoryUpdateRequest struct {
	Category       *string  `json:"category" binding:"omitempty,max=50"`
	BudgetedAmount *float64 `json:"budgeted_amount"`
}

// CategoryRenameRequest is the legacy rename payload
type CategoryRenameRequest struct {
	ID       uint   `json:"id" binding:"required"`
	Category string `json:"category" binding:"required,min=1,max=50"`
}

// lineError maps service errors onto status codes
func lineError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		NotFound(c, "category not found")
	case errors.Is(err, service.ErrDuplicateName):
		Conflict(c, "category name already exists in this budget")
	case errors.Is(err, service.ErrEmptyName):
		BadRequest(c, "category name must not be empty")
	case errors.Is(err, service.ErrNegativeAmount):
		BadRequest(c, "budgeted amount must not be negative")
	case errors.Is(err, service.ErrHasTransactions):
		BadRequest(c, "category has transactions and cannot be deleted")
	default:
		InternalError(c, SafeErrorMessage(err, fallback))
	}
}

// List returns the current month's categories with derived amounts
// @Summary List categories
// @Description List the budget lines of the current month's budget, each with actual_spent and remaining derived from its transactions. The budget is created on first access.
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Success 200 {object} Response{data=[]models.BudgetLineView} "ok"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	budget, err := h.lines.CurrentBudget(userID, time.Now())
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "resolving current budget failed"))
		return
	}

	views, err := h.lines.ListLines(userID, budget.ID)
	if err != nil {
		lineError(c, err, "listing categories failed")
		return
	}

	Success(c, views)
}

// Create adds a category to the current month's budget
// @Summary Create category
// @Description Create a budget line in the current month's budget. Names are trimmed and must be unique within the budget (case-insensitive).
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryCreateRequest true "category"
// @Success 201 {object} Response{data=models.BudgetLineView} "created"
// @Failure 400 {object} Response "empty name or negative amount"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 409 {object} Response "duplicate name"
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid payload"))
		return
	}

	budget, err := h.lines.CurrentBudget(userID, time.Now())
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "resolving current budget failed"))
		return
	}

	view, err := h.lines.CreateLine(userID, budget.ID, req.Category, req.BudgetedAmount)
	if err != nil {
		lineError(c, err, "creating category failed")
		return
	}

	Created(c, view)
}

// Get returns a single category
// @Summary Get category
// @Description Fetch one budget line with derived amounts. Not-owned rows look identical to absent ones.
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "category ID"
// @Success 200 {object} Response{data=models.BudgetLineView} "ok"
// @Failure 400 {object} Response "invalid ID"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 404 {object} Response "not found"
// @Router /api/categories/{id} [get]
func (h *CategoryHandler) Get(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid ID")
		return
	}

	view, err := h.lines.GetLine(userID, uint(id))
	if err != nil {
		lineError(c, err, "fetching category failed")
		return
	}

	Success(c, view)
}

// Update renames a category and/or changes its budgeted amount
// @Summary Update category
// @Description Patch a budget line. Omitted fields are left unchanged; a rename must stay unique within the budget.
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "category ID"
// @Param request body CategoryUpdateRequest true "fields to change"
// @Success 200 {object} Response{data=models.BudgetLineView} "ok"
// @Failure 400 {object} Response "invalid payload"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 404 {object} Response "not found"
// @Failure 409 {object} Response "duplicate name"
// @Router /api/categories/{id} [patch]
func (h *CategoryHandler) Update(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid ID")
		return
	}

	var req CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid payload"))
		return
	}

	view, err := h.lines.UpdateLine(userID, uint(id), req.Category, req.BudgetedAmount)
	if err != nil {
		lineError(c, err, "updating category failed")
		return
	}

	SuccessWithMessage(c, "updated", view)
}

// Rename handles the legacy body-addressed rename route
// @Summary Rename category
// @Description Rename a budget line addressed by ID in the body. Kept for clients of the old budget page.
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CategoryRenameRequest true "ID and new name"
// @Success 200 {object} Response{data=models.BudgetLineView} "ok"
// @Failure 400 {object} Response "invalid payload"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 404 {object} Response "not found"
// @Failure 409 {object} Response "duplicate name"
// @Router /api/budget/category [patch]
func (h *CategoryHandler) Rename(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)

	var req CategoryRenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, SafeErrorMessage(err, "invalid payload"))
		return
	}

	view, err := h.lines.RenameLine(userID, req.ID, req.Category)
	if err != nil {
		lineError(c, err, "renaming category failed")
		return
	}

	SuccessWithMessage(c, "renamed", view)
}

// Delete removes a category without transactions
// @Summary Delete category
// @Description Delete a budget line. Refused with 400 while transactions still reference it.
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "category ID"
// @Success 200 {object} Response "deleted"
// @Failure 400 {object} Response "invalid ID or category has transactions"
// @Failure 401 {object} Response "unauthenticated"
// @Failure 404 {object} Response "not found"
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *gin.Context) {
	userID := middleware.GetCurrentUserID(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		BadRequest(c, "invalid ID")
		return
	}

	if err := h.lines.DeleteLine(userID, uint(id)); err != nil {
		lineError(c, err, "deleting category failed")
		return
	}

	SuccessWithMessage(c, "deleted", nil)
}
