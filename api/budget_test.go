package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func budgetRouter(userID uint) (*gin.Engine, func()) {
	cfg, reset := setupTestConfig()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(userID))
	h := NewBudgetHandler(cfg)
	router.GET("/budgets", h.List)
	router.GET("/budgets/current", h.GetCurrent)
	router.GET("/budgets/:id/summary", h.Summary)
	router.POST("/budgets/:id/summary/email", h.SendSummaryEmail)
	return router, reset
}

func TestBudgetHandler_List(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "month", "year", "created_at", "updated_at", "deleted_at"}).
			AddRow(11, 1, 2, 2024, now, now, nil).
			AddRow(10, 1, 1, 2024, now, now, nil))

	router, reset := budgetRouter(1)
	defer reset()
	req := httptest.NewRequest("GET", "/budgets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data []struct {
			ID    uint `json:"id"`
			Month int  `json:"month"`
			Year  int  `json:"year"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, 2, resp.Data[0].Month)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_GetCurrent_CreatesOnDemand(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	// no budget for this month yet, one gets created
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WillReturnRows(sqlmock.NewRows([]string{}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `budgets`").
		WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectCommit()

	router, reset := budgetRouter(1)
	defer reset()
	req := httptest.NewRequest("GET", "/budgets/current", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data struct {
			ID    uint `json:"id"`
			Month int  `json:"month"`
			Year  int  `json:"year"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint(12), resp.Data.ID)
	assert.Equal(t, int(time.Now().Month()), resp.Data.Month)
	assert.Equal(t, time.Now().Year(), resp.Data.Year)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_Summary(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	// budget by path ID, owned by user 1
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs(10, 1).
		WillReturnRows(budgetRows(10, 1, 1, 2024))
	// ownership check inside ListLines
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs(10, 1).
		WillReturnRows(budgetRows(10, 1, 1, 2024))
	mock.ExpectQuery("SELECT .* FROM `budget_lines`").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(lineColumns()).
			AddRow(1, 10, "Groceries", 400.0, now, now, nil).
			AddRow(2, 10, "Rent", 900.0, now, now, nil))
	mock.ExpectQuery("SELECT budget_line_id, COALESCE").
		WillReturnRows(sqlmock.NewRows([]string{"budget_line_id", "total"}).
			AddRow(1, 150.0).
			AddRow(2, 900.0))

	router, reset := budgetRouter(1)
	defer reset()
	req := httptest.NewRequest("GET", "/budgets/10/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data struct {
			TotalBudgeted  float64 `json:"total_budgeted"`
			TotalSpent     float64 `json:"total_spent"`
			TotalRemaining float64 `json:"total_remaining"`
			Lines          []struct {
				Category  string  `json:"category"`
				Remaining float64 `json:"remaining"`
			} `json:"lines"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.InDelta(t, 1300.0, resp.Data.TotalBudgeted, 0.001)
	assert.InDelta(t, 1050.0, resp.Data.TotalSpent, 0.001)
	assert.InDelta(t, 250.0, resp.Data.TotalRemaining, 0.001)
	require.Len(t, resp.Data.Lines, 2)
	assert.InDelta(t, 250.0, resp.Data.Lines[0].Remaining, 0.001)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_Summary_NotOwned(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs(10, 1).
		WillReturnRows(sqlmock.NewRows([]string{}))

	router, reset := budgetRouter(1)
	defer reset()
	req := httptest.NewRequest("GET", "/budgets/10/summary", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBudgetHandler_SendSummaryEmail_Disabled(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs(10, 1).
		WillReturnRows(budgetRows(10, 1, 1, 2024))
	mock.ExpectQuery("SELECT .* FROM `budgets`").
		WithArgs(10, 1).
		WillReturnRows(budgetRows(10, 1, 1, 2024))
	mock.ExpectQuery("SELECT .* FROM `budget_lines`").
		WithArgs(10).
		WillReturnRows(sqlmock.NewRows(lineColumns()))
	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password", "created_at", "updated_at", "deleted_at"}).
			AddRow(1, "demo", "demo@example.com", "x", now, now, nil))

	// email is disabled in the test config, the handler reports 400
	router, reset := budgetRouter(1)
	defer reset()
	req := httptest.NewRequest("POST", "/budgets/10/summary/email", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}
