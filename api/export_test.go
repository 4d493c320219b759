package api

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportRouter(userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(setUserIDMiddleware(userID))
	h := NewExportHandler()
	router.GET("/export/csv", h.ExportCSV)
	router.GET("/export/json", h.ExportJSON)
	router.GET("/export/excel", h.ExportExcel)
	return router
}

func exportResultRows() *sqlmock.Rows {
	spent, _ := time.ParseInLocation("2006-01-02 15:04:05", "2024-01-15 12:30:00", time.Local)
	return sqlmock.NewRows([]string{"id", "category", "amount", "description", "spent_at", "created_at"}).
		AddRow(1, "Groceries", 19.99, "weekly shop", spent, spent).
		AddRow(2, "Transport", 2.80, "bus", spent.Add(time.Hour), spent.Add(time.Hour))
}

func TestExportHandler_CSV(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT transactions.id, budget_lines.name").
		WillReturnRows(exportResultRows())

	router := exportRouter(1)
	req := httptest.NewRequest("GET", "/export/csv?start_time=2024-01-01&end_time=2024-01-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "transactions_2024-01-01_2024-01-31.csv")

	body := w.Body.String()
	// BOM first so spreadsheet apps read UTF-8
	assert.True(t, strings.HasPrefix(body, "\xEF\xBB\xBF"))
	assert.Contains(t, body, "ID,Category,Amount,Description")
	assert.Contains(t, body, "Groceries,19.99,weekly shop")
	assert.Contains(t, body, "Transport,2.80,bus")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_CSV_MissingRange(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := exportRouter(1)
	req := httptest.NewRequest("GET", "/export/csv?start_time=2024-01-01", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestExportHandler_CSV_BadDate(t *testing.T) {
	_, cleanup := setupMockDB(t)
	defer cleanup()

	router := exportRouter(1)
	req := httptest.NewRequest("GET", "/export/csv?start_time=01/01/2024&end_time=2024-01-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 400, w.Code)
}

func TestExportHandler_JSON(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT transactions.id, budget_lines.name").
		WillReturnRows(exportResultRows())

	router := exportRouter(1)
	req := httptest.NewRequest("GET", "/export/json?start_time=2024-01-01&end_time=2024-01-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	var resp struct {
		Data struct {
			TotalAmount  float64 `json:"total_amount"`
			Count        int     `json:"count"`
			Transactions []struct {
				Category string  `json:"category"`
				Amount   float64 `json:"amount"`
			} `json:"transactions"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Data.Count)
	assert.InDelta(t, 22.79, resp.Data.TotalAmount, 0.001)
	require.Len(t, resp.Data.Transactions, 2)
	assert.Equal(t, "Groceries", resp.Data.Transactions[0].Category)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExportHandler_Excel(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT transactions.id, budget_lines.name").
		WillReturnRows(exportResultRows())

	router := exportRouter(1)
	req := httptest.NewRequest("GET", "/export/excel?start_time=2024-01-01&end_time=2024-01-31", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "transactions_2024-01-01_2024-01-31.xlsx")
	// xlsx files are zip archives
	assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
	require.NoError(t, mock.ExpectationsWereMet())
}
