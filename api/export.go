package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"budgetbook/database"
	"budgetbook/middleware"
	"budgetbook/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler produces transaction exports
type ExportHandler struct{}

// NewExportHandler creates an export handler
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// exportRow is one exported transaction with its category name
type exportRow struct {
	ID          uint      `json:"id"`
	Category    string    `json:"category"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	SpentAt     time.Time `json:"spent_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// exportRange parses start_time/end_time query params and loads the user's
// transactions in that range. Responds and returns false on failure.
func (h *ExportHandler) exportRange(c *gin.Context) ([]exportRow, string, string, bool) {
	userID := middleware.GetCurrentUserID(c)

	startTimeStr := c.Query("start_time")
	endTimeStr := c.Query("end_time")

	if startTimeStr == "" || endTimeStr == "" {
		BadRequest(c, "start_time and end_time are required")
		return nil, "", "", false
	}

	startTime, err := time.ParseInLocation("2006-01-02", startTimeStr, time.Local)
	if err != nil {
		BadRequest(c, "start_time format must be: 2006-01-02")
		return nil, "", "", false
	}

	endTime, err := time.ParseInLocation("2006-01-02", endTimeStr, time.Local)
	if err != nil {
		BadRequest(c, "end_time format must be: 2006-01-02")
		return nil, "", "", false
	}
	// include the whole end day
	endTime = endTime.Add(24*time.Hour - time.Second)

	var rows []exportRow
	err = database.DB.Model(&models.Transaction{}).
		Select("transactions.id, budget_lines.name as category, transactions.amount, transactions.description, transactions.spent_at, transactions.created_at").
		Joins("JOIN budget_lines ON budget_lines.id = transactions.budget_line_id").
		Joins("JOIN budgets ON budgets.id = budget_lines.budget_id").
		Where("budgets.user_id = ? AND transactions.spent_at >= ? AND transactions.spent_at <= ?", userID, startTime, endTime).
		Order("transactions.spent_at DESC").
		Scan(&rows).Error
	if err != nil {
		InternalError(c, SafeErrorMessage(err, "loading transactions failed"))
		return nil, "", "", false
	}

	return rows, startTimeStr, endTimeStr, true
}

// ExportCSV exports transactions as CSV
// @Summary Export transactions as CSV
// @Description Export the user's transactions in a date range as a CSV file.
// @Tags export
// @Produce text/csv
// @Security BearerAuth
// @Param start_time query string true "start date (2024-01-01)"
// @Param end_time query string true "end date (2024-12-31)"
// @Success 200 {file} file "CSV file"
// @Failure 400 {object} Response "malformed date range"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/export/csv [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	rows, startStr, endStr, ok := h.exportRange(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// BOM so Excel detects UTF-8
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "Category", "Amount", "Description", "Spent at", "Created at"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "writing CSV failed")
		return
	}

	for _, row := range rows {
		record := []string{
			fmt.Sprintf("%d", row.ID),
			row.Category,
			fmt.Sprintf("%.2f", row.Amount),
			row.Description,
			row.SpentAt.Format("2006-01-02 15:04:05"),
			row.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := writer.Write(record); err != nil {
			InternalError(c, "writing CSV failed")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "writing CSV failed")
		return
	}

	filename := fmt.Sprintf("transactions_%s_%s.csv", startStr, endStr)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportJSON exports transactions as JSON
// @Summary Export transactions as JSON
// @Description Export the user's transactions in a date range as JSON.
// @Tags export
// @Produce json
// @Security BearerAuth
// @Param start_time query string true "start date (2024-01-01)"
// @Param end_time query string true "end date (2024-12-31)"
// @Success 200 {object} Response "ok"
// @Failure 400 {object} Response "malformed date range"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/export/json [get]
func (h *ExportHandler) ExportJSON(c *gin.Context) {
	rows, startStr, endStr, ok := h.exportRange(c)
	if !ok {
		return
	}

	var total float64
	for _, row := range rows {
		total += row.Amount
	}

	Success(c, gin.H{
		"start_time":   startStr,
		"end_time":     endStr,
		"total_amount": total,
		"count":        len(rows),
		"transactions": rows,
	})
}

// ExportExcel exports transactions as an xlsx workbook
// @Summary Export transactions as Excel
// @Description Export the user's transactions in a date range as an xlsx file with a totals row.
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param start_time query string true "start date (2024-01-01)"
// @Param end_time query string true "end date (2024-12-31)"
// @Success 200 {file} file "xlsx file"
// @Failure 400 {object} Response "malformed date range"
// @Failure 401 {object} Response "unauthenticated"
// @Router /api/export/excel [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	rows, startStr, endStr, ok := h.exportRange(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Transactions"
	f.SetSheetName("Sheet1", sheetName)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 18)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 30)
	f.SetColWidth(sheetName, "E", "E", 20)
	f.SetColWidth(sheetName, "F", "F", 20)

	headers := []string{"ID", "Category", "Amount", "Description", "Spent at", "Created at"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var totalAmount float64
	for i, row := range rows {
		excelRow := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", excelRow), row.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", excelRow), row.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", excelRow), row.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", excelRow), row.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", excelRow), row.SpentAt.Format("2006-01-02 15:04:05"))
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", excelRow), row.CreatedAt.Format("2006-01-02 15:04:05"))
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", excelRow), fmt.Sprintf("F%d", excelRow), dataStyle)
		totalAmount += row.Amount
	}

	summaryRow := len(rows) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "Total")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), totalAmount)
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("%d records", len(rows)))
	f.MergeCell(sheetName, fmt.Sprintf("D%d", summaryRow), fmt.Sprintf("F%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("F%d", summaryRow), summaryStyle)

	filename := fmt.Sprintf("transactions_%s_%s.xlsx", startStr, endStr)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "writing Excel failed")
		return
	}
}
