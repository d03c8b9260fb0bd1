// services/excel_service.go
package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/fadhlanhapp/tripdash-backend/models"
	"github.com/fadhlanhapp/tripdash-backend/utils"
)

// ExcelService exports a dashboard snapshot to an Excel workbook
type ExcelService struct{}

// NewExcelService creates a new Excel service
func NewExcelService() *ExcelService {
	return &ExcelService{}
}

// ExportDashboard generates an Excel file from a dashboard snapshot
func (s *ExcelService) ExportDashboard(snapshot *models.DashboardSnapshot) (*excelize.File, string, error) {
	f := excelize.NewFile()

	if err := s.createOverviewSheet(f, snapshot); err != nil {
		return nil, "", fmt.Errorf("failed to create overview sheet: %v", err)
	}

	if err := s.createExpensesSheet(f, snapshot.Expenses); err != nil {
		return nil, "", fmt.Errorf("failed to create expenses sheet: %v", err)
	}

	if len(snapshot.Members) > 0 {
		if err := s.createMembersSheet(f, snapshot.Members); err != nil {
			return nil, "", fmt.Errorf("failed to create members sheet: %v", err)
		}
	}

	// Delete the default sheet if it exists
	f.DeleteSheet("Sheet1")

	name := snapshot.Trip.TripName
	if name == "" {
		name = "Trip"
	}
	filename := fmt.Sprintf("%s_Export_%s.xlsx",
		utils.CleanFileName(name),
		time.Now().Format("2006-01-02"))

	return f, filename, nil
}

// createOverviewSheet creates Sheet 1: Overview
func (s *ExcelService) createOverviewSheet(f *excelize.File, snapshot *models.DashboardSnapshot) error {
	sheetName := "Overview"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	rows := []struct {
		Label string
		Value interface{}
	}{
		{"Trip Name", snapshot.Trip.TripName},
		{"Start Date", snapshot.Trip.StartDate},
		{"Total Planned Cost", snapshot.Trip.TotalCost},
		{"Per Head Contribution", snapshot.PerHead},
		{"Member Count", snapshot.MemberCount},
		{"Total Spent (Breakdown)", snapshot.TotalExpenses},
		{"Per Member Split", snapshot.PerMemberSplit},
	}

	for i, row := range rows {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", i+1), row.Label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", i+1), row.Value)
	}

	labelStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("A%d", len(rows)), labelStyle)

	if snapshot.Reconciliation != nil {
		noteRow := len(rows) + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", noteRow),
			fmt.Sprintf("Note: breakdown total differs from planned total by %.2f",
				snapshot.Reconciliation.Difference))
	}

	f.SetColWidth(sheetName, "A", "B", 25)

	return nil
}

// createExpensesSheet creates Sheet 2: Expenses
func (s *ExcelService) createExpensesSheet(f *excelize.File, expenses []models.Expense) error {
	sheetName := "Expenses"
	f.NewSheet(sheetName)

	headers := []string{"Category", "Cost", "Date", "Notes"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)

	for i, expense := range expenses {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), expense.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.Cost)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), expense.Notes)
	}

	f.SetColWidth(sheetName, "A", "D", 20)

	return nil
}

// createMembersSheet creates Sheet 3: Member payment tracker
func (s *ExcelService) createMembersSheet(f *excelize.File, members []models.MemberStatus) error {
	sheetName := "Members"
	f.NewSheet(sheetName)

	headers := []string{"Member", "Paid", "Status", "Amount Due"}
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", string(rune('A'+len(headers)-1))), headerStyle)

	for i, member := range members {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), utils.FormatNameForDisplay(member.Name))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), member.Paid)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), member.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), member.AmountDue)
	}

	f.SetColWidth(sheetName, "A", "D", 15)

	return nil
}
