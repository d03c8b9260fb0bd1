package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fadhlanhapp/tripdash-backend/models"
)

// sheetRow builds a row of raw cells; nil entries become empty cells
func sheetRow(values ...interface{}) models.SheetRow {
	cells := make([]*models.SheetCell, len(values))
	for i, v := range values {
		if v == nil {
			continue
		}
		if cell, ok := v.(*models.SheetCell); ok {
			cells[i] = cell
			continue
		}
		cells[i] = &models.SheetCell{V: v}
	}
	return models.SheetRow{C: cells}
}

func sheetTable(rows ...models.SheetRow) *models.SheetTable {
	return &models.SheetTable{Rows: rows}
}

func TestNormalizeUsers_SkipsHeaderRow(t *testing.T) {
	table := sheetTable(
		sheetRow("Name", "Password", "Role"),
		sheetRow("Alice", "pw1", "member"),
		sheetRow("Bob", "pw2", "admin"),
	)

	users := NormalizeUsers(table)

	assert.Len(t, users, 2)
	assert.Equal(t, models.User{Name: "Alice", Password: "pw1", Role: "member"}, users[0])
	assert.Equal(t, models.User{Name: "Bob", Password: "pw2", Role: "admin"}, users[1])
}

func TestNormalizeUsers_DefaultsUnknownRoleToMember(t *testing.T) {
	table := sheetTable(
		sheetRow("Name", "Password", "Role"),
		sheetRow("Carol", "pw3", "superuser"),
		sheetRow("Dave", "pw4", nil),
	)

	users := NormalizeUsers(table)

	assert.Len(t, users, 2)
	assert.Equal(t, "member", users[0].Role)
	assert.Equal(t, "member", users[1].Role)
}

func TestNormalizeUsers_EmptyTable(t *testing.T) {
	assert.Empty(t, NormalizeUsers(sheetTable()))
	assert.Empty(t, NormalizeUsers(sheetTable(sheetRow("Name", "Password", "Role"))))
}

func TestNormalizePayments_NoHeaderSkip(t *testing.T) {
	table := sheetTable(
		sheetRow("Alice", float64(1000)),
		sheetRow("Bob", float64(0)),
	)

	payments := NormalizePayments(table)

	assert.Len(t, payments, 2)
	assert.Equal(t, models.Payment{Name: "Alice", Paid: 1000}, payments[0])
	assert.Equal(t, models.Payment{Name: "Bob", Paid: 0}, payments[1])
}

func TestNormalizePayments_CoercesNonNumericToZero(t *testing.T) {
	table := sheetTable(
		sheetRow("Alice", "1500.50"),
		sheetRow("Bob", "pending"),
		sheetRow("Carol", nil),
	)

	payments := NormalizePayments(table)

	assert.Len(t, payments, 3)
	assert.Equal(t, 1500.50, payments[0].Paid)
	assert.Equal(t, float64(0), payments[1].Paid)
	assert.Equal(t, float64(0), payments[2].Paid)
}

func TestNormalizePayments_KeepsDuplicateNames(t *testing.T) {
	table := sheetTable(
		sheetRow("Alice", float64(500)),
		sheetRow("Alice", float64(300)),
	)

	payments := NormalizePayments(table)

	assert.Len(t, payments, 2)
}

func TestNormalizeTripInfo_TypedSchema(t *testing.T) {
	table := sheetTable(
		sheetRow("trip_name", "Chikmagalur"),
		sheetRow("total_cost", float64(50000)),
		sheetRow("per_head", float64(5000)),
		sheetRow("start_date", &models.SheetCell{V: "Date(2025,11,25)", F: "2025-12-25"}),
		sheetRow("theme", "mountains"),
	)

	info := NormalizeTripInfo(table)

	assert.Equal(t, "Chikmagalur", info.TripName)
	assert.Equal(t, float64(50000), info.TotalCost)
	assert.Equal(t, float64(5000), info.PerHead)
	assert.Equal(t, "2025-12-25", info.StartDate)
	assert.Equal(t, "mountains", info.Extra["theme"])
}

func TestNormalizeTripInfo_PrefersFormattedOverRaw(t *testing.T) {
	table := sheetTable(
		sheetRow("per_head", &models.SheetCell{V: float64(5000.129), F: "5000.13"}),
	)

	info := NormalizeTripInfo(table)

	assert.Equal(t, 5000.13, info.PerHead)
}

func TestNormalizeTripInfo_NumericFallsBackToRawWhenFormatIsCurrency(t *testing.T) {
	table := sheetTable(
		sheetRow("total_cost", &models.SheetCell{V: float64(50000), F: "₹50,000.00"}),
	)

	info := NormalizeTripInfo(table)

	assert.Equal(t, float64(50000), info.TotalCost)
}

func TestNormalizeTripInfo_DefaultStartDate(t *testing.T) {
	info := NormalizeTripInfo(sheetTable(sheetRow("per_head", float64(100))))

	assert.Equal(t, "2025-12-25", info.StartDate)
}

func TestNormalizeExpenses_FiltersInvalidRows(t *testing.T) {
	table := sheetTable(
		sheetRow("Food", "500", "2025-12-01", "dinner"),
		sheetRow("", "100", "2025-12-02", nil),
		sheetRow("Fuel", "-20", "2025-12-03", nil),
		sheetRow("Stay", "not-a-number", "2025-12-04", nil),
	)

	expenses := NormalizeExpenses(table)

	assert.Len(t, expenses, 1)
	assert.Equal(t, models.Expense{
		Category: "Food",
		Cost:     500,
		Date:     "2025-12-01",
		Notes:    "dinner",
	}, expenses[0])
}

func TestNormalizeExpenses_DefaultsNotes(t *testing.T) {
	table := sheetTable(
		sheetRow("Food", float64(250), &models.SheetCell{V: "Date(2025,11,1)", F: "12/1/2025"}),
	)

	expenses := NormalizeExpenses(table)

	assert.Len(t, expenses, 1)
	assert.Equal(t, "No notes", expenses[0].Notes)
	assert.Equal(t, "12/1/2025", expenses[0].Date)
}

func TestNormalizeExpenses_ShortRowsNeverPanic(t *testing.T) {
	table := sheetTable(
		sheetRow("Food"),
		models.SheetRow{},
	)

	assert.Empty(t, NormalizeExpenses(table))
}
