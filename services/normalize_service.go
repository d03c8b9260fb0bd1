// services/normalize_service.go
package services

import (
	"strconv"
	"strings"

	"github.com/fadhlanhapp/tripdash-backend/models"
	"github.com/fadhlanhapp/tripdash-backend/utils"
)

// Normalizers map raw gviz tables into typed domain records. They never
// fail on malformed rows; bad rows are dropped or defaulted. A missing
// table is rejected upstream before these run.

// NormalizeUsers converts the Users table. The first row is a header
// and is skipped. An unrecognized role falls back to member.
func NormalizeUsers(table *models.SheetTable) []models.User {
	users := make([]models.User, 0)
	if len(table.Rows) < 2 {
		return users
	}

	for _, row := range table.Rows[1:] {
		name := cellString(row.Cell(0))
		if name == "" {
			continue
		}

		role := cellString(row.Cell(2))
		if role != utils.RoleAdmin {
			role = utils.RoleMember
		}

		users = append(users, models.User{
			Name:     name,
			Password: cellString(row.Cell(1)),
			Role:     role,
		})
	}

	return users
}

// NormalizePayments converts the Payments table. There is no header
// row. Duplicate names are kept as separate records; summation happens
// at derivation time.
func NormalizePayments(table *models.SheetTable) []models.Payment {
	payments := make([]models.Payment, 0, len(table.Rows))
	for _, row := range table.Rows {
		name := cellString(row.Cell(0))
		if name == "" {
			continue
		}

		payments = append(payments, models.Payment{
			Name: name,
			Paid: cellFloat(row.Cell(1)),
		})
	}

	return payments
}

// NormalizeTripInfo converts the two-column Trip table into the typed
// schema. The formatted cell value is preferred over the raw one so that
// currency and date formats applied in the sheet survive. Unknown keys
// land in Extra as strings.
func NormalizeTripInfo(table *models.SheetTable) models.TripInfo {
	info := models.TripInfo{Extra: make(map[string]string)}

	for _, row := range table.Rows {
		key := cellString(row.Cell(0))
		if key == "" {
			continue
		}

		cell := row.Cell(1)
		val := cellFormatted(cell)

		switch key {
		case "trip_name":
			info.TripName = val
		case "total_cost":
			info.TotalCost = numericValue(cell)
		case "per_head":
			info.PerHead = numericValue(cell)
		case "start_date":
			info.StartDate = val
		case "days":
			info.Days = numericValue(cell)
		default:
			info.Extra[key] = val
		}
	}

	if info.StartDate == "" {
		info.StartDate = utils.DefaultStartDate
	}

	return info
}

// NormalizeExpenses converts the Expenses table. There is no header
// row. Rows with an empty category or a non-positive cost are dropped;
// missing notes default to a placeholder.
func NormalizeExpenses(table *models.SheetTable) []models.Expense {
	expenses := make([]models.Expense, 0, len(table.Rows))
	for _, row := range table.Rows {
		category := cellString(row.Cell(0))
		cost := cellFloat(row.Cell(1))
		if category == "" || cost <= 0 {
			continue
		}

		notes := cellString(row.Cell(3))
		if notes == "" {
			notes = utils.DefaultNotes
		}

		expenses = append(expenses, models.Expense{
			Category: category,
			Cost:     cost,
			Date:     cellFormatted(row.Cell(2)),
			Notes:    notes,
		})
	}

	return expenses
}

// cellString returns the raw cell value as a string, or "" for a
// missing cell. Numeric values are rendered without a trailing zero
// fraction so that a "42" typed as a number round-trips as "42".
func cellString(c *models.SheetCell) string {
	if c == nil || c.V == nil {
		return ""
	}

	switch v := c.V.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return ""
	}
}

// cellFloat coerces the raw cell value to a float64; anything
// non-numeric yields 0 so no NaN propagates downstream.
func cellFloat(c *models.SheetCell) float64 {
	if c == nil || c.V == nil {
		return 0
	}

	switch v := c.V.(type) {
	case float64:
		return v
	case string:
		return parseFloatOrZero(v)
	default:
		return 0
	}
}

// cellFormatted prefers the formatted display value over the raw one
func cellFormatted(c *models.SheetCell) string {
	if c == nil {
		return ""
	}
	if f := strings.TrimSpace(c.F); f != "" {
		return f
	}
	return cellString(c)
}

// numericValue coerces a cell for a numeric trip-info key. The
// formatted value is tried first; when the sheet formats it as
// currency or a date the parse fails and the raw number is used.
func numericValue(c *models.SheetCell) float64 {
	if c == nil {
		return 0
	}
	if f := strings.TrimSpace(c.F); f != "" {
		if parsed, err := strconv.ParseFloat(f, 64); err == nil {
			return parsed
		}
	}
	return cellFloat(c)
}

func parseFloatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return f
}
