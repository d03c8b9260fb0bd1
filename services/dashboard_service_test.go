package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fadhlanhapp/tripdash-backend/config"
	"github.com/fadhlanhapp/tripdash-backend/models"
	"github.com/fadhlanhapp/tripdash-backend/utils"
)

// fakeFetcher serves canned tables per sheet name
type fakeFetcher struct {
	tables map[string]*models.SheetTable
	errs   map[string]error
}

func (f *fakeFetcher) FetchTable(ctx context.Context, sheet string) (*models.SheetTable, error) {
	if err, ok := f.errs[sheet]; ok {
		return nil, err
	}
	return f.tables[sheet], nil
}

func testConfig() *config.Config {
	return &config.Config{
		SheetID:       "test",
		UsersSheet:    "Users",
		PaymentsSheet: "Payments",
		TripSheet:     "Trip",
		ExpensesSheet: "Expenses",
	}
}

func testTables() map[string]*models.SheetTable {
	return map[string]*models.SheetTable{
		"Users": sheetTable(
			sheetRow("Name", "Password", "Role"),
			sheetRow("Alice", "pw1", "admin"),
			sheetRow("Bob", "pw2", "member"),
		),
		"Payments": sheetTable(
			sheetRow("Alice", float64(1000)),
			sheetRow("Bob", float64(0)),
		),
		"Trip": sheetTable(
			sheetRow("trip_name", "Chikmagalur"),
			sheetRow("total_cost", float64(2000)),
			sheetRow("per_head", float64(1000)),
			sheetRow("start_date", "2099-01-01"),
		),
		"Expenses": sheetTable(
			sheetRow("Food", float64(500), "2025-12-01", "dinner"),
			sheetRow("Fuel", float64(1500), "2025-12-02", nil),
		),
	}
}

func TestDashboardService_LoadAndSnapshot(t *testing.T) {
	service := NewDashboardService(&fakeFetcher{tables: testTables()}, testConfig())

	assert.False(t, service.Loaded())
	assert.NoError(t, service.Load(context.Background()))
	assert.True(t, service.Loaded())

	admin := &models.User{Name: "Alice", Role: "admin"}
	snapshot, err := service.Snapshot(admin)

	assert.NoError(t, err)
	assert.Equal(t, "Chikmagalur", snapshot.Trip.TripName)
	assert.Equal(t, float64(1000), snapshot.PerHead)
	assert.Equal(t, 2, snapshot.MemberCount)

	assert.Equal(t, float64(1000), snapshot.MyPaid)
	assert.Equal(t, "Paid", snapshot.MyStatus)
	assert.Equal(t, float64(0), snapshot.AmountDue)

	assert.Equal(t, float64(2000), snapshot.TotalExpenses)
	assert.Equal(t, float64(1000), snapshot.PerMemberSplit)
	assert.Len(t, snapshot.Expenses, 2)

	assert.False(t, snapshot.Countdown.IsPast)

	// Planned total matches the breakdown here, so no note.
	assert.Nil(t, snapshot.Reconciliation)

	// Admin sees the tracker, current user first.
	assert.Len(t, snapshot.Members, 2)
	assert.Equal(t, "Alice", snapshot.Members[0].Name)
	assert.Equal(t, "Pending", snapshot.Members[1].Status)
	assert.Equal(t, float64(1000), snapshot.Members[1].AmountDue)
}

func TestDashboardService_MemberSnapshotHidesTracker(t *testing.T) {
	service := NewDashboardService(&fakeFetcher{tables: testTables()}, testConfig())
	assert.NoError(t, service.Load(context.Background()))

	snapshot, err := service.Snapshot(&models.User{Name: "Bob", Role: "member"})

	assert.NoError(t, err)
	assert.Empty(t, snapshot.Members)
	assert.Equal(t, "Pending", snapshot.MyStatus)
	assert.Equal(t, float64(1000), snapshot.AmountDue)
}

func TestDashboardService_SingleTableFailureAbortsLoad(t *testing.T) {
	fetchErr := errors.New("sheet unavailable")
	service := NewDashboardService(&fakeFetcher{
		tables: testTables(),
		errs:   map[string]error{"Payments": fetchErr},
	}, testConfig())

	err := service.Load(context.Background())

	assert.Error(t, err)
	assert.True(t, errors.Is(err, fetchErr))

	// No partial data may leak into snapshots.
	assert.False(t, service.Loaded())
	_, err = service.Snapshot(&models.User{Name: "Alice", Role: "admin"})
	appErr, ok := err.(*utils.AppError)
	assert.True(t, ok)
	assert.Equal(t, 503, appErr.Code)
}

func TestDashboardService_FailedReloadKeepsPreviousData(t *testing.T) {
	fetcher := &fakeFetcher{tables: testTables()}
	service := NewDashboardService(fetcher, testConfig())
	assert.NoError(t, service.Load(context.Background()))

	fetcher.errs = map[string]error{"Expenses": errors.New("boom")}
	assert.Error(t, service.Load(context.Background()))

	// The earlier successful load still serves.
	snapshot, err := service.Snapshot(&models.User{Name: "Bob", Role: "member"})
	assert.NoError(t, err)
	assert.Len(t, snapshot.Expenses, 2)
}

func TestDashboardService_UsersBeforeLoad(t *testing.T) {
	service := NewDashboardService(&fakeFetcher{tables: testTables()}, testConfig())

	_, err := service.Users()

	assert.Error(t, err)
}

func TestDashboardService_ReconciliationNote(t *testing.T) {
	tables := testTables()
	tables["Trip"] = sheetTable(
		sheetRow("trip_name", "Chikmagalur"),
		sheetRow("total_cost", float64(5000)),
		sheetRow("per_head", float64(1000)),
	)
	service := NewDashboardService(&fakeFetcher{tables: tables}, testConfig())
	assert.NoError(t, service.Load(context.Background()))

	snapshot, err := service.Snapshot(&models.User{Name: "Bob", Role: "member"})

	assert.NoError(t, err)
	assert.NotNil(t, snapshot.Reconciliation)
	assert.Equal(t, float64(5000), snapshot.Reconciliation.PlannedTotal)
	assert.Equal(t, float64(2000), snapshot.Reconciliation.BreakdownTotal)
	assert.Equal(t, float64(3000), snapshot.Reconciliation.Difference)
}
