// services/dashboard_service.go
package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/fadhlanhapp/tripdash-backend/config"
	"github.com/fadhlanhapp/tripdash-backend/models"
	"github.com/fadhlanhapp/tripdash-backend/utils"
)

// TableFetcher retrieves one logical table from the external source
type TableFetcher interface {
	FetchTable(ctx context.Context, sheet string) (*models.SheetTable, error)
}

// tripData holds the four normalized tables from one successful load
type tripData struct {
	Users    []models.User
	Payments []models.Payment
	Trip     models.TripInfo
	Expenses []models.Expense
}

// DashboardService owns the normalized tables. Load replaces the data
// atomically; snapshots are pure reads over it. If any of the four
// tables fails to load, the previous data is kept and the load error is
// surfaced; no aggregate is ever derived from partial tables.
type DashboardService struct {
	fetcher TableFetcher
	derive  *DerivationService

	usersSheet    string
	paymentsSheet string
	tripSheet     string
	expensesSheet string

	mu   sync.RWMutex
	data *tripData
}

// NewDashboardService creates a dashboard service for the configured sheets
func NewDashboardService(fetcher TableFetcher, cfg *config.Config) *DashboardService {
	return &DashboardService{
		fetcher:       fetcher,
		derive:        NewDerivationService(),
		usersSheet:    cfg.UsersSheet,
		paymentsSheet: cfg.PaymentsSheet,
		tripSheet:     cfg.TripSheet,
		expensesSheet: cfg.ExpensesSheet,
	}
}

// Load fetches all four tables concurrently and normalizes them. A
// failure of any single table cancels the remaining fetches and fails
// the whole load.
func (s *DashboardService) Load(ctx context.Context) error {
	var users, payments, trip, expenses *models.SheetTable

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		users, err = s.fetcher.FetchTable(gctx, s.usersSheet)
		return err
	})
	g.Go(func() (err error) {
		payments, err = s.fetcher.FetchTable(gctx, s.paymentsSheet)
		return err
	})
	g.Go(func() (err error) {
		trip, err = s.fetcher.FetchTable(gctx, s.tripSheet)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.fetcher.FetchTable(gctx, s.expensesSheet)
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("dashboard load failed: %w", err)
	}

	data := &tripData{
		Users:    NormalizeUsers(users),
		Payments: NormalizePayments(payments),
		Trip:     NormalizeTripInfo(trip),
		Expenses: NormalizeExpenses(expenses),
	}

	s.mu.Lock()
	s.data = data
	s.mu.Unlock()

	log.Printf("Dashboard loaded: %d users, %d payments, %d expenses",
		len(data.Users), len(data.Payments), len(data.Expenses))

	return nil
}

// Loaded reports whether a full load has completed
func (s *DashboardService) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data != nil
}

// Users returns the normalized user records for authentication
func (s *DashboardService) Users() ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, utils.NewUnavailableError(utils.ErrDashboardUnavailable)
	}

	return s.data.Users, nil
}

// Snapshot derives the dashboard view for the given user. The member
// tracker is included only for admins, matching what the UI shows.
func (s *DashboardService) Snapshot(current *models.User) (*models.DashboardSnapshot, error) {
	return s.snapshotAt(current, time.Now())
}

func (s *DashboardService) snapshotAt(current *models.User, now time.Time) (*models.DashboardSnapshot, error) {
	s.mu.RLock()
	data := s.data
	s.mu.RUnlock()

	if data == nil {
		return nil, utils.NewUnavailableError(utils.ErrDashboardUnavailable)
	}

	perHead := data.Trip.PerHead
	myPaid := s.derive.PaidBy(current.Name, data.Payments)
	totalExpenses := s.derive.TotalExpenses(data.Expenses)
	memberCount := len(data.Users)

	snapshot := &models.DashboardSnapshot{
		Trip:           data.Trip,
		Countdown:      s.derive.TimeRemaining(s.derive.TripStart(data.Trip), now),
		PerHead:        perHead,
		MemberCount:    memberCount,
		MyPaid:         myPaid,
		MyStatus:       s.derive.StatusOf(myPaid, perHead),
		AmountDue:      s.derive.AmountDue(myPaid, perHead),
		Expenses:       data.Expenses,
		TotalExpenses:  totalExpenses,
		PerMemberSplit: s.derive.PerMemberSplit(totalExpenses, memberCount),
		Reconciliation: s.derive.Reconcile(data.Trip.TotalCost, totalExpenses),
	}

	if current.Role == utils.RoleAdmin {
		snapshot.Members = s.derive.MemberStatuses(data.Payments, perHead, current)
	}

	return snapshot, nil
}
