// services/derivation_service.go
package services

import (
	"sort"
	"time"

	"github.com/fadhlanhapp/tripdash-backend/models"
	"github.com/fadhlanhapp/tripdash-backend/utils"
)

// startDateLayouts are the formats a sheet start_date cell may carry
var startDateLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/2006 15:04",
	"1/2/2006",
}

// DerivationService computes presentation-ready values from the
// normalized tables. All methods are pure; nothing is cached.
type DerivationService struct{}

// NewDerivationService creates a new derivation service
func NewDerivationService() *DerivationService {
	return &DerivationService{}
}

// StatusOf classifies a paid amount against the per-head contribution.
// Exact equality counts as Paid.
func (s *DerivationService) StatusOf(paid, perHead float64) string {
	switch {
	case paid >= perHead:
		return utils.StatusPaid
	case paid > 0:
		return utils.StatusPartial
	default:
		return utils.StatusPending
	}
}

// AmountDue returns the outstanding contribution, never negative
func (s *DerivationService) AmountDue(paid, perHead float64) float64 {
	return utils.Round(utils.Max(0, perHead-paid))
}

// PaidBy sums all payment rows recorded for a name. Multiple partial
// payments by the same person accumulate.
func (s *DerivationService) PaidBy(name string, payments []models.Payment) float64 {
	var total float64
	for _, p := range payments {
		if p.Name == name {
			total += p.Paid
		}
	}
	return total
}

// TotalExpenses sums the validated expense breakdown
func (s *DerivationService) TotalExpenses(expenses []models.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Cost
	}
	return utils.Round(total)
}

// PerMemberSplit divides the expense total among members. A zero
// member count divides by one so the result stays finite.
func (s *DerivationService) PerMemberSplit(totalExpenses float64, memberCount int) float64 {
	if memberCount < 1 {
		memberCount = 1
	}
	return utils.Round(totalExpenses / float64(memberCount))
}

// TimeRemaining decomposes the delta to the trip start into whole
// days/hours/minutes/seconds. A start at or before now clamps to zeros
// with IsPast set.
func (s *DerivationService) TimeRemaining(start, now time.Time) models.TimeLeft {
	distance := start.Sub(now)
	if distance <= 0 {
		return models.TimeLeft{IsPast: true}
	}

	totalSeconds := int(distance / time.Second)
	return models.TimeLeft{
		Days:    totalSeconds / 86400,
		Hours:   totalSeconds % 86400 / 3600,
		Minutes: totalSeconds % 3600 / 60,
		Seconds: totalSeconds % 60,
	}
}

// TripStart parses the start_date from trip info, trying the known
// layouts in order. An unparseable value falls back to the default
// start date so the countdown still renders.
func (s *DerivationService) TripStart(info models.TripInfo) time.Time {
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, info.StartDate); err == nil {
			return t
		}
	}

	t, _ := time.Parse("2006-01-02", utils.DefaultStartDate)
	return t
}

// MemberStatuses builds the payment tracker: one entry per distinct
// payer, duplicate payment rows summed, first-seen order preserved and
// the current user's entry sorted to the front.
func (s *DerivationService) MemberStatuses(payments []models.Payment, perHead float64, current *models.User) []models.MemberStatus {
	totals := make(map[string]float64)
	order := make([]string, 0, len(payments))

	for _, p := range payments {
		if _, seen := totals[p.Name]; !seen {
			order = append(order, p.Name)
		}
		totals[p.Name] += p.Paid
	}

	members := make([]models.MemberStatus, 0, len(order))
	for _, name := range order {
		paid := totals[name]
		members = append(members, models.MemberStatus{
			Name:      name,
			Paid:      paid,
			Status:    s.StatusOf(paid, perHead),
			AmountDue: s.AmountDue(paid, perHead),
			IsCurrent: current != nil && name == current.Name,
		})
	}

	sort.SliceStable(members, func(i, j int) bool {
		return members[i].IsCurrent && !members[j].IsCurrent
	})

	return members
}

// Reconcile compares the planned trip total with the summed expense
// breakdown. A mismatch is reported as a note, never an error; the two
// figures legitimately diverge while expenses are still being logged.
func (s *DerivationService) Reconcile(plannedTotal, breakdownTotal float64) *models.ReconciliationNote {
	diff := utils.Round(plannedTotal - breakdownTotal)
	if plannedTotal <= 0 || diff == 0 {
		return nil
	}

	return &models.ReconciliationNote{
		PlannedTotal:   plannedTotal,
		BreakdownTotal: breakdownTotal,
		Difference:     diff,
	}
}
