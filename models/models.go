// models/models.go
package models

// User represents a trip member from the Users sheet
type User struct {
	Name     string `json:"name"`
	Password string `json:"-"`
	Role     string `json:"role"`
}

// Payment represents one payment row from the Payments sheet.
// Multiple rows for the same name are retained; derivation sums them.
type Payment struct {
	Name string  `json:"name"`
	Paid float64 `json:"paid"`
}

// TripInfo holds the trip metadata with an explicit typed schema,
// validated once at normalization time. Keys the schema does not know
// about are kept in Extra as strings.
type TripInfo struct {
	TripName  string            `json:"tripName"`
	TotalCost float64           `json:"totalCost"`
	PerHead   float64           `json:"perHead"`
	StartDate string            `json:"startDate"`
	Days      float64           `json:"days,omitempty"`
	Extra     map[string]string `json:"extra,omitempty"`
}

// Expense represents a validated expense row
type Expense struct {
	Category string  `json:"category"`
	Cost     float64 `json:"cost"`
	Date     string  `json:"date"`
	Notes    string  `json:"notes"`
}

// TimeLeft is the countdown to the trip start, recomputed on each read
type TimeLeft struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	IsPast  bool `json:"isPast"`
}

// MemberStatus is one member's payment standing for the tracker view
type MemberStatus struct {
	Name      string  `json:"name"`
	Paid      float64 `json:"paid"`
	Status    string  `json:"status"`
	AmountDue float64 `json:"amountDue"`
	IsCurrent bool    `json:"isCurrent,omitempty"`
}

// ReconciliationNote flags a mismatch between the planned trip cost and
// the summed expense breakdown. Informational only, never fatal.
type ReconciliationNote struct {
	PlannedTotal   float64 `json:"plannedTotal"`
	BreakdownTotal float64 `json:"breakdownTotal"`
	Difference     float64 `json:"difference"`
}

// DashboardSnapshot is the read-only view handed to the UI layer.
// All derived fields are recomputed from the normalized tables on
// every request, never cached.
type DashboardSnapshot struct {
	Trip           TripInfo            `json:"trip"`
	Countdown      TimeLeft            `json:"countdown"`
	PerHead        float64             `json:"perHead"`
	MemberCount    int                 `json:"memberCount"`
	MyPaid         float64             `json:"myPaid"`
	MyStatus       string              `json:"myStatus"`
	AmountDue      float64             `json:"amountDue"`
	Expenses       []Expense           `json:"expenses"`
	TotalExpenses  float64             `json:"totalExpenses"`
	PerMemberSplit float64             `json:"perMemberSplit"`
	Members        []MemberStatus      `json:"members,omitempty"`
	Reconciliation *ReconciliationNote `json:"reconciliation,omitempty"`
}

// LoginRequest request model
type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse response model
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
