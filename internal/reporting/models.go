package reporting

import "osiris-dashboard/internal/dashboard"

// ROISummary is the return-on-investment view derived from one dashboard snapshot.
type ROISummary struct {
	TotalRevenue   float64         `json:"totalRevenue"`
	BookedJobs     int             `json:"bookedJobs"`
	CompletedJobs  int             `json:"completedJobs"`
	PlatformCost   float64         `json:"platformCost"`
	NetGain        float64         `json:"netGain"`
	Multiplier     float64         `json:"multiplier"`
	TimeSavedHours float64         `json:"timeSavedHours"`
	CloseRate      float64         `json:"closeRate"`
	RecentActivity []dashboard.Job `json:"recentActivity"`
	IsLiveData     bool            `json:"isLiveData"`
}

// ClientSummary is the per-client portal view, keyed by phone number.
type ClientSummary struct {
	PhoneNumber string                   `json:"phoneNumber"`
	Name        string                   `json:"name"`
	Jobs        []dashboard.Job          `json:"jobs"`
	Calls       []dashboard.Call         `json:"calls"`
	Profile     *dashboard.CallerProfile `json:"profile,omitempty"`

	Revenue     float64 `json:"revenue"`
	PaidRevenue float64 `json:"paidRevenue"`
	Invoices    int     `json:"invoices"`
	Payments    int     `json:"payments"`
	Reviews     int     `json:"reviews"`

	IsLiveData bool `json:"isLiveData"`
}
