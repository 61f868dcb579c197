package dashboard

// Records below are read-only projections. JSON names are the dashboard frontend's
// contract, so they stay camelCase.

type JobStatus string

const (
	JobStatusScheduled JobStatus = "scheduled"
	JobStatusCompleted JobStatus = "completed"
	JobStatusCancelled JobStatus = "cancelled"
)

// Job is a booked or quoted cleaning job. PhoneNumber joins it to calls and messages.
type Job struct {
	ID                  string    `json:"id"`
	Title               string    `json:"title"`
	Date                string    `json:"date"`
	Status              JobStatus `json:"status"`
	Client              string    `json:"client"`
	CleaningTeam        []string  `json:"cleaningTeam"`
	CallDurationSeconds int       `json:"callDurationSeconds"`
	Booked              bool      `json:"booked"`
	Paid                bool      `json:"paid"`
	Price               float64   `json:"price"`
	PhoneNumber         string    `json:"phoneNumber"`

	InvoiceSent    *bool  `json:"invoiceSent,omitempty"`
	InvoiceDate    string `json:"invoiceDate,omitempty"`
	PaymentDate    string `json:"paymentDate,omitempty"`
	ReviewReceived *bool  `json:"reviewReceived,omitempty"`
	ReviewRating   *int   `json:"reviewRating,omitempty"`
	ReviewText     string `json:"reviewText,omitempty"`
}

type CallOutcome string

const (
	CallOutcomeBooked    CallOutcome = "booked"
	CallOutcomeNotBooked CallOutcome = "not_booked"
	CallOutcomeVoicemail CallOutcome = "voicemail"
)

// Call is an answered inbound call.
type Call struct {
	ID              string      `json:"id"`
	PhoneNumber     string      `json:"phoneNumber"`
	CallerName      string      `json:"callerName"`
	Date            string      `json:"date"`
	DurationSeconds int         `json:"durationSeconds"`
	AudioURL        string      `json:"audioUrl,omitempty"`
	Transcript      string      `json:"transcript,omitempty"`
	Outcome         CallOutcome `json:"outcome,omitempty"`
}

type MessageRole string

const (
	RoleClient   MessageRole = "client"
	RoleBusiness MessageRole = "business"
	RoleBot      MessageRole = "bot"
)

// Message is one line of a text conversation. It has no identifier; order is by timestamp.
type Message struct {
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp string      `json:"timestamp"`
}

// CallerProfile aggregates calls and messages for one phone number.
//
// Invariants (live path):
// - TotalCalls == len(Calls)
// - LastCallDate is the latest Call.Date
type CallerProfile struct {
	PhoneNumber  string    `json:"phoneNumber"`
	CallerName   string    `json:"callerName"`
	TotalCalls   int       `json:"totalCalls"`
	Messages     []Message `json:"messages"`
	LastCallDate string    `json:"lastCallDate"`
	Calls        []Call    `json:"calls"`
}

// Data is the full payload served to the dashboard.
type Data struct {
	JobsBooked        int             `json:"jobsBooked"`
	QuotesSent        int             `json:"quotesSent"`
	CleanersScheduled int             `json:"cleanersScheduled"`
	CallsAnswered     int             `json:"callsAnswered"`
	Jobs              []Job           `json:"jobs"`
	Calls             []Call          `json:"calls"`
	Profiles          []CallerProfile `json:"profiles"`
	IsLiveData        bool            `json:"isLiveData"`
}

func countBooked(jobs []Job) int {
	n := 0
	for _, j := range jobs {
		if j.Booked {
			n++
		}
	}
	return n
}

func countPaid(jobs []Job) int {
	n := 0
	for _, j := range jobs {
		if j.Paid {
			n++
		}
	}
	return n
}
