package dashboard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrStoreNotConfigured marks the mock-mode selector: no connection string was given.
// It is not a failure.
var ErrStoreNotConfigured = errors.New("dashboard: store not configured")

// JobRow is a jobs row joined to its customer. Nullable columns stay nullable here;
// defaults are applied when mapping.
type JobRow struct {
	ID           string
	Title        sql.NullString
	Date         sql.NullTime
	Status       sql.NullString
	ClientName   sql.NullString
	CleaningTeam []string
	Booked       sql.NullBool
	Paid         sql.NullBool
	// Price arrives as NUMERIC text and is parsed leniently.
	Price       sql.NullString
	PhoneNumber sql.NullString
}

// CallRow is a calls row joined to its customer.
type CallRow struct {
	ID              string
	PhoneNumber     sql.NullString
	CallerName      sql.NullString
	Date            sql.NullTime
	DurationSeconds sql.NullInt64
	AudioURL        sql.NullString
	Transcript      sql.NullString
	Outcome         sql.NullString
}

// MessageRow is a messages row joined to its customer.
type MessageRow struct {
	PhoneNumber sql.NullString
	CallerName  sql.NullString
	Role        sql.NullString
	Content     sql.NullString
	Timestamp   sql.NullTime
}

// Store is the read contract against the backing store. Implementations return rows
// in the order the dashboard expects: jobs and calls newest first, messages oldest first.
type Store interface {
	ListJobs(ctx context.Context) ([]JobRow, error)
	ListCalls(ctx context.Context) ([]CallRow, error)
	ListMessages(ctx context.Context) ([]MessageRow, error)
}

// loadLive runs the three reads sequentially and builds a live snapshot.
// It is all-or-nothing: any error discards everything read so far.
func loadLive(ctx context.Context, store Store) (Data, error) {
	if store == nil {
		return Data{}, ErrStoreNotConfigured
	}

	jobRows, err := store.ListJobs(ctx)
	if err != nil {
		return Data{}, fmt.Errorf("list jobs: %w", err)
	}
	callRows, err := store.ListCalls(ctx)
	if err != nil {
		return Data{}, fmt.Errorf("list calls: %w", err)
	}
	messageRows, err := store.ListMessages(ctx)
	if err != nil {
		return Data{}, fmt.Errorf("list messages: %w", err)
	}

	jobs := make([]Job, 0, len(jobRows))
	for _, r := range jobRows {
		jobs = append(jobs, mapJob(r))
	}
	calls := make([]Call, 0, len(callRows))
	for _, r := range callRows {
		calls = append(calls, mapCall(r))
	}
	messages := make([]PhoneMessage, 0, len(messageRows))
	for _, r := range messageRows {
		messages = append(messages, mapMessage(r))
	}

	booked := countBooked(jobs)
	return Data{
		JobsBooked:        booked,
		QuotesSent:        booked,
		CleanersScheduled: countPaid(jobs),
		CallsAnswered:     len(calls),
		Jobs:              jobs,
		Calls:             calls,
		Profiles:          BuildProfiles(calls, messages),
		IsLiveData:        true,
	}, nil
}

func mapJob(r JobRow) Job {
	team := r.CleaningTeam
	if team == nil {
		team = make([]string, 0)
	}
	return Job{
		ID:           r.ID,
		Title:        r.Title.String,
		Date:         formatDate(r.Date),
		Status:       JobStatus(r.Status.String),
		Client:       r.ClientName.String,
		CleaningTeam: team,
		// call duration is not stored per job
		CallDurationSeconds: 0,
		Booked:              r.Booked.Bool,
		Paid:                r.Paid.Bool,
		Price:               parsePrice(r.Price),
		PhoneNumber:         r.PhoneNumber.String,
	}
}

func mapCall(r CallRow) Call {
	return Call{
		ID:              r.ID,
		PhoneNumber:     r.PhoneNumber.String,
		CallerName:      r.CallerName.String,
		Date:            formatTimestamp(r.Date),
		DurationSeconds: int(r.DurationSeconds.Int64),
		AudioURL:        r.AudioURL.String,
		Transcript:      r.Transcript.String,
		Outcome:         CallOutcome(r.Outcome.String),
	}
}

func mapMessage(r MessageRow) PhoneMessage {
	return PhoneMessage{
		PhoneNumber: r.PhoneNumber.String,
		Message: Message{
			Role:      MessageRole(r.Role.String),
			Content:   r.Content.String,
			Timestamp: formatTimestamp(r.Timestamp),
		},
	}
}

// parsePrice returns 0 for null, non-numeric or non-finite values.
func parsePrice(v sql.NullString) float64 {
	if !v.Valid {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.String), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

func formatDate(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.UTC().Format(time.DateOnly)
}

func formatTimestamp(t sql.NullTime) string {
	if !t.Valid {
		return ""
	}
	return t.Time.UTC().Format(time.RFC3339)
}
