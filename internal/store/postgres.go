// Package store implements the dashboard, settings and audit repositories on Postgres.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"osiris-dashboard/internal/audit"
	"osiris-dashboard/internal/dashboard"
	"osiris-dashboard/internal/settings"
	"osiris-dashboard/pkg/utils"

	"github.com/jackc/pgx/v5/pgtype"
)

// NOTE: This store assumes the following tables exist:
// - customers (id, name, phone_number)
// - jobs (id, customer_id, title, date, status, cleaning_team text[], booked, paid, price numeric)
// - calls (id, customer_id, date, duration_seconds, audio_url, transcript, outcome)
// - messages (customer_id, role, content, timestamp)
// - settings (id, spreadsheet_id, hourly_rate, cost_per_job, updated_at), single row id = 1
// - audit_events (id, type, actor, ip_address, message, metadata, created_at), INSERT only

// Postgres reads and writes through a lazily opened, process-wide pool.
type Postgres struct {
	pool *utils.LazyPostgres
}

func NewPostgres(pool *utils.LazyPostgres) *Postgres {
	return &Postgres{pool: pool}
}

var (
	_ dashboard.Store     = (*Postgres)(nil)
	_ settings.Repository = (*Postgres)(nil)
	_ audit.Repository    = (*Postgres)(nil)
)

// Ping checks connectivity, opening the pool if needed.
func (p *Postgres) Ping(ctx context.Context) error {
	db, err := p.pool.DB(ctx)
	if err != nil {
		return err
	}
	return utils.HealthCheck(ctx, db, 2*time.Second)
}

func (p *Postgres) ListJobs(ctx context.Context) ([]dashboard.JobRow, error) {
	const q = `
SELECT j.id::text, j.title, j.date, j.status, c.name AS client_name,
       j.cleaning_team, j.booked, j.paid, j.price::text, c.phone_number
FROM jobs j
JOIN customers c ON j.customer_id = c.id
ORDER BY j.date DESC
`
	db, err := p.pool.DB(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("jobs query: %w", err)
	}
	defer rows.Close()

	// text[] has no database/sql mapping; pgtype decodes it.
	types := pgtype.NewMap()
	out := make([]dashboard.JobRow, 0)
	for rows.Next() {
		var r dashboard.JobRow
		if err := rows.Scan(
			&r.ID,
			&r.Title,
			&r.Date,
			&r.Status,
			&r.ClientName,
			types.SQLScanner(&r.CleaningTeam),
			&r.Booked,
			&r.Paid,
			&r.Price,
			&r.PhoneNumber,
		); err != nil {
			return nil, fmt.Errorf("jobs scan: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("jobs rows: %w", err)
	}
	return out, nil
}

func (p *Postgres) ListCalls(ctx context.Context) ([]dashboard.CallRow, error) {
	const q = `
SELECT cl.id::text, c.phone_number, c.name AS caller_name, cl.date,
       cl.duration_seconds, cl.audio_url, cl.transcript, cl.outcome
FROM calls cl
JOIN customers c ON cl.customer_id = c.id
ORDER BY cl.date DESC
`
	db, err := p.pool.DB(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("calls query: %w", err)
	}
	defer rows.Close()

	out := make([]dashboard.CallRow, 0)
	for rows.Next() {
		var r dashboard.CallRow
		if err := rows.Scan(
			&r.ID,
			&r.PhoneNumber,
			&r.CallerName,
			&r.Date,
			&r.DurationSeconds,
			&r.AudioURL,
			&r.Transcript,
			&r.Outcome,
		); err != nil {
			return nil, fmt.Errorf("calls scan: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("calls rows: %w", err)
	}
	return out, nil
}

func (p *Postgres) ListMessages(ctx context.Context) ([]dashboard.MessageRow, error) {
	const q = `
SELECT c.phone_number, c.name AS caller_name, m.role, m.content, m.timestamp
FROM messages m
JOIN customers c ON m.customer_id = c.id
ORDER BY m.timestamp ASC
`
	db, err := p.pool.DB(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("messages query: %w", err)
	}
	defer rows.Close()

	out := make([]dashboard.MessageRow, 0)
	for rows.Next() {
		var r dashboard.MessageRow
		if err := rows.Scan(
			&r.PhoneNumber,
			&r.CallerName,
			&r.Role,
			&r.Content,
			&r.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("messages scan: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("messages rows: %w", err)
	}
	return out, nil
}

func (p *Postgres) LoadSettings(ctx context.Context) (settings.Row, bool, error) {
	const q = `
SELECT spreadsheet_id, hourly_rate::text, cost_per_job::text
FROM settings
LIMIT 1
`
	db, err := p.pool.DB(ctx)
	if err != nil {
		return settings.Row{}, false, err
	}
	var r settings.Row
	if err := db.QueryRowContext(ctx, q).Scan(&r.SpreadsheetID, &r.HourlyRate, &r.CostPerJob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return settings.Row{}, false, nil
		}
		return settings.Row{}, false, err
	}
	return r, true, nil
}

func (p *Postgres) UpsertSettings(ctx context.Context, s settings.Settings) error {
	const q = `
INSERT INTO settings (id, spreadsheet_id, hourly_rate, cost_per_job)
VALUES (1, $1, $2, $3)
ON CONFLICT (id) DO UPDATE SET
  spreadsheet_id = EXCLUDED.spreadsheet_id,
  hourly_rate = EXCLUDED.hourly_rate,
  cost_per_job = EXCLUDED.cost_per_job,
  updated_at = NOW()
`
	db, err := p.pool.DB(ctx)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, q, s.SpreadsheetID, s.HourlyRate, s.CostPerJob)
	return err
}

func (p *Postgres) Append(ctx context.Context, e audit.Event) error {
	const q = `
INSERT INTO audit_events (id, type, actor, ip_address, message, metadata, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
`
	db, err := p.pool.DB(ctx)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, q,
		e.ID,
		e.Type,
		e.Actor,
		e.IPAddress,
		e.Message,
		e.Metadata,
		e.CreatedAt,
	)
	return err
}
