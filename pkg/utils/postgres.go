package utils

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"
)

// PostgresPoolConfig controls database/sql pool behavior.
// Keep it config-driven; defaults should be safe and conservative.
type PostgresPoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	PingTimeout     time.Duration
}

func (c PostgresPoolConfig) withDefaults() PostgresPoolConfig {
	out := c
	if out.MaxOpenConns <= 0 {
		out.MaxOpenConns = 10
	}
	if out.MaxIdleConns <= 0 || out.MaxIdleConns > out.MaxOpenConns {
		out.MaxIdleConns = out.MaxOpenConns
	}
	if out.ConnMaxLifetime <= 0 {
		out.ConnMaxLifetime = 30 * time.Minute
	}
	if out.ConnMaxIdleTime <= 0 {
		out.ConnMaxIdleTime = 5 * time.Minute
	}
	if out.PingTimeout <= 0 {
		out.PingTimeout = 5 * time.Second
	}
	return out
}

// OpenPostgres opens a Postgres connection using database/sql.
// driverName should typically be "pgx" (pgx stdlib).
// dsn must not be logged; it contains secrets.
func OpenPostgres(ctx context.Context, driverName, dsn string, pool PostgresPoolConfig) (*sql.DB, error) {
	pool = pool.withDefaults()

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	if err := HealthCheck(ctx, db, pool.PingTimeout); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// HealthCheck pings the DB with a timeout.
func HealthCheck(ctx context.Context, db *sql.DB, timeout time.Duration) error {
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("db ping failed: %w", err)
	}
	return nil
}

// ErrPostgresClosed is returned by LazyPostgres.DB after Close.
var ErrPostgresClosed = errors.New("postgres handle closed")

// LazyPostgres owns a pool that is opened on first use and then reused for the
// lifetime of the process. Concurrent callers share one open attempt, and each caller
// stops waiting when its own ctx is done. A failed open is not cached; the next caller
// retries. Safe for concurrent use.
type LazyPostgres struct {
	driverName string
	dsn        string
	pool       PostgresPoolConfig

	// open is swappable for tests.
	open func(ctx context.Context, driverName, dsn string, pool PostgresPoolConfig) (*sql.DB, error)

	mu       sync.Mutex
	db       *sql.DB
	inflight *openAttempt
	closed   bool
}

// openAttempt is one shared open; done is closed once db/err are set.
type openAttempt struct {
	done chan struct{}
	db   *sql.DB
	err  error
}

func NewLazyPostgres(driverName, dsn string, pool PostgresPoolConfig) *LazyPostgres {
	return &LazyPostgres{driverName: driverName, dsn: dsn, pool: pool, open: OpenPostgres}
}

// DB returns the shared pool, opening it if needed.
func (l *LazyPostgres) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil, ErrPostgresClosed
	}
	if l.db != nil {
		db := l.db
		l.mu.Unlock()
		return db, nil
	}
	a := l.inflight
	if a == nil {
		a = &openAttempt{done: make(chan struct{})}
		l.inflight = a
		// The attempt outlives the caller that started it; the ping timeout bounds it.
		go l.runOpen(context.WithoutCancel(ctx), a)
	}
	l.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("open postgres: %w", ctx.Err())
	case <-a.done:
	}
	if a.err != nil {
		if errors.Is(a.err, ErrPostgresClosed) {
			return nil, a.err
		}
		return nil, fmt.Errorf("open postgres: %w", a.err)
	}
	return a.db, nil
}

func (l *LazyPostgres) runOpen(ctx context.Context, a *openAttempt) {
	db, err := l.open(ctx, l.driverName, l.dsn, l.pool)

	l.mu.Lock()
	l.inflight = nil
	switch {
	case err != nil:
	case l.closed:
		_ = db.Close()
		db, err = nil, ErrPostgresClosed
	default:
		l.db = db
	}
	a.db, a.err = db, err
	l.mu.Unlock()
	close(a.done)
}

// Opened reports whether the pool has been created.
func (l *LazyPostgres) Opened() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Close releases the pool. Teardown belongs to the hosting process.
func (l *LazyPostgres) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}
