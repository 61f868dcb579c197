package utils

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestPoolConfigDefaults(t *testing.T) {
	c := PostgresPoolConfig{MaxOpenConns: 4, MaxIdleConns: 40}.withDefaults()
	if c.MaxOpenConns != 4 {
		t.Fatalf("expected max open 4, got %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns != 4 {
		t.Fatalf("expected idle capped to max open, got %d", c.MaxIdleConns)
	}
	if c.PingTimeout != 5*time.Second {
		t.Fatalf("expected default ping timeout, got %s", c.PingTimeout)
	}
}

func TestLazyPostgres_OpensOnceAndReuses(t *testing.T) {
	var mu sync.Mutex
	opens := 0
	shared := &sql.DB{}

	l := NewLazyPostgres("pgx", "postgres://x", PostgresPoolConfig{})
	l.open = func(ctx context.Context, driverName, dsn string, pool PostgresPoolConfig) (*sql.DB, error) {
		mu.Lock()
		opens++
		mu.Unlock()
		return shared, nil
	}

	if l.Opened() {
		t.Fatalf("expected pool to be unopened before first use")
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			db, err := l.DB(context.Background())
			if err != nil || db != shared {
				t.Errorf("unexpected db=%p err=%v", db, err)
			}
		}()
	}
	wg.Wait()

	if opens != 1 {
		t.Fatalf("expected exactly one open, got %d", opens)
	}
	if !l.Opened() {
		t.Fatalf("expected pool to be opened")
	}
}

func TestLazyPostgres_FailedOpenIsRetried(t *testing.T) {
	calls := 0
	l := NewLazyPostgres("pgx", "postgres://x", PostgresPoolConfig{})
	l.open = func(ctx context.Context, driverName, dsn string, pool PostgresPoolConfig) (*sql.DB, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("connection refused")
		}
		return &sql.DB{}, nil
	}

	if _, err := l.DB(context.Background()); err == nil {
		t.Fatalf("expected first open to fail")
	}
	if _, err := l.DB(context.Background()); err != nil {
		t.Fatalf("expected retry to succeed, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected 2 open attempts, got %d", calls)
	}
}

func TestLazyPostgres_ClosedRejects(t *testing.T) {
	l := NewLazyPostgres("pgx", "postgres://x", PostgresPoolConfig{})
	if err := l.Close(); err != nil {
		t.Fatalf("close on unopened pool: %v", err)
	}
	if _, err := l.DB(context.Background()); !errors.Is(err, ErrPostgresClosed) {
		t.Fatalf("expected ErrPostgresClosed, got %v", err)
	}
}

func TestLazyPostgres_SlowFailingOpenIsSharedAndHonoursDeadline(t *testing.T) {
	var mu sync.Mutex
	opens := 0
	l := NewLazyPostgres("pgx", "postgres://x", PostgresPoolConfig{})
	l.open = func(ctx context.Context, driverName, dsn string, pool PostgresPoolConfig) (*sql.DB, error) {
		mu.Lock()
		opens++
		mu.Unlock()
		time.Sleep(200 * time.Millisecond)
		return nil, errors.New("connection refused")
	}

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
			defer cancel()
			if _, err := l.DB(ctx); err == nil {
				t.Errorf("expected open failure")
			}
		}()
	}
	wg.Wait()

	if elapsed := time.Since(start); elapsed > 600*time.Millisecond {
		t.Fatalf("callers were serialized: took %s", elapsed)
	}
	mu.Lock()
	defer mu.Unlock()
	if opens != 1 {
		t.Fatalf("expected concurrent callers to share one attempt, got %d", opens)
	}
}

func TestLazyPostgres_WaiterGivesUpOnDeadline(t *testing.T) {
	release := make(chan struct{})
	l := NewLazyPostgres("pgx", "postgres://x", PostgresPoolConfig{})
	l.open = func(ctx context.Context, driverName, dsn string, pool PostgresPoolConfig) (*sql.DB, error) {
		<-release
		return nil, errors.New("connection refused")
	}
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := l.DB(ctx)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Fatalf("waiter ignored its deadline")
	}
}
