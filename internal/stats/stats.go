// Package stats counts how often the dashboard served live versus mock data.
package stats

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix    = "dashboard:served:"
	keyLastServe = "dashboard:last_served_at"
)

// Counts is the served-mode tally. LastServedAt is zero until something is recorded.
type Counts struct {
	Live         int64     `json:"live"`
	Mock         int64     `json:"mock"`
	LastServedAt time.Time `json:"lastServedAt"`
	Enabled      bool      `json:"enabled"`
}

type Recorder interface {
	Record(ctx context.Context, live bool) error
	Counts(ctx context.Context) (Counts, error)
}

func modeKey(live bool) string {
	if live {
		return keyPrefix + "live"
	}
	return keyPrefix + "mock"
}

// Redis keeps counters in Redis so they survive restarts and are shared by replicas.
type Redis struct {
	rdb   *redis.Client
	clock func() time.Time
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb, clock: time.Now}
}

func (r *Redis) Record(ctx context.Context, live bool) error {
	pipe := r.rdb.TxPipeline()
	pipe.Incr(ctx, modeKey(live))
	pipe.Set(ctx, keyLastServe, r.clock().UTC().Unix(), 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("stats record: %w", err)
	}
	return nil
}

func (r *Redis) Counts(ctx context.Context) (Counts, error) {
	vals, err := r.rdb.MGet(ctx, modeKey(true), modeKey(false), keyLastServe).Result()
	if err != nil {
		return Counts{}, fmt.Errorf("stats counts: %w", err)
	}
	out := Counts{Enabled: true}
	out.Live = toInt(vals[0])
	out.Mock = toInt(vals[1])
	if ts := toInt(vals[2]); ts > 0 {
		out.LastServedAt = time.Unix(ts, 0).UTC()
	}
	return out, nil
}

// toInt reads an MGET slot; missing keys come back as nil.
func toInt(v any) int64 {
	s, ok := v.(string)
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Nop is used when Redis is not configured.
type Nop struct{}

func (Nop) Record(ctx context.Context, live bool) error { return nil }

func (Nop) Counts(ctx context.Context) (Counts, error) { return Counts{}, nil }

// Memory is an in-process recorder used by handler tests.
type Memory struct {
	mu     sync.Mutex
	counts Counts
	clock  func() time.Time
}

func NewMemory() *Memory { return &Memory{clock: time.Now} }

func (m *Memory) Record(ctx context.Context, live bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if live {
		m.counts.Live++
	} else {
		m.counts.Mock++
	}
	m.counts.LastServedAt = m.clock().UTC()
	return nil
}

func (m *Memory) Counts(ctx context.Context) (Counts, error) {
	if err := ctx.Err(); err != nil {
		return Counts{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.counts
	out.Enabled = true
	return out, nil
}
