// Package app assembles the services shared by the API server and the CLI.
package app

import (
	"context"
	"log/slog"

	"osiris-dashboard/internal/audit"
	"osiris-dashboard/internal/config"
	"osiris-dashboard/internal/dashboard"
	"osiris-dashboard/internal/httpapi"
	"osiris-dashboard/internal/settings"
	"osiris-dashboard/internal/stats"
	"osiris-dashboard/internal/store"
	"osiris-dashboard/pkg/utils"

	"github.com/redis/go-redis/v9"
)

// DriverName is the database/sql driver registered by pgx/v5/stdlib.
const DriverName = "pgx"

// App holds the wired services. Close releases the pool and Redis client.
type App struct {
	Dashboard *dashboard.Service
	Settings  *settings.Service
	Stats     stats.Recorder

	pool  *utils.LazyPostgres
	store *store.Postgres
	rdb   *redis.Client
}

// New wires services from cfg. No connection is opened to Postgres here; the pool is
// created on first use. Redis is optional and a failed ping downgrades to Nop stats.
func New(ctx context.Context, cfg config.Config, log *slog.Logger) *App {
	a := &App{Stats: stats.Nop{}}

	var (
		dashStore    dashboard.Store
		settingsRepo settings.Repository
		auditRepo    audit.Repository = audit.NewMemoryRepo()
	)
	if cfg.LiveMode() {
		a.pool = utils.NewLazyPostgres(DriverName, cfg.PostgresDSN(), utils.PostgresPoolConfig{
			MaxOpenConns: cfg.DB.MaxOpenConns,
		})
		a.store = store.NewPostgres(a.pool)
		dashStore = a.store
		settingsRepo = a.store
		auditRepo = a.store
	} else {
		log.Info("DATABASE_URL not set, serving mock data")
	}

	a.Dashboard = dashboard.NewService(dashStore)
	a.Settings = settings.NewService(settingsRepo, audit.NewService(auditRepo))

	if cfg.Redis.URL != "" {
		rdb, err := utils.OpenRedis(ctx, utils.RedisConfig{URL: cfg.Redis.URL})
		if err != nil {
			log.Warn("redis unavailable, serve stats disabled", "err", err)
		} else {
			a.rdb = rdb
			a.Stats = stats.NewRedis(rdb)
		}
	}
	return a
}

// Handlers returns the HTTP handlers bound to this App.
func (a *App) Handlers() httpapi.Handlers {
	h := httpapi.Handlers{
		Dashboard: a.Dashboard,
		Settings:  a.Settings,
		Stats:     a.Stats,
	}
	if a.store != nil {
		h.Store = a.store
	}
	return h
}

func (a *App) Close() error {
	var err error
	if a.rdb != nil {
		err = a.rdb.Close()
	}
	if a.pool != nil {
		if perr := a.pool.Close(); perr != nil && err == nil {
			err = perr
		}
	}
	return err
}
