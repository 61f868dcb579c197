package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"osiris-dashboard/internal/audit"
	"osiris-dashboard/pkg/logger"
)

const (
	DefaultHourlyRate = 25
	DefaultCostPerJob = 50
)

var (
	ErrNotConfigured   = errors.New("settings: store not configured")
	ErrInvalidArgument = errors.New("settings: invalid argument")
)

// Settings is the single business-settings row.
type Settings struct {
	SpreadsheetID string  `json:"spreadsheetId"`
	HourlyRate    float64 `json:"hourlyRate"`
	CostPerJob    float64 `json:"costPerJob"`
}

// Defaults are served when nothing is stored.
func Defaults() Settings {
	return Settings{HourlyRate: DefaultHourlyRate, CostPerJob: DefaultCostPerJob}
}

// Row is the stored shape; numeric columns arrive as text.
type Row struct {
	SpreadsheetID sql.NullString
	HourlyRate    sql.NullString
	CostPerJob    sql.NullString
}

// Repository persists the settings row. Load returns found=false on an empty table.
type Repository interface {
	LoadSettings(ctx context.Context) (row Row, found bool, err error)
	UpsertSettings(ctx context.Context, s Settings) error
}

// Service reads and writes settings. Saves are recorded in the audit log on a
// best-effort basis.
type Service struct {
	repo  Repository
	audit *audit.Service
}

// NewService returns a Service. A nil repo selects mock mode; auditSvc may be nil.
func NewService(repo Repository, auditSvc *audit.Service) *Service {
	return &Service{repo: repo, audit: auditSvc}
}

// Get returns the stored settings with defaults applied to missing or zero numbers.
func (s *Service) Get(ctx context.Context) (Settings, bool, error) {
	if s.repo == nil {
		return Settings{}, false, ErrNotConfigured
	}
	row, found, err := s.repo.LoadSettings(ctx)
	if err != nil {
		return Settings{}, false, fmt.Errorf("load settings: %w", err)
	}
	if !found {
		return Settings{}, false, nil
	}
	return fromRow(row), true, nil
}

// Save validates and upserts the settings row. actor and ip describe the caller for
// the audit event and may be empty.
func (s *Service) Save(ctx context.Context, in Settings, actor, ip string) error {
	if s.repo == nil {
		return ErrNotConfigured
	}
	if err := Validate(in); err != nil {
		return err
	}
	in.SpreadsheetID = strings.TrimSpace(in.SpreadsheetID)

	if err := s.repo.UpsertSettings(ctx, in); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	if s.audit != nil {
		meta, _ := json.Marshal(in)
		if err := s.audit.LogSettingsChange(ctx, actor, ip, string(meta)); err != nil {
			logger.From(ctx).Warn("settings audit append failed", "err", err)
		}
	}
	return nil
}

// Validate rejects negative or non-finite numbers.
func Validate(in Settings) error {
	for _, v := range []float64{in.HourlyRate, in.CostPerJob} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return ErrInvalidArgument
		}
	}
	return nil
}

func fromRow(r Row) Settings {
	return Settings{
		SpreadsheetID: r.SpreadsheetID.String,
		HourlyRate:    numberOr(r.HourlyRate, DefaultHourlyRate),
		CostPerJob:    numberOr(r.CostPerJob, DefaultCostPerJob),
	}
}

// numberOr parses v, falling back to def for null, unparseable or zero values.
func numberOr(v sql.NullString, def float64) float64 {
	if !v.Valid {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.String), 64)
	if err != nil || f == 0 || math.IsNaN(f) {
		return def
	}
	return f
}
