package httpapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"osiris-dashboard/internal/audit"
	"osiris-dashboard/internal/dashboard"
	"osiris-dashboard/internal/settings"
	"osiris-dashboard/internal/stats"

	"github.com/gin-gonic/gin"
)

type emptyStore struct{}

func (emptyStore) ListJobs(ctx context.Context) ([]dashboard.JobRow, error)   { return nil, nil }
func (emptyStore) ListCalls(ctx context.Context) ([]dashboard.CallRow, error) { return nil, nil }
func (emptyStore) ListMessages(ctx context.Context) ([]dashboard.MessageRow, error) {
	return nil, nil
}

type failingStore struct{ emptyStore }

func (failingStore) ListJobs(ctx context.Context) ([]dashboard.JobRow, error) {
	return nil, errors.New("connection refused")
}

type settingsRepo struct {
	row     settings.Row
	found   bool
	loadErr error
	saveErr error
	saved   []settings.Settings
}

func (r *settingsRepo) LoadSettings(ctx context.Context) (settings.Row, bool, error) {
	return r.row, r.found, r.loadErr
}

func (r *settingsRepo) UpsertSettings(ctx context.Context, s settings.Settings) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saved = append(r.saved, s)
	return nil
}

func newRouter(h Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r, h)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
}

func TestHealth_ReportsMode(t *testing.T) {
	w := do(newRouter(Handlers{Dashboard: dashboard.NewService(nil)}), http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"mode":"mock"`) {
		t.Fatalf("unexpected health %d %s", w.Code, w.Body.String())
	}

	w = do(newRouter(Handlers{Dashboard: dashboard.NewService(emptyStore{})}), http.MethodGet, "/healthz", "")
	if !strings.Contains(w.Body.String(), `"mode":"live"`) {
		t.Fatalf("expected live mode, got %s", w.Body.String())
	}
}

func TestDashboard_MockModeAndStats(t *testing.T) {
	rec := stats.NewMemory()
	r := newRouter(Handlers{Dashboard: dashboard.NewService(nil), Stats: rec})

	w := do(r, http.MethodGet, "/v1/dashboard", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got dashboard.Data
	decode(t, w, &got)
	if got.IsLiveData || got.JobsBooked != 20 || got.CallsAnswered != 27 || len(got.Profiles) != 6 {
		t.Fatalf("unexpected mock payload %+v", got)
	}

	c, _ := rec.Counts(context.Background())
	if c.Mock != 1 || c.Live != 0 {
		t.Fatalf("expected one mock serve, got %+v", c)
	}
}

func TestDashboard_StoreFailureStillServes(t *testing.T) {
	rec := stats.NewMemory()
	r := newRouter(Handlers{Dashboard: dashboard.NewService(failingStore{}), Stats: rec})

	w := do(r, http.MethodGet, "/v1/dashboard", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"isLiveData":false`) {
		t.Fatalf("expected mock fallback, got %d %s", w.Code, w.Body.String())
	}

	w = do(newRouter(Handlers{Dashboard: dashboard.NewService(emptyStore{}), Stats: rec}), http.MethodGet, "/v1/dashboard", "")
	if !strings.Contains(w.Body.String(), `"jobs":[]`) || !strings.Contains(w.Body.String(), `"isLiveData":true`) {
		t.Fatalf("expected empty live payload, got %s", w.Body.String())
	}
	c, _ := rec.Counts(context.Background())
	if c.Mock != 1 || c.Live != 1 {
		t.Fatalf("unexpected counts %+v", c)
	}
}

func TestListJobs_FiltersByDate(t *testing.T) {
	r := newRouter(Handlers{Dashboard: dashboard.NewService(nil)})

	w := do(r, http.MethodGet, "/v1/jobs?date=2026-01-05", "")
	var out struct {
		Jobs []dashboard.Job `json:"jobs"`
	}
	decode(t, w, &out)
	if len(out.Jobs) != 1 || out.Jobs[0].ID != "j18" {
		t.Fatalf("unexpected jobs %+v", out.Jobs)
	}

	w = do(r, http.MethodGet, "/v1/jobs", "")
	decode(t, w, &out)
	if len(out.Jobs) != 20 || out.Jobs[0].ID != "j20" {
		t.Fatalf("expected all jobs newest first, got %d first=%s", len(out.Jobs), out.Jobs[0].ID)
	}

	if w := do(r, http.MethodGet, "/v1/jobs?date=01/05/2026", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad date, got %d", w.Code)
	}
}

func TestROIAndClient(t *testing.T) {
	r := newRouter(Handlers{Dashboard: dashboard.NewService(nil)})

	w := do(r, http.MethodGet, "/v1/roi", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"closeRate":74`) {
		t.Fatalf("unexpected roi %d %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodGet, "/v1/clients/3105551234", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"name":"Robert Chen"`) {
		t.Fatalf("unexpected client %d %s", w.Code, w.Body.String())
	}

	if w := do(r, http.MethodGet, "/v1/clients/0000000000", ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestGetSettings_DefaultsAndPersisted(t *testing.T) {
	w := do(newRouter(Handlers{Settings: settings.NewService(nil, nil)}), http.MethodGet, "/v1/settings", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"hourlyRate":25`) || !strings.Contains(w.Body.String(), `"persisted":false`) {
		t.Fatalf("expected defaults, got %d %s", w.Code, w.Body.String())
	}

	failing := &settingsRepo{loadErr: errors.New("down")}
	w = do(newRouter(Handlers{Settings: settings.NewService(failing, nil)}), http.MethodGet, "/v1/settings", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"costPerJob":50`) {
		t.Fatalf("expected defaults on store error, got %d %s", w.Code, w.Body.String())
	}

	stored := &settingsRepo{found: true, row: settings.Row{
		SpreadsheetID: sql.NullString{String: "sheet", Valid: true},
		HourlyRate:    sql.NullString{String: "40", Valid: true},
	}}
	w = do(newRouter(Handlers{Settings: settings.NewService(stored, nil)}), http.MethodGet, "/v1/settings", "")
	var got struct {
		SpreadsheetID string  `json:"spreadsheetId"`
		HourlyRate    float64 `json:"hourlyRate"`
		CostPerJob    float64 `json:"costPerJob"`
		Persisted     bool    `json:"persisted"`
	}
	decode(t, w, &got)
	if got.SpreadsheetID != "sheet" || got.HourlyRate != 40 || got.CostPerJob != 50 || !got.Persisted {
		t.Fatalf("unexpected settings %+v", got)
	}
}

func TestSaveSettings_StatusCodes(t *testing.T) {
	repo := &settingsRepo{}
	auditRepo := audit.NewMemoryRepo()
	r := newRouter(Handlers{Settings: settings.NewService(repo, audit.NewService(auditRepo))})

	if w := do(r, http.MethodPost, "/v1/settings", `{`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad json, got %d", w.Code)
	}
	if w := do(r, http.MethodPost, "/v1/settings", `{"hourlyRate":-5}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative rate, got %d", w.Code)
	}

	w := do(r, http.MethodPost, "/v1/settings", `{"spreadsheetId":" abc ","hourlyRate":30}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
	}
	if len(repo.saved) != 1 || repo.saved[0].SpreadsheetID != "abc" || repo.saved[0].HourlyRate != 30 || repo.saved[0].CostPerJob != 50 {
		t.Fatalf("unexpected saved settings %+v", repo.saved)
	}
	if len(auditRepo.Events()) != 1 {
		t.Fatalf("expected audit event")
	}

	mock := newRouter(Handlers{Settings: settings.NewService(nil, nil)})
	if w := do(mock, http.MethodPost, "/v1/settings", `{"hourlyRate":30}`); w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 in mock mode, got %d", w.Code)
	}

	broken := newRouter(Handlers{Settings: settings.NewService(&settingsRepo{saveErr: errors.New("down")}, nil)})
	if w := do(broken, http.MethodPost, "/v1/settings", `{"hourlyRate":30}`); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 on store failure, got %d", w.Code)
	}
}

func TestStatsAndExport(t *testing.T) {
	rec := stats.NewMemory()
	r := newRouter(Handlers{Dashboard: dashboard.NewService(nil), Stats: rec})

	w := do(r, http.MethodGet, "/v1/export.xlsx", "")
	if w.Code != http.StatusOK || w.Header().Get("Content-Type") != xlsxContentType {
		t.Fatalf("unexpected export response %d %s", w.Code, w.Header().Get("Content-Type"))
	}
	// xlsx is a zip archive
	if !strings.HasPrefix(w.Body.String(), "PK") {
		t.Fatalf("expected zip payload")
	}

	w = do(r, http.MethodGet, "/v1/stats", "")
	var c stats.Counts
	decode(t, w, &c)
	if !c.Enabled || c.Mock != 1 {
		t.Fatalf("unexpected stats %+v", c)
	}

	w = do(newRouter(Handlers{Stats: stats.Nop{}}), http.MethodGet, "/v1/stats", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"enabled":false`) {
		t.Fatalf("expected disabled stats, got %s", w.Body.String())
	}
}
