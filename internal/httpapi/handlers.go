package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"osiris-dashboard/internal/dashboard"
	"osiris-dashboard/internal/export"
	"osiris-dashboard/internal/reporting"
	"osiris-dashboard/internal/settings"
	"osiris-dashboard/internal/stats"
	"osiris-dashboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Pinger reports store reachability for the health endpoint.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call internal services, return JSON.
type Handlers struct {
	Dashboard *dashboard.Service
	Settings  *settings.Service
	Stats     stats.Recorder
	Store     Pinger
}

func (h Handlers) mode() string {
	if h.Dashboard != nil && h.Dashboard.LiveMode() {
		return "live"
	}
	return "mock"
}

// snapshot builds a dashboard snapshot and records which mode served it.
func (h Handlers) snapshot(c *gin.Context) dashboard.Data {
	ctx := c.Request.Context()
	var data dashboard.Data
	if h.Dashboard == nil {
		data = dashboard.MockData()
	} else {
		data = h.Dashboard.Dashboard(ctx)
	}
	if h.Stats != nil {
		if err := h.Stats.Record(ctx, data.IsLiveData); err != nil {
			logger.FromGin(c).Warn("stats record failed", "err", err)
		}
	}
	return data
}

func (h Handlers) Health(c *gin.Context) {
	out := gin.H{"status": "ok", "mode": h.mode()}
	if h.Store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := h.Store.Ping(ctx); err != nil {
			out["store"] = "unreachable"
		} else {
			out["store"] = "ok"
		}
	}
	c.JSON(http.StatusOK, out)
}

func (h Handlers) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.snapshot(c))
}

// ListJobs returns jobs newest first, optionally limited to one ?date=YYYY-MM-DD.
func (h Handlers) ListJobs(c *gin.Context) {
	date := c.Query("date")
	if date != "" {
		if _, err := time.Parse(time.DateOnly, date); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
			return
		}
	}

	data := h.snapshot(c)
	jobs := data.Jobs
	if date != "" {
		jobs = reporting.JobsByDate(jobs, date)
	}
	c.JSON(http.StatusOK, gin.H{"jobs": reporting.SortJobsByDateDesc(jobs), "isLiveData": data.IsLiveData})
}

func (h Handlers) GetROI(c *gin.Context) {
	c.JSON(http.StatusOK, reporting.ROI(h.snapshot(c)))
}

func (h Handlers) GetClient(c *gin.Context) {
	out, err := reporting.Client(h.snapshot(c), c.Param("phone"))
	if err != nil {
		if errors.Is(err, reporting.ErrClientNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "client not found"})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "client lookup failed"})
		return
	}
	c.JSON(http.StatusOK, out)
}

type settingsResponse struct {
	settings.Settings
	Persisted bool `json:"persisted"`
}

// GetSettings never fails: mock mode, an empty table and store errors all serve defaults.
func (h Handlers) GetSettings(c *gin.Context) {
	if h.Settings == nil {
		c.JSON(http.StatusOK, settingsResponse{Settings: settings.Defaults()})
		return
	}
	s, found, err := h.Settings.Get(c.Request.Context())
	if err != nil && !errors.Is(err, settings.ErrNotConfigured) {
		logger.FromGin(c).Error("settings fetch failed", "err", err)
	}
	if err != nil || !found {
		c.JSON(http.StatusOK, settingsResponse{Settings: settings.Defaults()})
		return
	}
	c.JSON(http.StatusOK, settingsResponse{Settings: s, Persisted: true})
}

type saveSettingsRequest struct {
	SpreadsheetID string   `json:"spreadsheetId"`
	HourlyRate    *float64 `json:"hourlyRate"`
	CostPerJob    *float64 `json:"costPerJob"`
}

func (h Handlers) SaveSettings(c *gin.Context) {
	var req saveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	in := settings.Defaults()
	in.SpreadsheetID = strings.TrimSpace(req.SpreadsheetID)
	if req.HourlyRate != nil {
		in.HourlyRate = *req.HourlyRate
	}
	if req.CostPerJob != nil {
		in.CostPerJob = *req.CostPerJob
	}

	if h.Settings == nil {
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "settings store not configured"})
		return
	}
	err := h.Settings.Save(c.Request.Context(), in, c.GetHeader("X-Actor"), c.ClientIP())
	switch {
	case err == nil:
	case errors.Is(err, settings.ErrInvalidArgument):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "hourlyRate and costPerJob must be non-negative numbers"})
		return
	case errors.Is(err, settings.ErrNotConfigured):
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "settings store not configured"})
		return
	default:
		logger.FromGin(c).Error("settings save failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "settings save failed"})
		return
	}
	c.JSON(http.StatusOK, settingsResponse{Settings: in, Persisted: true})
}

func (h Handlers) GetStats(c *gin.Context) {
	if h.Stats == nil {
		c.JSON(http.StatusOK, stats.Counts{})
		return
	}
	out, err := h.Stats.Counts(c.Request.Context())
	if err != nil {
		logger.FromGin(c).Warn("stats read failed", "err", err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "stats unavailable"})
		return
	}
	c.JSON(http.StatusOK, out)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h Handlers) ExportWorkbook(c *gin.Context) {
	data := h.snapshot(c)
	f, err := export.Workbook(data)
	if err != nil {
		logger.FromGin(c).Error("export failed", "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "export failed"})
		return
	}
	defer f.Close()

	name := fmt.Sprintf("dashboard-%s.xlsx", time.Now().UTC().Format(time.DateOnly))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
