package httpapi

import "github.com/gin-gonic/gin"

// Register wires the dashboard routes. Middleware is the caller's concern.
func Register(r gin.IRouter, h Handlers) {
	r.GET("/healthz", h.Health)

	v1 := r.Group("/v1")
	{
		v1.GET("/dashboard", h.GetDashboard)
		v1.GET("/jobs", h.ListJobs)
		v1.GET("/roi", h.GetROI)
		v1.GET("/clients/:phone", h.GetClient)

		v1.GET("/settings", h.GetSettings)
		v1.POST("/settings", h.SaveSettings)

		v1.GET("/stats", h.GetStats)
		v1.GET("/export.xlsx", h.ExportWorkbook)
	}
}
