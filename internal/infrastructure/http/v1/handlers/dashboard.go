package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"stockroom/internal/core/apperror"
	"stockroom/internal/domain/reports"
	"stockroom/internal/infrastructure/export"
	"stockroom/internal/infrastructure/http/v1/dto"
)

// DashboardHandler serves the merged stock movement view and its
// spreadsheet export.
type DashboardHandler struct {
	*BaseHandler
	svc *reports.Service
}

func NewDashboardHandler(svc *reports.Service) *DashboardHandler {
	return &DashboardHandler{BaseHandler: NewBaseHandler(), svc: svc}
}

func (h *DashboardHandler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.Dashboard)
	rg.GET("/export", h.Export)
}

func (h *DashboardHandler) Dashboard(c *gin.Context) {
	q := dto.ParseDashboardQuery(c.Request.URL.Query())

	dash, err := h.svc.Dashboard(c.Request.Context(), q)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromDashboard(dash))
}

// Export streams the full filtered ledger as an xlsx workbook.
func (h *DashboardHandler) Export(c *gin.Context) {
	q := dto.ParseDashboardQuery(c.Request.URL.Query())

	rows, err := h.svc.Ledger(c.Request.Context(), q)
	if err != nil {
		h.Error(c, err)
		return
	}

	filename := fmt.Sprintf("stock-movement-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := export.WriteLedger(c.Writer, rows); err != nil {
		// Headers may already be on the wire; log-and-abort is the
		// best we can do here.
		h.Error(c, apperror.NewInternal(err))
	}
}
