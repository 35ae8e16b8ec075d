package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/ownerdesk-api/internal/application/service"
	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/sangkips/ownerdesk-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetDashboard handles getting the owner dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Dashboard data retrieved successfully", response.NewDashboardResponse(dashboard))
}

// GetTrends handles getting period over period percentage changes
func (h *DashboardHandler) GetTrends(c *gin.Context) {
	trends, err := h.dashboardService.GetTrends(c.Request.Context(), GetPeriod(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Trends retrieved successfully", trends)
}

// GetInsights handles getting revenue, category and stock insights
func (h *DashboardHandler) GetInsights(c *gin.Context) {
	insights, err := h.dashboardService.GetInsights(c.Request.Context(), GetPeriod(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Insights retrieved successfully", response.NewInsightsResponse(insights))
}

// GetChart handles getting a sales or orders chart series
func (h *DashboardHandler) GetChart(c *gin.Context) {
	chartType := enum.ParseChartType(c.Query("type"))

	points, err := h.dashboardService.GetChart(c.Request.Context(), chartType, GetPeriod(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Chart data retrieved successfully", response.NewChartPoints(points))
}
