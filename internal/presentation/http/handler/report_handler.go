package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/ownerdesk-api/internal/application/analytics"
	"github.com/sangkips/ownerdesk-api/internal/application/service"
	"github.com/sangkips/ownerdesk-api/internal/domain/enum"
	"github.com/sangkips/ownerdesk-api/internal/presentation/http/dto/response"
	"github.com/sangkips/ownerdesk-api/pkg/apperror"
	"github.com/sangkips/ownerdesk-api/pkg/export"
)

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// SalesReport handles generating the sales report
func (h *ReportHandler) SalesReport(c *gin.Context) {
	input := service.SalesReportInput{
		StartDate: analytics.ParseReportDate(c.Query("startDate"), false),
		EndDate:   analytics.ParseReportDate(c.Query("endDate"), true),
		GroupBy:   enum.ParseGroupBy(c.Query("groupBy")),
	}

	report, err := h.reportService.SalesReport(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	buckets, summary := response.NewSalesReportResponse(report)

	if WantsXLSX(c) {
		if err := SendXLSX(c, "sales-report", salesSheets(report.GroupBy, buckets, summary)...); err != nil {
			response.Error(c, apperror.NewQueryError(service.MsgSalesReportFailed, err))
		}
		return
	}

	response.OKWithSummary(c, "Sales report generated successfully", buckets, summary)
}

// InventoryReport handles generating the inventory report
func (h *ReportHandler) InventoryReport(c *gin.Context) {
	report, err := h.reportService.InventoryReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	products, summary := response.NewInventoryReportResponse(report)

	if WantsXLSX(c) {
		if err := SendXLSX(c, "inventory-report", inventorySheets(products, summary)...); err != nil {
			response.Error(c, apperror.NewQueryError(service.MsgInventoryReportFailed, err))
		}
		return
	}

	response.OKWithSummary(c, "Inventory report generated successfully", products, summary)
}

func optional(f *float64) interface{} {
	if f == nil {
		return ""
	}
	return *f
}

func salesSheets(groupBy enum.GroupBy, buckets []response.SalesBucketResponse, s response.SalesSummaryResponse) []export.Sheet {
	rows := make([][]interface{}, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, []interface{}{b.ID, b.TotalOrders, b.TotalRevenue, b.AverageOrderValue})
	}

	return []export.Sheet{
		{
			Name:   "Sales",
			Header: []string{"Period (" + groupBy.String() + ")", "Total Orders", "Total Revenue", "Average Order Value"},
			Rows:   rows,
		},
		{
			Name:   "Summary",
			Header: []string{"Metric", "Value"},
			Rows: [][]interface{}{
				{"Total Orders", s.TotalOrders},
				{"Total Revenue", s.TotalRevenue},
				{"Average Order Value", s.AverageOrderValue},
				{"Max Order Value", optional(s.MaxOrderValue)},
				{"Min Order Value", optional(s.MinOrderValue)},
			},
		},
	}
}

func inventorySheets(products []response.InventoryProductResponse, s response.InventorySummaryResponse) []export.Sheet {
	rows := make([][]interface{}, 0, len(products))
	for _, p := range products {
		category := ""
		if p.Category != nil {
			category = *p.Category
		}
		rows = append(rows, []interface{}{p.Name, p.SKU, category, p.Price, p.Stock, p.Value})
	}

	categories := make([][]interface{}, 0, len(s.Categories))
	for _, name := range sortedKeys(s.Categories) {
		c := s.Categories[name]
		categories = append(categories, []interface{}{name, c.Count, c.Value})
	}

	return []export.Sheet{
		{
			Name:   "Products",
			Header: []string{"Name", "SKU", "Category", "Price", "Stock", "Value"},
			Rows:   rows,
		},
		{
			Name:   "Categories",
			Header: []string{"Category", "Products", "Value"},
			Rows:   categories,
		},
		{
			Name:   "Summary",
			Header: []string{"Metric", "Value"},
			Rows: [][]interface{}{
				{"Total Products", s.TotalProducts},
				{"Total Value", s.TotalValue},
				{"Low Stock", s.LowStock},
				{"Out Of Stock", s.OutOfStock},
			},
		},
	}
}
