package handler

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stockify/stockify-api/internal/application/service"
	"github.com/stockify/stockify-api/internal/presentation/http/dto/request"
	"github.com/stockify/stockify-api/internal/presentation/http/dto/response"
	"github.com/stockify/stockify-api/pkg/export"
)

// ReportHandler handles reporting HTTP requests. Each report endpoint
// returns JSON by default; passing ?format=csv|xlsx|pdf streams the
// report as a file download instead.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Sales handles the sales report
func (h *ReportHandler) Sales(c *gin.Context) {
	filter, from, to, ok := bindReportFilter(c)
	if !ok {
		return
	}

	if filter.Format != "" {
		h.export(c, filter.Format, "sales-report", func(ctx context.Context) (*export.Table, error) {
			return h.reportService.SalesExportTable(ctx, from, to)
		})
		return
	}

	rep, err := h.reportService.SalesReport(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales report generated successfully", rep)
}

// Vendors handles the vendor report
func (h *ReportHandler) Vendors(c *gin.Context) {
	filter, _, _, ok := bindReportFilter(c)
	if !ok {
		return
	}

	if filter.Format != "" {
		h.export(c, filter.Format, "vendor-report", func(ctx context.Context) (*export.Table, error) {
			return h.reportService.VendorExportTable(ctx)
		})
		return
	}

	rep, err := h.reportService.VendorReport(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Vendor report generated successfully", rep)
}

// Returns handles the returns report
func (h *ReportHandler) Returns(c *gin.Context) {
	filter, from, to, ok := bindReportFilter(c)
	if !ok {
		return
	}

	if filter.Format != "" {
		h.export(c, filter.Format, "returns-report", func(ctx context.Context) (*export.Table, error) {
			return h.reportService.ReturnsExportTable(ctx, from, to)
		})
		return
	}

	rep, err := h.reportService.ReturnsReport(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Returns report generated successfully", rep)
}

// export streams a report table as a file attachment in the requested format
func (h *ReportHandler) export(c *gin.Context, format, baseName string, build func(context.Context) (*export.Table, error)) {
	exporter, err := export.ForFormat(format)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	table, err := build(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("%s-%s.%s", baseName, time.Now().Format("2006-01-02"), exporter.Extension())
	c.Header("Content-Type", exporter.ContentType())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Status(200)

	if err := exporter.Write(c.Writer, table); err != nil {
		// headers are already out; abort the stream
		c.Abort()
	}
}

// bindReportFilter parses the shared report query parameters. The end date
// is extended to the end of its day so filters are inclusive.
func bindReportFilter(c *gin.Context) (*request.ReportFilterRequest, *time.Time, *time.Time, bool) {
	var filter request.ReportFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return nil, nil, nil, false
	}

	from, err := parseDate(filter.StartDate)
	if err != nil {
		response.BadRequest(c, "Invalid start_date; use YYYY-MM-DD")
		return nil, nil, nil, false
	}
	to, err := parseDate(filter.EndDate)
	if err != nil {
		response.BadRequest(c, "Invalid end_date; use YYYY-MM-DD")
		return nil, nil, nil, false
	}
	if to != nil {
		endOfDay := to.Add(24*time.Hour - time.Nanosecond)
		to = &endOfDay
	}

	return &filter, from, to, true
}
