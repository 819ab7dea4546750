package handler

import (
	"github.com/gin-gonic/gin"

	"luct-report/backend/internal/dto"
	"luct-report/backend/internal/service"
	"luct-report/backend/pkg/response"
)

// ReportHandler 授课报告 HTTP 处理器
type ReportHandler struct {
	reportSvc service.ReportService
}

// NewReportHandler 创建 ReportHandler
func NewReportHandler(reportSvc service.ReportService) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc}
}

// List 可见报告列表
// GET /api/reports
func (h *ReportHandler) List(c *gin.Context) {
	result, err := h.reportSvc.List(c.Request.Context(), claimOf(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Create 提交报告（讲师）
// POST /api/reports
func (h *ReportHandler) Create(c *gin.Context) {
	var req dto.CreateReportRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.reportSvc.Create(c.Request.Context(), claimOf(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, "Report submitted successfully", result)
}
