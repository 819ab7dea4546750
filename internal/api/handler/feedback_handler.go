package handler

import (
	"github.com/gin-gonic/gin"

	"luct-report/backend/internal/dto"
	"luct-report/backend/internal/service"
	"luct-report/backend/pkg/response"
)

// FeedbackHandler 首席讲师反馈 HTTP 处理器
type FeedbackHandler struct {
	feedbackSvc service.FeedbackService
}

// NewFeedbackHandler 创建 FeedbackHandler
func NewFeedbackHandler(feedbackSvc service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackSvc: feedbackSvc}
}

// List GET /api/feedback
func (h *FeedbackHandler) List(c *gin.Context) {
	result, err := h.feedbackSvc.List(c.Request.Context(), claimOf(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Create POST /api/feedback
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req dto.CreateFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.feedbackSvc.Create(c.Request.Context(), claimOf(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, "Feedback added successfully", result)
}
