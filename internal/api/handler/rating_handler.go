package handler

import (
	"github.com/gin-gonic/gin"

	"luct-report/backend/internal/dto"
	"luct-report/backend/internal/service"
	"luct-report/backend/pkg/response"
)

// RatingHandler 学生评分 HTTP 处理器
type RatingHandler struct {
	ratingSvc service.RatingService
}

// NewRatingHandler 创建 RatingHandler
func NewRatingHandler(ratingSvc service.RatingService) *RatingHandler {
	return &RatingHandler{ratingSvc: ratingSvc}
}

// List GET /api/ratings
func (h *RatingHandler) List(c *gin.Context) {
	result, err := h.ratingSvc.List(c.Request.Context(), claimOf(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Create POST /api/ratings
func (h *RatingHandler) Create(c *gin.Context) {
	var req dto.CreateRatingRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.ratingSvc.Create(c.Request.Context(), claimOf(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, "Rating added successfully", result)
}
