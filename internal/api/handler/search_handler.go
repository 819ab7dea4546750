package handler

import (
	"github.com/gin-gonic/gin"

	"luct-report/backend/internal/dto"
	"luct-report/backend/internal/service"
	"luct-report/backend/pkg/response"
)

// SearchHandler 全局搜索 HTTP 处理器
type SearchHandler struct {
	searchSvc service.SearchService
}

// NewSearchHandler 创建 SearchHandler
func NewSearchHandler(searchSvc service.SearchService) *SearchHandler {
	return &SearchHandler{searchSvc: searchSvc}
}

// Search 按关键字搜索报告、课程与用户（可匿名）
// GET /api/search?q=xxx&type=reports|courses|users
func (h *SearchHandler) Search(c *gin.Context) {
	req := dto.SearchRequest{
		Q:    c.Query("q"),
		Type: c.Query("type"),
	}

	result, err := h.searchSvc.Search(c.Request.Context(), claimOf(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, result)
}
