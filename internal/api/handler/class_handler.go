package handler

import (
	"github.com/gin-gonic/gin"

	"luct-report/backend/internal/dto"
	"luct-report/backend/internal/service"
	"luct-report/backend/pkg/response"
)

// ClassHandler 班级 HTTP 处理器
type ClassHandler struct {
	classSvc service.ClassService
}

// NewClassHandler 创建 ClassHandler
func NewClassHandler(classSvc service.ClassService) *ClassHandler {
	return &ClassHandler{classSvc: classSvc}
}

// List 班级列表（可匿名）
// GET /api/classes
func (h *ClassHandler) List(c *gin.Context) {
	result, err := h.classSvc.List(c.Request.Context(), claimOf(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Create 新增班级（项目负责人）
// POST /api/classes
func (h *ClassHandler) Create(c *gin.Context) {
	var req dto.CreateClassRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.classSvc.Create(c.Request.Context(), claimOf(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, "Class added successfully", result)
}
