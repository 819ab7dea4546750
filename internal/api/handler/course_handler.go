package handler

import (
	"github.com/gin-gonic/gin"

	"luct-report/backend/internal/dto"
	"luct-report/backend/internal/service"
	"luct-report/backend/pkg/response"
)

// CourseHandler 课程 HTTP 处理器
type CourseHandler struct {
	courseSvc service.CourseService
}

// NewCourseHandler 创建 CourseHandler
func NewCourseHandler(courseSvc service.CourseService) *CourseHandler {
	return &CourseHandler{courseSvc: courseSvc}
}

// List 课程列表（可匿名）
// GET /api/courses
func (h *CourseHandler) List(c *gin.Context) {
	result, err := h.courseSvc.List(c.Request.Context(), claimOf(c))
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, result)
}

// Create 新增课程（项目负责人）
// POST /api/courses
func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.courseSvc.Create(c.Request.Context(), claimOf(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Created(c, "Course added successfully", result)
}
