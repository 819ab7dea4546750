package handler

import (
	"github.com/gin-gonic/gin"

	"luct-report/backend/internal/dto"
	"luct-report/backend/internal/service"
	"luct-report/backend/pkg/response"
)

// ProfileHandler 个人资料 HTTP 处理器
type ProfileHandler struct {
	profileSvc service.ProfileService
}

// NewProfileHandler 创建 ProfileHandler
func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

// Get 查看本人资料
// GET /api/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	result, err := h.profileSvc.Get(c.Request.Context(), claimOf(c))
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, result)
}

// Update 更新本人资料
// PUT|POST /api/profile
func (h *ProfileHandler) Update(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.profileSvc.Update(c.Request.Context(), claimOf(c), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OKWithMessage(c, "Profile updated successfully", result)
}
