package handler

import (
	"github.com/gin-gonic/gin"

	"luct-report/backend/internal/api/middleware"
	"luct-report/backend/internal/policy"
)

// claimOf 将认证中间件注入的 JWT 声明转换为可见性策略使用的身份；匿名返回 nil
func claimOf(c *gin.Context) *policy.Claim {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return nil
	}
	return &policy.Claim{
		UserID:  claims.UserID,
		Role:    claims.Role,
		Program: claims.CourseProgram,
	}
}
