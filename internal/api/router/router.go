package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"luct-report/backend/config"
	"luct-report/backend/internal/api/handler"
	"luct-report/backend/internal/api/middleware"
	"luct-report/backend/pkg/jwt"
	"luct-report/backend/pkg/redis"
	"luct-report/backend/pkg/response"
)

// Setup 初始化并返回 Gin 路由引擎
// rdb 可为 nil：此时登出为空操作、限流与黑名单降级放行
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})
	r.NoMethod(response.MethodNotAllowed)

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	requireAuth := middleware.JWTAuth(jwtMgr, rdb)
	optionalAuth := middleware.OptionalJWTAuth(jwtMgr, rdb)
	rateLimit := middleware.RateLimit(rdb, cfg.Auth.RateLimit, cfg.Auth.RateLimitWindow)

	api := r.Group("/api")
	{
		// 认证
		api.POST("/register", rateLimit, h.Auth.Register)
		api.POST("/login", rateLimit, h.Auth.Login)
		api.POST("/logout", requireAuth, h.Auth.Logout)

		// 个人资料
		api.GET("/profile", requireAuth, h.Profile.Get)
		api.PUT("/profile", requireAuth, h.Profile.Update)
		api.POST("/profile", requireAuth, h.Profile.Update)

		// 课程与班级：读取可匿名，写入由 Service 层鉴权
		api.GET("/courses", optionalAuth, h.Course.List)
		api.POST("/courses", requireAuth, h.Course.Create)
		api.GET("/classes", optionalAuth, h.Class.List)
		api.POST("/classes", requireAuth, h.Class.Create)

		// 报告、评分与反馈
		api.GET("/reports", requireAuth, h.Report.List)
		api.POST("/reports", requireAuth, h.Report.Create)
		api.GET("/ratings", requireAuth, h.Rating.List)
		api.POST("/ratings", requireAuth, h.Rating.Create)
		api.GET("/feedback", requireAuth, h.Feedback.List)
		api.POST("/feedback", requireAuth, h.Feedback.Create)

		api.GET("/search", optionalAuth, h.Search.Search)
		api.GET("/export", requireAuth, h.Export.ExportReports)
	}

	return r
}
