package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"luct-report/backend/internal/api/middleware"
	"luct-report/backend/internal/service"
	pkgerrors "luct-report/backend/pkg/errors"
	"luct-report/backend/pkg/response"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth     *AuthHandler
	Profile  *ProfileHandler
	Course   *CourseHandler
	Class    *ClassHandler
	Report   *ReportHandler
	Rating   *RatingHandler
	Feedback *FeedbackHandler
	Search   *SearchHandler
	Export   *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(svc.Auth),
		Profile:  NewProfileHandler(svc.Profile),
		Course:   NewCourseHandler(svc.Course),
		Class:    NewClassHandler(svc.Class),
		Report:   NewReportHandler(svc.Report),
		Rating:   NewRatingHandler(svc.Rating),
		Feedback: NewFeedbackHandler(svc.Feedback),
		Search:   NewSearchHandler(svc.Search),
		Export:   NewExportHandler(svc.Export),
	}
}

// bindJSON 解析请求体；空请求体按零值处理，交由 Service 做鉴权与字段校验
// 返回 false 时已写入错误响应
func bindJSON(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	if middleware.IsBodyTooLarge(err) {
		response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "Request body too large")
		return false
	}
	response.BadRequest(c, "Invalid JSON body")
	return false
}

// handleError 将 Service 层错误类别映射为 HTTP 状态码
func handleError(c *gin.Context, err error) {
	msg := pkgerrors.Message(err)
	switch {
	case errors.Is(err, pkgerrors.ErrUnauthenticated):
		response.Unauthorized(c, msg)
	case errors.Is(err, pkgerrors.ErrForbidden):
		response.Forbidden(c, msg)
	case errors.Is(err, pkgerrors.ErrValidation):
		response.BadRequest(c, msg)
	case errors.Is(err, pkgerrors.ErrNotFound):
		response.NotFound(c, msg)
	case errors.Is(err, pkgerrors.ErrRepository), errors.Is(err, pkgerrors.ErrInternal):
		details := err.Error()
		var appErr *pkgerrors.Error
		if errors.As(err, &appErr) && appErr.Err != nil {
			details = appErr.Err.Error()
		}
		_ = c.Error(err)
		response.InternalError(c, details)
	default:
		_ = c.Error(err)
		response.InternalError(c, err.Error())
	}
}
