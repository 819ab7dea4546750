package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"luct-report/backend/internal/dto"
	"luct-report/backend/internal/model"
	"luct-report/backend/internal/policy"
	"luct-report/backend/internal/repository"
	pkgerrors "luct-report/backend/pkg/errors"
	"luct-report/backend/pkg/validate"
)

// ReportService 授课报告业务接口
type ReportService interface {
	List(ctx context.Context, claim *policy.Claim) ([]dto.ReportResponse, error)
	Create(ctx context.Context, claim *policy.Claim, req *dto.CreateReportRequest) (*dto.CreatedResponse, error)
}

type reportService struct {
	repo   *repository.Repository
	policy *policy.Policy
	logger *zap.Logger
}

// NewReportService 创建 ReportService 实例
func NewReportService(repo *repository.Repository, pol *policy.Policy, logger *zap.Logger) ReportService {
	return &reportService{repo: repo, policy: pol, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *reportService) List(ctx context.Context, claim *policy.Claim) ([]dto.ReportResponse, error) {
	reports, err := visibleReports(ctx, s.repo, s.policy, claim)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrRepository) {
			s.logger.Error("列出授课报告失败", zap.Error(err))
		}
		return nil, err
	}

	result := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		result = append(result, toReportResponse(&reports[i]))
	}
	return result, nil
}

// visibleReports 调用者可见的全部报告，列表与导出共用
func visibleReports(ctx context.Context, repo *repository.Repository, pol *policy.Policy, claim *policy.Claim) ([]model.LectureReport, error) {
	f, err := pol.Scope(ctx, policy.ResourceReport, claim)
	if err != nil {
		return nil, err
	}
	reports, err := repo.Report.List(ctx, f)
	if err != nil {
		return nil, pkgerrors.Repository(err)
	}
	return reports, nil
}

// ────────────────────── Create ──────────────────────

func (s *reportService) Create(ctx context.Context, claim *policy.Claim, req *dto.CreateReportRequest) (*dto.CreatedResponse, error) {
	if err := s.policy.Authorize(policy.ResourceReport, claim); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	date, err := time.Parse(dateLayout, req.DateOfLecture)
	if err != nil {
		return nil, pkgerrors.Validation("date_of_lecture must match format " + dateLayout)
	}

	// 1. 班级必须存在；已指派讲师的班级只能由该讲师提交
	class, err := s.repo.Class.GetByID(ctx, req.ClassID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("Class not found")
		}
		s.logger.Error("查询班级失败", zap.String("class_id", req.ClassID), zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}
	if class.LecturerID != nil && *class.LecturerID != claim.UserID {
		return nil, pkgerrors.Forbidden("You can only submit reports for your assigned classes")
	}

	// 2. 写入报告，lecturer_id 取自身份声明
	report := &model.LectureReport{
		ClassID:                 class.ClassID,
		LecturerID:              claim.UserID,
		WeekOfReporting:         req.WeekOfReporting,
		DateOfLecture:           date,
		ActualStudentsPresent:   int(req.ActualStudentsPresent),
		TopicTaught:             req.TopicTaught,
		LearningOutcomes:        req.LearningOutcomes,
		LecturerRecommendations: req.LecturerRecommendations,
	}
	if err := s.repo.Report.Create(ctx, report); err != nil {
		s.logger.Error("提交授课报告失败", zap.String("lecturer_id", claim.UserID), zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}

	return &dto.CreatedResponse{ID: report.ReportID}, nil
}
