package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"luct-report/backend/internal/dto"
	"luct-report/backend/internal/model"
	"luct-report/backend/internal/policy"
	"luct-report/backend/internal/repository"
	pkgerrors "luct-report/backend/pkg/errors"
	"luct-report/backend/pkg/validate"
)

// FeedbackService 首席讲师反馈业务接口
type FeedbackService interface {
	List(ctx context.Context, claim *policy.Claim) ([]dto.FeedbackResponse, error)
	Create(ctx context.Context, claim *policy.Claim, req *dto.CreateFeedbackRequest) (*dto.CreatedResponse, error)
}

type feedbackService struct {
	repo   *repository.Repository
	policy *policy.Policy
	logger *zap.Logger
}

// NewFeedbackService 创建 FeedbackService 实例
func NewFeedbackService(repo *repository.Repository, pol *policy.Policy, logger *zap.Logger) FeedbackService {
	return &feedbackService{repo: repo, policy: pol, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *feedbackService) List(ctx context.Context, claim *policy.Claim) ([]dto.FeedbackResponse, error) {
	f, err := s.policy.Scope(ctx, policy.ResourceFeedback, claim)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.Feedback.List(ctx, f)
	if err != nil {
		s.logger.Error("列出反馈失败", zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}

	result := make([]dto.FeedbackResponse, 0, len(items))
	for i := range items {
		result = append(result, toFeedbackResponse(&items[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *feedbackService) Create(ctx context.Context, claim *policy.Claim, req *dto.CreateFeedbackRequest) (*dto.CreatedResponse, error) {
	if err := s.policy.Authorize(policy.ResourceFeedback, claim); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	report, err := s.repo.Report.GetByID(ctx, req.ReportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("Report not found")
		}
		s.logger.Error("查询授课报告失败", zap.String("report_id", req.ReportID), zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}

	fb := &model.Feedback{
		ReportID:            report.ReportID,
		PrincipalLecturerID: claim.UserID,
		FeedbackText:        req.FeedbackText,
	}
	if err := s.repo.Feedback.Create(ctx, fb); err != nil {
		s.logger.Error("创建反馈失败", zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}

	return &dto.CreatedResponse{ID: fb.FeedbackID}, nil
}
