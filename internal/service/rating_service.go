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

// RatingService 评分业务接口
type RatingService interface {
	List(ctx context.Context, claim *policy.Claim) ([]dto.RatingResponse, error)
	Create(ctx context.Context, claim *policy.Claim, req *dto.CreateRatingRequest) (*dto.CreatedResponse, error)
}

type ratingService struct {
	repo   *repository.Repository
	policy *policy.Policy
	logger *zap.Logger
}

// NewRatingService 创建 RatingService 实例
func NewRatingService(repo *repository.Repository, pol *policy.Policy, logger *zap.Logger) RatingService {
	return &ratingService{repo: repo, policy: pol, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *ratingService) List(ctx context.Context, claim *policy.Claim) ([]dto.RatingResponse, error) {
	f, err := s.policy.Scope(ctx, policy.ResourceRating, claim)
	if err != nil {
		return nil, err
	}

	ratings, err := s.repo.Rating.List(ctx, f)
	if err != nil {
		s.logger.Error("列出评分失败", zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}

	result := make([]dto.RatingResponse, 0, len(ratings))
	for i := range ratings {
		result = append(result, toRatingResponse(&ratings[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *ratingService) Create(ctx context.Context, claim *policy.Claim, req *dto.CreateRatingRequest) (*dto.CreatedResponse, error) {
	if err := s.policy.Authorize(policy.ResourceRating, claim); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	// 1. 报告必须存在
	report, err := s.repo.Report.GetByID(ctx, req.ReportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("Report not found")
		}
		s.logger.Error("查询授课报告失败", zap.String("report_id", req.ReportID), zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}

	// 2. 只能评价自己所在班级的报告
	ok, err := s.repo.Enrollment.Exists(ctx, claim.UserID, report.ClassID)
	if err != nil {
		s.logger.Error("查询选课关系失败", zap.String("student_id", claim.UserID), zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}
	if !ok {
		return nil, pkgerrors.Forbidden("You can only rate lectures from your enrolled classes")
	}

	rating := &model.Rating{
		ReportID:    report.ReportID,
		StudentID:   claim.UserID,
		RatingValue: int(req.RatingValue),
		Comment:     req.Comment,
	}
	if err := s.repo.Rating.Create(ctx, rating); err != nil {
		s.logger.Error("创建评分失败", zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}

	return &dto.CreatedResponse{ID: rating.RatingID}, nil
}
