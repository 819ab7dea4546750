package service

import (
	"context"

	"go.uber.org/zap"

	"luct-report/backend/internal/dto"
	"luct-report/backend/internal/model"
	"luct-report/backend/internal/policy"
	"luct-report/backend/internal/repository"
	pkgerrors "luct-report/backend/pkg/errors"
	"luct-report/backend/pkg/validate"
)

// CourseService 课程业务接口
type CourseService interface {
	List(ctx context.Context, claim *policy.Claim) ([]dto.CourseResponse, error)
	Create(ctx context.Context, claim *policy.Claim, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
}

type courseService struct {
	repo   *repository.Repository
	policy *policy.Policy
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, pol *policy.Policy, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, policy: pol, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *courseService) List(ctx context.Context, claim *policy.Claim) ([]dto.CourseResponse, error) {
	f, err := s.policy.Scope(ctx, policy.ResourceCourse, claim)
	if err != nil {
		return nil, err
	}

	courses, err := s.repo.Course.List(ctx, f)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, toCourseResponse(&courses[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *courseService) Create(ctx context.Context, claim *policy.Claim, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	if err := s.policy.Authorize(policy.ResourceCourse, claim); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	course := &model.Course{
		CourseCode: req.CourseCode,
		CourseName: req.CourseName,
		CourseType: req.CourseType,
		Credits:    float64(req.Credits),
		Program:    req.Program,
		Faculty:    s.policy.Faculty(),
	}
	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("创建课程失败", zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}

	resp := toCourseResponse(course)
	return &resp, nil
}
