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

// ClassService 班级业务接口
type ClassService interface {
	List(ctx context.Context, claim *policy.Claim) ([]dto.ClassResponse, error)
	Create(ctx context.Context, claim *policy.Claim, req *dto.CreateClassRequest) (*dto.ClassResponse, error)
}

type classService struct {
	repo   *repository.Repository
	policy *policy.Policy
	logger *zap.Logger
}

// NewClassService 创建 ClassService 实例
func NewClassService(repo *repository.Repository, pol *policy.Policy, logger *zap.Logger) ClassService {
	return &classService{repo: repo, policy: pol, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *classService) List(ctx context.Context, claim *policy.Claim) ([]dto.ClassResponse, error) {
	f, err := s.policy.Scope(ctx, policy.ResourceClass, claim)
	if err != nil {
		return nil, err
	}

	classes, err := s.repo.Class.List(ctx, f)
	if err != nil {
		s.logger.Error("列出班级失败", zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}

	result := make([]dto.ClassResponse, 0, len(classes))
	for i := range classes {
		result = append(result, toClassResponse(&classes[i]))
	}
	return result, nil
}

// ────────────────────── Create ──────────────────────

func (s *classService) Create(ctx context.Context, claim *policy.Claim, req *dto.CreateClassRequest) (*dto.ClassResponse, error) {
	if err := s.policy.Authorize(policy.ResourceClass, claim); err != nil {
		return nil, err
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	// 1. 课程必须存在
	course, err := s.repo.Course.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("Course not found")
		}
		s.logger.Error("查询课程失败", zap.String("course_id", req.CourseID), zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}

	class := &model.Class{
		ClassName:               req.ClassName,
		CourseID:                course.CourseID,
		Venue:                   req.Venue,
		ScheduledTime:           req.ScheduledTime,
		TotalRegisteredStudents: int(req.TotalRegisteredStudents),
		Course:                  course,
	}

	// 2. 指定讲师时必须是已注册的讲师
	if req.LecturerID != "" {
		lecturer, err := s.repo.User.GetByID(ctx, req.LecturerID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.NotFound("Lecturer not found")
			}
			s.logger.Error("查询讲师失败", zap.String("lecturer_id", req.LecturerID), zap.Error(err))
			return nil, pkgerrors.Repository(err)
		}
		if lecturer.Role != model.RoleLecturer {
			return nil, pkgerrors.Validation("lecturer_id must reference a lecturer")
		}
		class.LecturerID = &lecturer.UserID
		class.Lecturer = lecturer
	}

	if err := s.repo.Class.Create(ctx, class); err != nil {
		s.logger.Error("创建班级失败", zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}

	resp := toClassResponse(class)
	return &resp, nil
}
