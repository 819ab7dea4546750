package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"luct-report/backend/internal/dto"
	"luct-report/backend/internal/model"
	"luct-report/backend/internal/policy"
	"luct-report/backend/internal/repository"
	pkgerrors "luct-report/backend/pkg/errors"
	"luct-report/backend/pkg/validate"
)

// ProfileService 个人资料业务接口，仅作用于调用者本人
type ProfileService interface {
	Get(ctx context.Context, claim *policy.Claim) (*dto.UserResponse, error)
	Update(ctx context.Context, claim *policy.Claim, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type profileService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewProfileService 创建 ProfileService 实例
func NewProfileService(repo *repository.Repository, logger *zap.Logger) ProfileService {
	return &profileService{repo: repo, logger: logger}
}

func (s *profileService) load(ctx context.Context, claim *policy.Claim) (*model.User, error) {
	if claim == nil {
		return nil, pkgerrors.Unauthenticated("Authorization required")
	}
	user, err := s.repo.User.GetByID(ctx, claim.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("User not found")
		}
		s.logger.Error("查询用户失败", zap.String("user_id", claim.UserID), zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}
	return user, nil
}

// ────────────────────── Get ──────────────────────

func (s *profileService) Get(ctx context.Context, claim *policy.Claim) (*dto.UserResponse, error) {
	user, err := s.load(ctx, claim)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// ────────────────────── Update ──────────────────────

func (s *profileService) Update(ctx context.Context, claim *policy.Claim, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	if claim == nil {
		return nil, pkgerrors.Unauthenticated("Authorization required")
	}
	for _, field := range []*string{req.Email, req.Name, req.Faculty, req.CourseProgram, req.Gender} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	user, err := s.load(ctx, claim)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		email := *req.Email
		if email != user.Email {
			existing, err := s.repo.User.GetByEmail(ctx, email)
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Error("查询用户失败", zap.Error(err))
				return nil, pkgerrors.Repository(err)
			}
			if existing != nil {
				return nil, pkgerrors.Validation(msgUserExists)
			}
			user.Email = email
		}
	}
	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Faculty != nil {
		user.Faculty = *req.Faculty
	}
	if req.Gender != nil {
		gender := *req.Gender
		user.Gender = &gender
	}
	// 非学生不保存专业；修改专业不会触发重新选课
	if req.CourseProgram != nil && user.Role == model.RoleStudent {
		program := *req.CourseProgram
		user.CourseProgram = &program
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkgerrors.Validation(msgUserExists)
		}
		s.logger.Error("更新用户失败", zap.String("user_id", user.UserID), zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}

	resp := toUserResponse(user)
	return &resp, nil
}
