package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"luct-report/backend/internal/dto"
	"luct-report/backend/internal/policy"
	"luct-report/backend/internal/repository"
	pkgerrors "luct-report/backend/pkg/errors"
	"luct-report/backend/pkg/validate"
)

// 未指定类型时每类返回的条数上限
const searchAllLimit = 10

// SearchService 全局搜索业务接口
//
// 每类结果都经过与列表接口相同的可见性过滤；匿名调用者搜索报告得到空结果而非 401。
type SearchService interface {
	// Search 指定 type 时返回该类结果切片，否则返回 dto.SearchResponse
	Search(ctx context.Context, claim *policy.Claim, req *dto.SearchRequest) (interface{}, error)
}

type searchService struct {
	repo   *repository.Repository
	policy *policy.Policy
	limit  int
	logger *zap.Logger
}

// NewSearchService 创建 SearchService 实例
func NewSearchService(repo *repository.Repository, pol *policy.Policy, limit int, logger *zap.Logger) SearchService {
	if limit <= 0 {
		limit = 50
	}
	return &searchService{repo: repo, policy: pol, limit: limit, logger: logger}
}

func (s *searchService) Search(ctx context.Context, claim *policy.Claim, req *dto.SearchRequest) (interface{}, error) {
	req.Q = strings.TrimSpace(req.Q)
	if err := validate.Struct(req); err != nil {
		return nil, err
	}

	switch req.Type {
	case dto.SearchReports:
		return s.reports(ctx, claim, req.Q, s.limit)
	case dto.SearchCourses:
		return s.courses(ctx, claim, req.Q, s.limit)
	case dto.SearchUsers:
		return s.users(ctx, claim, req.Q, s.limit)
	}

	// 未指定类型：三类并发查询
	var resp dto.SearchResponse
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		resp.Reports, err = s.reports(gctx, claim, req.Q, searchAllLimit)
		return err
	})
	g.Go(func() (err error) {
		resp.Courses, err = s.courses(gctx, claim, req.Q, searchAllLimit)
		return err
	})
	g.Go(func() (err error) {
		resp.Users, err = s.users(gctx, claim, req.Q, searchAllLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &resp, nil
}

// scope 搜索场景下匿名访问受保护资源视为空集
func (s *searchService) scope(ctx context.Context, res policy.Resource, claim *policy.Claim) (policy.Filter, error) {
	f, err := s.policy.Scope(ctx, res, claim)
	if errors.Is(err, pkgerrors.ErrUnauthenticated) {
		return policy.None(), nil
	}
	return f, err
}

func (s *searchService) reports(ctx context.Context, claim *policy.Claim, q string, limit int) ([]dto.ReportResponse, error) {
	f, err := s.scope(ctx, policy.ResourceReport, claim)
	if err != nil {
		return nil, err
	}
	reports, err := s.repo.Report.Search(ctx, f, q, limit)
	if err != nil {
		s.logger.Error("搜索授课报告失败", zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}

	result := make([]dto.ReportResponse, 0, len(reports))
	for i := range reports {
		result = append(result, toReportResponse(&reports[i]))
	}
	return result, nil
}

func (s *searchService) courses(ctx context.Context, claim *policy.Claim, q string, limit int) ([]dto.CourseResponse, error) {
	f, err := s.scope(ctx, policy.ResourceCourse, claim)
	if err != nil {
		return nil, err
	}
	courses, err := s.repo.Course.Search(ctx, f, q, limit)
	if err != nil {
		s.logger.Error("搜索课程失败", zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, toCourseResponse(&courses[i]))
	}
	return result, nil
}

func (s *searchService) users(ctx context.Context, claim *policy.Claim, q string, limit int) ([]dto.PublicUserResponse, error) {
	f, err := s.scope(ctx, policy.ResourceUser, claim)
	if err != nil {
		return nil, err
	}
	users, err := s.repo.User.Search(ctx, f, q, limit)
	if err != nil {
		s.logger.Error("搜索用户失败", zap.Error(err))
		return nil, pkgerrors.Repository(err)
	}

	result := make([]dto.PublicUserResponse, 0, len(users))
	for i := range users {
		result = append(result, toPublicUserResponse(&users[i]))
	}
	return result, nil
}
