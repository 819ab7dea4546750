package repository

import (
	"context"

	"gorm.io/gorm"

	"luct-report/backend/internal/model"
	"luct-report/backend/internal/policy"
)

// CourseRepository 课程数据访问接口
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	GetByID(ctx context.Context, id string) (*model.Course, error)
	List(ctx context.Context, f policy.Filter) ([]model.Course, error)
	Search(ctx context.Context, f policy.Filter, keyword string, limit int) ([]model.Course, error)
}

type courseRepo struct {
	db *gorm.DB
}

// NewCourseRepo 创建 CourseRepository 实例
func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db: db}
}

func (r *courseRepo) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepo) GetByID(ctx context.Context, id string) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).Where("course_id = ?", id).First(&course).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) scoped(ctx context.Context, f policy.Filter) (*gorm.DB, bool, error) {
	return applyFilter(r.db.WithContext(ctx).Model(&model.Course{}).Select("courses.*"), f, courseColumns)
}

func (r *courseRepo) List(ctx context.Context, f policy.Filter) ([]model.Course, error) {
	db, ok, err := r.scoped(ctx, f)
	if err != nil || !ok {
		return []model.Course{}, err
	}

	var courses []model.Course
	err = db.Order("courses.course_code ASC").Find(&courses).Error
	return courses, err
}

func (r *courseRepo) Search(ctx context.Context, f policy.Filter, keyword string, limit int) ([]model.Course, error) {
	db, ok, err := r.scoped(ctx, f)
	if err != nil || !ok {
		return []model.Course{}, err
	}

	var courses []model.Course
	pattern := likePattern(keyword)
	err = db.Where("courses.course_code ILIKE ? OR courses.course_name ILIKE ?", pattern, pattern).
		Order("courses.course_code ASC").
		Limit(limit).
		Find(&courses).Error
	return courses, err
}
