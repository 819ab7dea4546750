package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"luct-report/backend/internal/model"
	"luct-report/backend/internal/policy"
)

// ClassRepository 班级数据访问接口
type ClassRepository interface {
	Create(ctx context.Context, class *model.Class) error
	GetByID(ctx context.Context, id string) (*model.Class, error)
	List(ctx context.Context, f policy.Filter) ([]model.Class, error)
	ListIDsByProgram(ctx context.Context, program string) ([]string, error)
}

type classRepo struct {
	db *gorm.DB
}

// NewClassRepo 创建 ClassRepository 实例
func NewClassRepo(db *gorm.DB) ClassRepository {
	return &classRepo{db: db}
}

func (r *classRepo) Create(ctx context.Context, class *model.Class) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(class).Error
}

func (r *classRepo) GetByID(ctx context.Context, id string) (*model.Class, error) {
	var class model.Class
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("class_id = ?", id).
		First(&class).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepo) List(ctx context.Context, f policy.Filter) ([]model.Class, error) {
	db, ok, err := applyFilter(r.db.WithContext(ctx).Model(&model.Class{}).Select("classes.*"), f, classColumns)
	if err != nil || !ok {
		return []model.Class{}, err
	}

	var classes []model.Class
	err = db.Preload("Course").
		Preload("Lecturer").
		Order("classes.class_name ASC").
		Find(&classes).Error
	return classes, err
}

// ListIDsByProgram 查询课程所属专业为 program 的全部班级，用于注册时自动选课
func (r *classRepo) ListIDsByProgram(ctx context.Context, program string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.Class{}).
		Joins(joinCourseOfClass).
		Where("courses.program = ?", program).
		Pluck("classes.class_id", &ids).Error
	return ids, err
}
