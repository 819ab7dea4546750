package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"luct-report/backend/internal/model"
)

// EnrollmentRepository 选课关系数据访问接口
type EnrollmentRepository interface {
	BatchCreate(ctx context.Context, rows []model.Enrollment) error
	ListClassIDsByStudent(ctx context.Context, studentID string) ([]string, error)
	Exists(ctx context.Context, studentID, classID string) (bool, error)
}

type enrollmentRepo struct {
	db *gorm.DB
}

// NewEnrollmentRepo 创建 EnrollmentRepository 实例
func NewEnrollmentRepo(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

// BatchCreate 批量选课，已存在的 (student_id, class_id) 静默跳过
func (r *enrollmentRepo) BatchCreate(ctx context.Context, rows []model.Enrollment) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "student_id"}, {Name: "class_id"}},
			DoNothing: true,
		}).
		CreateInBatches(rows, 100).Error
}

func (r *enrollmentRepo) ListClassIDsByStudent(ctx context.Context, studentID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("student_id = ?", studentID).
		Distinct().
		Pluck("class_id", &ids).Error
	return ids, err
}

func (r *enrollmentRepo) Exists(ctx context.Context, studentID, classID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Enrollment{}).
		Where("student_id = ? AND class_id = ?", studentID, classID).
		Count(&count).Error
	return count > 0, err
}
