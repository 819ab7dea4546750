package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"luct-report/backend/internal/model"
	"luct-report/backend/internal/policy"
)

// ReportRepository 授课报告数据访问接口
type ReportRepository interface {
	Create(ctx context.Context, report *model.LectureReport) error
	GetByID(ctx context.Context, id string) (*model.LectureReport, error)
	List(ctx context.Context, f policy.Filter) ([]model.LectureReport, error)
	Search(ctx context.Context, f policy.Filter, keyword string, limit int) ([]model.LectureReport, error)
	ListIDsByLecturer(ctx context.Context, lecturerID string) ([]string, error)
}

type reportRepo struct {
	db *gorm.DB
}

// NewReportRepo 创建 ReportRepository 实例
func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) Create(ctx context.Context, report *model.LectureReport) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(report).Error
}

func (r *reportRepo) GetByID(ctx context.Context, id string) (*model.LectureReport, error) {
	var report model.LectureReport
	err := r.db.WithContext(ctx).
		Preload("Class").
		Where("report_id = ?", id).
		First(&report).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *reportRepo) scoped(ctx context.Context, f policy.Filter) (*gorm.DB, bool, error) {
	db := r.db.WithContext(ctx).Model(&model.LectureReport{}).Select("lecture_reports.*")
	return applyFilter(db, f, reportColumns)
}

func (r *reportRepo) List(ctx context.Context, f policy.Filter) ([]model.LectureReport, error) {
	db, ok, err := r.scoped(ctx, f)
	if err != nil || !ok {
		return []model.LectureReport{}, err
	}

	var reports []model.LectureReport
	err = db.Preload("Class.Course").
		Preload("Lecturer").
		Order("lecture_reports.created_at DESC").
		Find(&reports).Error
	return reports, err
}

func (r *reportRepo) Search(ctx context.Context, f policy.Filter, keyword string, limit int) ([]model.LectureReport, error) {
	db, ok, err := r.scoped(ctx, f)
	if err != nil || !ok {
		return []model.LectureReport{}, err
	}

	var reports []model.LectureReport
	pattern := likePattern(keyword)
	err = db.Where(
		"lecture_reports.topic_taught ILIKE ? OR lecture_reports.learning_outcomes ILIKE ? OR lecture_reports.lecturer_recommendations ILIKE ?",
		pattern, pattern, pattern,
	).
		Preload("Class.Course").
		Preload("Lecturer").
		Order("lecture_reports.created_at DESC").
		Limit(limit).
		Find(&reports).Error
	return reports, err
}

func (r *reportRepo) ListIDsByLecturer(ctx context.Context, lecturerID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&model.LectureReport{}).
		Where("lecturer_id = ?", lecturerID).
		Pluck("report_id", &ids).Error
	return ids, err
}
