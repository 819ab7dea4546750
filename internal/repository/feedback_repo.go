package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"luct-report/backend/internal/model"
	"luct-report/backend/internal/policy"
)

// FeedbackRepository 反馈数据访问接口
type FeedbackRepository interface {
	Create(ctx context.Context, fb *model.Feedback) error
	List(ctx context.Context, f policy.Filter) ([]model.Feedback, error)
}

type feedbackRepo struct {
	db *gorm.DB
}

// NewFeedbackRepo 创建 FeedbackRepository 实例
func NewFeedbackRepo(db *gorm.DB) FeedbackRepository {
	return &feedbackRepo{db: db}
}

func (r *feedbackRepo) Create(ctx context.Context, fb *model.Feedback) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(fb).Error
}

func (r *feedbackRepo) List(ctx context.Context, f policy.Filter) ([]model.Feedback, error) {
	db, ok, err := applyFilter(r.db.WithContext(ctx).Model(&model.Feedback{}).Select("feedback.*"), f, feedbackColumns)
	if err != nil || !ok {
		return []model.Feedback{}, err
	}

	var items []model.Feedback
	err = db.Preload("Report.Class.Course").
		Preload("PrincipalLecturer").
		Order("feedback.created_at DESC").
		Find(&items).Error
	return items, err
}
