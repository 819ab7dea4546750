package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"luct-report/backend/internal/model"
	"luct-report/backend/internal/policy"
)

// RatingRepository 评分数据访问接口
type RatingRepository interface {
	Create(ctx context.Context, rating *model.Rating) error
	List(ctx context.Context, f policy.Filter) ([]model.Rating, error)
}

type ratingRepo struct {
	db *gorm.DB
}

// NewRatingRepo 创建 RatingRepository 实例
func NewRatingRepo(db *gorm.DB) RatingRepository {
	return &ratingRepo{db: db}
}

func (r *ratingRepo) Create(ctx context.Context, rating *model.Rating) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(rating).Error
}

func (r *ratingRepo) List(ctx context.Context, f policy.Filter) ([]model.Rating, error) {
	db, ok, err := applyFilter(r.db.WithContext(ctx).Model(&model.Rating{}).Select("ratings.*"), f, ratingColumns)
	if err != nil || !ok {
		return []model.Rating{}, err
	}

	var ratings []model.Rating
	err = db.Preload("Report.Class.Course").
		Preload("Student").
		Order("ratings.created_at DESC").
		Find(&ratings).Error
	return ratings, err
}
