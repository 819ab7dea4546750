package repository

import (
	"context"

	"gorm.io/gorm"

	"luct-report/backend/internal/model"
	"luct-report/backend/internal/policy"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
	Search(ctx context.Context, f policy.Filter, keyword string, limit int) ([]model.User, error)
}

// userRepo UserRepository 的 GORM 实现
type userRepo struct {
	db *gorm.DB
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("user_id = ?", id).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Update 只写入资料字段，角色与密码哈希不在更新范围内
func (r *userRepo) Update(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).
		Model(user).
		Select("name", "email", "faculty", "course_program", "gender", "updated_at").
		Updates(user).Error
}

func (r *userRepo) Search(ctx context.Context, f policy.Filter, keyword string, limit int) ([]model.User, error) {
	db, ok, err := applyFilter(r.db.WithContext(ctx).Model(&model.User{}).Select("users.*"), f, userColumns)
	if err != nil || !ok {
		return []model.User{}, err
	}

	var users []model.User
	pattern := likePattern(keyword)
	err = db.Where("users.name ILIKE ? OR users.email ILIKE ?", pattern, pattern).
		Order("users.name ASC").
		Limit(limit).
		Find(&users).Error
	return users, err
}
