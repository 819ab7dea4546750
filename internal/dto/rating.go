package dto

// ── 评分与反馈模块 DTO ──

// CreateRatingRequest 学生评分请求
type CreateRatingRequest struct {
	ReportID    string `json:"report_id"    validate:"required,uuid"`
	RatingValue Int    `json:"rating_value" validate:"required,min=1,max=5"`
	Comment     string `json:"comment"      validate:"omitempty,max=2000"`
}

// RatingResponse 评分记录，附带报告与学生信息
type RatingResponse struct {
	ID          string `json:"rating_id"`
	ReportID    string `json:"report_id"`
	TopicTaught string `json:"topic_taught,omitempty"`
	ClassName   string `json:"class_name,omitempty"`
	CourseName  string `json:"course_name,omitempty"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name,omitempty"`
	RatingValue int    `json:"rating_value"`
	Comment     string `json:"comment"`
	CreatedAt   string `json:"created_at"`
}

// CreateFeedbackRequest 首席讲师反馈请求
type CreateFeedbackRequest struct {
	ReportID     string `json:"report_id"     validate:"required,uuid"`
	FeedbackText string `json:"feedback_text" validate:"required"`
}

// FeedbackResponse 反馈记录，附带报告与首席讲师信息
type FeedbackResponse struct {
	ID                    string `json:"feedback_id"`
	ReportID              string `json:"report_id"`
	TopicTaught           string `json:"topic_taught,omitempty"`
	ClassName             string `json:"class_name,omitempty"`
	CourseName            string `json:"course_name,omitempty"`
	PrincipalLecturerID   string `json:"principal_lecturer_id"`
	PrincipalLecturerName string `json:"principal_lecturer_name,omitempty"`
	FeedbackText          string `json:"feedback_text"`
	CreatedAt             string `json:"created_at"`
}
