package dto

// ── 授课报告模块 DTO ──

// CreateReportRequest 提交授课报告请求，lecturer_id 取自当前身份
type CreateReportRequest struct {
	ClassID                 string `json:"class_id"                 validate:"required,uuid"`
	WeekOfReporting         string `json:"week_of_reporting"        validate:"required,max=30"`
	DateOfLecture           string `json:"date_of_lecture"          validate:"required,datetime=2006-01-02"`
	ActualStudentsPresent   Int    `json:"actual_students_present"  validate:"required,gt=0"`
	TopicTaught             string `json:"topic_taught"             validate:"required"`
	LearningOutcomes        string `json:"learning_outcomes"        validate:"required"`
	LecturerRecommendations string `json:"lecturer_recommendations" validate:"required"`
}

// ReportResponse 授课报告，附带班级、课程与讲师信息
type ReportResponse struct {
	ID                      string `json:"report_id"`
	ClassID                 string `json:"class_id"`
	ClassName               string `json:"class_name,omitempty"`
	CourseCode              string `json:"course_code,omitempty"`
	CourseName              string `json:"course_name,omitempty"`
	Program                 string `json:"program,omitempty"`
	Faculty                 string `json:"faculty,omitempty"`
	Venue                   string `json:"venue,omitempty"`
	ScheduledTime           string `json:"scheduled_time,omitempty"`
	TotalRegisteredStudents int    `json:"total_registered_students"`
	LecturerID              string `json:"lecturer_id"`
	LecturerName            string `json:"lecturer_name,omitempty"`
	WeekOfReporting         string `json:"week_of_reporting"`
	DateOfLecture           string `json:"date_of_lecture"`
	ActualStudentsPresent   int    `json:"actual_students_present"`
	TopicTaught             string `json:"topic_taught"`
	LearningOutcomes        string `json:"learning_outcomes"`
	LecturerRecommendations string `json:"lecturer_recommendations"`
	CreatedAt               string `json:"created_at"`
}
