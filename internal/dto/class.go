package dto

// ── 班级模块 DTO ──

// CreateClassRequest 新增班级请求
type CreateClassRequest struct {
	ClassName               string `json:"class_name"                validate:"required,max=100"`
	CourseID                string `json:"course_id"                 validate:"required,uuid"`
	Venue                   string `json:"venue"                     validate:"required,max=100"`
	ScheduledTime           string `json:"scheduled_time"            validate:"required,max=50"`
	TotalRegisteredStudents Int    `json:"total_registered_students" validate:"gte=0"`
	LecturerID              string `json:"lecturer_id"               validate:"omitempty,uuid"`
}

// ClassResponse 班级信息，附带课程与讲师名称
type ClassResponse struct {
	ID                      string `json:"class_id"`
	ClassName               string `json:"class_name"`
	CourseID                string `json:"course_id"`
	CourseCode              string `json:"course_code,omitempty"`
	CourseName              string `json:"course_name,omitempty"`
	Program                 string `json:"program,omitempty"`
	Venue                   string `json:"venue"`
	ScheduledTime           string `json:"scheduled_time"`
	TotalRegisteredStudents int    `json:"total_registered_students"`
	LecturerID              string `json:"lecturer_id,omitempty"`
	LecturerName            string `json:"lecturer_name,omitempty"`
}
