package dto

// ── 课程模块 DTO ──

// CreateCourseRequest 新增课程请求，faculty 由服务端统一填充
type CreateCourseRequest struct {
	CourseCode string  `json:"course_code" validate:"required,max=30"`
	CourseName string  `json:"course_name" validate:"required,max=200"`
	CourseType string  `json:"course_type" validate:"required,max=50"`
	Credits    Float   `json:"credits"     validate:"required,gt=0"`
	Program    string  `json:"program"     validate:"required,max=100"`
}

// CourseResponse 课程信息
type CourseResponse struct {
	ID         string  `json:"course_id"`
	CourseCode string  `json:"course_code"`
	CourseName string  `json:"course_name"`
	CourseType string  `json:"course_type"`
	Credits    float64 `json:"credits"`
	Program    string  `json:"program"`
	Faculty    string  `json:"faculty"`
}
