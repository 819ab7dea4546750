package dto

// 搜索类型
const (
	SearchReports = "reports"
	SearchCourses = "courses"
	SearchUsers   = "users"
)

// SearchRequest 全局搜索查询参数
type SearchRequest struct {
	Q    string `form:"q"    json:"q"    validate:"required,max=100"`
	Type string `form:"type" json:"type" validate:"omitempty,oneof=reports courses users"`
}

// SearchResponse 未指定类型时的聚合结果，每类至多 10 条
type SearchResponse struct {
	Reports []ReportResponse     `json:"reports"`
	Courses []CourseResponse     `json:"courses"`
	Users   []PublicUserResponse `json:"users"`
}
