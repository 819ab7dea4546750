package model

// Feedback 首席讲师对授课报告的反馈，对应表 feedback
type Feedback struct {
	FeedbackID          string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"feedback_id"`
	ReportID            string `gorm:"type:uuid;not null"                             json:"report_id"`
	PrincipalLecturerID string `gorm:"type:uuid;not null"                             json:"principal_lecturer_id"`
	FeedbackText        string `gorm:"type:text;not null"                             json:"feedback_text"`
	BaseModel

	// 关联
	Report            *LectureReport `gorm:"foreignKey:ReportID;references:ReportID"            json:"report,omitempty"`
	PrincipalLecturer *User          `gorm:"foreignKey:PrincipalLecturerID;references:UserID"   json:"principal_lecturer,omitempty"`
}

// TableName 指定表名
func (Feedback) TableName() string { return "feedback" }
