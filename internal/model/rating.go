package model

// Rating 学生对授课报告的评分，对应表 ratings
type Rating struct {
	RatingID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"rating_id"`
	ReportID    string `gorm:"type:uuid;not null"                             json:"report_id"`
	StudentID   string `gorm:"type:uuid;not null"                             json:"student_id"`
	RatingValue int    `gorm:"not null"                                       json:"rating_value"`
	Comment     string `gorm:"type:text;not null;default:''"                  json:"comment"`
	BaseModel

	// 关联
	Report  *LectureReport `gorm:"foreignKey:ReportID;references:ReportID" json:"report,omitempty"`
	Student *User          `gorm:"foreignKey:StudentID;references:UserID"  json:"student,omitempty"`
}

// TableName 指定表名
func (Rating) TableName() string { return "ratings" }
