package model

import "time"

// LectureReport 讲师授课报告，对应表 lecture_reports
// 提交后不可修改
type LectureReport struct {
	ReportID                string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"report_id"`
	ClassID                 string    `gorm:"type:uuid;not null"                             json:"class_id"`
	LecturerID              string    `gorm:"type:uuid;not null"                             json:"lecturer_id"`
	WeekOfReporting         string    `gorm:"type:varchar(30);not null"                      json:"week_of_reporting"`
	DateOfLecture           time.Time `gorm:"type:date;not null"                             json:"date_of_lecture"`
	ActualStudentsPresent   int       `gorm:"not null"                                       json:"actual_students_present"`
	TopicTaught             string    `gorm:"type:text;not null"                             json:"topic_taught"`
	LearningOutcomes        string    `gorm:"type:text;not null"                             json:"learning_outcomes"`
	LecturerRecommendations string    `gorm:"type:text;not null"                             json:"lecturer_recommendations"`
	BaseModel

	// 关联
	Class    *Class `gorm:"foreignKey:ClassID;references:ClassID"     json:"class,omitempty"`
	Lecturer *User  `gorm:"foreignKey:LecturerID;references:UserID"   json:"lecturer,omitempty"`
}

// TableName 指定表名
func (LectureReport) TableName() string { return "lecture_reports" }
