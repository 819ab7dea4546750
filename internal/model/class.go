package model

// Class 课程的具体开课班级，对应表 classes
type Class struct {
	ClassID                 string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"class_id"`
	ClassName               string  `gorm:"type:varchar(100);not null"                     json:"class_name"`
	CourseID                string  `gorm:"type:uuid;not null"                             json:"course_id"`
	Venue                   string  `gorm:"type:varchar(100);not null"                     json:"venue"`
	ScheduledTime           string  `gorm:"type:varchar(50);not null"                      json:"scheduled_time"`
	TotalRegisteredStudents int     `gorm:"not null;default:0"                             json:"total_registered_students"`
	LecturerID              *string `gorm:"type:uuid"                                      json:"lecturer_id,omitempty"`
	BaseModel

	// 关联
	Course   *Course `gorm:"foreignKey:CourseID;references:CourseID"   json:"course,omitempty"`
	Lecturer *User   `gorm:"foreignKey:LecturerID;references:UserID"   json:"lecturer,omitempty"`
}

// TableName 指定表名
func (Class) TableName() string { return "classes" }
