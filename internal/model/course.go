package model

// Course 课程目录，对应表 courses
type Course struct {
	CourseID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"course_id"`
	CourseCode string  `gorm:"type:varchar(30);not null"                      json:"course_code"`
	CourseName string  `gorm:"type:varchar(200);not null"                     json:"course_name"`
	CourseType string  `gorm:"type:varchar(50);not null"                      json:"course_type"`
	Credits    float64 `gorm:"type:numeric(5,2);not null"                     json:"credits"`
	Program    string  `gorm:"type:varchar(100);not null"                     json:"program"`
	Faculty    string  `gorm:"type:varchar(150);not null"                     json:"faculty"`
	BaseModel
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }
