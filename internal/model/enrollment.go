package model

// Enrollment 学生选班关系，对应表 student_classes
type Enrollment struct {
	EnrollmentID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"enrollment_id"`
	StudentID    string `gorm:"type:uuid;not null"                             json:"student_id"`
	ClassID      string `gorm:"type:uuid;not null"                             json:"class_id"`
	BaseModel
}

// TableName 指定表名
func (Enrollment) TableName() string { return "student_classes" }
