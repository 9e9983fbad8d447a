package dto

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ana@lanchonete.com"`
	Password string `json:"password" binding:"required,min=8,max=20" example:"senha1234"`
	Nickname string `json:"nickname" binding:"required,min=2,max=50" example:"Ana"`
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"ana@lanchonete.com"`
	Password string `json:"password" binding:"required" example:"senha1234"`
}

// AssignRoleRequest 修改角色
type AssignRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=estudante equipe admin" example:"equipe"`
}

// UserResponse 用户信息（不包含密码）
type UserResponse struct {
	ID       uint   `json:"id" example:"1"`
	Email    string `json:"email" example:"ana@lanchonete.com"`
	Nickname string `json:"nickname" example:"Ana"`
	Role     string `json:"role" example:"estudante"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int64        `json:"expires_in" example:"7200"`
}
