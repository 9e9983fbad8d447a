package user

import (
	"time"
)

// Role 用户角色
type Role string

const (
	RoleCustomer Role = "estudante" // 顾客（自助点餐）
	RoleStaff    Role = "equipe"    // 店员
	RoleAdmin    Role = "admin"     // 管理员
)

// Valid 是否为已知角色
func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// IsStaff 店员能力：equipe和admin都具备
func (r Role) IsStaff() bool {
	return r == RoleStaff || r == RoleAdmin
}

// User 用户实体（聚合根）
// 密码字段保存bcrypt哈希值
type User struct {
	ID        uint
	Email     string
	Password  string
	Nickname  string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（hashedPassword必须是bcrypt加密后的密码）
func NewUser(email, hashedPassword, nickname string, role Role) *User {
	now := time.Now()
	return &User{
		Email:     email,
		Password:  hashedPassword,
		Nickname:  nickname,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ChangeRole 修改角色
func (u *User) ChangeRole(role Role) {
	u.Role = role
	u.UpdatedAt = time.Now()
}

// Caller 当前请求的调用方身份
// 由HTTP中间件从JWT解析后显式传入每个用例，零值表示匿名调用
type Caller struct {
	ID   uint
	Name string
	Role Role
}

// Anonymous 匿名调用方
var Anonymous = Caller{}

// IsAuthenticated 是否已登录
func (c Caller) IsAuthenticated() bool {
	return c.ID != 0
}

// IsStaff 是否具备店员能力
func (c Caller) IsStaff() bool {
	return c.IsAuthenticated() && c.Role.IsStaff()
}

// IsAdmin 是否为管理员
func (c Caller) IsAdmin() bool {
	return c.IsAuthenticated() && c.Role == RoleAdmin
}
