package user

import (
	"context"

	"github.com/xiebiao/lanchonete/internal/domain/user"
)

// RegisterUseCase 用户注册
// 配置的管理员邮箱注册后直接是admin，其余为顾客
type RegisterUseCase struct {
	userService user.Service
}

func NewRegisterUseCase(userService user.Service) *RegisterUseCase {
	return &RegisterUseCase{userService: userService}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, req RegisterRequest) (*UserInfo, error) {
	u, err := uc.userService.Register(ctx, req.Email, req.Password, req.Nickname)
	if err != nil {
		return nil, err
	}
	return toUserInfo(u), nil
}

// RegisterRequest 注册请求
type RegisterRequest struct {
	Email    string
	Password string
	Nickname string
}

// UserInfo 对外的用户信息，不含密码
type UserInfo struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

func toUserInfo(u *user.User) *UserInfo {
	return &UserInfo{
		ID:       u.ID,
		Email:    u.Email,
		Nickname: u.Nickname,
		Role:     string(u.Role),
	}
}

// AssignRoleUseCase 管理员修改用户角色
type AssignRoleUseCase struct {
	userService user.Service
}

func NewAssignRoleUseCase(userService user.Service) *AssignRoleUseCase {
	return &AssignRoleUseCase{userService: userService}
}

type AssignRoleRequest struct {
	Caller user.Caller
	UserID uint
	Role   string
}

func (uc *AssignRoleUseCase) Execute(ctx context.Context, req AssignRoleRequest) (*UserInfo, error) {
	u, err := uc.userService.AssignRole(ctx, req.Caller, req.UserID, user.Role(req.Role))
	if err != nil {
		return nil, err
	}
	return toUserInfo(u), nil
}
