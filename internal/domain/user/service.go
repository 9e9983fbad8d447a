package user

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
)

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	hasLetter    = regexp.MustCompile(`[a-zA-Z]`)
	hasDigit     = regexp.MustCompile(`[0-9]`)
)

// Service 用户领域服务
type Service interface {
	// Register 注册；adminEmails中的邮箱注册为admin，其余为顾客
	Register(ctx context.Context, email, password, nickname string) (*User, error)

	// Login 校验邮箱密码
	Login(ctx context.Context, email, password string) (*User, error)

	// AssignRole 管理员修改用户角色
	AssignRole(ctx context.Context, caller Caller, userID uint, role Role) (*User, error)
}

type service struct {
	repo        Repository
	adminEmails map[string]struct{}
	bcryptCost  int
}

// AdminEmails 注册即为管理员的邮箱列表（来自配置）
type AdminEmails []string

// NewService 创建用户服务
func NewService(repo Repository, adminEmails AdminEmails) Service {
	set := make(map[string]struct{}, len(adminEmails))
	for _, e := range adminEmails {
		set[strings.ToLower(strings.TrimSpace(e))] = struct{}{}
	}
	return &service{repo: repo, adminEmails: set, bcryptCost: 12}
}

// Register 用户注册
// 1. 邮箱格式校验
// 2. 密码强度校验（8-20位，包含字母和数字）
// 3. bcrypt加密
// 4. 邮箱唯一性由数据库UNIQUE索引保证
func (s *service) Register(ctx context.Context, email, password, nickname string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "E-mail inválido.")
	}

	if err := validatePasswordStrength(password); err != nil {
		return nil, err
	}

	if n := len([]rune(nickname)); n < 2 || n > 50 {
		return nil, apperrors.New(apperrors.ErrCodeInvalidParams, "O nome deve ter entre 2 e 50 caracteres.")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(err, "Falha ao processar a senha.")
	}

	role := RoleCustomer
	if _, ok := s.adminEmails[email]; ok {
		role = RoleAdmin
	}

	u := NewUser(email, string(hashed), nickname, role)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

// Login 用户登录
func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, apperrors.ErrInvalidPassword
		}
		return nil, apperrors.Wrap(err, "Falha ao verificar a senha.")
	}

	return u, nil
}

// AssignRole 修改角色，仅管理员可用
func (s *service) AssignRole(ctx context.Context, caller Caller, userID uint, role Role) (*User, error) {
	if !caller.IsAdmin() {
		return nil, apperrors.ErrForbidden
	}
	if !role.Valid() {
		return nil, apperrors.Newf(apperrors.ErrCodeInvalidParams, "Papel desconhecido: %s", role)
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateRole(ctx, userID, role); err != nil {
		return nil, err
	}
	u.ChangeRole(role)
	return u, nil
}

// validatePasswordStrength 8-20位，必须包含字母和数字
func validatePasswordStrength(password string) error {
	if len(password) < 8 || len(password) > 20 {
		return apperrors.ErrWeakPassword
	}
	if !hasLetter.MatchString(password) || !hasDigit.MatchString(password) {
		return apperrors.ErrWeakPassword
	}
	return nil
}
