package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/lanchonete/internal/domain/user"
	"github.com/xiebiao/lanchonete/internal/infrastructure/persistence/redis"
	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
	"github.com/xiebiao/lanchonete/pkg/jwt"
	"github.com/xiebiao/lanchonete/pkg/response"
)

// Context中的键
const (
	ctxUserID   = "user_id"
	ctxNickname = "nickname"
	ctxRole     = "role"
	ctxToken    = "access_token"
)

// AuthMiddleware JWT认证中间件
// 1. 从Header提取Bearer Token
// 2. 检查黑名单（已登出的Token）
// 3. 校验签名和有效期
// 4. 把用户ID、昵称、角色写入Context，Handler通过Caller(c)取用
type AuthMiddleware struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// RequireAuth 要求登录
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			response.ErrorWithCode(c, apperrors.ErrCodeUnauthorized, "Autenticação necessária.")
			c.Abort()
			return
		}
		if !m.authenticate(c) {
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuth 可选登录
// 没有Token按匿名处理；带了Token但无效时直接拒绝，避免登录用户被静默当成匿名下单
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.Next()
			return
		}
		if !m.authenticate(c) {
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireStaff 要求店员或管理员，需放在RequireAuth之后
func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Caller(c).IsStaff() {
			response.Error(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin 要求管理员，需放在RequireAuth之后
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Caller(c).IsAdmin() {
			response.Error(c, apperrors.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}

// authenticate 解析并校验Token，失败时已写入错误响应
func (m *AuthMiddleware) authenticate(c *gin.Context) bool {
	// Authorization: Bearer <token>
	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidToken, "Formato de token inválido.")
		return false
	}
	tokenString := parts[1]

	blacklisted, err := m.sessionStore.IsInBlacklist(c.Request.Context(), tokenString)
	if err != nil {
		response.Error(c, apperrors.Wrap(err, "Falha ao validar o token."))
		return false
	}
	if blacklisted {
		response.ErrorWithCode(c, apperrors.ErrCodeTokenExpired, "Token invalidado, faça login novamente.")
		return false
	}

	claims, err := m.jwtManager.ParseToken(tokenString)
	if err != nil {
		response.Error(c, err)
		return false
	}

	c.Set(ctxUserID, claims.UserID)
	c.Set(ctxNickname, claims.Nickname)
	c.Set(ctxRole, user.Role(claims.Role))
	c.Set(ctxToken, tokenString)
	return true
}

// =========================================
// Context辅助函数（供Handler使用）
// =========================================

// Caller 当前调用方，未登录时为匿名
func Caller(c *gin.Context) user.Caller {
	caller := user.Caller{ID: GetUserID(c)}
	if caller.ID == 0 {
		return user.Anonymous
	}
	caller.Name = c.GetString(ctxNickname)
	if role, ok := c.Get(ctxRole); ok {
		caller.Role, _ = role.(user.Role)
	}
	return caller
}

// GetUserID 当前登录用户ID，未登录为0
func GetUserID(c *gin.Context) uint {
	if userID, exists := c.Get(ctxUserID); exists {
		if uid, ok := userID.(uint); ok {
			return uid
		}
	}
	return 0
}

// GetToken 当前请求携带的Access Token（登出时加入黑名单）
func GetToken(c *gin.Context) string {
	return c.GetString(ctxToken)
}
