package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
)

// SessionStore 登录会话和Token黑名单
// Key：session:{user_id}（Hash）、blacklist:{token}
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Session 登录时记录的会话信息
type Session struct {
	Email     string
	Role      string
	LoginAt   time.Time
	ClientIP  string
	UserAgent string
}

func sessionKey(userID uint) string {
	return fmt.Sprintf("session:%d", userID)
}

func blacklistKey(token string) string {
	return "blacklist:" + token
}

// SaveSession 保存会话，ttl与Refresh Token一致
func (s *SessionStore) SaveSession(ctx context.Context, userID uint, session Session, ttl time.Duration) error {
	key := sessionKey(userID)

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, key, map[string]interface{}{
		"email":      session.Email,
		"role":       session.Role,
		"login_at":   session.LoginAt.UTC().Format(time.RFC3339),
		"client_ip":  session.ClientIP,
		"user_agent": session.UserAgent,
	})
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperrors.Wrap(err, "Falha ao salvar a sessão.")
	}
	return nil
}

// GetSession 会话不存在返回ErrUnauthorized
func (s *SessionStore) GetSession(ctx context.Context, userID uint) (*Session, error) {
	result, err := s.client.HGetAll(ctx, sessionKey(userID)).Result()
	if err != nil {
		return nil, apperrors.Wrap(err, "Falha ao obter a sessão.")
	}
	if len(result) == 0 {
		return nil, apperrors.ErrUnauthorized
	}

	loginAt, _ := time.Parse(time.RFC3339, result["login_at"])
	return &Session{
		Email:     result["email"],
		Role:      result["role"],
		LoginAt:   loginAt,
		ClientIP:  result["client_ip"],
		UserAgent: result["user_agent"],
	}, nil
}

func (s *SessionStore) DeleteSession(ctx context.Context, userID uint) error {
	if err := s.client.Del(ctx, sessionKey(userID)).Err(); err != nil {
		return apperrors.Wrap(err, "Falha ao remover a sessão.")
	}
	return nil
}

// AddToBlacklist 登出后的Access Token在剩余有效期内拒绝使用
func (s *SessionStore) AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := s.client.Set(ctx, blacklistKey(token), "revoked", ttl).Err(); err != nil {
		return apperrors.Wrap(err, "Falha ao invalidar o token.")
	}
	return nil
}

func (s *SessionStore) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	exists, err := s.client.Exists(ctx, blacklistKey(token)).Result()
	if err != nil {
		return false, apperrors.Wrap(err, "Falha ao verificar o token.")
	}
	return exists > 0, nil
}
