package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/lanchonete/internal/domain/report"
	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
)

const reportVersionKey = "report:version"

// reportCache 报表缓存
// 销售数据变更时只递增版本号，旧版本的key自然过期，不需要扫描删除
type reportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewReportCache(client *redis.Client, ttl time.Duration) report.Cache {
	return &reportCache{client: client, ttl: ttl}
}

func (c *reportCache) Version(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, reportVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, apperrors.Wrap(err, "Falha ao ler a versão dos relatórios.")
	}
	return v, nil
}

func (c *reportCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.Wrap(err, "Falha ao ler o cache de relatórios.")
	}
	if err := json.Unmarshal(data, dest); err != nil {
		// 结构变更后的旧数据当作未命中
		return false, nil
	}
	return true, nil
}

func (c *reportCache) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return apperrors.Wrap(err, "Falha ao serializar o relatório.")
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return apperrors.Wrap(err, "Falha ao gravar o cache de relatórios.")
	}
	return nil
}

func (c *reportCache) Invalidate(ctx context.Context) error {
	if err := c.client.Incr(ctx, reportVersionKey).Err(); err != nil {
		return apperrors.Wrap(err, "Falha ao invalidar o cache de relatórios.")
	}
	return nil
}
