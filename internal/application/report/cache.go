package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/lanchonete/internal/domain/report"
	"github.com/xiebiao/lanchonete/pkg/metrics"
)

// reportCache 报表缓存的读写
// Redis不可用时退化为直接计算，报表仍然可用
type reportCache struct {
	cache  report.Cache
	logger *zap.Logger
	name   string
}

// noVersion 读取版本失败，本次不读也不写缓存
const noVersion = -1

func (c reportCache) lookup(ctx context.Context, key func(int64) string, dest any) (int64, bool) {
	version, err := c.cache.Version(ctx)
	if err != nil {
		c.logger.Warn("读取报表版本失败", zap.String("report", c.name), zap.Error(err))
		c.observe("error")
		return noVersion, false
	}

	hit, err := c.cache.Get(ctx, key(version), dest)
	switch {
	case err != nil:
		c.logger.Warn("读取报表缓存失败", zap.String("report", c.name), zap.Error(err))
		c.observe("error")
	case hit:
		c.observe("hit")
	default:
		c.observe("miss")
	}
	return version, hit
}

func (c reportCache) store(ctx context.Context, version int64, key func(int64) string, value any) {
	if version == noVersion {
		return
	}
	if err := c.cache.Set(ctx, key(version), value); err != nil {
		c.logger.Warn("写入报表缓存失败", zap.String("report", c.name), zap.Error(err))
	}
}

func (c reportCache) observe(result string) {
	if metrics.ReportCacheTotal == nil {
		return
	}
	metrics.IncCounterVec(metrics.ReportCacheTotal, map[string]string{"report": c.name, "result": result})
}
