package sale

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/lanchonete/internal/domain/report"
	"github.com/xiebiao/lanchonete/internal/domain/sale"
	"github.com/xiebiao/lanchonete/pkg/metrics"
)

const tracerName = "lanchonete/application/sale"

// Effects 事务提交后的副作用：报表缓存失效、事件发布
// 失败只记录日志，订单数据已经提交
type Effects struct {
	publisher sale.EventPublisher
	cache     report.Cache
	logger    *zap.Logger
}

func NewEffects(publisher sale.EventPublisher, cache report.Cache, logger *zap.Logger) *Effects {
	return &Effects{publisher: publisher, cache: cache, logger: logger}
}

func (e *Effects) afterCommit(ctx context.Context, events ...sale.Event) {
	if err := e.cache.Invalidate(ctx); err != nil {
		e.logger.Warn("报表缓存失效失败", zap.Error(err))
	}
	if len(events) == 0 {
		return
	}
	// 请求被取消也要把事件发出去
	if err := e.publisher.Publish(context.WithoutCancel(ctx), events...); err != nil {
		e.logger.Warn("订单事件发布失败", zap.Int("events", len(events)), zap.Error(err))
	}
}

func observeTransition(t sale.Transition) {
	if metrics.SaleStatusTransitionsTotal == nil || !t.Changed {
		return
	}
	metrics.IncCounterVec(metrics.SaleStatusTransitionsTotal, map[string]string{
		"from": string(t.From),
		"to":   string(t.To),
	})
}
