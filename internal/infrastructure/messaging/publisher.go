// Package messaging 把订单领域事件发布到RabbitMQ
package messaging

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/lanchonete/internal/domain/sale"
	"github.com/xiebiao/lanchonete/internal/infrastructure/config"
	"github.com/xiebiao/lanchonete/pkg/circuitbreaker"
	"github.com/xiebiao/lanchonete/pkg/metrics"
	"github.com/xiebiao/lanchonete/pkg/mq"
)

const (
	exchangeType = "topic"
	breakerName  = "rabbitmq-publisher"
)

// broker pkg/mq.Publisher的发布能力
type broker interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// SalePublisher 事件发布器
// routing key即事件类型；MQ故障时熔断，发布失败只记日志，不影响已提交的事务
type SalePublisher struct {
	broker  broker
	breaker *circuitbreaker.CircuitBreaker
	timeout time.Duration
	logger  *zap.Logger
}

func newSalePublisher(b broker, logger *zap.Logger) *SalePublisher {
	cb := circuitbreaker.NewCircuitBreaker(breakerName, circuitbreaker.Config{
		MaxRequests: 1,
		Timeout:     30 * time.Second,
	})
	cb.SetStateChangeCallback(func(name string, from, to circuitbreaker.State) {
		logger.Warn("熔断器状态变化", zap.String("name", name), zap.String("from", from.String()), zap.String("to", to.String()))
		if metrics.CircuitBreakerState != nil {
			metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, float64(to))
		}
	})

	return &SalePublisher{
		broker:  b,
		breaker: cb,
		timeout: 3 * time.Second,
		logger:  logger,
	}
}

// NewEventPublisher 按配置返回事件发布器
// 未启用MQ时返回NopPublisher，cleanup负责关闭连接
func NewEventPublisher(cfg *config.Config, logger *zap.Logger) (sale.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		logger.Info("消息队列未启用，事件不会发布")
		return sale.NopPublisher{}, func() {}, nil
	}

	p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, exchangeType, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := p.Close(); err != nil {
			logger.Warn("关闭消息发布者失败", zap.Error(err))
		}
	}
	return newSalePublisher(p, logger), cleanup, nil
}

// Publish 逐条发布，返回第一个错误；熔断打开时直接跳过剩余事件
func (p *SalePublisher) Publish(ctx context.Context, events ...sale.Event) error {
	var firstErr error
	for _, e := range events {
		err := p.breaker.Execute(func() error {
			pubCtx, cancel := context.WithTimeout(ctx, p.timeout)
			defer cancel()
			return p.broker.Publish(pubCtx, string(e.Type), e)
		})
		p.observe(err)
		if err == nil {
			continue
		}

		p.logger.Warn("事件发布失败",
			zap.String("event_id", e.ID),
			zap.String("type", string(e.Type)),
			zap.Uint("sale_id", e.SaleID),
			zap.Error(err),
		)
		if firstErr == nil {
			firstErr = err
		}
		if errors.Is(err, circuitbreaker.ErrOpenState) {
			break
		}
	}
	return firstErr
}

func (p *SalePublisher) observe(err error) {
	if metrics.CircuitBreakerRequests == nil {
		return
	}
	result := "success"
	switch {
	case errors.Is(err, circuitbreaker.ErrOpenState):
		result = "rejected"
	case err != nil:
		result = "failure"
	}
	metrics.IncCounterVec(metrics.CircuitBreakerRequests, map[string]string{"name": breakerName, "result": result})
}
