// worker 消费订单事件：厨房出单提醒、取餐提醒、低库存提醒
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/lanchonete/internal/infrastructure/config"
	"github.com/xiebiao/lanchonete/internal/infrastructure/logger"
	"github.com/xiebiao/lanchonete/internal/infrastructure/messaging"
	"github.com/xiebiao/lanchonete/pkg/metrics"
	"github.com/xiebiao/lanchonete/pkg/mq"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	zl, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	if !cfg.MQ.Enabled {
		zl.Warn("mq.enabled为false，worker无事可做")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
		srv := metrics.NewServer(cfg.Metrics.WorkerAddr, cfg.Metrics.Path)
		go func() {
			zl.Info("指标服务启动", zap.String("addr", srv.Addr), zap.String("path", cfg.Metrics.Path))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				zl.Error("指标服务异常退出", zap.Error(err))
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	consumer, err := mq.NewConsumer(cfg.MQ.URL, cfg.MQ.Exchange, "topic", cfg.MQ.Queue, messaging.WorkerRoutingKeys, zl)
	if err != nil {
		zl.Fatal("创建消费者失败", zap.Error(err))
	}
	defer func() {
		if err := consumer.Close(); err != nil {
			zl.Warn("关闭消费者失败", zap.Error(err))
		}
	}()

	notifier := messaging.NewNotifier(zl)
	if err := consumer.Consume(ctx, notifier.Handle); err != nil {
		zl.Error("消费中断", zap.Error(err))
	}
}
