package messaging

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/xiebiao/lanchonete/internal/domain/sale"
)

// WorkerRoutingKeys 工作进程订阅的事件
var WorkerRoutingKeys = []string{"sale.*", "stock.*"}

// Notifier 消费订单事件，输出厨房和库存提醒
type Notifier struct {
	logger *zap.Logger
}

func NewNotifier(logger *zap.Logger) *Notifier {
	return &Notifier{logger: logger.Named("notifier")}
}

// Handle 实现mq.Handler
// 无法解析的消息直接丢弃（返回nil），否则会被反复重新入队
func (n *Notifier) Handle(_ context.Context, routingKey string, body []byte) error {
	var e sale.Event
	if err := json.Unmarshal(body, &e); err != nil {
		n.logger.Error("无法解析的事件，已丢弃", zap.String("routing_key", routingKey), zap.Error(err))
		return nil
	}

	fields := []zap.Field{
		zap.String("event_id", e.ID),
		zap.String("type", string(e.Type)),
		zap.Time("occurred_at", e.OccurredAt),
	}

	switch e.Type {
	case sale.EventSaleCreated, sale.EventSalePaid:
		fields = append(fields, zap.Uint("sale_id", e.SaleID), zap.String("total", e.TotalAmount.StringFixed(2)))
		if e.Status == sale.StatusPaid {
			n.logger.Info("新订单进入厨房队列", fields...)
			return nil
		}
		n.logger.Info("订单等待付款", fields...)

	case sale.EventSaleStatusChanged:
		fields = append(fields,
			zap.Uint("sale_id", e.SaleID),
			zap.String("from", string(e.PreviousStatus)),
			zap.String("to", string(e.Status)),
		)
		if e.Status == sale.StatusReady {
			n.logger.Info("订单可以取餐", fields...)
			return nil
		}
		n.logger.Info("订单状态变更", fields...)

	case sale.EventSaleCancelled:
		fields = append(fields, zap.Uint("sale_id", e.SaleID), zap.String("from", string(e.PreviousStatus)))
		n.logger.Info("订单已取消，库存已回补", fields...)

	case sale.EventStockLow:
		fields = append(fields, zap.Uint("stock_item_id", e.StockItemID), zap.String("name", e.StockItemName))
		if e.Quantity != nil && e.MinimumLevel != nil {
			fields = append(fields, zap.String("quantity", e.Quantity.String()), zap.String("minimum", e.MinimumLevel.String()))
		}
		n.logger.Warn("库存低于最低值，请补货", fields...)

	default:
		n.logger.Debug("忽略未知事件", zap.String("routing_key", routingKey))
	}
	return nil
}
