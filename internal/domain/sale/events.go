package sale

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType 事件类型，同时用作MQ routing key
type EventType string

const (
	EventSaleCreated       EventType = "sale.created"
	EventSalePaid          EventType = "sale.paid"
	EventSaleStatusChanged EventType = "sale.status_changed"
	EventSaleCancelled     EventType = "sale.cancelled"
	EventStockLow          EventType = "stock.low"
)

// Event 订单领域事件，只在事务提交后发布
type Event struct {
	ID             string          `json:"event_id"`
	Type           EventType       `json:"type"`
	OccurredAt     time.Time       `json:"occurred_at"`
	SaleID         uint            `json:"sale_id,omitempty"`
	Status         Status          `json:"status,omitempty"`
	PreviousStatus Status          `json:"previous_status,omitempty"`
	PaymentMethod  PaymentMethod   `json:"payment_method,omitempty"`
	TotalAmount    decimal.Decimal `json:"total_amount"`

	// stock.low 专用
	StockItemID   uint             `json:"stock_item_id,omitempty"`
	StockItemName string           `json:"stock_item_name,omitempty"`
	Quantity      *decimal.Decimal `json:"quantity,omitempty"`
	MinimumLevel  *decimal.Decimal `json:"minimum_level,omitempty"`
}

func newEvent(t EventType) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       t,
		OccurredAt: time.Now(),
	}
}

// NewSaleEvent 由订单当前状态生成事件
func NewSaleEvent(t EventType, s *Sale, previous Status) Event {
	e := newEvent(t)
	e.SaleID = s.ID
	e.Status = s.Status
	e.PreviousStatus = previous
	e.PaymentMethod = s.PaymentMethod
	e.TotalAmount = s.TotalAmount
	return e
}

// EventsForTransition 状态变更对应的事件
func EventsForTransition(s *Sale, t Transition) []Event {
	if !t.Changed {
		return nil
	}
	switch {
	case t.To == StatusCancelled:
		return []Event{NewSaleEvent(EventSaleCancelled, s, t.From)}
	case t.From == StatusAwaitingPayment && t.To == StatusPaid:
		return []Event{NewSaleEvent(EventSalePaid, s, t.From)}
	default:
		return []Event{NewSaleEvent(EventSaleStatusChanged, s, t.From)}
	}
}

// NewStockLowEvent 库存低于最低值
func NewStockLowEvent(stockItemID uint, name string, quantity, minimum decimal.Decimal) Event {
	e := newEvent(EventStockLow)
	e.StockItemID = stockItemID
	e.StockItemName = name
	e.Quantity = &quantity
	e.MinimumLevel = &minimum
	return e
}

// EventPublisher 事件发布端口，实现在infrastructure/messaging
type EventPublisher interface {
	Publish(ctx context.Context, events ...Event) error
}

// NopPublisher 未启用MQ时使用
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, ...Event) error { return nil }
