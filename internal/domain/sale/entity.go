package sale

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/lanchonete/internal/domain/user"
)

// Status 订单状态
type Status string

const (
	StatusAwaitingPayment Status = "AGUARDANDO_PAGAMENTO"
	StatusPaid            Status = "PAGO"
	StatusInPreparation   Status = "EM_PREPARO"
	StatusReady           Status = "PRONTO"
	StatusCompleted       Status = "FINALIZADO"
	StatusCancelled       Status = "CANCELADO"
)

var statusLabels = map[Status]string{
	StatusAwaitingPayment: "Aguardando Pagamento",
	StatusPaid:            "Pago",
	StatusInPreparation:   "Em Preparo",
	StatusReady:           "Pronto para Retirada",
	StatusCompleted:       "Finalizado/Entregue",
	StatusCancelled:       "Cancelado",
}

// Label 展示名称
func (s Status) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// Valid 是否为已知状态
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// IsActive 是否仍在处理队列中（未完成也未取消）
func (s Status) IsActive() bool {
	return s != StatusCompleted && s != StatusCancelled
}

// 报表统计口径
var (
	// SalesReportStatuses 销售报表：已付款的所有状态
	SalesReportStatuses = []Status{StatusPaid, StatusInPreparation, StatusReady, StatusCompleted}

	// ProfitabilityStatuses 利润报表只统计PAGO和FINALIZADO，口径与销售报表不同
	ProfitabilityStatuses = []Status{StatusPaid, StatusCompleted}
)

// PaymentMethod 支付方式
type PaymentMethod string

const (
	PaymentOnPickup   PaymentMethod = "NA_RETIRADA"
	PaymentOnline     PaymentMethod = "ONLINE"
	PaymentCash       PaymentMethod = "DINHEIRO"
	PaymentDebitCard  PaymentMethod = "CARTAO_DEBITO"
	PaymentCreditCard PaymentMethod = "CARTAO_CREDITO"
	PaymentPix        PaymentMethod = "PIX"
)

var paymentLabels = map[PaymentMethod]string{
	PaymentOnPickup:   "Pagar na Retirada",
	PaymentOnline:     "Pago Online",
	PaymentCash:       "Dinheiro",
	PaymentDebitCard:  "Cartão de Débito",
	PaymentCreditCard: "Cartão de Crédito",
	PaymentPix:        "Pix",
}

func (p PaymentMethod) Label() string {
	if l, ok := paymentLabels[p]; ok {
		return l
	}
	return string(p)
}

func (p PaymentMethod) Valid() bool {
	_, ok := paymentLabels[p]
	return ok
}

// IsCounter 柜台（PDV）支付方式，下单即已付款
func (p PaymentMethod) IsCounter() bool {
	switch p {
	case PaymentCash, PaymentDebitCard, PaymentCreditCard, PaymentPix:
		return true
	}
	return false
}

// InitialStatus 根据支付渠道确定初始状态
func (p PaymentMethod) InitialStatus() Status {
	if p.IsCounter() {
		return StatusPaid
	}
	return StatusAwaitingPayment
}

// CounterSaleOwnerName 柜台订单没有顾客，展示时使用的占位名
const CounterSaleOwnerName = "Venda no Balcão"

// Sale 订单聚合根
type Sale struct {
	ID            uint
	CustomerID    *uint
	CustomerName  string // 读模型，来自users表
	Status        Status
	PaymentMethod PaymentMethod
	TotalAmount   decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Items         []*LineItem
}

// LineItem 订单明细
// ProductID是弱引用：商品被删除后置空，名称和单价是下单时的快照
type LineItem struct {
	ID          uint
	SaleID      uint
	ProductID   *uint
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// Subtotal 小计，不落库
func (l *LineItem) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// NewLineItem 以商品当前名称和售价生成明细快照
func NewLineItem(productID uint, productName string, unitPrice decimal.Decimal, quantity int) (*LineItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	id := productID
	return &LineItem{
		ProductID:   &id,
		ProductName: productName,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}, nil
}

// NewSale 创建订单
// 初始状态由支付方式决定；只有自助下单且调用方已登录时才记录顾客
func NewSale(caller user.Caller, method PaymentMethod, items []*LineItem) (*Sale, error) {
	if method == "" {
		return nil, ErrPaymentMethodRequired
	}
	if !method.Valid() {
		return nil, ErrInvalidPaymentMethod
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	total := decimal.Zero
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		total = total.Add(item.Subtotal())
	}

	s := &Sale{
		Status:        method.InitialStatus(),
		PaymentMethod: method,
		TotalAmount:   total,
		Items:         items,
	}
	if !method.IsCounter() && caller.IsAuthenticated() {
		id := caller.ID
		s.CustomerID = &id
		s.CustomerName = caller.Name
	}
	return s, nil
}

// OwnerName 展示用的顾客名称
func (s *Sale) OwnerName() string {
	if s.CustomerID == nil || s.CustomerName == "" {
		return CounterSaleOwnerName
	}
	return s.CustomerName
}

// IsOwnedBy 调用方是否为订单所有者
func (s *Sale) IsOwnedBy(caller user.Caller) bool {
	return caller.IsAuthenticated() && s.CustomerID != nil && *s.CustomerID == caller.ID
}

// CanView 店员或订单所有者可查看
func (s *Sale) CanView(caller user.Caller) bool {
	return caller.IsStaff() || s.IsOwnedBy(caller)
}

// ItemsTotal 按明细重新计算的合计，仅用于核对TotalAmount
func (s *Sale) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}
