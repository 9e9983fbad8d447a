package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType 库存变动类型
type MovementType string

const (
	MovementDebit   MovementType = "DEBIT"   // 下单扣减
	MovementCredit  MovementType = "CREDIT"  // 取消回补
	MovementRestock MovementType = "RESTOCK" // 手工补货
)

// StockMovement 库存流水，和库存变更写在同一事务里
type StockMovement struct {
	ID          uint
	StockItemID uint
	SaleID      *uint
	Type        MovementType
	Quantity    decimal.Decimal
	Before      decimal.Decimal
	After       decimal.Decimal
	Remark      string
	CreatedAt   time.Time
}

// Debit 从库存项扣减数量，返回流水；不允许扣成负数
func (s *StockItem) Debit(qty decimal.Decimal, saleID *uint, remark string) (*StockMovement, error) {
	if !qty.IsPositive() {
		return nil, ErrInvalidQuantity
	}
	after := s.Quantity.Sub(qty)
	if after.IsNegative() {
		return nil, ErrNegativeStock
	}
	return s.apply(MovementDebit, qty, after, saleID, remark), nil
}

// Credit 回补库存（取消订单）
func (s *StockItem) Credit(qty decimal.Decimal, saleID *uint, remark string) (*StockMovement, error) {
	if !qty.IsPositive() {
		return nil, ErrInvalidQuantity
	}
	return s.apply(MovementCredit, qty, s.Quantity.Add(qty), saleID, remark), nil
}

// Restock 手工补货
func (s *StockItem) Restock(qty decimal.Decimal, remark string) (*StockMovement, error) {
	if !qty.IsPositive() {
		return nil, ErrInvalidQuantity
	}
	return s.apply(MovementRestock, qty, s.Quantity.Add(qty), nil, remark), nil
}

func (s *StockItem) apply(t MovementType, qty, after decimal.Decimal, saleID *uint, remark string) *StockMovement {
	m := &StockMovement{
		StockItemID: s.ID,
		SaleID:      saleID,
		Type:        t,
		Quantity:    qty,
		Before:      s.Quantity,
		After:       after,
		Remark:      remark,
	}
	s.Quantity = after
	return m
}
