package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem 库存项
// 数量、成本价都用decimal（库存可能按公斤等非整数单位计量）
type StockItem struct {
	ID                uint
	Name              string
	UnitOfMeasure     string
	Quantity          decimal.Decimal
	CostPrice         *decimal.Decimal // 可为空，报表中按0处理
	MinimumStockLevel decimal.Decimal
	ProfitPercentage  decimal.Decimal
	UpdatedAt         time.Time
}

// DefaultProfitPercentage 默认利润率100%（售价建议为成本的两倍）
var DefaultProfitPercentage = decimal.NewFromInt(100)

// NewStockItem 创建库存项
func NewStockItem(name, unit string, quantity decimal.Decimal, costPrice *decimal.Decimal, minimum decimal.Decimal) (*StockItem, error) {
	if name == "" {
		return nil, ErrInvalidStockItem
	}
	if quantity.IsNegative() || minimum.IsNegative() {
		return nil, ErrInvalidStockItem
	}
	if costPrice != nil && costPrice.IsNegative() {
		return nil, ErrInvalidStockItem
	}
	if unit == "" {
		unit = "unidades"
	}
	return &StockItem{
		Name:              name,
		UnitOfMeasure:     unit,
		Quantity:          quantity,
		CostPrice:         costPrice,
		MinimumStockLevel: minimum,
		ProfitPercentage:  DefaultProfitPercentage,
	}, nil
}

// IsBelowMinimum 低于最低库存
func (s *StockItem) IsBelowMinimum() bool {
	return s.Quantity.LessThan(s.MinimumStockLevel)
}

// Cost 成本价，未设置时为0
func (s *StockItem) Cost() decimal.Decimal {
	if s.CostPrice == nil {
		return decimal.Zero
	}
	return *s.CostPrice
}

// SuggestedPrice 按利润率建议的售价：成本 × (1 + 利润率/100)
func (s *StockItem) SuggestedPrice() decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(s.ProfitPercentage.Div(decimal.NewFromInt(100)))
	return s.Cost().Mul(factor).Round(2)
}

// MenuProduct 菜单商品，由一个库存项支撑
type MenuProduct struct {
	ID          uint
	StockItemID uint
	Name        string
	Description string
	SalePrice   decimal.Decimal
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// 读模型：查询时一并加载的库存项
	Stock *StockItem
}

// NewMenuProduct 创建菜单商品
func NewMenuProduct(stockItemID uint, name, description string, salePrice decimal.Decimal, active bool) (*MenuProduct, error) {
	if stockItemID == 0 || name == "" {
		return nil, ErrInvalidProduct
	}
	if salePrice.IsNegative() {
		return nil, ErrInvalidProduct
	}
	return &MenuProduct{
		StockItemID: stockItemID,
		Name:        name,
		Description: description,
		SalePrice:   salePrice,
		IsActive:    active,
	}, nil
}

// MenuFilter 菜单查询条件
// IncludeInactive只有店员调用时才会被用例置为true
type MenuFilter struct {
	IncludeInactive bool
}
