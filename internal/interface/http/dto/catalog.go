package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/lanchonete/internal/domain/catalog"
)

// ListMenuRequest 菜单查询参数
type ListMenuRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}

// CreateProductRequest 创建菜单商品
type CreateProductRequest struct {
	StockItemID uint            `json:"stock_item_id" binding:"required" example:"1"`
	Name        string          `json:"name" binding:"required,max=100" example:"X-Burger"`
	Description string          `json:"description" binding:"max=1000"`
	SalePrice   decimal.Decimal `json:"sale_price" swaggertype:"string" example:"12.90"`
	IsActive    *bool           `json:"is_active"`
}

// CreateStockItemRequest 创建库存项
type CreateStockItemRequest struct {
	Name              string           `json:"name" binding:"required,max=100" example:"Pão de hambúrguer"`
	UnitOfMeasure     string           `json:"unit_of_measure" binding:"max=20" example:"unidades"`
	Quantity          decimal.Decimal  `json:"quantity" swaggertype:"string" example:"50"`
	CostPrice         *decimal.Decimal `json:"cost_price" swaggertype:"string" example:"1.20"`
	MinimumStockLevel decimal.Decimal  `json:"minimum_stock_level" swaggertype:"string" example:"10"`
	ProfitPercentage  *decimal.Decimal `json:"profit_percentage" swaggertype:"string" example:"100"`
}

// RestockRequest 补货
type RestockRequest struct {
	Quantity decimal.Decimal `json:"quantity" swaggertype:"string" example:"20"`
	Remark   string          `json:"remark" binding:"max=255"`
}

// ListMovementsRequest 流水分页参数
type ListMovementsRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// StockItemResponse 库存项
type StockItemResponse struct {
	ID                uint    `json:"id"`
	Name              string  `json:"name"`
	UnitOfMeasure     string  `json:"unit_of_measure"`
	Quantity          string  `json:"quantity"`
	CostPrice         *string `json:"cost_price"`
	MinimumStockLevel string  `json:"minimum_stock_level"`
	ProfitPercentage  string  `json:"profit_percentage"`
	SuggestedPrice    string  `json:"suggested_price"`
	BelowMinimum      bool    `json:"below_minimum"`
}

// MenuProductResponse 菜单商品
type MenuProductResponse struct {
	ID           uint    `json:"id"`
	StockItemID  uint    `json:"stock_item_id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	SalePrice    string  `json:"sale_price" example:"12.90"`
	IsActive     bool    `json:"is_active"`
	Available    *string `json:"available_quantity,omitempty"`
	BelowMinimum bool    `json:"below_minimum"`
}

// StockMovementResponse 库存流水
type StockMovementResponse struct {
	ID        uint   `json:"id"`
	Type      string `json:"type" example:"DEBIT"`
	Quantity  string `json:"quantity"`
	Before    string `json:"before"`
	After     string `json:"after"`
	SaleID    *uint  `json:"sale_id"`
	Remark    string `json:"remark"`
	CreatedAt string `json:"created_at"`
}

func ToStockItemResponse(item *catalog.StockItem) *StockItemResponse {
	resp := &StockItemResponse{
		ID:                item.ID,
		Name:              item.Name,
		UnitOfMeasure:     item.UnitOfMeasure,
		Quantity:          item.Quantity.String(),
		MinimumStockLevel: item.MinimumStockLevel.String(),
		ProfitPercentage:  item.ProfitPercentage.String(),
		SuggestedPrice:    item.SuggestedPrice().StringFixed(2),
		BelowMinimum:      item.IsBelowMinimum(),
	}
	if item.CostPrice != nil {
		cost := item.CostPrice.StringFixed(2)
		resp.CostPrice = &cost
	}
	return resp
}

func ToMenuProductResponses(products []*catalog.MenuProduct) []*MenuProductResponse {
	out := make([]*MenuProductResponse, len(products))
	for i, p := range products {
		out[i] = ToMenuProductResponse(p)
	}
	return out
}

func ToMenuProductResponse(p *catalog.MenuProduct) *MenuProductResponse {
	resp := &MenuProductResponse{
		ID:          p.ID,
		StockItemID: p.StockItemID,
		Name:        p.Name,
		Description: p.Description,
		SalePrice:   p.SalePrice.StringFixed(2),
		IsActive:    p.IsActive,
	}
	if p.Stock != nil {
		qty := p.Stock.Quantity.String()
		resp.Available = &qty
		resp.BelowMinimum = p.Stock.IsBelowMinimum()
	}
	return resp
}

func ToStockMovementResponses(movements []*catalog.StockMovement) []*StockMovementResponse {
	out := make([]*StockMovementResponse, len(movements))
	for i, m := range movements {
		out[i] = &StockMovementResponse{
			ID:        m.ID,
			Type:      string(m.Type),
			Quantity:  m.Quantity.String(),
			Before:    m.Before.String(),
			After:     m.After.String(),
			SaleID:    m.SaleID,
			Remark:    m.Remark,
			CreatedAt: m.CreatedAt.UTC().Format(time.RFC3339),
		}
	}
	return out
}
