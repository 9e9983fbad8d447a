package dto

import (
	"time"

	"github.com/xiebiao/lanchonete/internal/domain/sale"
)

// CreateSaleRequest 下单请求
type CreateSaleRequest struct {
	Items         []CreateSaleItem `json:"items" binding:"required,min=1,dive"`
	PaymentMethod string           `json:"payment_method" example:"DINHEIRO"`
}

// CreateSaleItem 购物车中的一行
type CreateSaleItem struct {
	ProductID uint `json:"product_id" binding:"required" example:"7"`
	Quantity  int  `json:"quantity" binding:"required,min=1" example:"2"`
}

// UpdateSaleStatusRequest 修改订单状态
type UpdateSaleStatusRequest struct {
	Status string `json:"status" binding:"required" example:"EM_PREPARO"`
}

// SaleResponse 订单
type SaleResponse struct {
	ID                   uint               `json:"id" example:"1"`
	Status               string             `json:"status" example:"PAGO"`
	StatusDisplay        string             `json:"status_display" example:"Pago"`
	PaymentMethod        string             `json:"payment_method" example:"DINHEIRO"`
	PaymentMethodDisplay string             `json:"payment_method_display" example:"Dinheiro"`
	CreatedAt            string             `json:"created_at" example:"2024-03-01T13:00:00Z"`
	TotalAmount          string             `json:"total_amount" example:"20.00"`
	Customer             string             `json:"customer" example:"Venda no Balcão"`
	Items                []SaleItemResponse `json:"items"`
}

// SaleItemResponse 订单明细
type SaleItemResponse struct {
	ProductID   *uint  `json:"product_id"`
	ProductName string `json:"product_name" example:"X-Burger"`
	Quantity    int    `json:"quantity" example:"2"`
	UnitPrice   string `json:"unit_price" example:"10.00"`
	Subtotal    string `json:"subtotal" example:"20.00"`
}

func ToSaleResponse(s *sale.Sale) *SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Subtotal:    item.Subtotal().StringFixed(2),
		}
	}
	return &SaleResponse{
		ID:                   s.ID,
		Status:               string(s.Status),
		StatusDisplay:        s.Status.Label(),
		PaymentMethod:        string(s.PaymentMethod),
		PaymentMethodDisplay: s.PaymentMethod.Label(),
		CreatedAt:            s.CreatedAt.UTC().Format(time.RFC3339),
		TotalAmount:          s.TotalAmount.StringFixed(2),
		Customer:             s.OwnerName(),
		Items:                items,
	}
}

func ToSaleResponses(sales []*sale.Sale) []*SaleResponse {
	out := make([]*SaleResponse, len(sales))
	for i, s := range sales {
		out[i] = ToSaleResponse(s)
	}
	return out
}
