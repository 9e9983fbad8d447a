package catalog

import (
	"github.com/shopspring/decimal"

	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
)

var (
	ErrProductNotFound   = apperrors.New(apperrors.ErrCodeProductNotFound, "Produto não encontrado.")
	ErrStockItemNotFound = apperrors.New(apperrors.ErrCodeStockNotFound, "Item de estoque não encontrado.")
	ErrInvalidStockItem  = apperrors.New(apperrors.ErrCodeInvalidParams, "Dados do item de estoque inválidos.")
	ErrInvalidProduct    = apperrors.New(apperrors.ErrCodeInvalidParams, "Dados do produto inválidos.")
	ErrInvalidQuantity   = apperrors.New(apperrors.ErrCodeInvalidParams, "A quantidade deve ser maior que zero.")
	ErrStockItemExists   = apperrors.New(apperrors.ErrCodeDuplicateEntry, "Já existe um item de estoque com este nome.")
	ErrNegativeStock     = apperrors.New(apperrors.ErrCodeInsufficientStock, "Estoque insuficiente.")
)

// ProductNotFound 指明商品ID的不存在错误
func ProductNotFound(id uint) error {
	return apperrors.Newf(apperrors.ErrCodeProductNotFound, "Produto com ID %d não encontrado.", id).
		WithDetails(map[string]any{"product_id": id})
}

// InsufficientStockDetails 库存不足时返回给客户端的详情
type InsufficientStockDetails struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Available   string `json:"available"`
}

// InsufficientStock 指明商品及可用数量的库存不足错误
func InsufficientStock(productID uint, productName string, available decimal.Decimal) error {
	return apperrors.Newf(apperrors.ErrCodeInsufficientStock,
		"Estoque insuficiente para: %s. Disponível: %s", productName, available.String()).
		WithDetails(InsufficientStockDetails{
			ProductID:   productID,
			ProductName: productName,
			Available:   available.String(),
		})
}
