package sale

import (
	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
)

var (
	ErrSaleNotFound          = apperrors.New(apperrors.ErrCodeSaleNotFound, "Pedido não encontrado.")
	ErrForbidden             = apperrors.New(apperrors.ErrCodeForbidden, "Você não tem permissão para modificar este pedido.")
	ErrPaymentMethodRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "Método de pagamento é obrigatório.")
	ErrInvalidPaymentMethod  = apperrors.New(apperrors.ErrCodeInvalidParams, "Método de pagamento inválido.")
	ErrEmptyCart             = apperrors.New(apperrors.ErrCodeInvalidParams, "O carrinho está vazio.")
	ErrInvalidQuantity       = apperrors.New(apperrors.ErrCodeInvalidParams, "A quantidade deve ser maior ou igual a 1.")
	ErrInvalidProductID      = apperrors.New(apperrors.ErrCodeInvalidParams, "ID de produto inválido.")
	ErrAwaitingPaymentTarget = apperrors.New(apperrors.ErrCodeInvalidParams, "Um pedido não pode voltar para Aguardando Pagamento.")
)

// CannotBePaid 确认付款时状态不对，消息中带当前状态的展示名
func CannotBePaid(current Status) error {
	return apperrors.Newf(apperrors.ErrCodeInvalidSaleStatus,
		"Este pedido não pode ser pago, status atual: %s", current.Label()).
		WithDetails(map[string]any{"status": current, "status_display": current.Label()})
}

// CancelledIsFinal 已取消订单不能改为其他状态
func CancelledIsFinal() error {
	return apperrors.Newf(apperrors.ErrCodeInvalidSaleStatus,
		"Este pedido não pode ser alterado, status atual: %s", StatusCancelled.Label()).
		WithDetails(map[string]any{"status": StatusCancelled, "status_display": StatusCancelled.Label()})
}

// InvalidStatus 未知状态
func InvalidStatus(s Status) error {
	return apperrors.Newf(apperrors.ErrCodeInvalidParams, "Status inválido: %s", s)
}
