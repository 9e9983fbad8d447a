package sale

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/lanchonete/internal/domain/catalog"
	"github.com/xiebiao/lanchonete/internal/domain/sale"
	"github.com/xiebiao/lanchonete/internal/domain/user"
	"github.com/xiebiao/lanchonete/internal/infrastructure/persistence/mysql"
	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
	"github.com/xiebiao/lanchonete/pkg/tracing"
)

// ConfirmPaymentUseCase 顾客确认付款
type ConfirmPaymentUseCase struct {
	saleRepo  sale.Repository
	txManager *mysql.TxManager
	effects   *Effects
}

func NewConfirmPaymentUseCase(saleRepo sale.Repository, txManager *mysql.TxManager, effects *Effects) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{saleRepo: saleRepo, txManager: txManager, effects: effects}
}

type ConfirmPaymentRequest struct {
	Caller user.Caller
	SaleID uint
}

func (uc *ConfirmPaymentUseCase) Execute(ctx context.Context, req ConfirmPaymentRequest) (*sale.Sale, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ConfirmPayment")
	defer span.End()
	span.SetAttributes(attribute.Int64("sale.id", int64(req.SaleID)))

	if !req.Caller.IsAuthenticated() {
		return nil, apperrors.ErrUnauthorized
	}

	var (
		s  *sale.Sale
		tr sale.Transition
	)
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		var err error
		s, err = lockSale(txCtx, uc.saleRepo, req.Caller, req.SaleID)
		if err != nil {
			return err
		}
		tr, err = s.ConfirmPayment(req.Caller)
		if err != nil {
			return err
		}
		return uc.saleRepo.UpdateStatus(txCtx, s.ID, s.Status)
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	observeTransition(tr)
	uc.effects.afterCommit(ctx, sale.EventsForTransition(s, tr)...)
	return s, nil
}

// UpdateStatusUseCase 店员修改订单状态，取消时回补库存
type UpdateStatusUseCase struct {
	saleRepo     sale.Repository
	catalogRepo  catalog.Repository
	movementRepo catalog.MovementRepository
	txManager    *mysql.TxManager
	effects      *Effects
}

func NewUpdateStatusUseCase(
	saleRepo sale.Repository,
	catalogRepo catalog.Repository,
	movementRepo catalog.MovementRepository,
	txManager *mysql.TxManager,
	effects *Effects,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{
		saleRepo:     saleRepo,
		catalogRepo:  catalogRepo,
		movementRepo: movementRepo,
		txManager:    txManager,
		effects:      effects,
	}
}

type UpdateStatusRequest struct {
	Caller user.Caller
	SaleID uint
	Status string
}

// Execute 订单行加锁后再判断状态，并发取消同一订单时只有第一个会回补库存
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, req UpdateStatusRequest) (*sale.Sale, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "UpdateSaleStatus")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("sale.id", int64(req.SaleID)),
		attribute.String("sale.target_status", req.Status),
	)

	if !req.Caller.IsStaff() {
		return nil, sale.ErrForbidden
	}

	var (
		s  *sale.Sale
		tr sale.Transition
	)
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		var err error
		s, err = uc.saleRepo.FindByIDForUpdate(txCtx, req.SaleID)
		if err != nil {
			return err
		}
		tr, err = s.ChangeStatus(req.Caller, sale.Status(req.Status))
		if err != nil || !tr.Changed {
			return err
		}
		if err := uc.saleRepo.UpdateStatus(txCtx, s.ID, s.Status); err != nil {
			return err
		}
		if tr.RestoreStock {
			return uc.restoreStock(txCtx, s)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	if !tr.Changed {
		return s, nil
	}

	observeTransition(tr)
	uc.effects.afterCommit(ctx, sale.EventsForTransition(s, tr)...)
	return s, nil
}

// restoreStock 按明细回补库存并写CREDIT流水
// 商品已被删除的明细无法定位库存项，跳过
func (uc *UpdateStatusUseCase) restoreStock(ctx context.Context, s *sale.Sale) error {
	productIDs := make([]uint, 0, len(s.Items))
	for _, item := range s.Items {
		if item.ProductID != nil {
			productIDs = append(productIDs, *item.ProductID)
		}
	}
	if len(productIDs) == 0 {
		return nil
	}

	products, err := uc.catalogRepo.FindProductsByIDs(ctx, productIDs)
	if err != nil {
		return err
	}
	stockIDs := make([]uint, 0, len(products))
	for _, p := range products {
		stockIDs = append(stockIDs, p.StockItemID)
	}
	stocks, err := uc.catalogRepo.LockStockItems(ctx, stockIDs)
	if err != nil {
		return err
	}

	remark := fmt.Sprintf("Cancelamento da venda #%d", s.ID)
	movements := make([]*catalog.StockMovement, 0, len(s.Items))
	for _, item := range s.Items {
		if item.ProductID == nil {
			continue
		}
		p, ok := products[*item.ProductID]
		if !ok {
			continue
		}
		stock, ok := stocks[p.StockItemID]
		if !ok {
			continue
		}
		m, err := stock.Credit(decimal.NewFromInt(int64(item.Quantity)), &s.ID, remark)
		if err != nil {
			return err
		}
		movements = append(movements, m)
	}
	if len(movements) == 0 {
		return nil
	}

	for _, id := range sortedKeys(stocks) {
		if err := uc.catalogRepo.UpdateStockQuantity(ctx, id, stocks[id].Quantity); err != nil {
			return err
		}
	}
	return uc.movementRepo.Append(ctx, movements...)
}

// lockSale 加锁读取订单
// 非店员查询不存在的订单与无权访问返回同一个错误，不泄露订单是否存在
func lockSale(ctx context.Context, repo sale.Repository, caller user.Caller, id uint) (*sale.Sale, error) {
	s, err := repo.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, hideNotFound(caller, err)
	}
	return s, nil
}

func hideNotFound(caller user.Caller, err error) error {
	if !caller.IsStaff() && apperrors.HasCode(err, apperrors.ErrCodeSaleNotFound) {
		return sale.ErrForbidden
	}
	return err
}
