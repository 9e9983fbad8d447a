package sale

import (
	"context"

	"github.com/xiebiao/lanchonete/internal/domain/sale"
	"github.com/xiebiao/lanchonete/internal/domain/user"
	"github.com/xiebiao/lanchonete/internal/infrastructure/persistence/mysql"
	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
)

// GetSaleUseCase 查询订单详情：店员可看全部，顾客只能看自己的
type GetSaleUseCase struct {
	saleRepo sale.Repository
}

func NewGetSaleUseCase(saleRepo sale.Repository) *GetSaleUseCase {
	return &GetSaleUseCase{saleRepo: saleRepo}
}

type GetSaleRequest struct {
	Caller user.Caller
	SaleID uint
}

func (uc *GetSaleUseCase) Execute(ctx context.Context, req GetSaleRequest) (*sale.Sale, error) {
	if !req.Caller.IsAuthenticated() {
		return nil, apperrors.ErrUnauthorized
	}
	s, err := uc.saleRepo.FindByID(ctx, req.SaleID)
	if err != nil {
		return nil, hideNotFound(req.Caller, err)
	}
	if !s.CanView(req.Caller) {
		return nil, sale.ErrForbidden
	}
	return s, nil
}

// ListActiveUseCase 店员处理队列
type ListActiveUseCase struct {
	saleRepo sale.Repository
}

func NewListActiveUseCase(saleRepo sale.Repository) *ListActiveUseCase {
	return &ListActiveUseCase{saleRepo: saleRepo}
}

func (uc *ListActiveUseCase) Execute(ctx context.Context, caller user.Caller) ([]*sale.Sale, error) {
	if !caller.IsStaff() {
		return nil, sale.ErrForbidden
	}
	return uc.saleRepo.ListActive(ctx)
}

// ListMineUseCase 我的订单，最新的在前
type ListMineUseCase struct {
	saleRepo sale.Repository
}

func NewListMineUseCase(saleRepo sale.Repository) *ListMineUseCase {
	return &ListMineUseCase{saleRepo: saleRepo}
}

func (uc *ListMineUseCase) Execute(ctx context.Context, caller user.Caller) ([]*sale.Sale, error) {
	if !caller.IsAuthenticated() {
		return nil, apperrors.ErrUnauthorized
	}
	return uc.saleRepo.ListByCustomer(ctx, caller.ID)
}

// DeleteSaleUseCase 管理删除：订单和明细一起删，不回补库存
type DeleteSaleUseCase struct {
	saleRepo  sale.Repository
	txManager *mysql.TxManager
	effects   *Effects
}

func NewDeleteSaleUseCase(saleRepo sale.Repository, txManager *mysql.TxManager, effects *Effects) *DeleteSaleUseCase {
	return &DeleteSaleUseCase{saleRepo: saleRepo, txManager: txManager, effects: effects}
}

type DeleteSaleRequest struct {
	Caller user.Caller
	SaleID uint
}

func (uc *DeleteSaleUseCase) Execute(ctx context.Context, req DeleteSaleRequest) error {
	if !req.Caller.IsStaff() {
		return sale.ErrForbidden
	}
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		return uc.saleRepo.Delete(txCtx, req.SaleID)
	})
	if err != nil {
		return err
	}
	uc.effects.afterCommit(ctx)
	return nil
}
