package catalog

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/lanchonete/internal/domain/catalog"
	"github.com/xiebiao/lanchonete/internal/domain/user"
	"github.com/xiebiao/lanchonete/internal/infrastructure/persistence/mysql"
	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
)

const initialStockRemark = "Estoque inicial"

// CreateStockItemUseCase 创建库存项，初始数量大于0时记一条RESTOCK流水
type CreateStockItemUseCase struct {
	repo         catalog.Repository
	movementRepo catalog.MovementRepository
	txManager    *mysql.TxManager
}

func NewCreateStockItemUseCase(repo catalog.Repository, movementRepo catalog.MovementRepository, txManager *mysql.TxManager) *CreateStockItemUseCase {
	return &CreateStockItemUseCase{repo: repo, movementRepo: movementRepo, txManager: txManager}
}

type CreateStockItemRequest struct {
	Caller            user.Caller
	Name              string
	UnitOfMeasure     string
	Quantity          decimal.Decimal
	CostPrice         *decimal.Decimal
	MinimumStockLevel decimal.Decimal
	ProfitPercentage  *decimal.Decimal
}

func (uc *CreateStockItemUseCase) Execute(ctx context.Context, req CreateStockItemRequest) (*catalog.StockItem, error) {
	if !req.Caller.IsStaff() {
		return nil, apperrors.ErrForbidden
	}

	item, err := catalog.NewStockItem(req.Name, req.UnitOfMeasure, decimal.Zero, req.CostPrice, req.MinimumStockLevel)
	if err != nil {
		return nil, err
	}
	if req.Quantity.IsNegative() {
		return nil, catalog.ErrInvalidStockItem
	}
	if req.ProfitPercentage != nil {
		if req.ProfitPercentage.IsNegative() {
			return nil, catalog.ErrInvalidStockItem
		}
		item.ProfitPercentage = *req.ProfitPercentage
	}

	err = uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		if !req.Quantity.IsPositive() {
			return uc.repo.CreateStockItem(txCtx, item)
		}

		m, err := item.Restock(req.Quantity, initialStockRemark)
		if err != nil {
			return err
		}
		if err := uc.repo.CreateStockItem(txCtx, item); err != nil {
			return err
		}
		m.StockItemID = item.ID
		return uc.movementRepo.Append(txCtx, m)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// RestockUseCase 手工补货
type RestockUseCase struct {
	repo         catalog.Repository
	movementRepo catalog.MovementRepository
	txManager    *mysql.TxManager
}

func NewRestockUseCase(repo catalog.Repository, movementRepo catalog.MovementRepository, txManager *mysql.TxManager) *RestockUseCase {
	return &RestockUseCase{repo: repo, movementRepo: movementRepo, txManager: txManager}
}

type RestockRequest struct {
	Caller      user.Caller
	StockItemID uint
	Quantity    decimal.Decimal
	Remark      string
}

func (uc *RestockUseCase) Execute(ctx context.Context, req RestockRequest) (*catalog.StockItem, error) {
	if !req.Caller.IsStaff() {
		return nil, apperrors.ErrForbidden
	}
	if !req.Quantity.IsPositive() {
		return nil, catalog.ErrInvalidQuantity
	}

	var item *catalog.StockItem
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		locked, err := uc.repo.LockStockItems(txCtx, []uint{req.StockItemID})
		if err != nil {
			return err
		}
		var ok bool
		if item, ok = locked[req.StockItemID]; !ok {
			return catalog.ErrStockItemNotFound
		}

		m, err := item.Restock(req.Quantity, req.Remark)
		if err != nil {
			return err
		}
		if err := uc.repo.UpdateStockQuantity(txCtx, item.ID, item.Quantity); err != nil {
			return err
		}
		return uc.movementRepo.Append(txCtx, m)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ListMovementsUseCase 库存流水查询
type ListMovementsUseCase struct {
	repo         catalog.Repository
	movementRepo catalog.MovementRepository
}

func NewListMovementsUseCase(repo catalog.Repository, movementRepo catalog.MovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{repo: repo, movementRepo: movementRepo}
}

type ListMovementsRequest struct {
	Caller      user.Caller
	StockItemID uint
	Page        int
	PageSize    int
}

type ListMovementsResponse struct {
	StockItem *catalog.StockItem
	Movements []*catalog.StockMovement
	Total     int64
}

func (uc *ListMovementsUseCase) Execute(ctx context.Context, req ListMovementsRequest) (*ListMovementsResponse, error) {
	if !req.Caller.IsStaff() {
		return nil, apperrors.ErrForbidden
	}
	item, err := uc.repo.FindStockItemByID(ctx, req.StockItemID)
	if err != nil {
		return nil, err
	}
	movements, total, err := uc.movementRepo.ListByStockItem(ctx, req.StockItemID, req.Page, req.PageSize)
	if err != nil {
		return nil, err
	}
	return &ListMovementsResponse{StockItem: item, Movements: movements, Total: total}, nil
}
