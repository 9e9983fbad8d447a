package catalog

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xiebiao/lanchonete/internal/domain/catalog"
	"github.com/xiebiao/lanchonete/internal/domain/report"
	"github.com/xiebiao/lanchonete/internal/domain/user"
	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
)

// ListMenuUseCase 菜单列表
// include_inactive只对店员生效，其他调用方始终只看到上架商品
type ListMenuUseCase struct {
	repo catalog.Repository
}

func NewListMenuUseCase(repo catalog.Repository) *ListMenuUseCase {
	return &ListMenuUseCase{repo: repo}
}

type ListMenuRequest struct {
	Caller          user.Caller
	IncludeInactive bool
}

func (uc *ListMenuUseCase) Execute(ctx context.Context, req ListMenuRequest) ([]*catalog.MenuProduct, error) {
	filter := catalog.MenuFilter{IncludeInactive: req.IncludeInactive && req.Caller.IsStaff()}
	return uc.repo.ListProducts(ctx, filter)
}

// CreateProductUseCase 创建菜单商品
type CreateProductUseCase struct {
	repo catalog.Repository
}

func NewCreateProductUseCase(repo catalog.Repository) *CreateProductUseCase {
	return &CreateProductUseCase{repo: repo}
}

type CreateProductRequest struct {
	Caller      user.Caller
	StockItemID uint
	Name        string
	Description string
	SalePrice   decimal.Decimal
	// IsActive 为空时默认上架
	IsActive *bool
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, req CreateProductRequest) (*catalog.MenuProduct, error) {
	if !req.Caller.IsStaff() {
		return nil, apperrors.ErrForbidden
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	p, err := catalog.NewMenuProduct(req.StockItemID, req.Name, req.Description, req.SalePrice, active)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.CreateProduct(ctx, p); err != nil {
		return nil, err
	}
	return uc.repo.FindProductByID(ctx, p.ID)
}

// DeleteProductUseCase 删除菜单商品
// 历史订单明细保留名称和单价快照，商品引用置空
type DeleteProductUseCase struct {
	repo   catalog.Repository
	cache  report.Cache
	logger *zap.Logger
}

func NewDeleteProductUseCase(repo catalog.Repository, cache report.Cache, logger *zap.Logger) *DeleteProductUseCase {
	return &DeleteProductUseCase{repo: repo, cache: cache, logger: logger}
}

type DeleteProductRequest struct {
	Caller    user.Caller
	ProductID uint
}

func (uc *DeleteProductUseCase) Execute(ctx context.Context, req DeleteProductRequest) error {
	if !req.Caller.IsStaff() {
		return apperrors.ErrForbidden
	}
	if err := uc.repo.DeleteProduct(ctx, req.ProductID); err != nil {
		return err
	}
	// 利润报表按当前商品名归组，删除后需要重新计算
	if err := uc.cache.Invalidate(ctx); err != nil {
		uc.logger.Warn("报表缓存失效失败", zap.Uint("product_id", req.ProductID), zap.Error(err))
	}
	return nil
}
