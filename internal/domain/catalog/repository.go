package catalog

import (
	"context"

	"github.com/shopspring/decimal"
)

// Repository 商品目录仓储接口
type Repository interface {
	// FindProductByID 查询商品（含库存项），不存在返回ErrProductNotFound
	FindProductByID(ctx context.Context, id uint) (*MenuProduct, error)

	// FindProductsByIDs 批量查询商品（含库存项），不存在的ID直接缺席
	FindProductsByIDs(ctx context.Context, ids []uint) (map[uint]*MenuProduct, error)

	// ListProducts 菜单列表，按名称升序
	ListProducts(ctx context.Context, filter MenuFilter) ([]*MenuProduct, error)

	// CreateProduct 创建菜单商品
	CreateProduct(ctx context.Context, product *MenuProduct) error

	// DeleteProduct 删除菜单商品，引用它的订单明细product_id置空
	DeleteProduct(ctx context.Context, id uint) error

	// CreateStockItem 创建库存项，名称重复返回ErrStockItemExists
	CreateStockItem(ctx context.Context, item *StockItem) error

	// FindStockItemByID 查询库存项
	FindStockItemByID(ctx context.Context, id uint) (*StockItem, error)

	// LockStockItems 悲观锁锁定库存项（SELECT ... FOR UPDATE），按ID升序加锁避免死锁
	// 必须在事务中调用
	LockStockItems(ctx context.Context, ids []uint) (map[uint]*StockItem, error)

	// UpdateStockQuantity 写入新的库存数量，必须在事务中并已加锁
	UpdateStockQuantity(ctx context.Context, id uint, quantity decimal.Decimal) error
}

// MovementRepository 库存流水仓储，只追加
type MovementRepository interface {
	Append(ctx context.Context, movements ...*StockMovement) error

	// ListByStockItem 按时间倒序分页
	ListByStockItem(ctx context.Context, stockItemID uint, page, pageSize int) ([]*StockMovement, int64, error)
}
