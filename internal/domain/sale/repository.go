package sale

import (
	"context"
)

// Repository 订单仓储接口
type Repository interface {
	// Create 创建订单及其明细，回填ID和CreatedAt
	Create(ctx context.Context, sale *Sale) error

	// FindByID 查询订单（含明细和顾客名称），不存在返回ErrSaleNotFound
	FindByID(ctx context.Context, id uint) (*Sale, error)

	// FindByIDForUpdate 同FindByID，并锁定订单行，必须在事务中调用
	FindByIDForUpdate(ctx context.Context, id uint) (*Sale, error)

	// UpdateStatus 修改订单状态
	UpdateStatus(ctx context.Context, id uint, status Status) error

	// Delete 物理删除订单及明细（管理操作）
	Delete(ctx context.Context, id uint) error

	// ListActive 处理队列：排除FINALIZADO/CANCELADO，按创建时间升序
	ListActive(ctx context.Context) ([]*Sale, error)

	// ListByCustomer 顾客自己的订单，按创建时间倒序
	ListByCustomer(ctx context.Context, customerID uint) ([]*Sale, error)
}
