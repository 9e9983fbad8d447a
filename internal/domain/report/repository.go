package report

import (
	"context"
	"time"

	"github.com/xiebiao/lanchonete/internal/domain/sale"
)

// Repository 报表只读查询
// 只负责按条件取数，聚合在领域层完成，与数据库方言无关
type Repository interface {
	// FindSales 时间范围[from, to)内、状态属于statuses的订单，含明细
	FindSales(ctx context.Context, statuses []sale.Status, from, to time.Time) ([]*sale.Sale, error)

	// FindProfitLines 状态属于statuses的订单明细，带商品当前名称和成本价；from/to为空表示不限
	FindProfitLines(ctx context.Context, statuses []sale.Status, from, to *time.Time) ([]ProfitLine, error)
}

// Cache 报表缓存端口
type Cache interface {
	// Version 当前销售数据版本，每次订单变更递增
	Version(ctx context.Context) (int64, error)

	// Get 命中时把值解码进dest并返回true
	Get(ctx context.Context, key string, dest any) (bool, error)

	Set(ctx context.Context, key string, value any) error

	// Invalidate 递增版本，使所有已缓存报表失效
	Invalidate(ctx context.Context) error
}
