package sale

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/xiebiao/lanchonete/internal/domain/catalog"
	"github.com/xiebiao/lanchonete/internal/domain/sale"
	"github.com/xiebiao/lanchonete/internal/domain/user"
	"github.com/xiebiao/lanchonete/internal/infrastructure/persistence/mysql"
	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
	"github.com/xiebiao/lanchonete/pkg/metrics"
	"github.com/xiebiao/lanchonete/pkg/tracing"
)

// CreateSaleUseCase 下单
// 校验、锁库存、扣减、写订单和流水在同一个事务里，任何一步失败都不会留下部分结果
type CreateSaleUseCase struct {
	saleRepo     sale.Repository
	catalogRepo  catalog.Repository
	movementRepo catalog.MovementRepository
	txManager    *mysql.TxManager
	effects      *Effects
}

func NewCreateSaleUseCase(
	saleRepo sale.Repository,
	catalogRepo catalog.Repository,
	movementRepo catalog.MovementRepository,
	txManager *mysql.TxManager,
	effects *Effects,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		saleRepo:     saleRepo,
		catalogRepo:  catalogRepo,
		movementRepo: movementRepo,
		txManager:    txManager,
		effects:      effects,
	}
}

// CreateSaleRequest 下单请求
type CreateSaleRequest struct {
	Caller        user.Caller
	PaymentMethod string
	Items         []CreateSaleItem
}

// CreateSaleItem 购物车中的一行
type CreateSaleItem struct {
	ProductID uint
	Quantity  int
}

// Execute 下单流程
//  1. 校验购物车（不访问数据库）
//  2. 查询商品，任一不存在返回404
//  3. 按ID升序锁定库存项（SELECT ... FOR UPDATE），同一库存项的并发下单在此串行化
//  4. 按锁定后的数量检查每一行，不足时指明商品和可用数量
//  5. 快照名称和单价创建订单，扣减库存并写DEBIT流水
//  6. 提交后发布sale.created和stock.low事件
func (uc *CreateSaleUseCase) Execute(ctx context.Context, req CreateSaleRequest) (*sale.Sale, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "CreateSale")
	defer span.End()
	start := time.Now()

	method := sale.PaymentMethod(req.PaymentMethod)
	if err := validateCart(method, req.Items); err != nil {
		observeFailure(err)
		return nil, err
	}

	var (
		created  *sale.Sale
		lowStock []sale.Event
	)
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		products, err := uc.loadProducts(txCtx, req.Items)
		if err != nil {
			return err
		}

		stockIDs := make([]uint, 0, len(products))
		for _, p := range products {
			stockIDs = append(stockIDs, p.StockItemID)
		}
		stocks, err := uc.catalogRepo.LockStockItems(txCtx, stockIDs)
		if err != nil {
			return err
		}

		// 同一库存项可能被多行引用，按锁定后的剩余量逐行检查
		remaining := make(map[uint]decimal.Decimal, len(stocks))
		for id, stock := range stocks {
			remaining[id] = stock.Quantity
		}
		lines := make([]*sale.LineItem, len(req.Items))
		for i, item := range req.Items {
			p := products[item.ProductID]
			left, ok := remaining[p.StockItemID]
			if !ok {
				return catalog.ErrStockItemNotFound
			}
			need := decimal.NewFromInt(int64(item.Quantity))
			if left.LessThan(need) {
				return catalog.InsufficientStock(p.ID, p.Name, left)
			}
			remaining[p.StockItemID] = left.Sub(need)

			line, err := sale.NewLineItem(p.ID, p.Name, p.SalePrice, item.Quantity)
			if err != nil {
				return err
			}
			lines[i] = line
		}

		s, err := sale.NewSale(req.Caller, method, lines)
		if err != nil {
			return err
		}
		if err := uc.saleRepo.Create(txCtx, s); err != nil {
			return err
		}

		remark := fmt.Sprintf("Venda #%d", s.ID)
		movements := make([]*catalog.StockMovement, 0, len(lines))
		for _, item := range req.Items {
			stock := stocks[products[item.ProductID].StockItemID]
			m, err := stock.Debit(decimal.NewFromInt(int64(item.Quantity)), &s.ID, remark)
			if err != nil {
				return err
			}
			movements = append(movements, m)
		}

		for _, id := range sortedKeys(stocks) {
			stock := stocks[id]
			if err := uc.catalogRepo.UpdateStockQuantity(txCtx, id, stock.Quantity); err != nil {
				return err
			}
			if stock.IsBelowMinimum() {
				lowStock = append(lowStock, sale.NewStockLowEvent(id, stock.Name, stock.Quantity, stock.MinimumStockLevel))
			}
		}
		if err := uc.movementRepo.Append(txCtx, movements...); err != nil {
			return err
		}

		created = s
		return nil
	})
	if err != nil {
		observeFailure(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(
		attribute.Int64("sale.id", int64(created.ID)),
		attribute.String("sale.payment_method", string(created.PaymentMethod)),
		attribute.String("sale.status", string(created.Status)),
	)
	observeCreated(created, time.Since(start))

	events := append([]sale.Event{sale.NewSaleEvent(sale.EventSaleCreated, created, "")}, lowStock...)
	uc.effects.afterCommit(ctx, events...)
	return created, nil
}

// loadProducts 查询购物车中的商品（含库存项），缺任何一个都返回ProductNotFound
func (uc *CreateSaleUseCase) loadProducts(ctx context.Context, items []CreateSaleItem) (map[uint]*catalog.MenuProduct, error) {
	ids := make([]uint, 0, len(items))
	seen := make(map[uint]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	products, err := uc.catalogRepo.FindProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := products[id]; !ok {
			return nil, catalog.ProductNotFound(id)
		}
	}
	return products, nil
}

func validateCart(method sale.PaymentMethod, items []CreateSaleItem) error {
	if method == "" {
		return sale.ErrPaymentMethodRequired
	}
	if !method.Valid() {
		return sale.ErrInvalidPaymentMethod
	}
	if len(items) == 0 {
		return sale.ErrEmptyCart
	}
	for _, item := range items {
		if item.ProductID == 0 {
			return sale.ErrInvalidProductID
		}
		if item.Quantity < 1 {
			return sale.ErrInvalidQuantity
		}
	}
	return nil
}

func sortedKeys(m map[uint]*catalog.StockItem) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func observeCreated(s *sale.Sale, elapsed time.Duration) {
	if metrics.SalesCreatedTotal == nil {
		return
	}
	metrics.IncCounterVec(metrics.SalesCreatedTotal, map[string]string{"payment_method": string(s.PaymentMethod)})
	metrics.ObserveHistogram(metrics.SaleCreationDuration, elapsed.Seconds())
	metrics.ObserveHistogram(metrics.SaleAmount, s.TotalAmount.InexactFloat64())
}

// observeFailure 按错误码归类下单失败原因
func observeFailure(err error) {
	if metrics.SalesFailedTotal == nil {
		return
	}
	reason := "internal"
	switch {
	case apperrors.HasCode(err, apperrors.ErrCodeInsufficientStock):
		reason = "stock"
	case apperrors.HasCode(err, apperrors.ErrCodeProductNotFound):
		reason = "not_found"
	case apperrors.HasCode(err, apperrors.ErrCodeInvalidParams):
		reason = "validation"
	}
	metrics.IncCounterVec(metrics.SalesFailedTotal, map[string]string{"reason": reason})
}
