package sale_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	saleapp "github.com/xiebiao/lanchonete/internal/application/sale"
	"github.com/xiebiao/lanchonete/internal/domain/catalog"
	"github.com/xiebiao/lanchonete/internal/domain/sale"
	"github.com/xiebiao/lanchonete/internal/domain/user"
	"github.com/xiebiao/lanchonete/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/lanchonete/internal/infrastructure/persistence/mysql/mysqltest"
	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
)

var (
	customer = user.Caller{ID: 10, Name: "Ana", Role: user.RoleCustomer}
	other    = user.Caller{ID: 11, Name: "Bruno", Role: user.RoleCustomer}
	staff    = user.Caller{ID: 1, Name: "Equipe", Role: user.RoleStaff}
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []sale.Event
}

func (p *recordingPublisher) Publish(_ context.Context, events ...sale.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) types() []sale.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]sale.EventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type countingCache struct {
	mu          sync.Mutex
	invalidated int
}

func (c *countingCache) Version(context.Context) (int64, error)       { return 0, nil }
func (c *countingCache) Get(context.Context, string, any) (bool, error) { return false, nil }
func (c *countingCache) Set(context.Context, string, any) error         { return nil }
func (c *countingCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated++
	return nil
}

type fixture struct {
	saleRepo     sale.Repository
	catalogRepo  catalog.Repository
	movementRepo catalog.MovementRepository
	publisher    *recordingPublisher
	cache        *countingCache

	create  *saleapp.CreateSaleUseCase
	confirm *saleapp.ConfirmPaymentUseCase
	update  *saleapp.UpdateStatusUseCase
	get     *saleapp.GetSaleUseCase
	active  *saleapp.ListActiveUseCase
	mine    *saleapp.ListMineUseCase
	del     *saleapp.DeleteSaleUseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := mysqltest.New(t)

	f := &fixture{
		saleRepo:     mysql.NewSaleRepository(db),
		catalogRepo:  mysql.NewCatalogRepository(db),
		movementRepo: mysql.NewMovementRepository(db),
		publisher:    &recordingPublisher{},
		cache:        &countingCache{},
	}
	tx := mysql.NewTxManager(db)
	effects := saleapp.NewEffects(f.publisher, f.cache, zap.NewNop())

	f.create = saleapp.NewCreateSaleUseCase(f.saleRepo, f.catalogRepo, f.movementRepo, tx, effects)
	f.confirm = saleapp.NewConfirmPaymentUseCase(f.saleRepo, tx, effects)
	f.update = saleapp.NewUpdateStatusUseCase(f.saleRepo, f.catalogRepo, f.movementRepo, tx, effects)
	f.get = saleapp.NewGetSaleUseCase(f.saleRepo)
	f.active = saleapp.NewListActiveUseCase(f.saleRepo)
	f.mine = saleapp.NewListMineUseCase(f.saleRepo)
	f.del = saleapp.NewDeleteSaleUseCase(f.saleRepo, tx, effects)
	return f
}

func (f *fixture) seed(t *testing.T, name, qty, price, minimum string) *catalog.MenuProduct {
	t.Helper()
	ctx := context.Background()

	item, err := catalog.NewStockItem(name, "unidades", decimal.RequireFromString(qty), nil, decimal.RequireFromString(minimum))
	require.NoError(t, err)
	require.NoError(t, f.catalogRepo.CreateStockItem(ctx, item))

	p, err := catalog.NewMenuProduct(item.ID, name, "", decimal.RequireFromString(price), true)
	require.NoError(t, err)
	require.NoError(t, f.catalogRepo.CreateProduct(ctx, p))
	return p
}

func (f *fixture) stockOf(t *testing.T, p *catalog.MenuProduct) string {
	t.Helper()
	item, err := f.catalogRepo.FindStockItemByID(context.Background(), p.StockItemID)
	require.NoError(t, err)
	return item.Quantity.String()
}

func (f *fixture) order(t *testing.T, caller user.Caller, method sale.PaymentMethod, items ...saleapp.CreateSaleItem) *sale.Sale {
	t.Helper()
	s, err := f.create.Execute(context.Background(), saleapp.CreateSaleRequest{
		Caller:        caller,
		PaymentMethod: string(method),
		Items:         items,
	})
	require.NoError(t, err)
	return s
}

func TestCreateSaleCounter(t *testing.T) {
	f := newFixture(t)
	p := f.seed(t, "X-Burger", "5", "10.00", "0")

	s := f.order(t, user.Anonymous, sale.PaymentCash, saleapp.CreateSaleItem{ProductID: p.ID, Quantity: 2})

	assert.Equal(t, "20.00", s.TotalAmount.StringFixed(2))
	assert.Equal(t, sale.StatusPaid, s.Status)
	assert.Nil(t, s.CustomerID)
	assert.Equal(t, "3", f.stockOf(t, p))
	require.Len(t, s.Items, 1)
	assert.Equal(t, "X-Burger", s.Items[0].ProductName)

	assert.Equal(t, []sale.EventType{sale.EventSaleCreated}, f.publisher.types())
	assert.Equal(t, 1, f.cache.invalidated)

	movements, total, err := f.movementRepo.ListByStockItem(context.Background(), p.StockItemID, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, catalog.MovementDebit, movements[0].Type)
	require.NotNil(t, movements[0].SaleID)
	assert.Equal(t, s.ID, *movements[0].SaleID)
	assert.Equal(t, "5", movements[0].Before.String())
	assert.Equal(t, "3", movements[0].After.String())
}

func TestCreateSaleSelfService(t *testing.T) {
	f := newFixture(t)
	p := f.seed(t, "Suco", "10", "7.50", "0")

	s := f.order(t, customer, sale.PaymentOnline, saleapp.CreateSaleItem{ProductID: p.ID, Quantity: 3})
	assert.Equal(t, sale.StatusAwaitingPayment, s.Status)
	require.NotNil(t, s.CustomerID)
	assert.Equal(t, customer.ID, *s.CustomerID)
	assert.Equal(t, "22.5", s.TotalAmount.String())

	counter := f.order(t, customer, sale.PaymentPix, saleapp.CreateSaleItem{ProductID: p.ID, Quantity: 1})
	assert.Nil(t, counter.CustomerID, "柜台支付方式不记录顾客")
	assert.Equal(t, sale.StatusPaid, counter.Status)
}

func TestCreateSaleInsufficientStockIsAtomic(t *testing.T) {
	f := newFixture(t)
	burger := f.seed(t, "X-Burger", "1", "10.00", "0")
	suco := f.seed(t, "Suco", "10", "5.00", "0")

	_, err := f.create.Execute(context.Background(), saleapp.CreateSaleRequest{
		PaymentMethod: string(sale.PaymentCash),
		Items: []saleapp.CreateSaleItem{
			{ProductID: suco.ID, Quantity: 2},
			{ProductID: burger.ID, Quantity: 2},
		},
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInsufficientStock))
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Estoque insuficiente para: X-Burger. Disponível: 1", appErr.Message)
	details, ok := appErr.Details.(catalog.InsufficientStockDetails)
	require.True(t, ok)
	assert.Equal(t, burger.ID, details.ProductID)
	assert.Equal(t, "1", details.Available)

	assert.Equal(t, "1", f.stockOf(t, burger))
	assert.Equal(t, "10", f.stockOf(t, suco), "失败时其他商品的库存也不变")
	assert.Empty(t, f.publisher.types())
	assert.Zero(t, f.cache.invalidated)
}

func TestCreateSaleSameStockAcrossLines(t *testing.T) {
	f := newFixture(t)
	p := f.seed(t, "Pão de Queijo", "3", "4.00", "0")

	_, err := f.create.Execute(context.Background(), saleapp.CreateSaleRequest{
		PaymentMethod: string(sale.PaymentCash),
		Items: []saleapp.CreateSaleItem{
			{ProductID: p.ID, Quantity: 2},
			{ProductID: p.ID, Quantity: 2},
		},
	})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInsufficientStock))
	assert.Equal(t, "3", f.stockOf(t, p))

	s := f.order(t, user.Anonymous, sale.PaymentCash,
		saleapp.CreateSaleItem{ProductID: p.ID, Quantity: 1},
		saleapp.CreateSaleItem{ProductID: p.ID, Quantity: 2},
	)
	assert.Len(t, s.Items, 2)
	assert.Equal(t, "0", f.stockOf(t, p))
}

func TestCreateSaleConcurrentOrdersDoNotOversell(t *testing.T) {
	f := newFixture(t)
	p := f.seed(t, "Misto Quente", "5", "7.00", "0")

	const workers = 10
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		succeed  int
		rejected int
		others   []error
	)
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := f.create.Execute(context.Background(), saleapp.CreateSaleRequest{
				PaymentMethod: string(sale.PaymentCash),
				Items:         []saleapp.CreateSaleItem{{ProductID: p.ID, Quantity: 2}},
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeed++
			case apperrors.HasCode(err, apperrors.ErrCodeInsufficientStock):
				rejected++
			default:
				others = append(others, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	require.Empty(t, others)
	assert.Equal(t, 2, succeed)
	assert.Equal(t, workers-2, rejected)
	assert.Equal(t, "1", f.stockOf(t, p))

	movements, _, err := f.movementRepo.ListByStockItem(context.Background(), p.StockItemID, 1, 50)
	require.NoError(t, err)
	debits := 0
	for _, m := range movements {
		if m.Type == catalog.MovementDebit {
			debits++
		}
	}
	assert.Equal(t, 2, debits)
}

func TestCreateSaleValidation(t *testing.T) {
	f := newFixture(t)
	p := f.seed(t, "Coxinha", "5", "6.00", "0")
	ctx := context.Background()

	tests := []struct {
		name   string
		method string
		items  []saleapp.CreateSaleItem
		code   int
	}{
		{"缺少支付方式", "", []saleapp.CreateSaleItem{{ProductID: p.ID, Quantity: 1}}, apperrors.ErrCodeInvalidParams},
		{"未知支付方式", "BOLETO", []saleapp.CreateSaleItem{{ProductID: p.ID, Quantity: 1}}, apperrors.ErrCodeInvalidParams},
		{"空购物车", "DINHEIRO", nil, apperrors.ErrCodeInvalidParams},
		{"数量为0", "DINHEIRO", []saleapp.CreateSaleItem{{ProductID: p.ID, Quantity: 0}}, apperrors.ErrCodeInvalidParams},
		{"商品ID为0", "DINHEIRO", []saleapp.CreateSaleItem{{ProductID: 0, Quantity: 1}}, apperrors.ErrCodeInvalidParams},
		{"商品不存在", "DINHEIRO", []saleapp.CreateSaleItem{{ProductID: 999, Quantity: 1}}, apperrors.ErrCodeProductNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.create.Execute(ctx, saleapp.CreateSaleRequest{PaymentMethod: tt.method, Items: tt.items})
			assert.True(t, apperrors.HasCode(err, tt.code), "got %v", err)
		})
	}
	assert.Equal(t, "5", f.stockOf(t, p))
}

func TestCreateSaleStockLowEvent(t *testing.T) {
	f := newFixture(t)
	p := f.seed(t, "Refrigerante", "5", "6.00", "3")

	f.order(t, user.Anonymous, sale.PaymentCash, saleapp.CreateSaleItem{ProductID: p.ID, Quantity: 3})

	assert.Equal(t, []sale.EventType{sale.EventSaleCreated, sale.EventStockLow}, f.publisher.types())
	low := f.publisher.events[1]
	assert.Equal(t, p.StockItemID, low.StockItemID)
	assert.Equal(t, "2", low.Quantity.String())
}

func TestConfirmPayment(t *testing.T) {
	f := newFixture(t)
	p := f.seed(t, "Açaí", "10", "12.00", "0")
	ctx := context.Background()
	s := f.order(t, customer, sale.PaymentOnPickup, saleapp.CreateSaleItem{ProductID: p.ID, Quantity: 1})

	t.Run("非所有者", func(t *testing.T) {
		_, err := f.confirm.Execute(ctx, saleapp.ConfirmPaymentRequest{Caller: other, SaleID: s.ID})
		assert.ErrorIs(t, err, sale.ErrForbidden)
	})

	t.Run("订单不存在对顾客同样是无权限", func(t *testing.T) {
		_, err := f.confirm.Execute(ctx, saleapp.ConfirmPaymentRequest{Caller: customer, SaleID: 999})
		assert.ErrorIs(t, err, sale.ErrForbidden)
	})

	t.Run("所有者确认一次", func(t *testing.T) {
		paid, err := f.confirm.Execute(ctx, saleapp.ConfirmPaymentRequest{Caller: customer, SaleID: s.ID})
		require.NoError(t, err)
		assert.Equal(t, sale.StatusPaid, paid.Status)

		_, err = f.confirm.Execute(ctx, saleapp.ConfirmPaymentRequest{Caller: customer, SaleID: s.ID})
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidSaleStatus))
		assert.Contains(t, err.Error(), "Pago")

		stored, err := f.saleRepo.FindByID(ctx, s.ID)
		require.NoError(t, err)
		assert.Equal(t, sale.StatusPaid, stored.Status)
	})

	assert.Contains(t, f.publisher.types(), sale.EventSalePaid)
}

func TestUpdateStatusCancelRestoresStockOnce(t *testing.T) {
	f := newFixture(t)
	burger := f.seed(t, "X-Burger", "5", "10.00", "0")
	suco := f.seed(t, "Suco", "5", "5.00", "0")
	ctx := context.Background()

	s := f.order(t, user.Anonymous, sale.PaymentCash,
		saleapp.CreateSaleItem{ProductID: burger.ID, Quantity: 2},
		saleapp.CreateSaleItem{ProductID: suco.ID, Quantity: 1},
	)
	assert.Equal(t, "3", f.stockOf(t, burger))

	_, err := f.update.Execute(ctx, saleapp.UpdateStatusRequest{Caller: customer, SaleID: s.ID, Status: "CANCELADO"})
	assert.ErrorIs(t, err, sale.ErrForbidden)

	cancelled, err := f.update.Execute(ctx, saleapp.UpdateStatusRequest{Caller: staff, SaleID: s.ID, Status: "CANCELADO"})
	require.NoError(t, err)
	assert.Equal(t, sale.StatusCancelled, cancelled.Status)
	assert.Equal(t, "5", f.stockOf(t, burger))
	assert.Equal(t, "5", f.stockOf(t, suco))

	_, err = f.update.Execute(ctx, saleapp.UpdateStatusRequest{Caller: staff, SaleID: s.ID, Status: "CANCELADO"})
	require.NoError(t, err)
	assert.Equal(t, "5", f.stockOf(t, burger), "重复取消不再回补")

	_, err = f.update.Execute(ctx, saleapp.UpdateStatusRequest{Caller: staff, SaleID: s.ID, Status: "PRONTO"})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidSaleStatus))

	movements, _, err := f.movementRepo.ListByStockItem(ctx, burger.StockItemID, 1, 10)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, catalog.MovementCredit, movements[0].Type)

	assert.Equal(t, 1, countType(f.publisher.types(), sale.EventSaleCancelled))
}

func TestUpdateStatusCancelSkipsDeletedProduct(t *testing.T) {
	f := newFixture(t)
	burger := f.seed(t, "X-Burger", "5", "10.00", "0")
	suco := f.seed(t, "Suco", "5", "5.00", "0")
	ctx := context.Background()

	s := f.order(t, user.Anonymous, sale.PaymentCash,
		saleapp.CreateSaleItem{ProductID: burger.ID, Quantity: 2},
		saleapp.CreateSaleItem{ProductID: suco.ID, Quantity: 1},
	)
	require.NoError(t, f.catalogRepo.DeleteProduct(ctx, suco.ID))

	_, err := f.update.Execute(ctx, saleapp.UpdateStatusRequest{Caller: staff, SaleID: s.ID, Status: "CANCELADO"})
	require.NoError(t, err)
	assert.Equal(t, "5", f.stockOf(t, burger))
	assert.Equal(t, "4", f.stockOf(t, suco), "商品已删除的明细不回补")
}

func TestUpdateStatusFlow(t *testing.T) {
	f := newFixture(t)
	p := f.seed(t, "Pastel", "10", "8.00", "0")
	ctx := context.Background()
	s := f.order(t, user.Anonymous, sale.PaymentDebitCard, saleapp.CreateSaleItem{ProductID: p.ID, Quantity: 1})

	for _, status := range []string{"EM_PREPARO", "PRONTO", "FINALIZADO"} {
		updated, err := f.update.Execute(ctx, saleapp.UpdateStatusRequest{Caller: staff, SaleID: s.ID, Status: status})
		require.NoError(t, err)
		assert.Equal(t, sale.Status(status), updated.Status)
	}
	assert.Equal(t, "9", f.stockOf(t, p))

	_, err := f.update.Execute(ctx, saleapp.UpdateStatusRequest{Caller: staff, SaleID: s.ID, Status: "AGUARDANDO_PAGAMENTO"})
	assert.ErrorIs(t, err, sale.ErrAwaitingPaymentTarget)

	_, err = f.update.Execute(ctx, saleapp.UpdateStatusRequest{Caller: staff, SaleID: 999, Status: "PRONTO"})
	assert.ErrorIs(t, err, sale.ErrSaleNotFound)
}

func TestQueries(t *testing.T) {
	f := newFixture(t)
	p := f.seed(t, "Pastel", "20", "8.00", "0")
	ctx := context.Background()

	first := f.order(t, customer, sale.PaymentOnline, saleapp.CreateSaleItem{ProductID: p.ID, Quantity: 1})
	second := f.order(t, customer, sale.PaymentOnPickup, saleapp.CreateSaleItem{ProductID: p.ID, Quantity: 1})
	done := f.order(t, user.Anonymous, sale.PaymentCash, saleapp.CreateSaleItem{ProductID: p.ID, Quantity: 1})
	_, err := f.update.Execute(ctx, saleapp.UpdateStatusRequest{Caller: staff, SaleID: done.ID, Status: "FINALIZADO"})
	require.NoError(t, err)

	t.Run("处理队列只给店员", func(t *testing.T) {
		_, err := f.active.Execute(ctx, customer)
		assert.ErrorIs(t, err, sale.ErrForbidden)

		list, err := f.active.Execute(ctx, staff)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, first.ID, list[0].ID)
	})

	t.Run("我的订单最新在前", func(t *testing.T) {
		list, err := f.mine.Execute(ctx, customer)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, second.ID, list[0].ID)

		_, err = f.mine.Execute(ctx, user.Anonymous)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeUnauthorized))
	})

	t.Run("查看权限", func(t *testing.T) {
		got, err := f.get.Execute(ctx, saleapp.GetSaleRequest{Caller: customer, SaleID: first.ID})
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)

		_, err = f.get.Execute(ctx, saleapp.GetSaleRequest{Caller: other, SaleID: first.ID})
		assert.ErrorIs(t, err, sale.ErrForbidden)
		_, err = f.get.Execute(ctx, saleapp.GetSaleRequest{Caller: other, SaleID: 999})
		assert.ErrorIs(t, err, sale.ErrForbidden)
		_, err = f.get.Execute(ctx, saleapp.GetSaleRequest{Caller: staff, SaleID: 999})
		assert.ErrorIs(t, err, sale.ErrSaleNotFound)

		_, err = f.get.Execute(ctx, saleapp.GetSaleRequest{Caller: staff, SaleID: done.ID})
		assert.NoError(t, err)
	})

	t.Run("管理删除不回补库存", func(t *testing.T) {
		before := f.stockOf(t, p)
		assert.ErrorIs(t, f.del.Execute(ctx, saleapp.DeleteSaleRequest{Caller: customer, SaleID: done.ID}), sale.ErrForbidden)
		require.NoError(t, f.del.Execute(ctx, saleapp.DeleteSaleRequest{Caller: staff, SaleID: done.ID}))
		assert.Equal(t, before, f.stockOf(t, p))

		_, err := f.get.Execute(ctx, saleapp.GetSaleRequest{Caller: staff, SaleID: done.ID})
		assert.ErrorIs(t, err, sale.ErrSaleNotFound)
		assert.ErrorIs(t, f.del.Execute(ctx, saleapp.DeleteSaleRequest{Caller: staff, SaleID: done.ID}), sale.ErrSaleNotFound)
	})
}

func countType(types []sale.EventType, want sale.EventType) int {
	n := 0
	for _, t := range types {
		if t == want {
			n++
		}
	}
	return n
}
