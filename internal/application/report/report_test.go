package report_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	reportapp "github.com/xiebiao/lanchonete/internal/application/report"
	"github.com/xiebiao/lanchonete/internal/domain/catalog"
	"github.com/xiebiao/lanchonete/internal/domain/sale"
	"github.com/xiebiao/lanchonete/internal/domain/user"
	"github.com/xiebiao/lanchonete/internal/infrastructure/config"
	"github.com/xiebiao/lanchonete/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/lanchonete/internal/infrastructure/persistence/mysql/mysqltest"
	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
)

var staff = user.Caller{ID: 1, Name: "Equipe", Role: user.RoleStaff}

// memoryCache 进程内缓存，值经过JSON往返，与Redis实现行为一致
type memoryCache struct {
	mu      sync.Mutex
	version int64
	data    map[string][]byte
	sets    int
	failing bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) Version(context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failing {
		return 0, errors.New("redis down")
	}
	return c.version, nil
}

func (c *memoryCache) Get(_ context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (c *memoryCache) Set(_ context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	c.sets++
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.version++
	return nil
}

type fixture struct {
	saleRepo    sale.Repository
	catalogRepo catalog.Repository
	cache       *memoryCache
	sales       *reportapp.SalesReportUseCase
	profit      *reportapp.ProfitabilityUseCase
	loc         *time.Location
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db := mysqltest.New(t)
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	opts := reportapp.Options{DefaultRangeDays: 30, TopProductsLimit: 10, Location: loc}
	cache := newMemoryCache()
	repo := mysql.NewReportRepository(db)
	return &fixture{
		saleRepo:    mysql.NewSaleRepository(db),
		catalogRepo: mysql.NewCatalogRepository(db),
		cache:       cache,
		sales:       reportapp.NewSalesReportUseCase(repo, cache, opts, zap.NewNop()),
		profit:      reportapp.NewProfitabilityUseCase(repo, cache, opts, zap.NewNop()),
		loc:         loc,
	}
}

func (f *fixture) product(t *testing.T, name, price string, cost *decimal.Decimal) *catalog.MenuProduct {
	t.Helper()
	ctx := context.Background()
	item, err := catalog.NewStockItem(name, "", decimal.NewFromInt(100), cost, decimal.Zero)
	require.NoError(t, err)
	require.NoError(t, f.catalogRepo.CreateStockItem(ctx, item))
	p, err := catalog.NewMenuProduct(item.ID, name, "", decimal.RequireFromString(price), true)
	require.NoError(t, err)
	require.NoError(t, f.catalogRepo.CreateProduct(ctx, p))
	return p
}

// sell 直接落库一笔订单，created为当地时间
func (f *fixture) sell(t *testing.T, p *catalog.MenuProduct, qty int, method sale.PaymentMethod, status sale.Status, created time.Time) *sale.Sale {
	t.Helper()
	line, err := sale.NewLineItem(p.ID, p.Name, p.SalePrice, qty)
	require.NoError(t, err)
	s, err := sale.NewSale(user.Anonymous, method, []*sale.LineItem{line})
	require.NoError(t, err)
	s.Status = status
	s.CreatedAt = created
	require.NoError(t, f.saleRepo.Create(context.Background(), s))
	return s
}

func (f *fixture) at(day string, hour int) time.Time {
	d, _ := time.ParseInLocation("2006-01-02", day, f.loc)
	return d.Add(time.Duration(hour) * time.Hour)
}

func TestSalesReport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	burger := f.product(t, "X-Burger", "10.00", nil)
	suco := f.product(t, "Suco", "5.00", nil)

	f.sell(t, burger, 3, sale.PaymentCash, sale.StatusPaid, f.at("2024-03-01", 10))
	f.sell(t, suco, 3, sale.PaymentPix, sale.StatusCompleted, f.at("2024-03-01", 23))
	f.sell(t, burger, 1, sale.PaymentOnline, sale.StatusReady, f.at("2024-03-02", 1))
	f.sell(t, burger, 9, sale.PaymentCash, sale.StatusCancelled, f.at("2024-03-02", 12))
	f.sell(t, suco, 9, sale.PaymentOnline, sale.StatusAwaitingPayment, f.at("2024-03-02", 12))
	f.sell(t, suco, 1, sale.PaymentCash, sale.StatusPaid, f.at("2024-03-04", 0))

	r, err := f.sales.Execute(ctx, reportapp.SalesReportRequest{Caller: staff, StartDate: "2024-03-01", EndDate: "2024-03-02"})
	require.NoError(t, err)

	assert.Equal(t, "55", r.Summary.TotalRevenue.String())
	assert.Equal(t, 3, r.Summary.TotalOrders)
	assert.Equal(t, "18.33", r.Summary.AverageTicket.String())

	require.Len(t, r.RevenueByDay, 2)
	assert.Equal(t, "2024-03-01", r.RevenueByDay[0].Day, "按本地时区划分自然日")
	assert.Equal(t, "45", r.RevenueByDay[0].Total.String())
	assert.Equal(t, "2024-03-02", r.RevenueByDay[1].Day)

	require.Len(t, r.TopProducts, 2)
	assert.Equal(t, "X-Burger", r.TopProducts[0].ProductName)
	assert.Equal(t, 4, r.TopProducts[0].QuantitySold)

	require.Len(t, r.RevenueByMethod, 3)
	assert.Equal(t, sale.PaymentCash, r.RevenueByMethod[0].PaymentMethod)
}

func TestSalesReportEmptyAndPermissions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	r, err := f.sales.Execute(ctx, reportapp.SalesReportRequest{Caller: staff})
	require.NoError(t, err)
	assert.True(t, r.Summary.TotalRevenue.IsZero())
	assert.Zero(t, r.Summary.TotalOrders)
	assert.True(t, r.Summary.AverageTicket.IsZero())
	assert.NotNil(t, r.RevenueByDay)
	assert.Empty(t, r.TopProducts)
	assert.Equal(t, 30, int(r.Period.End.Sub(r.Period.Start).Hours()/24+0.5), "默认最近30天")

	_, err = f.sales.Execute(ctx, reportapp.SalesReportRequest{Caller: user.Caller{ID: 5, Role: user.RoleCustomer}})
	assert.ErrorIs(t, err, sale.ErrForbidden)

	_, err = f.sales.Execute(ctx, reportapp.SalesReportRequest{Caller: staff, StartDate: "01/03/2024"})
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeInvalidParams))

	_, err = f.sales.Execute(ctx, reportapp.SalesReportRequest{Caller: staff, StartDate: "2024-03-05", EndDate: "2024-03-01"})
	assert.ErrorIs(t, err, reportapp.ErrInvalidRange)
}

func TestSalesReportCacheVersioning(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	burger := f.product(t, "X-Burger", "10.00", nil)
	req := reportapp.SalesReportRequest{Caller: staff, StartDate: "2024-03-01", EndDate: "2024-03-31"}

	f.sell(t, burger, 1, sale.PaymentCash, sale.StatusPaid, f.at("2024-03-10", 12))
	first, err := f.sales.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.sets)

	f.sell(t, burger, 1, sale.PaymentCash, sale.StatusPaid, f.at("2024-03-11", 12))
	cached, err := f.sales.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first.Summary.TotalOrders, cached.Summary.TotalOrders, "版本未变时命中缓存")
	assert.True(t, first.Summary.TotalRevenue.Equal(cached.Summary.TotalRevenue))

	require.NoError(t, f.cache.Invalidate(ctx))
	fresh, err := f.sales.Execute(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.Summary.TotalOrders)

	f.cache.failing = true
	direct, err := f.sales.Execute(ctx, req)
	require.NoError(t, err, "缓存不可用时直接计算")
	assert.Equal(t, 2, direct.Summary.TotalOrders)
}

func TestProfitabilityReport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	cost := decimal.RequireFromString("4.00")
	burger := f.product(t, "X-Burger", "10.00", &cost)
	suco := f.product(t, "Suco", "5.00", nil)
	pastel := f.product(t, "Pastel", "8.00", &cost)

	f.sell(t, burger, 2, sale.PaymentCash, sale.StatusPaid, f.at("2024-03-01", 10))
	f.sell(t, burger, 1, sale.PaymentCash, sale.StatusCompleted, f.at("2024-04-01", 10))
	f.sell(t, burger, 5, sale.PaymentCash, sale.StatusReady, f.at("2024-03-01", 10))
	f.sell(t, suco, 2, sale.PaymentCash, sale.StatusPaid, f.at("2024-03-02", 10))
	f.sell(t, pastel, 1, sale.PaymentCash, sale.StatusPaid, f.at("2024-03-03", 10))
	require.NoError(t, f.catalogRepo.DeleteProduct(ctx, pastel.ID))

	rows, err := f.profit.Execute(ctx, reportapp.ProfitabilityRequest{Caller: staff})
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "X-Burger", rows[0].ProductName)
	assert.Equal(t, 3, rows[0].QuantitySold, "EM_PREPARO/PRONTO不计入利润")
	assert.Equal(t, "30", rows[0].Revenue.String())
	assert.Equal(t, "12", rows[0].Cost.String())
	assert.Equal(t, "18", rows[0].GrossProfit.String())
	assert.Equal(t, "60", rows[0].MarginPercent.String())

	assert.Equal(t, "Suco", rows[1].ProductName)
	assert.True(t, rows[1].Cost.IsZero(), "成本为空按0计算")
	assert.Equal(t, "100", rows[1].MarginPercent.String())

	assert.Equal(t, "Pastel", rows[2].ProductName, "商品删除后按明细快照名归组")
	assert.True(t, rows[2].Cost.IsZero())

	march, err := f.profit.Execute(ctx, reportapp.ProfitabilityRequest{Caller: staff, EndDate: "2024-03-31"})
	require.NoError(t, err)
	require.Len(t, march, 3)
	assert.Equal(t, 2, march[0].QuantitySold, "只给结束日期时单独生效")

	april, err := f.profit.Execute(ctx, reportapp.ProfitabilityRequest{Caller: staff, StartDate: "2024-04-01"})
	require.NoError(t, err)
	require.Len(t, april, 1)
	assert.Equal(t, 1, april[0].QuantitySold)

	_, err = f.profit.Execute(ctx, reportapp.ProfitabilityRequest{Caller: user.Anonymous})
	assert.ErrorIs(t, err, sale.ErrForbidden)
}

func TestNewOptions(t *testing.T) {
	cfg := &config.Config{
		Server: config.ServerConfig{TimeZone: "America/Sao_Paulo"},
		Report: config.ReportConfig{DefaultRangeDays: 7, TopProductsLimit: 5},
	}
	opts, err := reportapp.NewOptions(cfg)
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", opts.Location.String())
	assert.Equal(t, 7, opts.DefaultRangeDays)

	cfg.Server.TimeZone = "Marte/Olympus"
	_, err = reportapp.NewOptions(cfg)
	assert.Error(t, err)
}
