package mysql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/lanchonete/internal/domain/catalog"
	"github.com/xiebiao/lanchonete/internal/domain/sale"
	"github.com/xiebiao/lanchonete/internal/domain/user"
	"github.com/xiebiao/lanchonete/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/lanchonete/internal/infrastructure/persistence/mysql/mysqltest"
	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// seedProduct 创建库存项和对应的菜单商品
func seedProduct(t *testing.T, repo catalog.Repository, name, qty, price string, cost *decimal.Decimal) *catalog.MenuProduct {
	t.Helper()
	ctx := context.Background()

	item, err := catalog.NewStockItem(name, "unidades", dec(qty), cost, dec("1"))
	require.NoError(t, err)
	require.NoError(t, repo.CreateStockItem(ctx, item))

	p, err := catalog.NewMenuProduct(item.ID, name, "", dec(price), true)
	require.NoError(t, err)
	require.NoError(t, repo.CreateProduct(ctx, p))
	return p
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := mysql.NewUserRepository(mysqltest.New(t))

	u := user.NewUser("ana@test.com", "hash", "Ana", user.RoleCustomer)
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID)

	err := repo.Create(ctx, user.NewUser("ana@test.com", "hash", "Outra", user.RoleCustomer))
	assert.ErrorIs(t, err, apperrors.ErrEmailDuplicate)

	require.NoError(t, repo.UpdateRole(ctx, u.ID, user.RoleStaff))
	found, err := repo.FindByEmail(ctx, "ana@test.com")
	require.NoError(t, err)
	assert.Equal(t, user.RoleStaff, found.Role)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.ErrorIs(t, repo.UpdateRole(ctx, 999, user.RoleAdmin), apperrors.ErrUserNotFound)
}

func TestCatalogRepository(t *testing.T) {
	ctx := context.Background()
	repo := mysql.NewCatalogRepository(mysqltest.New(t))

	cost := dec("2.50")
	coxinha := seedProduct(t, repo, "Coxinha", "10", "6.50", &cost)
	suco := seedProduct(t, repo, "Suco", "3.5", "8.00", nil)

	t.Run("查询商品带库存项", func(t *testing.T) {
		p, err := repo.FindProductByID(ctx, coxinha.ID)
		require.NoError(t, err)
		require.NotNil(t, p.Stock)
		assert.Equal(t, "10", p.Stock.Quantity.String())
		require.NotNil(t, p.Stock.CostPrice)
		assert.Equal(t, "2.5", p.Stock.CostPrice.String())
		assert.Equal(t, "6.5", p.SalePrice.String())

		_, err = repo.FindProductByID(ctx, 999)
		assert.ErrorIs(t, err, catalog.ErrProductNotFound)
	})

	t.Run("批量查询缺失ID不报错", func(t *testing.T) {
		m, err := repo.FindProductsByIDs(ctx, []uint{coxinha.ID, suco.ID, 999})
		require.NoError(t, err)
		assert.Len(t, m, 2)
		assert.Nil(t, m[suco.ID].Stock.CostPrice)
	})

	t.Run("菜单默认只列出上架商品", func(t *testing.T) {
		item, err := catalog.NewStockItem("Bolo", "", dec("1"), nil, dec("0"))
		require.NoError(t, err)
		require.NoError(t, repo.CreateStockItem(ctx, item))
		inactive, err := catalog.NewMenuProduct(item.ID, "Bolo", "", dec("4"), false)
		require.NoError(t, err)
		require.NoError(t, repo.CreateProduct(ctx, inactive))

		active, err := repo.ListProducts(ctx, catalog.MenuFilter{})
		require.NoError(t, err)
		assert.Len(t, active, 2)

		all, err := repo.ListProducts(ctx, catalog.MenuFilter{IncludeInactive: true})
		require.NoError(t, err)
		assert.Len(t, all, 3)
		assert.Equal(t, "Bolo", all[0].Name)
	})

	t.Run("库存项名称唯一", func(t *testing.T) {
		item, err := catalog.NewStockItem("Coxinha", "", dec("1"), nil, dec("0"))
		require.NoError(t, err)
		assert.ErrorIs(t, repo.CreateStockItem(ctx, item), catalog.ErrStockItemExists)
	})

	t.Run("商品必须关联存在的库存项", func(t *testing.T) {
		p, err := catalog.NewMenuProduct(999, "Fantasma", "", dec("1"), true)
		require.NoError(t, err)
		assert.ErrorIs(t, repo.CreateProduct(ctx, p), catalog.ErrStockItemNotFound)
	})

	t.Run("锁定并更新库存", func(t *testing.T) {
		items, err := repo.LockStockItems(ctx, []uint{suco.StockItemID, coxinha.StockItemID})
		require.NoError(t, err)
		require.Len(t, items, 2)

		require.NoError(t, repo.UpdateStockQuantity(ctx, suco.StockItemID, dec("1.25")))
		item, err := repo.FindStockItemByID(ctx, suco.StockItemID)
		require.NoError(t, err)
		assert.Equal(t, "1.25", item.Quantity.String())

		assert.ErrorIs(t, repo.UpdateStockQuantity(ctx, suco.StockItemID, dec("-1")), catalog.ErrNegativeStock)
	})
}

func TestSaleRepository(t *testing.T) {
	ctx := context.Background()
	db := mysqltest.New(t)
	users := mysql.NewUserRepository(db)
	products := mysql.NewCatalogRepository(db)
	sales := mysql.NewSaleRepository(db)

	ana := user.NewUser("ana@test.com", "hash", "Ana", user.RoleCustomer)
	require.NoError(t, users.Create(ctx, ana))
	caller := user.Caller{ID: ana.ID, Name: ana.Nickname, Role: ana.Role}

	coxinha := seedProduct(t, products, "Coxinha", "10", "6.50", nil)

	newSale := func(c user.Caller, method sale.PaymentMethod, at time.Time) *sale.Sale {
		li, err := sale.NewLineItem(coxinha.ID, coxinha.Name, coxinha.SalePrice, 2)
		require.NoError(t, err)
		s, err := sale.NewSale(c, method, []*sale.LineItem{li})
		require.NoError(t, err)
		s.CreatedAt = at
		require.NoError(t, sales.Create(ctx, s))
		return s
	}

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	counter := newSale(user.Anonymous, sale.PaymentCash, base)
	online := newSale(caller, sale.PaymentOnline, base.Add(time.Hour))
	done := newSale(user.Anonymous, sale.PaymentPix, base.Add(2*time.Hour))
	require.NoError(t, sales.UpdateStatus(ctx, done.ID, sale.StatusCompleted))

	t.Run("查询订单含明细与顾客名", func(t *testing.T) {
		s, err := sales.FindByID(ctx, online.ID)
		require.NoError(t, err)
		assert.Equal(t, "Ana", s.OwnerName())
		require.Len(t, s.Items, 1)
		assert.Equal(t, "Coxinha", s.Items[0].ProductName)
		assert.Equal(t, "13", s.TotalAmount.String())
		assert.True(t, s.TotalAmount.Equal(s.ItemsTotal()))

		c, err := sales.FindByID(ctx, counter.ID)
		require.NoError(t, err)
		assert.Equal(t, sale.CounterSaleOwnerName, c.OwnerName())
	})

	t.Run("处理队列按时间升序且排除已完成", func(t *testing.T) {
		active, err := sales.ListActive(ctx)
		require.NoError(t, err)
		require.Len(t, active, 2)
		assert.Equal(t, counter.ID, active[0].ID)
		assert.Equal(t, online.ID, active[1].ID)
	})

	t.Run("我的订单", func(t *testing.T) {
		mine, err := sales.ListByCustomer(ctx, ana.ID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, online.ID, mine[0].ID)
	})

	t.Run("删除商品后明细保留快照", func(t *testing.T) {
		require.NoError(t, products.DeleteProduct(ctx, coxinha.ID))
		s, err := sales.FindByID(ctx, counter.ID)
		require.NoError(t, err)
		assert.Nil(t, s.Items[0].ProductID)
		assert.Equal(t, "Coxinha", s.Items[0].ProductName)
		assert.Equal(t, "6.5", s.Items[0].UnitPrice.String())
	})

	t.Run("删除订单", func(t *testing.T) {
		require.NoError(t, sales.Delete(ctx, done.ID))
		_, err := sales.FindByID(ctx, done.ID)
		assert.ErrorIs(t, err, sale.ErrSaleNotFound)
		assert.ErrorIs(t, sales.Delete(ctx, done.ID), sale.ErrSaleNotFound)
	})
}

func TestTxManagerRollback(t *testing.T) {
	ctx := context.Background()
	db := mysqltest.New(t)
	tx := mysql.NewTxManager(db)
	products := mysql.NewCatalogRepository(db)
	p := seedProduct(t, products, "Pastel", "5", "7.00", nil)

	boom := errors.New("boom")
	err := tx.Transaction(ctx, func(ctx context.Context) error {
		if err := products.UpdateStockQuantity(ctx, p.StockItemID, dec("1")); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	item, err := products.FindStockItemByID(ctx, p.StockItemID)
	require.NoError(t, err)
	assert.Equal(t, "5", item.Quantity.String(), "回滚后库存不变")
}

func TestMovementRepository(t *testing.T) {
	ctx := context.Background()
	db := mysqltest.New(t)
	products := mysql.NewCatalogRepository(db)
	movements := mysql.NewMovementRepository(db)
	p := seedProduct(t, products, "Pastel", "5", "7.00", nil)

	item, err := products.FindStockItemByID(ctx, p.StockItemID)
	require.NoError(t, err)
	m1, err := item.Debit(dec("2"), nil, "venda")
	require.NoError(t, err)
	m2, err := item.Restock(dec("10"), "entrega")
	require.NoError(t, err)
	require.NoError(t, movements.Append(ctx, m1, m2))
	assert.NotZero(t, m1.ID)

	list, total, err := movements.ListByStockItem(ctx, item.ID, 1, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, list, 2)
	assert.Equal(t, catalog.MovementRestock, list[0].Type, "最新的在前")
	assert.Equal(t, "3", list[0].Before.String())
	assert.Equal(t, "13", list[0].After.String())
}

func TestReportRepository(t *testing.T) {
	ctx := context.Background()
	db := mysqltest.New(t)
	products := mysql.NewCatalogRepository(db)
	sales := mysql.NewSaleRepository(db)
	reports := mysql.NewReportRepository(db)

	cost := dec("2.00")
	coxinha := seedProduct(t, products, "Coxinha", "100", "5.00", &cost)
	suco := seedProduct(t, products, "Suco", "100", "8.00", nil)

	create := func(at time.Time, status sale.Status, p *catalog.MenuProduct, qty int) *sale.Sale {
		li, err := sale.NewLineItem(p.ID, p.Name, p.SalePrice, qty)
		require.NoError(t, err)
		s, err := sale.NewSale(user.Anonymous, sale.PaymentCash, []*sale.LineItem{li})
		require.NoError(t, err)
		s.CreatedAt = at
		require.NoError(t, sales.Create(ctx, s))
		if status != s.Status {
			require.NoError(t, sales.UpdateStatus(ctx, s.ID, status))
		}
		return s
	}

	may1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	may2 := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)
	may5 := time.Date(2024, 5, 5, 10, 0, 0, 0, time.UTC)

	create(may1, sale.StatusPaid, coxinha, 2)
	create(may2, sale.StatusReady, suco, 1)
	create(may2, sale.StatusCancelled, coxinha, 5)
	create(may5, sale.StatusCompleted, coxinha, 1)

	t.Run("销售报表按状态和时间过滤", func(t *testing.T) {
		from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
		got, err := reports.FindSales(ctx, sale.SalesReportStatuses, from, to)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Len(t, got[0].Items, 1)
	})

	t.Run("利润明细只含PAGO和FINALIZADO", func(t *testing.T) {
		lines, err := reports.FindProfitLines(ctx, sale.ProfitabilityStatuses, nil, nil)
		require.NoError(t, err)
		require.Len(t, lines, 2)
		for _, l := range lines {
			assert.Equal(t, "Coxinha", l.ProductName)
			require.NotNil(t, l.CostPrice)
			assert.Equal(t, "2", l.CostPrice.String())
		}
	})

	t.Run("起止日期各自生效", func(t *testing.T) {
		from := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)
		lines, err := reports.FindProfitLines(ctx, sale.ProfitabilityStatuses, &from, nil)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, 1, lines[0].Quantity)
	})

	t.Run("商品删除后按快照名统计且成本为空", func(t *testing.T) {
		require.NoError(t, products.DeleteProduct(ctx, coxinha.ID))
		lines, err := reports.FindProfitLines(ctx, sale.ProfitabilityStatuses, nil, nil)
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Equal(t, "Coxinha", lines[0].ProductName)
		assert.Nil(t, lines[0].CostPrice)
	})
}

func TestAutoMigrateIdempotent(t *testing.T) {
	db := mysqltest.New(t)
	require.NoError(t, mysql.AutoMigrate(db))
	assert.True(t, db.Migrator().HasTable(&mysql.SaleModel{}))
	assert.True(t, db.Migrator().HasColumn(&mysql.StockMovementModel{}, "before_qty"))
}
