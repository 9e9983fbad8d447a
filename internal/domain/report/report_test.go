package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/lanchonete/internal/domain/sale"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newSale(at time.Time, method sale.PaymentMethod, total string, items ...*sale.LineItem) *sale.Sale {
	return &sale.Sale{
		Status:        sale.StatusPaid,
		PaymentMethod: method,
		TotalAmount:   d(total),
		CreatedAt:     at,
		Items:         items,
	}
}

func line(name string, qty int, price string) *sale.LineItem {
	return &sale.LineItem{ProductName: name, Quantity: qty, UnitPrice: d(price)}
}

func TestBuildSalesReportEmpty(t *testing.T) {
	p := DefaultPeriod(time.Date(2024, 5, 31, 15, 0, 0, 0, time.UTC), 30)
	r := BuildSalesReport(p, nil, 10, time.UTC)

	assert.True(t, r.Summary.TotalRevenue.IsZero())
	assert.Equal(t, 0, r.Summary.TotalOrders)
	assert.True(t, r.Summary.AverageTicket.IsZero())
	assert.NotNil(t, r.RevenueByDay)
	assert.Empty(t, r.RevenueByDay)
	assert.NotNil(t, r.TopProducts)
	assert.NotNil(t, r.RevenueByMethod)
	assert.Equal(t, "2024-05-01", r.Period.Start.Format(DateLayout))
}

func TestBuildSalesReport(t *testing.T) {
	day1 := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 2, 23, 30, 0, 0, time.UTC)

	sales := []*sale.Sale{
		newSale(day2, sale.PaymentPix, "20.00", line("Coxinha", 2, "5.00"), line("Suco", 1, "10.00")),
		newSale(day1, sale.PaymentCash, "10.00", line("Coxinha", 2, "5.00")),
		newSale(day1, sale.PaymentPix, "5.00", line("Pastel", 1, "5.00")),
	}

	r := BuildSalesReport(Period{Start: day1, End: day2}, sales, 10, time.UTC)

	assert.Equal(t, "35", r.Summary.TotalRevenue.String())
	assert.Equal(t, 3, r.Summary.TotalOrders)
	assert.Equal(t, "11.67", r.Summary.AverageTicket.StringFixed(2))

	require.Len(t, r.RevenueByDay, 2)
	assert.Equal(t, "2024-05-01", r.RevenueByDay[0].Day)
	assert.Equal(t, "15", r.RevenueByDay[0].Total.String())
	assert.Equal(t, "2024-05-02", r.RevenueByDay[1].Day)

	require.Len(t, r.TopProducts, 3)
	assert.Equal(t, ProductQuantity{ProductName: "Coxinha", QuantitySold: 4}, r.TopProducts[0])

	require.Len(t, r.RevenueByMethod, 2)
	assert.Equal(t, sale.PaymentPix, r.RevenueByMethod[0].PaymentMethod)
	assert.Equal(t, "25", r.RevenueByMethod[0].Total.String())
}

func TestBuildSalesReportDayUsesLocation(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*3600)
	// 02:00 UTC 在圣保罗还是前一天
	at := time.Date(2024, 5, 2, 2, 0, 0, 0, time.UTC)
	r := BuildSalesReport(Period{}, []*sale.Sale{newSale(at, sale.PaymentCash, "1.00")}, 10, saoPaulo)
	require.Len(t, r.RevenueByDay, 1)
	assert.Equal(t, "2024-05-01", r.RevenueByDay[0].Day)
}

func TestBuildSalesReportTopLimit(t *testing.T) {
	var items []*sale.LineItem
	for i := 0; i < 15; i++ {
		items = append(items, line(fmt.Sprintf("Produto %02d", i), i+1, "1.00"))
	}
	r := BuildSalesReport(Period{}, []*sale.Sale{newSale(time.Now(), sale.PaymentCash, "120.00", items...)}, 10, time.UTC)

	require.Len(t, r.TopProducts, 10)
	assert.Equal(t, "Produto 14", r.TopProducts[0].ProductName)
	assert.Equal(t, 15, r.TopProducts[0].QuantitySold)
}

func TestPeriodBounds(t *testing.T) {
	p := Period{
		Start: time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 5, 3, 8, 0, 0, 0, time.UTC),
	}
	from, to := p.Bounds()
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, 5, 4, 0, 0, 0, 0, time.UTC), to)

	start := p.Start
	f, e := OpenPeriod{Start: &start}.Bounds()
	require.NotNil(t, f)
	assert.Nil(t, e)
}
