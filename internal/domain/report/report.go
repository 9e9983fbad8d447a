package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/lanchonete/internal/domain/sale"
)

// DateLayout 报表日期格式
const DateLayout = "2006-01-02"

var hundred = decimal.NewFromInt(100)

// Period 按自然日的闭区间 [Start, End]
type Period struct {
	Start time.Time
	End   time.Time
}

// Day 截断到当天零点
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DefaultPeriod 以今天为结束日，向前days天
func DefaultPeriod(now time.Time, days int) Period {
	end := Day(now)
	return Period{Start: end.AddDate(0, 0, -days), End: end}
}

// Bounds 转换为 [from, to) 时间范围，供仓储查询created_at
func (p Period) Bounds() (time.Time, time.Time) {
	return Day(p.Start), Day(p.End).AddDate(0, 0, 1)
}

// OpenPeriod 可选起止日期，任一端为空表示不限
type OpenPeriod struct {
	Start *time.Time
	End   *time.Time
}

// Bounds 同Period.Bounds，空端返回nil
func (p OpenPeriod) Bounds() (*time.Time, *time.Time) {
	var from, to *time.Time
	if p.Start != nil {
		f := Day(*p.Start)
		from = &f
	}
	if p.End != nil {
		t := Day(*p.End).AddDate(0, 0, 1)
		to = &t
	}
	return from, to
}

// Summary 汇总
type Summary struct {
	TotalRevenue  decimal.Decimal
	TotalOrders   int
	AverageTicket decimal.Decimal
}

// DayRevenue 每日营业额
type DayRevenue struct {
	Day   string
	Total decimal.Decimal
}

// ProductQuantity 商品销量
type ProductQuantity struct {
	ProductName  string
	QuantitySold int
}

// PaymentRevenue 按支付方式的营业额
type PaymentRevenue struct {
	PaymentMethod sale.PaymentMethod
	Total         decimal.Decimal
}

// SalesReport 销售报表
type SalesReport struct {
	Period          Period
	Summary         Summary
	RevenueByDay    []DayRevenue
	TopProducts     []ProductQuantity
	RevenueByMethod []PaymentRevenue
}

// BuildSalesReport 聚合销售报表
// sales须已按时间范围和SalesReportStatuses过滤；日期按loc划分自然日
func BuildSalesReport(period Period, sales []*sale.Sale, topN int, loc *time.Location) *SalesReport {
	r := &SalesReport{
		Period: period,
		Summary: Summary{
			TotalRevenue:  decimal.Zero,
			AverageTicket: decimal.Zero,
		},
		RevenueByDay:    []DayRevenue{},
		TopProducts:     []ProductQuantity{},
		RevenueByMethod: []PaymentRevenue{},
	}
	if loc == nil {
		loc = time.Local
	}

	byDay := map[string]decimal.Decimal{}
	byMethod := map[sale.PaymentMethod]decimal.Decimal{}
	byProduct := map[string]int{}

	for _, s := range sales {
		r.Summary.TotalRevenue = r.Summary.TotalRevenue.Add(s.TotalAmount)
		r.Summary.TotalOrders++

		day := s.CreatedAt.In(loc).Format(DateLayout)
		byDay[day] = byDay[day].Add(s.TotalAmount)
		byMethod[s.PaymentMethod] = byMethod[s.PaymentMethod].Add(s.TotalAmount)

		for _, item := range s.Items {
			byProduct[item.ProductName] += item.Quantity
		}
	}

	if r.Summary.TotalOrders > 0 {
		r.Summary.AverageTicket = r.Summary.TotalRevenue.
			Div(decimal.NewFromInt(int64(r.Summary.TotalOrders))).Round(2)
	}

	for day, total := range byDay {
		r.RevenueByDay = append(r.RevenueByDay, DayRevenue{Day: day, Total: total})
	}
	sort.Slice(r.RevenueByDay, func(i, j int) bool {
		return r.RevenueByDay[i].Day < r.RevenueByDay[j].Day
	})

	for name, qty := range byProduct {
		r.TopProducts = append(r.TopProducts, ProductQuantity{ProductName: name, QuantitySold: qty})
	}
	sort.Slice(r.TopProducts, func(i, j int) bool {
		a, b := r.TopProducts[i], r.TopProducts[j]
		if a.QuantitySold != b.QuantitySold {
			return a.QuantitySold > b.QuantitySold
		}
		return a.ProductName < b.ProductName
	})
	if topN > 0 && len(r.TopProducts) > topN {
		r.TopProducts = r.TopProducts[:topN]
	}

	for method, total := range byMethod {
		r.RevenueByMethod = append(r.RevenueByMethod, PaymentRevenue{PaymentMethod: method, Total: total})
	}
	sort.Slice(r.RevenueByMethod, func(i, j int) bool {
		a, b := r.RevenueByMethod[i], r.RevenueByMethod[j]
		if c := a.Total.Cmp(b.Total); c != 0 {
			return c > 0
		}
		return a.PaymentMethod < b.PaymentMethod
	})

	return r
}
