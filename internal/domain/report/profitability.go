package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ProfitLine 利润报表的一条明细输入
// ProductName取商品当前名称，商品已删除时为明细快照名；CostPrice为当前成本价，可能为空
type ProfitLine struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	CostPrice   *decimal.Decimal
}

// ProductProfitability 单个商品的利润
type ProductProfitability struct {
	ProductName   string
	QuantitySold  int
	Revenue       decimal.Decimal
	Cost          decimal.Decimal
	GrossProfit   decimal.Decimal
	MarginPercent decimal.Decimal
}

// BuildProfitability 按商品名称汇总收入、成本、毛利和毛利率，按收入降序
// 成本使用当前成本价；缺失的成本按0计算
func BuildProfitability(lines []ProfitLine) []ProductProfitability {
	index := map[string]*ProductProfitability{}
	order := make([]string, 0)

	for _, l := range lines {
		row, ok := index[l.ProductName]
		if !ok {
			row = &ProductProfitability{
				ProductName: l.ProductName,
				Revenue:     decimal.Zero,
				Cost:        decimal.Zero,
			}
			index[l.ProductName] = row
			order = append(order, l.ProductName)
		}

		qty := decimal.NewFromInt(int64(l.Quantity))
		row.QuantitySold += l.Quantity
		row.Revenue = row.Revenue.Add(l.UnitPrice.Mul(qty))
		if l.CostPrice != nil {
			row.Cost = row.Cost.Add(l.CostPrice.Mul(qty))
		}
	}

	result := make([]ProductProfitability, 0, len(order))
	for _, name := range order {
		row := index[name]
		row.GrossProfit = row.Revenue.Sub(row.Cost)
		row.MarginPercent = Margin(row.Revenue, row.GrossProfit)
		result = append(result, *row)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if c := result[i].Revenue.Cmp(result[j].Revenue); c != 0 {
			return c > 0
		}
		return result[i].ProductName < result[j].ProductName
	})
	return result
}

// Margin 毛利率（百分比，保留两位），收入不为正时为0
func Margin(revenue, profit decimal.Decimal) decimal.Decimal {
	if !revenue.IsPositive() {
		return decimal.Zero
	}
	return profit.Div(revenue).Mul(hundred).Round(2)
}
