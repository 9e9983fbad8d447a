package report

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v decimal.Decimal) *decimal.Decimal { return &v }

func TestBuildProfitability(t *testing.T) {
	lines := []ProfitLine{
		{ProductName: "Coxinha", Quantity: 2, UnitPrice: d("5.00"), CostPrice: ptr(d("2.00"))},
		{ProductName: "Coxinha", Quantity: 1, UnitPrice: d("6.00"), CostPrice: ptr(d("2.00"))},
		{ProductName: "Suco", Quantity: 3, UnitPrice: d("8.00"), CostPrice: ptr(d("3.10"))},
		{ProductName: "Bolo", Quantity: 1, UnitPrice: d("4.00")},
	}

	rows := BuildProfitability(lines)
	require.Len(t, rows, 3)

	suco := rows[0]
	assert.Equal(t, "Suco", suco.ProductName)
	assert.Equal(t, 3, suco.QuantitySold)
	assert.Equal(t, "24", suco.Revenue.String())
	assert.Equal(t, "9.3", suco.Cost.String())
	assert.Equal(t, "14.7", suco.GrossProfit.String())
	assert.Equal(t, "61.25", suco.MarginPercent.StringFixed(2))

	coxinha := rows[1]
	assert.Equal(t, "Coxinha", coxinha.ProductName)
	assert.Equal(t, 3, coxinha.QuantitySold)
	assert.Equal(t, "16", coxinha.Revenue.String())
	assert.Equal(t, "6", coxinha.Cost.String())
	assert.Equal(t, "62.5", coxinha.MarginPercent.String())

	bolo := rows[2]
	assert.True(t, bolo.Cost.IsZero(), "缺失成本价按0计算")
	assert.Equal(t, "100", bolo.MarginPercent.String())
}

func TestBuildProfitabilityZeroRevenue(t *testing.T) {
	rows := BuildProfitability([]ProfitLine{
		{ProductName: "Brinde", Quantity: 1, UnitPrice: decimal.Zero, CostPrice: ptr(d("1.00"))},
	})
	require.Len(t, rows, 1)
	assert.True(t, rows[0].MarginPercent.IsZero())
	assert.Equal(t, "-1", rows[0].GrossProfit.String())
}

func TestBuildProfitabilityEmpty(t *testing.T) {
	rows := BuildProfitability(nil)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestMargin(t *testing.T) {
	assert.Equal(t, "33.33", Margin(d("3"), d("1")).StringFixed(2))
	assert.True(t, Margin(decimal.Zero, d("5")).IsZero())
}
