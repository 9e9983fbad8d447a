package mysql

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/xiebiao/lanchonete/internal/domain/report"
	"github.com/xiebiao/lanchonete/internal/domain/sale"
	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
)

// reportRepository 报表取数
// 只做过滤和关联，分组聚合在domain/report中完成
type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) report.Repository {
	return &reportRepository{db: db}
}

func (r *reportRepository) FindSales(ctx context.Context, statuses []sale.Status, from, to time.Time) ([]*sale.Sale, error) {
	var models []SaleModel
	err := dbFrom(ctx, r.db).
		Preload("Items").
		Where("status IN ?", statusStrings(statuses)).
		Where("created_at >= ? AND created_at < ?", from.UTC(), to.UTC()).
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "Falha ao consultar as vendas do relatório.")
	}

	sales := make([]*sale.Sale, len(models))
	for i := range models {
		sales[i] = toSaleEntity(&models[i])
	}
	return sales, nil
}

// profitRow 利润明细查询结果
type profitRow struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	CostPrice   decimal.NullDecimal
}

// FindProfitLines 订单明细关联当前商品和库存项
// 商品已删除时取明细快照名，成本为空
func (r *reportRepository) FindProfitLines(ctx context.Context, statuses []sale.Status, from, to *time.Time) ([]report.ProfitLine, error) {
	query := dbFrom(ctx, r.db).
		Table("sale_items AS si").
		Select("COALESCE(mp.name, si.product_name) AS product_name, si.quantity AS quantity, si.unit_price AS unit_price, st.cost_price AS cost_price").
		Joins("JOIN sales AS s ON s.id = si.sale_id").
		Joins("LEFT JOIN menu_products AS mp ON mp.id = si.product_id").
		Joins("LEFT JOIN stock_items AS st ON st.id = mp.stock_item_id").
		Where("s.status IN ?", statusStrings(statuses))
	if from != nil {
		query = query.Where("s.created_at >= ?", from.UTC())
	}
	if to != nil {
		query = query.Where("s.created_at < ?", to.UTC())
	}

	var rows []profitRow
	if err := query.Order("si.id ASC").Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(err, "Falha ao consultar a lucratividade.")
	}

	lines := make([]report.ProfitLine, len(rows))
	for i, row := range rows {
		lines[i] = report.ProfitLine{
			ProductName: row.ProductName,
			Quantity:    row.Quantity,
			UnitPrice:   row.UnitPrice,
		}
		if row.CostPrice.Valid {
			cost := row.CostPrice.Decimal
			lines[i].CostPrice = &cost
		}
	}
	return lines, nil
}

func statusStrings(statuses []sale.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
