package mysql

import (
	"context"
	"errors"
	"sort"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/lanchonete/internal/domain/catalog"
	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
)

// catalogRepository 菜单商品与库存项仓储
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository 创建商品目录仓储
func NewCatalogRepository(db *gorm.DB) catalog.Repository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) FindProductByID(ctx context.Context, id uint) (*catalog.MenuProduct, error) {
	var model MenuProductModel
	err := dbFrom(ctx, r.db).Preload("StockItem").First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, apperrors.Wrap(err, "Falha ao consultar o produto.")
	}
	return toProductEntity(&model), nil
}

// FindProductsByIDs 批量查询，避免逐行查询的N+1问题
func (r *catalogRepository) FindProductsByIDs(ctx context.Context, ids []uint) (map[uint]*catalog.MenuProduct, error) {
	result := make(map[uint]*catalog.MenuProduct, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var models []MenuProductModel
	if err := dbFrom(ctx, r.db).Preload("StockItem").Where("id IN ?", ids).Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "Falha ao consultar o produto.")
	}
	for i := range models {
		result[models[i].ID] = toProductEntity(&models[i])
	}
	return result, nil
}

func (r *catalogRepository) ListProducts(ctx context.Context, filter catalog.MenuFilter) ([]*catalog.MenuProduct, error) {
	query := dbFrom(ctx, r.db).Preload("StockItem").Order("name ASC")
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	var models []MenuProductModel
	if err := query.Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "Falha ao consultar o cardápio.")
	}

	products := make([]*catalog.MenuProduct, len(models))
	for i := range models {
		products[i] = toProductEntity(&models[i])
	}
	return products, nil
}

func (r *catalogRepository) CreateProduct(ctx context.Context, p *catalog.MenuProduct) error {
	db := dbFrom(ctx, r.db)

	var count int64
	if err := db.Model(&StockItemModel{}).Where("id = ?", p.StockItemID).Count(&count).Error; err != nil {
		return apperrors.Wrap(err, "Falha ao consultar o item de estoque.")
	}
	if count == 0 {
		return catalog.ErrStockItemNotFound
	}

	model := &MenuProductModel{
		StockItemID: p.StockItemID,
		Name:        p.Name,
		Description: p.Description,
		SalePrice:   p.SalePrice,
		IsActive:    p.IsActive,
	}
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "Falha ao criar o produto.")
	}

	p.ID = model.ID
	p.CreatedAt = model.CreatedAt
	p.UpdatedAt = model.UpdatedAt
	return nil
}

// DeleteProduct 删除菜单商品
// 订单明细保留名称和单价快照，只把product_id置空
func (r *catalogRepository) DeleteProduct(ctx context.Context, id uint) error {
	db := dbFrom(ctx, r.db)

	if err := db.Model(&SaleItemModel{}).Where("product_id = ?", id).
		Update("product_id", gorm.Expr("NULL")).Error; err != nil {
		return apperrors.Wrap(err, "Falha ao desvincular os itens de venda.")
	}

	result := db.Delete(&MenuProductModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Falha ao remover o produto.")
	}
	if result.RowsAffected == 0 {
		return catalog.ErrProductNotFound
	}
	return nil
}

func (r *catalogRepository) CreateStockItem(ctx context.Context, item *catalog.StockItem) error {
	model := toStockItemModel(item)
	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrStockItemExists
		}
		return apperrors.Wrap(err, "Falha ao criar o item de estoque.")
	}
	item.ID = model.ID
	item.UpdatedAt = model.UpdatedAt
	return nil
}

func (r *catalogRepository) FindStockItemByID(ctx context.Context, id uint) (*catalog.StockItem, error) {
	var model StockItemModel
	if err := dbFrom(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrStockItemNotFound
		}
		return nil, apperrors.Wrap(err, "Falha ao consultar o item de estoque.")
	}
	return toStockItemEntity(&model), nil
}

// LockStockItems 悲观锁锁定库存项
// SELECT * FROM stock_items WHERE id IN (...) ORDER BY id FOR UPDATE
// 按ID升序加锁，两个订单同时锁定相同的库存项时不会互相等待形成死锁
func (r *catalogRepository) LockStockItems(ctx context.Context, ids []uint) (map[uint]*catalog.StockItem, error) {
	result := make(map[uint]*catalog.StockItem, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	sorted := append([]uint(nil), ids...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	var models []StockItemModel
	err := dbFrom(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", sorted).
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "Falha ao bloquear o estoque.")
	}

	for i := range models {
		result[models[i].ID] = toStockItemEntity(&models[i])
	}
	return result, nil
}

// UpdateStockQuantity 写入新数量
// 调用方已在事务中持有行锁，并保证数量不为负
func (r *catalogRepository) UpdateStockQuantity(ctx context.Context, id uint, quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return catalog.ErrNegativeStock
	}
	result := dbFrom(ctx, r.db).Model(&StockItemModel{}).Where("id = ?", id).Update("quantity", quantity)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Falha ao atualizar o estoque.")
	}
	if result.RowsAffected == 0 {
		return catalog.ErrStockItemNotFound
	}
	return nil
}

// =========================================
// 模型转换
// =========================================

func toStockItemModel(item *catalog.StockItem) *StockItemModel {
	m := &StockItemModel{
		ID:                item.ID,
		Name:              item.Name,
		UnitOfMeasure:     item.UnitOfMeasure,
		Quantity:          item.Quantity,
		MinimumStockLevel: item.MinimumStockLevel,
		ProfitPercentage:  item.ProfitPercentage,
	}
	if item.CostPrice != nil {
		m.CostPrice = decimal.NewNullDecimal(*item.CostPrice)
	}
	return m
}

func toStockItemEntity(m *StockItemModel) *catalog.StockItem {
	item := &catalog.StockItem{
		ID:                m.ID,
		Name:              m.Name,
		UnitOfMeasure:     m.UnitOfMeasure,
		Quantity:          m.Quantity,
		MinimumStockLevel: m.MinimumStockLevel,
		ProfitPercentage:  m.ProfitPercentage,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.CostPrice.Valid {
		cost := m.CostPrice.Decimal
		item.CostPrice = &cost
	}
	return item
}

func toProductEntity(m *MenuProductModel) *catalog.MenuProduct {
	p := &catalog.MenuProduct{
		ID:          m.ID,
		StockItemID: m.StockItemID,
		Name:        m.Name,
		Description: m.Description,
		SalePrice:   m.SalePrice,
		IsActive:    m.IsActive,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.StockItem != nil {
		p.Stock = toStockItemEntity(m.StockItem)
	}
	return p
}
