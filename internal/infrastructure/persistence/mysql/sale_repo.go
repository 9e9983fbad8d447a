package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/lanchonete/internal/domain/sale"
	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
)

// saleRepository 订单仓储实现
// 1. Sale和SaleItem是聚合关系，必须一起保存
// 2. 查询时使用Preload预加载明细，避免N+1问题
// 3. 事务通过context传递
type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository 创建订单仓储
func NewSaleRepository(db *gorm.DB) sale.Repository {
	return &saleRepository{db: db}
}

// Create 创建订单（含明细）
func (r *saleRepository) Create(ctx context.Context, s *sale.Sale) error {
	model := toSaleModel(s)

	if err := dbFrom(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "Falha ao criar o pedido.")
	}

	s.ID = model.ID
	s.CreatedAt = model.CreatedAt
	s.UpdatedAt = model.UpdatedAt
	for i := range s.Items {
		s.Items[i].ID = model.Items[i].ID
		s.Items[i].SaleID = model.ID
	}
	return nil
}

func (r *saleRepository) FindByID(ctx context.Context, id uint) (*sale.Sale, error) {
	return r.find(ctx, dbFrom(ctx, r.db), id)
}

// FindByIDForUpdate 锁定订单行，同一订单的并发取消串行执行，避免重复回补库存
func (r *saleRepository) FindByIDForUpdate(ctx context.Context, id uint) (*sale.Sale, error) {
	return r.find(ctx, dbFrom(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *saleRepository) find(ctx context.Context, db *gorm.DB, id uint) (*sale.Sale, error) {
	var model SaleModel
	err := db.Preload("Items", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("id ASC")
	}).First(&model, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sale.ErrSaleNotFound
		}
		return nil, apperrors.Wrap(err, "Falha ao consultar o pedido.")
	}

	sales, err := r.withCustomers(ctx, []SaleModel{model})
	if err != nil {
		return nil, err
	}
	return sales[0], nil
}

func (r *saleRepository) UpdateStatus(ctx context.Context, id uint, status sale.Status) error {
	result := dbFrom(ctx, r.db).Model(&SaleModel{}).Where("id = ?", id).Update("status", string(status))
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Falha ao atualizar o status do pedido.")
	}
	if result.RowsAffected == 0 {
		return sale.ErrSaleNotFound
	}
	return nil
}

// Delete 删除订单及明细
func (r *saleRepository) Delete(ctx context.Context, id uint) error {
	db := dbFrom(ctx, r.db)

	if err := db.Where("sale_id = ?", id).Delete(&SaleItemModel{}).Error; err != nil {
		return apperrors.Wrap(err, "Falha ao remover os itens do pedido.")
	}

	result := db.Delete(&SaleModel{}, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Falha ao remover o pedido.")
	}
	if result.RowsAffected == 0 {
		return sale.ErrSaleNotFound
	}
	return nil
}

// ListActive 处理队列，按下单时间升序（先下单先处理）
func (r *saleRepository) ListActive(ctx context.Context) ([]*sale.Sale, error) {
	var models []SaleModel
	err := dbFrom(ctx, r.db).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Where("status NOT IN ?", []string{string(sale.StatusCompleted), string(sale.StatusCancelled)}).
		Order("created_at ASC").Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "Falha ao consultar os pedidos ativos.")
	}
	return r.withCustomers(ctx, models)
}

// ListByCustomer 顾客订单，最新的在前
func (r *saleRepository) ListByCustomer(ctx context.Context, customerID uint) ([]*sale.Sale, error) {
	var models []SaleModel
	err := dbFrom(ctx, r.db).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id ASC") }).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").Order("id DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "Falha ao consultar os pedidos.")
	}
	return r.withCustomers(ctx, models)
}

// withCustomers 转换为领域实体并补充顾客昵称
func (r *saleRepository) withCustomers(ctx context.Context, models []SaleModel) ([]*sale.Sale, error) {
	ids := make([]uint, 0)
	seen := map[uint]bool{}
	for _, m := range models {
		if m.CustomerID != nil && !seen[*m.CustomerID] {
			seen[*m.CustomerID] = true
			ids = append(ids, *m.CustomerID)
		}
	}

	names, err := nicknamesByID(dbFrom(ctx, r.db), ids)
	if err != nil {
		return nil, apperrors.Wrap(err, "Falha ao consultar os clientes.")
	}

	sales := make([]*sale.Sale, len(models))
	for i := range models {
		sales[i] = toSaleEntity(&models[i])
		if sales[i].CustomerID != nil {
			sales[i].CustomerName = names[*sales[i].CustomerID]
		}
	}
	return sales, nil
}

// =========================================
// 模型转换
// =========================================

func toSaleModel(s *sale.Sale) *SaleModel {
	items := make([]SaleItemModel, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemModel{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	m := &SaleModel{
		ID:            s.ID,
		CustomerID:    s.CustomerID,
		Status:        string(s.Status),
		PaymentMethod: string(s.PaymentMethod),
		TotalAmount:   s.TotalAmount,
		Items:         items,
	}
	if !s.CreatedAt.IsZero() {
		m.CreatedAt = s.CreatedAt.UTC()
	}
	return m
}

func toSaleEntity(m *SaleModel) *sale.Sale {
	items := make([]*sale.LineItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = &sale.LineItem{
			ID:          item.ID,
			SaleID:      item.SaleID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
		}
	}

	return &sale.Sale{
		ID:            m.ID,
		CustomerID:    m.CustomerID,
		Status:        sale.Status(m.Status),
		PaymentMethod: sale.PaymentMethod(m.PaymentMethod),
		TotalAmount:   m.TotalAmount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		Items:         items,
	}
}
