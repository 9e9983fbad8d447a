package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/lanchonete/internal/domain/catalog"
	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
)

// movementRepository 库存流水仓储
type movementRepository struct {
	db *gorm.DB
}

func NewMovementRepository(db *gorm.DB) catalog.MovementRepository {
	return &movementRepository{db: db}
}

// Append 批量写入流水，与库存变更在同一事务中
func (r *movementRepository) Append(ctx context.Context, movements ...*catalog.StockMovement) error {
	if len(movements) == 0 {
		return nil
	}

	models := make([]StockMovementModel, len(movements))
	for i, m := range movements {
		models[i] = StockMovementModel{
			StockItemID: m.StockItemID,
			SaleID:      m.SaleID,
			Type:        string(m.Type),
			Quantity:    m.Quantity,
			Before:      m.Before,
			After:       m.After,
			Remark:      m.Remark,
		}
	}

	if err := dbFrom(ctx, r.db).Create(&models).Error; err != nil {
		return apperrors.Wrap(err, "Falha ao registrar a movimentação de estoque.")
	}
	for i := range models {
		movements[i].ID = models[i].ID
		movements[i].CreatedAt = models[i].CreatedAt
	}
	return nil
}

func (r *movementRepository) ListByStockItem(ctx context.Context, stockItemID uint, page, pageSize int) ([]*catalog.StockMovement, int64, error) {
	page, pageSize = normalizePage(page, pageSize)

	query := dbFrom(ctx, r.db).Model(&StockMovementModel{}).Where("stock_item_id = ?", stockItemID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "Falha ao contar as movimentações de estoque.")
	}

	var models []StockMovementModel
	err := query.Order("created_at DESC").Order("id DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, apperrors.Wrap(err, "Falha ao consultar as movimentações de estoque.")
	}

	movements := make([]*catalog.StockMovement, len(models))
	for i, m := range models {
		movements[i] = &catalog.StockMovement{
			ID:          m.ID,
			StockItemID: m.StockItemID,
			SaleID:      m.SaleID,
			Type:        catalog.MovementType(m.Type),
			Quantity:    m.Quantity,
			Before:      m.Before,
			After:       m.After,
			Remark:      m.Remark,
			CreatedAt:   m.CreatedAt,
		}
	}
	return movements, total, nil
}
