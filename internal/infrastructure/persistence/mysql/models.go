package mysql

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserModel GORM用户模型
// domain/user/entity.go是领域实体，不依赖GORM，Repository负责两者之间的转换
type UserModel struct {
	ID        uint           `gorm:"primaryKey"`
	Email     string         `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string         `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Nickname  string         `gorm:"size:50;not null;comment:昵称"`
	Role      string         `gorm:"size:20;not null;default:estudante;comment:角色(estudante/equipe/admin)"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间（软删除）"`
}

func (UserModel) TableName() string {
	return "users"
}

// StockItemModel 库存项
// 数量用decimal存储，支持按公斤、升等计量
type StockItemModel struct {
	ID                uint                `gorm:"primaryKey"`
	Name              string              `gorm:"uniqueIndex;size:255;not null;comment:名称"`
	UnitOfMeasure     string              `gorm:"size:50;not null;default:unidades;comment:计量单位"`
	Quantity          decimal.Decimal     `gorm:"type:decimal(12,3);not null;default:0;comment:当前库存"`
	CostPrice         decimal.NullDecimal `gorm:"type:decimal(10,2);comment:成本价"`
	MinimumStockLevel decimal.Decimal     `gorm:"type:decimal(12,3);not null;default:0;comment:最低库存"`
	ProfitPercentage  decimal.Decimal     `gorm:"type:decimal(5,2);not null;default:100;comment:利润率(%)"`
	CreatedAt         time.Time           `gorm:"comment:创建时间"`
	UpdatedAt         time.Time           `gorm:"comment:更新时间"`
}

func (StockItemModel) TableName() string {
	return "stock_items"
}

// MenuProductModel 菜单商品，属于一个库存项
type MenuProductModel struct {
	ID          uint            `gorm:"primaryKey"`
	StockItemID uint            `gorm:"index;not null;comment:库存项ID"`
	StockItem   *StockItemModel `gorm:"foreignKey:StockItemID"`
	Name        string          `gorm:"size:255;not null;comment:名称"`
	Description string          `gorm:"type:text;comment:描述"`
	SalePrice   decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:售价"`
	IsActive    bool            `gorm:"index;not null;comment:是否上架"`
	CreatedAt   time.Time       `gorm:"comment:创建时间"`
	UpdatedAt   time.Time       `gorm:"comment:更新时间"`
}

func (MenuProductModel) TableName() string {
	return "menu_products"
}

// SaleModel 订单
// 1. 与SaleItemModel是一对多关系，一起写入
// 2. CustomerID为空表示柜台订单
// 3. TotalAmount在创建时固定，之后不再重算
type SaleModel struct {
	ID            uint            `gorm:"primaryKey"`
	CustomerID    *uint           `gorm:"index;comment:顾客用户ID（柜台订单为空）"`
	Status        string          `gorm:"index;size:25;not null;comment:订单状态"`
	PaymentMethod string          `gorm:"size:20;not null;comment:支付方式"`
	TotalAmount   decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:订单总金额"`
	Items         []SaleItemModel `gorm:"foreignKey:SaleID"`
	CreatedAt     time.Time       `gorm:"index;comment:下单时间"`
	UpdatedAt     time.Time       `gorm:"comment:更新时间"`
}

func (SaleModel) TableName() string {
	return "sales"
}

// SaleItemModel 订单明细
// ProductName和UnitPrice是下单时的快照；ProductID在商品删除后置空
type SaleItemModel struct {
	ID          uint            `gorm:"primaryKey"`
	SaleID      uint            `gorm:"index;not null;comment:订单ID"`
	ProductID   *uint           `gorm:"index;comment:菜单商品ID"`
	ProductName string          `gorm:"size:255;not null;comment:下单时商品名称"`
	Quantity    int             `gorm:"not null;comment:数量"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null;comment:下单时单价"`
}

func (SaleItemModel) TableName() string {
	return "sale_items"
}

// StockMovementModel 库存流水（只追加）
type StockMovementModel struct {
	ID          uint            `gorm:"primaryKey"`
	StockItemID uint            `gorm:"index:idx_item_time;not null;comment:库存项ID"`
	SaleID      *uint           `gorm:"index;comment:关联订单ID"`
	Type        string          `gorm:"size:10;not null;comment:类型(DEBIT/CREDIT/RESTOCK)"`
	Quantity    decimal.Decimal `gorm:"type:decimal(12,3);not null;comment:变动数量"`
	Before      decimal.Decimal `gorm:"column:before_qty;type:decimal(12,3);not null;comment:变动前"`
	After       decimal.Decimal `gorm:"column:after_qty;type:decimal(12,3);not null;comment:变动后"`
	Remark      string          `gorm:"size:255;comment:备注"`
	CreatedAt   time.Time       `gorm:"index:idx_item_time;comment:创建时间"`
}

func (StockMovementModel) TableName() string {
	return "stock_movements"
}
