package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/lanchonete/internal/application/catalog"
	"github.com/xiebiao/lanchonete/internal/interface/http/dto"
	"github.com/xiebiao/lanchonete/internal/interface/http/middleware"
	"github.com/xiebiao/lanchonete/pkg/response"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
)

// CatalogHandler 菜单和库存
type CatalogHandler struct {
	listMenuUseCase      *appcatalog.ListMenuUseCase
	createProductUseCase *appcatalog.CreateProductUseCase
	deleteProductUseCase *appcatalog.DeleteProductUseCase
	createStockUseCase   *appcatalog.CreateStockItemUseCase
	restockUseCase       *appcatalog.RestockUseCase
	movementsUseCase     *appcatalog.ListMovementsUseCase
}

func NewCatalogHandler(
	listMenuUseCase *appcatalog.ListMenuUseCase,
	createProductUseCase *appcatalog.CreateProductUseCase,
	deleteProductUseCase *appcatalog.DeleteProductUseCase,
	createStockUseCase *appcatalog.CreateStockItemUseCase,
	restockUseCase *appcatalog.RestockUseCase,
	movementsUseCase *appcatalog.ListMovementsUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		listMenuUseCase:      listMenuUseCase,
		createProductUseCase: createProductUseCase,
		deleteProductUseCase: deleteProductUseCase,
		createStockUseCase:   createStockUseCase,
		restockUseCase:       restockUseCase,
		movementsUseCase:     movementsUseCase,
	}
}

// ListMenu 菜单
// @Summary      菜单商品列表
// @Description  include_inactive=true仅对店员生效，其他调用方只能看到上架商品
// @Tags         菜单
// @Produce      json
// @Param        include_inactive query bool false "包含下架商品（店员）"
// @Success      200 {object} response.Response{data=[]dto.MenuProductResponse}
// @Router       /api/v1/menu-products [get]
func (h *CatalogHandler) ListMenu(c *gin.Context) {
	var req dto.ListMenuRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	products, err := h.listMenuUseCase.Execute(c.Request.Context(), appcatalog.ListMenuRequest{
		Caller:          middleware.Caller(c),
		IncludeInactive: req.IncludeInactive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToMenuProductResponses(products))
}

// CreateProduct 新增菜单商品
// @Summary      新增菜单商品
// @Tags         菜单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateProductRequest true "商品"
// @Success      201 {object} response.Response{data=dto.MenuProductResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      403 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "库存项不存在"
// @Router       /api/v1/menu-products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	p, err := h.createProductUseCase.Execute(c.Request.Context(), appcatalog.CreateProductRequest{
		Caller:      middleware.Caller(c),
		StockItemID: req.StockItemID,
		Name:        req.Name,
		Description: req.Description,
		SalePrice:   req.SalePrice,
		IsActive:    req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToMenuProductResponse(p))
}

// DeleteProduct 删除菜单商品
// @Summary      删除菜单商品
// @Description  历史订单明细保留商品名和单价快照
// @Tags         菜单
// @Security     BearerAuth
// @Param        id path int true "商品ID"
// @Success      204
// @Failure      403 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/menu-products/{id} [delete]
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	err := h.deleteProductUseCase.Execute(c.Request.Context(), appcatalog.DeleteProductRequest{
		Caller:    middleware.Caller(c),
		ProductID: id,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreateStockItem 新增库存项
// @Summary      新增库存项
// @Tags         库存
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateStockItemRequest true "库存项"
// @Success      201 {object} response.Response{data=dto.StockItemResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "名称重复"
// @Router       /api/v1/stock/items [post]
func (h *CatalogHandler) CreateStockItem(c *gin.Context) {
	var req dto.CreateStockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.createStockUseCase.Execute(c.Request.Context(), appcatalog.CreateStockItemRequest{
		Caller:            middleware.Caller(c),
		Name:              req.Name,
		UnitOfMeasure:     req.UnitOfMeasure,
		Quantity:          req.Quantity,
		CostPrice:         req.CostPrice,
		MinimumStockLevel: req.MinimumStockLevel,
		ProfitPercentage:  req.ProfitPercentage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToStockItemResponse(item))
}

// Restock 入库
// @Summary      库存入库
// @Tags         库存
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                true "库存项ID"
// @Param        request body dto.RestockRequest true "入库数量"
// @Success      200 {object} response.Response{data=dto.StockItemResponse}
// @Failure      400 {object} response.Response "数量非法"
// @Failure      404 {object} response.Response "库存项不存在"
// @Router       /api/v1/stock/items/{id}/restock [post]
func (h *CatalogHandler) Restock(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.RestockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.restockUseCase.Execute(c.Request.Context(), appcatalog.RestockRequest{
		Caller:      middleware.Caller(c),
		StockItemID: id,
		Quantity:    req.Quantity,
		Remark:      req.Remark,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToStockItemResponse(item))
}

// ListMovements 库存流水
// @Summary      库存流水
// @Description  最新的在前
// @Tags         库存
// @Produce      json
// @Security     BearerAuth
// @Param        id        path  int true  "库存项ID"
// @Param        page      query int false "页码" default(1)
// @Param        page_size query int false "每页数量" default(20)
// @Success      200 {object} response.Response{data=response.PageData{list=[]dto.StockMovementResponse}}
// @Failure      404 {object} response.Response "库存项不存在"
// @Router       /api/v1/stock/items/{id}/movements [get]
func (h *CatalogHandler) ListMovements(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.ListMovementsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}
	if req.Page == 0 {
		req.Page = defaultPage
	}
	if req.PageSize == 0 {
		req.PageSize = defaultPageSize
	}

	result, err := h.movementsUseCase.Execute(c.Request.Context(), appcatalog.ListMovementsRequest{
		Caller:      middleware.Caller(c),
		StockItemID: id,
		Page:        req.Page,
		PageSize:    req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPage(c, dto.ToStockMovementResponses(result.Movements), result.Total, req.Page, req.PageSize)
}
