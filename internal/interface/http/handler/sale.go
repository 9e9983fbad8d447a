package handler

import (
	"github.com/gin-gonic/gin"

	appsale "github.com/xiebiao/lanchonete/internal/application/sale"
	"github.com/xiebiao/lanchonete/internal/interface/http/dto"
	"github.com/xiebiao/lanchonete/internal/interface/http/middleware"
	"github.com/xiebiao/lanchonete/pkg/response"
)

// SaleHandler 订单HTTP处理器
type SaleHandler struct {
	createUseCase  *appsale.CreateSaleUseCase
	getUseCase     *appsale.GetSaleUseCase
	activeUseCase  *appsale.ListActiveUseCase
	mineUseCase    *appsale.ListMineUseCase
	confirmUseCase *appsale.ConfirmPaymentUseCase
	statusUseCase  *appsale.UpdateStatusUseCase
	deleteUseCase  *appsale.DeleteSaleUseCase
}

func NewSaleHandler(
	createUseCase *appsale.CreateSaleUseCase,
	getUseCase *appsale.GetSaleUseCase,
	activeUseCase *appsale.ListActiveUseCase,
	mineUseCase *appsale.ListMineUseCase,
	confirmUseCase *appsale.ConfirmPaymentUseCase,
	statusUseCase *appsale.UpdateStatusUseCase,
	deleteUseCase *appsale.DeleteSaleUseCase,
) *SaleHandler {
	return &SaleHandler{
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		activeUseCase:  activeUseCase,
		mineUseCase:    mineUseCase,
		confirmUseCase: confirmUseCase,
		statusUseCase:  statusUseCase,
		deleteUseCase:  deleteUseCase,
	}
}

// Create 下单
// @Summary      创建订单
// @Description  柜台付款方式（DINHEIRO/CARTAO_DEBITO/CARTAO_CREDITO/PIX）直接为PAGO且不记录顾客；
// @Description  NA_RETIRADA/ONLINE为AGUARDANDO_PAGAMENTO，登录时记录顾客。库存不足时整单失败。
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateSaleRequest true "购物车"
// @Success      201 {object} response.Response{data=dto.SaleResponse} "下单成功"
// @Failure      400 {object} response.Response "参数错误或库存不足"
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	var req dto.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	items := make([]appsale.CreateSaleItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = appsale.CreateSaleItem{ProductID: item.ProductID, Quantity: item.Quantity}
	}

	s, err := h.createUseCase.Execute(c.Request.Context(), appsale.CreateSaleRequest{
		Caller:        middleware.Caller(c),
		PaymentMethod: req.PaymentMethod,
		Items:         items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.ToSaleResponse(s))
}

// Get 订单详情
// @Summary      订单详情
// @Description  店员可查看任意订单，顾客只能查看自己的订单
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=dto.SaleResponse}
// @Failure      403 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/sales/{id} [get]
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	s, err := h.getUseCase.Execute(c.Request.Context(), appsale.GetSaleRequest{
		Caller: middleware.Caller(c),
		SaleID: id,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToSaleResponse(s))
}

// ListActive 厨房队列
// @Summary      进行中的订单
// @Description  除FINALIZADO和CANCELADO以外的订单（含AGUARDANDO_PAGAMENTO），按创建时间升序
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]dto.SaleResponse}
// @Failure      403 {object} response.Response "无权限"
// @Router       /api/v1/sales/active [get]
func (h *SaleHandler) ListActive(c *gin.Context) {
	sales, err := h.activeUseCase.Execute(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToSaleResponses(sales))
}

// ListMine 我的订单
// @Summary      我的订单
// @Description  当前用户的订单，最新的在前
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]dto.SaleResponse}
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/my-orders [get]
func (h *SaleHandler) ListMine(c *gin.Context) {
	sales, err := h.mineUseCase.Execute(c.Request.Context(), middleware.Caller(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToSaleResponses(sales))
}

// ConfirmPayment 顾客确认付款
// @Summary      确认付款
// @Description  仅订单所有者可操作，且订单必须处于AGUARDANDO_PAGAMENTO
// @Tags         订单
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=dto.SaleResponse}
// @Failure      400 {object} response.Response "状态不允许"
// @Failure      403 {object} response.Response "无权限"
// @Router       /api/v1/sales/{id}/confirm-payment [post]
func (h *SaleHandler) ConfirmPayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	s, err := h.confirmUseCase.Execute(c.Request.Context(), appsale.ConfirmPaymentRequest{
		Caller: middleware.Caller(c),
		SaleID: id,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToSaleResponse(s))
}

// UpdateStatus 店员修改状态
// @Summary      修改订单状态
// @Description  改为CANCELADO时回补库存（只回补一次）；CANCELADO后不能再修改；不能改回AGUARDANDO_PAGAMENTO
// @Tags         订单
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path int                         true "订单ID"
// @Param        request body dto.UpdateSaleStatusRequest true "目标状态"
// @Success      200 {object} response.Response{data=dto.SaleResponse}
// @Failure      400 {object} response.Response "状态非法"
// @Failure      403 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/sales/{id} [put]
// @Router       /api/v1/sales/{id} [patch]
func (h *SaleHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSaleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	s, err := h.statusUseCase.Execute(c.Request.Context(), appsale.UpdateStatusRequest{
		Caller: middleware.Caller(c),
		SaleID: id,
		Status: req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToSaleResponse(s))
}

// Delete 删除订单
// @Summary      删除订单
// @Description  管理操作，不影响库存
// @Tags         订单
// @Security     BearerAuth
// @Param        id path int true "订单ID"
// @Success      204
// @Failure      403 {object} response.Response "无权限"
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /api/v1/sales/{id} [delete]
func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	err := h.deleteUseCase.Execute(c.Request.Context(), appsale.DeleteSaleRequest{
		Caller: middleware.Caller(c),
		SaleID: id,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
