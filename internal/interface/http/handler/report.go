package handler

import (
	"github.com/gin-gonic/gin"

	appreport "github.com/xiebiao/lanchonete/internal/application/report"
	"github.com/xiebiao/lanchonete/internal/interface/http/dto"
	"github.com/xiebiao/lanchonete/internal/interface/http/middleware"
	"github.com/xiebiao/lanchonete/pkg/response"
)

// ReportHandler 报表
type ReportHandler struct {
	salesUseCase         *appreport.SalesReportUseCase
	profitabilityUseCase *appreport.ProfitabilityUseCase
}

func NewReportHandler(salesUseCase *appreport.SalesReportUseCase, profitabilityUseCase *appreport.ProfitabilityUseCase) *ReportHandler {
	return &ReportHandler{
		salesUseCase:         salesUseCase,
		profitabilityUseCase: profitabilityUseCase,
	}
}

// Sales 销售报表
// @Summary      销售报表
// @Description  统计PAGO、EM_PREPARO、PRONTO、FINALIZADO的订单；默认最近30天；日期按服务器时区的自然日
// @Tags         报表
// @Produce      json
// @Security     BearerAuth
// @Param        start_date query string false "开始日期 AAAA-MM-DD"
// @Param        end_date   query string false "结束日期 AAAA-MM-DD"
// @Success      200 {object} response.Response{data=dto.SalesReportResponse}
// @Failure      400 {object} response.Response "日期非法"
// @Failure      403 {object} response.Response "无权限"
// @Router       /api/v1/reports/sales [get]
func (h *ReportHandler) Sales(c *gin.Context) {
	var req dto.ReportRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	r, err := h.salesUseCase.Execute(c.Request.Context(), appreport.SalesReportRequest{
		Caller:    middleware.Caller(c),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToSalesReportResponse(r))
}

// Profitability 商品利润报表
// @Summary      商品利润报表
// @Description  统计PAGO和FINALIZADO的订单，成本取当前库存项成本价；不传日期则不限制
// @Tags         报表
// @Produce      json
// @Security     BearerAuth
// @Param        start_date query string false "开始日期 AAAA-MM-DD"
// @Param        end_date   query string false "结束日期 AAAA-MM-DD"
// @Success      200 {object} response.Response{data=[]dto.ProfitabilityResponse}
// @Failure      400 {object} response.Response "日期非法"
// @Failure      403 {object} response.Response "无权限"
// @Router       /api/v1/reports/product-profitability [get]
func (h *ReportHandler) Profitability(c *gin.Context) {
	var req dto.ReportRangeRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	rows, err := h.profitabilityUseCase.Execute(c.Request.Context(), appreport.ProfitabilityRequest{
		Caller:    middleware.Caller(c),
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.ToProfitabilityResponses(rows))
}
