package dto

import (
	"github.com/xiebiao/lanchonete/internal/domain/report"
)

// ReportRangeRequest 报表日期参数（YYYY-MM-DD）
type ReportRangeRequest struct {
	StartDate string `form:"start_date" example:"2024-03-01"`
	EndDate   string `form:"end_date" example:"2024-03-31"`
}

// SalesReportResponse 销售报表
type SalesReportResponse struct {
	Period struct {
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	} `json:"period"`
	Summary struct {
		TotalRevenue  string `json:"total_revenue" example:"1520.50"`
		TotalOrders   int    `json:"total_orders" example:"87"`
		AverageTicket string `json:"average_ticket" example:"17.48"`
	} `json:"summary"`
	RevenueByDay    []DayRevenueResponse    `json:"revenue_by_day"`
	TopProducts     []TopProductResponse    `json:"top_products"`
	RevenueByMethod []MethodRevenueResponse `json:"revenue_by_payment_method"`
}

type DayRevenueResponse struct {
	Day   string `json:"day" example:"2024-03-01"`
	Total string `json:"total" example:"310.00"`
}

type TopProductResponse struct {
	ProductName  string `json:"product_name" example:"X-Burger"`
	QuantitySold int    `json:"quantity_sold" example:"42"`
}

type MethodRevenueResponse struct {
	PaymentMethod string `json:"payment_method" example:"PIX"`
	Display       string `json:"payment_method_display" example:"PIX"`
	Total         string `json:"total" example:"640.00"`
}

// ProfitabilityResponse 商品利润
type ProfitabilityResponse struct {
	ProductName   string `json:"product_name" example:"X-Burger"`
	QuantitySold  int    `json:"quantity_sold" example:"30"`
	Revenue       string `json:"revenue" example:"387.00"`
	Cost          string `json:"cost" example:"150.00"`
	GrossProfit   string `json:"gross_profit" example:"237.00"`
	MarginPercent string `json:"margin_percent" example:"61.24"`
}

func ToSalesReportResponse(r *report.SalesReport) *SalesReportResponse {
	resp := &SalesReportResponse{
		RevenueByDay:    make([]DayRevenueResponse, len(r.RevenueByDay)),
		TopProducts:     make([]TopProductResponse, len(r.TopProducts)),
		RevenueByMethod: make([]MethodRevenueResponse, len(r.RevenueByMethod)),
	}
	resp.Period.StartDate = r.Period.Start.Format(report.DateLayout)
	resp.Period.EndDate = r.Period.End.Format(report.DateLayout)
	resp.Summary.TotalRevenue = r.Summary.TotalRevenue.StringFixed(2)
	resp.Summary.TotalOrders = r.Summary.TotalOrders
	resp.Summary.AverageTicket = r.Summary.AverageTicket.StringFixed(2)

	for i, d := range r.RevenueByDay {
		resp.RevenueByDay[i] = DayRevenueResponse{Day: d.Day, Total: d.Total.StringFixed(2)}
	}
	for i, p := range r.TopProducts {
		resp.TopProducts[i] = TopProductResponse{ProductName: p.ProductName, QuantitySold: p.QuantitySold}
	}
	for i, m := range r.RevenueByMethod {
		resp.RevenueByMethod[i] = MethodRevenueResponse{
			PaymentMethod: string(m.PaymentMethod),
			Display:       m.PaymentMethod.Label(),
			Total:         m.Total.StringFixed(2),
		}
	}
	return resp
}

func ToProfitabilityResponses(rows []report.ProductProfitability) []ProfitabilityResponse {
	out := make([]ProfitabilityResponse, len(rows))
	for i, r := range rows {
		out[i] = ProfitabilityResponse{
			ProductName:   r.ProductName,
			QuantitySold:  r.QuantitySold,
			Revenue:       r.Revenue.StringFixed(2),
			Cost:          r.Cost.StringFixed(2),
			GrossProfit:   r.GrossProfit.StringFixed(2),
			MarginPercent: r.MarginPercent.StringFixed(2),
		}
	}
	return out
}
