package report

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/lanchonete/internal/domain/report"
	"github.com/xiebiao/lanchonete/internal/domain/sale"
	"github.com/xiebiao/lanchonete/internal/domain/user"
	"github.com/xiebiao/lanchonete/pkg/metrics"
	"github.com/xiebiao/lanchonete/pkg/tracing"
)

// SalesReportUseCase 销售报表
type SalesReportUseCase struct {
	repo   report.Repository
	cache  report.Cache
	opts   Options
	logger *zap.Logger
	now    func() time.Time
}

func NewSalesReportUseCase(repo report.Repository, cache report.Cache, opts Options, logger *zap.Logger) *SalesReportUseCase {
	return &SalesReportUseCase{repo: repo, cache: cache, opts: opts, logger: logger, now: time.Now}
}

// SalesReportRequest 日期为YYYY-MM-DD，均为空时取最近DefaultRangeDays天
type SalesReportRequest struct {
	Caller    user.Caller
	StartDate string
	EndDate   string
}

func (uc *SalesReportUseCase) Execute(ctx context.Context, req SalesReportRequest) (*report.SalesReport, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "SalesReport")
	defer span.End()

	if !req.Caller.IsStaff() {
		return nil, sale.ErrForbidden
	}
	period, err := uc.period(req)
	if err != nil {
		return nil, err
	}

	c := reportCache{cache: uc.cache, logger: uc.logger, name: "sales"}
	key := func(version int64) string {
		return fmt.Sprintf("report:sales:v%d:%s:%s:%d",
			version, formatDate(&period.Start), formatDate(&period.End), uc.opts.TopProductsLimit)
	}

	var cached report.SalesReport
	version, hit := c.lookup(ctx, key, &cached)
	if hit {
		return &cached, nil
	}

	start := time.Now()
	from, to := period.Bounds()
	sales, err := uc.repo.FindSales(ctx, sale.SalesReportStatuses, from, to)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	result := report.BuildSalesReport(period, sales, uc.opts.TopProductsLimit, uc.opts.Location)
	observeBuild("sales", time.Since(start))

	c.store(ctx, version, key, result)
	return result, nil
}

// period 缺结束日取今天，缺开始日取结束日往前DefaultRangeDays天
func (uc *SalesReportUseCase) period(req SalesReportRequest) (report.Period, error) {
	start, err := parseDate(req.StartDate, uc.opts.Location)
	if err != nil {
		return report.Period{}, err
	}
	end, err := parseDate(req.EndDate, uc.opts.Location)
	if err != nil {
		return report.Period{}, err
	}

	p := report.DefaultPeriod(uc.now().In(uc.opts.Location), uc.opts.DefaultRangeDays)
	if end != nil {
		p.End = *end
		p.Start = end.AddDate(0, 0, -uc.opts.DefaultRangeDays)
	}
	if start != nil {
		p.Start = *start
	}
	if p.Start.After(p.End) {
		return report.Period{}, ErrInvalidRange
	}
	return p, nil
}

func observeBuild(name string, elapsed time.Duration) {
	if metrics.ReportBuildDuration == nil {
		return
	}
	metrics.ObserveHistogramVec(metrics.ReportBuildDuration, map[string]string{"report": name}, elapsed.Seconds())
}
