package report

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/lanchonete/internal/domain/report"
	"github.com/xiebiao/lanchonete/internal/domain/sale"
	"github.com/xiebiao/lanchonete/internal/domain/user"
	"github.com/xiebiao/lanchonete/pkg/tracing"
)

// ProfitabilityUseCase 商品利润报表
// 成本按库存项当前成本价计算，不是下单时的快照
type ProfitabilityUseCase struct {
	repo   report.Repository
	cache  report.Cache
	opts   Options
	logger *zap.Logger
}

func NewProfitabilityUseCase(repo report.Repository, cache report.Cache, opts Options, logger *zap.Logger) *ProfitabilityUseCase {
	return &ProfitabilityUseCase{repo: repo, cache: cache, opts: opts, logger: logger}
}

// ProfitabilityRequest 日期可选，缺省端不限
type ProfitabilityRequest struct {
	Caller    user.Caller
	StartDate string
	EndDate   string
}

func (uc *ProfitabilityUseCase) Execute(ctx context.Context, req ProfitabilityRequest) ([]report.ProductProfitability, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ProfitabilityReport")
	defer span.End()

	if !req.Caller.IsStaff() {
		return nil, sale.ErrForbidden
	}
	start, err := parseDate(req.StartDate, uc.opts.Location)
	if err != nil {
		return nil, err
	}
	end, err := parseDate(req.EndDate, uc.opts.Location)
	if err != nil {
		return nil, err
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, ErrInvalidRange
	}
	period := report.OpenPeriod{Start: start, End: end}

	c := reportCache{cache: uc.cache, logger: uc.logger, name: "profitability"}
	key := func(version int64) string {
		return fmt.Sprintf("report:profitability:v%d:%s:%s", version, formatDate(start), formatDate(end))
	}

	var cached []report.ProductProfitability
	version, hit := c.lookup(ctx, key, &cached)
	if hit {
		return cached, nil
	}

	began := time.Now()
	from, to := period.Bounds()
	lines, err := uc.repo.FindProfitLines(ctx, sale.ProfitabilityStatuses, from, to)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	result := report.BuildProfitability(lines)
	observeBuild("profitability", time.Since(began))

	c.store(ctx, version, key, result)
	return result, nil
}
