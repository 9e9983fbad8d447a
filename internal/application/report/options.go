package report

import (
	"strings"
	"time"

	"github.com/xiebiao/lanchonete/internal/domain/report"
	"github.com/xiebiao/lanchonete/internal/infrastructure/config"
	apperrors "github.com/xiebiao/lanchonete/pkg/errors"
)

const tracerName = "lanchonete/application/report"

// Options 报表参数
type Options struct {
	DefaultRangeDays int
	TopProductsLimit int
	// Location 自然日划分和日期参数解析所用时区
	Location *time.Location
}

func NewOptions(cfg *config.Config) (Options, error) {
	loc, err := cfg.Server.Location()
	if err != nil {
		return Options{}, err
	}
	return Options{
		DefaultRangeDays: cfg.Report.DefaultRangeDays,
		TopProductsLimit: cfg.Report.TopProductsLimit,
		Location:         loc,
	}, nil
}

var ErrInvalidRange = apperrors.New(apperrors.ErrCodeInvalidParams, "A data inicial deve ser anterior ou igual à data final.")

// parseDate 解析YYYY-MM-DD，空字符串返回nil
func parseDate(value string, loc *time.Location) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(report.DateLayout, value, loc)
	if err != nil {
		return nil, apperrors.Newf(apperrors.ErrCodeInvalidParams, "Data inválida: %s (formato esperado AAAA-MM-DD)", value)
	}
	return &t, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(report.DateLayout)
}
