package report

import (
	"context"

	"github.com/futig/report-backend/internal/entity"
)

type ReportUsecase interface {
	GenerateReport(ctx context.Context, extension string, products []entity.Product) ([]byte, error)
}
