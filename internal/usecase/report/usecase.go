package report

import (
	"context"
	"errors"

	"github.com/futig/report-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// ReportUsecase generates product reports in the requested format
type ReportUsecase struct {
	resolver EncoderResolver
	logger   *zap.Logger
}

// NewUsecase creates a new report use case
func NewUsecase(resolver EncoderResolver, logger *zap.Logger) *ReportUsecase {
	return &ReportUsecase{
		resolver: resolver,
		logger:   logger,
	}
}

// GenerateReport encodes products with the encoder registered for extension.
// An unsupported extension is returned as is; any encoder failure comes back
// as a *entity.GenerationError and no partial report is returned.
func (uc *ReportUsecase) GenerateReport(
	ctx context.Context,
	extension string,
	products []entity.Product,
) ([]byte, error) {
	enc, err := uc.resolver.Resolve(extension)
	if err != nil {
		ctxzap.Warn(ctx, "no encoder for extension",
			zap.String("extension", extension),
			zap.Error(err),
		)
		return nil, err
	}

	ctxzap.Debug(ctx, "generating report",
		zap.String("format", enc.Format()),
		zap.Int("record_count", len(products)),
	)

	data, err := enc.Generate(products)
	if err != nil {
		var genErr *entity.GenerationError
		if !errors.As(err, &genErr) {
			err = entity.NewGenerationError(entity.StageGenerate, err)
		}
		ctxzap.Error(ctx, "failed to generate report",
			zap.String("format", enc.Format()),
			zap.Error(err),
		)
		return nil, err
	}

	ctxzap.Info(ctx, "report generated",
		zap.String("format", enc.Format()),
		zap.Int("record_count", len(products)),
		zap.Int("bytes", len(data)),
	)

	return data, nil
}
