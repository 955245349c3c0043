package validator

import (
	"fmt"

	"github.com/futig/report-backend/internal/config"
	"github.com/futig/report-backend/internal/entity"
)

// Validator checks the shape of report requests. Product field values are
// never validated; whatever the caller sends is rendered as is.
type Validator struct {
	cfg config.ReportConfig
}

func NewReportValidator(cfg config.ReportConfig) *Validator {
	return &Validator{cfg: cfg}
}

func (v *Validator) ValidateGenerateReport(req *entity.GenerateReportRequest) error {
	if req.Extension == "" {
		return fmt.Errorf("%w: extension", entity.ErrMissingField)
	}

	if len(req.Products) > v.cfg.MaxRecords {
		return fmt.Errorf("%w: maximum %d records allowed, got %d", entity.ErrTooManyRecords, v.cfg.MaxRecords, len(req.Products))
	}

	return nil
}

// MaxBodySize is the largest request body accepted for a report
func (v *Validator) MaxBodySize() int64 {
	return v.cfg.MaxBodySize
}
