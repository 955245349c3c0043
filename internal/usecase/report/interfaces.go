package report

import (
	"github.com/futig/report-backend/internal/entity"
	"github.com/futig/report-backend/internal/pkg/encoder"
)

type EncoderResolver interface {
	Resolve(extension string) (encoder.Encoder[entity.Product], error)
}
