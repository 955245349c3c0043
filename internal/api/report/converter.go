package report

import (
	"net/http"

	"github.com/futig/report-backend/internal/entity"
)

// toUnsupportedFormatResponse converts UnsupportedFormatError to its response DTO
func toUnsupportedFormatResponse(err *entity.UnsupportedFormatError, supported []string) *entity.UnsupportedFormatResponse {
	return &entity.UnsupportedFormatResponse{
		Error:     http.StatusText(http.StatusBadRequest),
		Message:   err.Error(),
		Supported: supported,
	}
}
