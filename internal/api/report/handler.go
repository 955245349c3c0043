package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/futig/report-backend/internal/entity"
	"github.com/futig/report-backend/internal/pkg/encoder"
	"github.com/futig/report-backend/internal/pkg/logger"
	"github.com/futig/report-backend/internal/pkg/response"
	"github.com/futig/report-backend/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase    ReportUsecase
	validator  *validator.Validator
	extensions []string
}

func NewHandler(usecase ReportUsecase, validator *validator.Validator, extensions []string) *Handler {
	return &Handler{
		usecase:    usecase,
		validator:  validator,
		extensions: extensions,
	}
}

// GenerateReport handles POST /generateReport?extension={ext}
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	reportID := uuid.New().String()
	extension := r.URL.Query().Get("extension")

	ctx := logger.AddFields(logger.WithAction(r.Context(), "GenerateReport"),
		zap.String("report_id", reportID),
		zap.String("extension", extension),
	)

	products, err := h.decodeProducts(w, r)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(ctx, w, http.StatusRequestEntityTooLarge, "request body too large", err)
		} else {
			h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		}
		return
	}

	req := entity.GenerateReportRequest{
		Extension: extension,
		Products:  products,
	}

	if err := h.validator.ValidateGenerateReport(&req); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Debug(ctx, "generating report", zap.Int("record_count", len(req.Products)))

	data, err := h.usecase.GenerateReport(ctx, req.Extension, req.Products)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	w.Header().Set("X-Report-ID", reportID)
	if err := response.Attachment(w, encoder.ContentTypeFor(extension), encoder.FileName(extension), data); err != nil {
		ctxzap.Warn(ctx, "failed to write report response", zap.Error(err))
	}
}

func (h *Handler) decodeProducts(w http.ResponseWriter, r *http.Request) ([]entity.Product, error) {
	body := http.MaxBytesReader(w, r.Body, h.validator.MaxBodySize())
	defer body.Close()

	var products []entity.Product
	dec := json.NewDecoder(body)
	if err := dec.Decode(&products); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty body", entity.ErrInvalidParameter)
		}
		return nil, fmt.Errorf("decode products: %w", err)
	}

	// The body must hold exactly one JSON value.
	switch err := dec.Decode(&struct{}{}); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, fmt.Errorf("%w: unexpected data after product list: %w", entity.ErrInvalidParameter, err)
	default:
		return nil, fmt.Errorf("%w: unexpected data after product list", entity.ErrInvalidParameter)
	}

	return products, nil
}

// Helper methods
func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	response.JSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	var unsupported *entity.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		ctxzap.Warn(ctx, "unsupported report format", zap.Error(err))
		response.JSON(w, http.StatusBadRequest, toUnsupportedFormatResponse(unsupported, h.extensions))
	} else if errors.Is(err, entity.ErrMissingField) || errors.Is(err, entity.ErrInvalidParameter) {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid parameter", err)
	} else if errors.Is(err, entity.ErrTooManyRecords) {
		h.respondError(ctx, w, http.StatusRequestEntityTooLarge, "too many records", err)
	} else if errors.Is(err, entity.ErrReportGenerationFailed) {
		h.respondError(ctx, w, http.StatusInternalServerError, "report generation failed", err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
