package builder

import (
	"fmt"
	"net/http"

	"github.com/futig/report-backend/internal/api"
	reportapi "github.com/futig/report-backend/internal/api/report"
	"github.com/futig/report-backend/internal/config"
	"github.com/futig/report-backend/internal/entity"
	"github.com/futig/report-backend/internal/pkg/encoder"
	"github.com/futig/report-backend/internal/pkg/logger"
	"github.com/futig/report-backend/internal/pkg/validator"
	"github.com/futig/report-backend/internal/usecase/report"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return BuildWithConfig(cfg)
}

// BuildWithConfig wires the application from an already loaded configuration
func BuildWithConfig(cfg *config.Config) (*App, error) {
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	log.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Encoders are registered once and shared by all requests
	factory := encoder.NewFactory(entity.ProductSchema)
	log.Info("Report encoders registered", zap.Strings("extensions", factory.Extensions()))

	reportValidator := validator.NewReportValidator(cfg.ReportCfg)
	reportUC := report.NewUsecase(factory, log)
	reportHandler := reportapi.NewHandler(reportUC, reportValidator, factory.Extensions())

	router := api.SetupRouter(reportHandler, log, cfg.HTTPCfg.RequestTimeout)
	log.Info("HTTP router configured")

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  cfg.HTTPCfg.ReadTimeout,
		WriteTimeout: cfg.HTTPCfg.WriteTimeout,
		IdleTimeout:  cfg.HTTPCfg.IdleTimeout,
	}

	log.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server:          server,
		logger:          log,
		shutdownTimeout: cfg.HTTPCfg.ShutdownTimeout,
	}, nil
}
