package service

import (
	"context"

	"github.com/VladDatsenko/3d/internal/config"
	"github.com/VladDatsenko/3d/internal/logger"
)

type Services struct {
	CredentialService CredentialService
	SessionService    SessionService
	CatalogService    *CatalogService
	ExportService     *ExportService
}

func NewServices(ctx context.Context, persistence Persistence, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	credentialSvc := NewCredentialService(cfg.Admin, cfg.Security, persistence, logger)
	catalogSvc := NewCatalogService(ctx, cfg.Catalog, persistence, logger)

	return &Services{
		CredentialService: credentialSvc,
		SessionService:    NewSessionService(ctx, cfg.Admin, cfg.Security, credentialSvc, persistence, logger),
		CatalogService:    catalogSvc,
		ExportService:     NewExportService(catalogSvc, credentialSvc),
	}
}
