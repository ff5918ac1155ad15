package router

import (
	"github.com/triptales/triptales-api/internal/application"
	"github.com/triptales/triptales-api/internal/container"
	pginfra "github.com/triptales/triptales-api/internal/infrastructure/postgres"
	handlers "github.com/triptales/triptales-api/internal/interface/http"
	"github.com/triptales/triptales-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers them. Called once during startup, after the container is filled.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	userRepo := pginfra.NewUserRepository(pool)
	promotionRepo := pginfra.NewPromotionRepository(pool)
	reportRepo := pginfra.NewReportRepository(pool)
	postRepo := pginfra.NewPostRepository(pool)
	categoryRepo := pginfra.NewCategoryRepository(pool)
	engagementRepo := pginfra.NewEngagementRepository(pool)

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), logger)
	promotionSvc := application.NewPromotionService(
		promotionRepo,
		userRepo,
		container.GetRedis(),
		logger,
		container.GetES(),
		cfg.ESPromotionsIndex,
		container.GetRabbitPub(),
		cfg.MailSendEnabled,
	)
	reportSvc := application.NewReportService(reportRepo, logger)
	adminSvc := application.NewAdminService(userRepo, postRepo, categoryRepo, logger)
	postSvc := application.NewPostService(postRepo, logger, container.GetES(), cfg.ESPostsIndex)
	engagementSvc := application.NewEngagementService(engagementRepo, logger)
	searchSvc := application.NewSearchService(
		promotionRepo,
		postRepo,
		container.GetES(),
		cfg.ESPromotionsIndex,
		cfg.ESPostsIndex,
		logger,
	)
	contactSvc := application.NewContactService(container.GetRabbitPub(), cfg.SupportEmail, logger)

	authHandler := handlers.NewAuthHandler(authSvc, logger, cfg.CookieDomain, cfg.CookieSecure)
	promotionHandler := handlers.NewPromotionHandler(promotionSvc, logger, container.GetGCS(), cfg.GCSBucket, cfg.MaxUploadBytes, cfg.MaxGalleryFiles)
	reportHandler := handlers.NewReportHandler(reportSvc, logger)
	adminHandler := handlers.NewAdminHandler(adminSvc, logger)
	postHandler := handlers.NewPostHandler(postSvc, logger, container.GetGCS(), cfg.GCSBucket, cfg.MaxUploadBytes)
	engagementHandler := handlers.NewEngagementHandler(engagementSvc, logger)
	searchHandler := handlers.NewSearchHandler(searchSvc, logger)
	contactHandler := handlers.NewContactHandler(contactSvc, logger)

	r.Add(modules.NewAuthModule(authHandler, container.GetJWT()))
	r.Add(modules.NewPromotionModule(promotionHandler, container.GetJWT()))
	r.Add(modules.NewReportModule(reportHandler, container.GetJWT()))
	r.Add(modules.NewAdminModule(adminHandler, container.GetJWT()))
	r.Add(modules.NewPostModule(postHandler, container.GetJWT()))
	r.Add(modules.NewEngagementModule(engagementHandler, container.GetJWT()))
	r.Add(modules.NewSearchModule(searchHandler))
	r.Add(modules.NewContactModule(contactHandler))
	r.Add(modules.NewDebugModule())
}
