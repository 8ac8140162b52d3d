package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"domainsmarket/internal/config"
	"domainsmarket/internal/database"
	"domainsmarket/internal/middleware"
	"domainsmarket/internal/modules/admin"
	"domainsmarket/internal/modules/auth"
	"domainsmarket/internal/modules/domains"
	"domainsmarket/internal/modules/notifications"
	"domainsmarket/internal/modules/users"
	jwtsvc "domainsmarket/internal/pkg/jwt"
	"domainsmarket/internal/pkg/logger"
	"domainsmarket/internal/pkg/mailer"
	"domainsmarket/internal/pkg/metrics"
	"domainsmarket/internal/pkg/storage"
	"domainsmarket/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	logger.Setup(cfg.AppEnv)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	s3Client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("s3 client setup failed")
	}
	media := storage.NewStore(s3Client, cfg.Storage)
	mail := mailer.New(cfg.Email)
	jwt := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	userRepo := repository.NewUserRepository(db)
	adminRepo := repository.NewAdminRepository(db)
	domainRepo := repository.NewDomainRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	userTokenRepo := repository.NewUserTokenRepository(db)
	adminTokenRepo := repository.NewAdminTokenRepository(db)
	resetCodeRepo := repository.NewResetCodeRepository(db)

	hub := notifications.NewHub()
	presence := notifications.NewPresence()
	gateway := notifications.NewGateway(hub, presence)

	notifService := notifications.NewService(notifRepo, hub)
	notifHandler := notifications.NewHandler(notifService)

	domainHandler := domains.NewHandler(domains.NewService(domainRepo, notifService))
	userHandler := users.NewHandler(users.NewService(userRepo, domainRepo, media, mail, notifService))
	adminHandler := admin.NewHandler(admin.NewService(
		adminRepo, userRepo, domainRepo, userTokenRepo, adminTokenRepo, media, presence, notifService,
	))
	authHandler := auth.NewHandler(auth.NewService(
		userRepo, adminRepo, userTokenRepo, adminTokenRepo, resetCodeRepo, jwt, mail,
	))

	if cfg.AppEnv != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", metrics.Handler())
	r.GET("/ws", gateway.Handle)

	requireAuth := middleware.RequireAuth(jwt)
	adminOnly := middleware.RequireRole(jwtsvc.RoleAdmin)
	userOnly := middleware.RequireRole(jwtsvc.RoleUser)

	api := r.Group("/api")

	authGroup := api.Group("", middleware.RateLimit(5, 10))
	authHandler.RegisterRoutes(authGroup)

	domainHandler.RegisterRoutes(api, middleware.OptionalAuth(jwt))

	protected := api.Group("", requireAuth)
	notifHandler.RegisterRoutes(protected, adminOnly, userOnly)
	adminHandler.RegisterRoutes(protected, adminOnly)

	userHandler.RegisterRoutes(api, requireAuth, userOnly)

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
