package api

import (
	"context"
	"fmt"

	"marketplace/docs"
	"marketplace/internal/app/config"
	"marketplace/internal/app/dto"
	"marketplace/internal/app/handler"
	"marketplace/internal/app/logging"
	"marketplace/internal/app/middleware"
	"marketplace/internal/app/redis"
	"marketplace/internal/app/repository"
	"marketplace/internal/app/service"
	"marketplace/internal/app/storage"
	"marketplace/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// StartServer собирает зависимости и обслуживает HTTP до отмены ctx
func StartServer(ctx context.Context) error {
	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := logging.Setup(cfg.Log); err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	repo, err := repository.New(cfg.DSN)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer repo.Close()

	if err := repo.Migrate(); err != nil {
		return err
	}

	redisClient, err := redis.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	// без MinIO сервис работает, только загрузка картинок отвечает ошибкой
	var images service.ImageStorage
	var links handler.ImageLinker
	minioClient, err := storage.NewMinIOClient(ctx, cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket, cfg.Minio.UseSSL)
	if err != nil {
		logrus.WithError(err).Warn("minio unavailable, image upload disabled")
	} else {
		images = minioClient
		links = minioClient
	}

	if err := dto.RegisterValidators(); err != nil {
		return err
	}

	fees := service.NewFeeCalculator(repo)
	slugs := service.NewSlugAllocator(repo)
	assignments := service.NewAssignmentCoordinator(repo)

	h := &handler.Handler{
		Specialists: service.NewSpecialistService(repo, repo, slugs, fees, assignments),
		FeeTiers:    service.NewFeeTierService(repo, repo),
		Fees:        fees,
		Catalog:     service.NewCatalogService(repo, repo, images),
		Users:       service.NewUserService(repo, repo, 0),
		Tokens:      redisClient,
		Images:      links,
		JWT:         cfg.JWT,
	}

	app := pkg.NewApp(cfg, newRouter(cfg), h, middleware.NewAuthMiddleware(redisClient, cfg.JWT))
	return app.RunApp(ctx)
}

func newRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORS.AllowOrigins
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AddAllowHeaders("Authorization")
	r.Use(cors.New(corsCfg))

	docs.SwaggerInfo.Host = fmt.Sprintf("%s:%d", cfg.ServiceHost, cfg.ServicePort)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
