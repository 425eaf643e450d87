package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	_ "github.com/ondrasimku/upload-service-go/docs"
	"github.com/ondrasimku/upload-service-go/internal/config"
	"github.com/ondrasimku/upload-service-go/internal/files"
	"github.com/ondrasimku/upload-service-go/internal/http/handler"
	"github.com/ondrasimku/upload-service-go/internal/http/middleware"
	"github.com/ondrasimku/upload-service-go/internal/ratelimit"
	"github.com/ondrasimku/upload-service-go/web"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(service *files.Service, cfg *config.Config, logger *slog.Logger) (*gin.Engine, error) {
	router := gin.New()
	router.Use(middleware.Recovery(logger), middleware.RequestLogger(logger))

	tmpl, err := web.Templates(handler.TemplateFuncs())
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", web.StaticFS())

	uploadHandler := handler.NewUploadHandler(service, cfg.Upload.MaxSize, logger)
	healthHandler := handler.NewHealthHandler(service)
	limiter := ratelimit.NewRateLimiter(cfg.Upload.RateLimitQPS)
	logger.Debug("Upload rate limit configured", "qps", limiter.QPS())

	router.GET("/", uploadHandler.Index)
	router.POST("/upload",
		middleware.RateLimit(limiter),
		middleware.BodyLimit(cfg.Upload.MaxSize, logger),
		uploadHandler.Upload,
	)
	router.GET("/files", uploadHandler.ListFiles)
	router.GET("/health", healthHandler.Health)

	if cfg.Server.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, handler.ErrorResponse{Error: "Not found"})
	})

	return router, nil
}
