package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appcustomer "github.com/custdesk/backend/internal/application/customer"
	"github.com/custdesk/backend/internal/domain/customer"
	"github.com/custdesk/backend/internal/infrastructure/config"
	"github.com/custdesk/backend/internal/infrastructure/hostval"
	"github.com/custdesk/backend/internal/infrastructure/logger"
	"github.com/custdesk/backend/internal/infrastructure/persistence"
	"github.com/custdesk/backend/internal/interfaces/http/handler"
	"github.com/custdesk/backend/internal/interfaces/http/middleware"
	"github.com/custdesk/backend/internal/interfaces/http/router"

	_ "github.com/custdesk/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			CustDesk Backend API
//	@version		1.0
//	@description	Customer management API with legacy host validation

//	@host		localhost:8080
//	@BasePath	/api

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting CustDesk Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	customerRepo := persistence.NewGormCustomerRepository(db.DB)

	var hostValidator customer.Validator
	if cfg.Validation.Mock {
		hostValidator = hostval.NewMockValidator(log)
		log.Info("Using simulated host validation")
	} else {
		hostValidator = hostval.NewClient(cfg.Validation.Endpoint, cfg.Validation.Timeout, log)
		log.Info("Using host validation bridge", zap.String("endpoint", cfg.Validation.Endpoint))
	}

	customerService := appcustomer.NewService(customerRepo, hostValidator)

	customerHandler := handler.NewCustomerHandler(customerService)
	healthHandler := handler.NewHealthHandler(cfg.App.Version, cfg.App.Env)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  cfg.HTTP.CORSAllowOrigins,
		AllowMethods:  cfg.HTTP.CORSAllowMethods,
		AllowHeaders:  cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}))

	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r := router.NewRouter(engine)
	r.Register(healthHandler)
	r.Register(customerHandler)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
