package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-pnr-workstation/internal/api"
	"github.com/sanosuguru/go-pnr-workstation/internal/api/handler"
	custommw "github.com/sanosuguru/go-pnr-workstation/internal/api/middleware"
	"github.com/sanosuguru/go-pnr-workstation/internal/application"
	"github.com/sanosuguru/go-pnr-workstation/internal/config"
	"github.com/sanosuguru/go-pnr-workstation/internal/infrastructure/locations"
	"github.com/sanosuguru/go-pnr-workstation/internal/pkg/logger"
	"github.com/sanosuguru/go-pnr-workstation/internal/pkg/metrics"
)

func main() {
	// .envがあれば読み込む（なくてもよい）
	_ = godotenv.Load()

	cfg := config.Load()

	logger.Set(logger.NewLogger(cfg.App.Env))
	defer logger.Sync()

	m := metrics.Init()

	// 地名マスタ
	store := locations.NewStore()
	if cfg.App.LocationsFile != "" {
		count, err := store.LoadFromFile(cfg.App.LocationsFile)
		if err != nil {
			logger.Error("地名マスタの読み込みに失敗しました", zap.Error(err))
			os.Exit(1)
		}
		logger.Info("地名マスタを読み込みました",
			zap.String("file", cfg.App.LocationsFile), zap.Int("locations", count))
	} else {
		store.Seed(locations.DefaultSeed())
	}

	engine := application.NewEngine(application.Deps{Locations: store})
	workstation := application.NewWorkstationService(engine, m)

	sessionHandler := handler.NewSessionHandler(workstation)
	healthHandler := handler.NewHealthHandler()

	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	custommw.SetupMiddleware(e)
	e.Use(custommw.PrometheusMiddleware(m))

	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()),
		custommw.MetricsTokenAuth(cfg.App.MetricsToken))

	v1 := e.Group("/api/v1")
	v1.POST("/sessions", sessionHandler.Create)
	v1.GET("/sessions/:id", sessionHandler.GetByID)
	v1.DELETE("/sessions/:id", sessionHandler.Delete)
	v1.POST("/sessions/:id/commands", sessionHandler.ExecuteCommand)

	// サーバー起動
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("サーバーを起動します", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("サーバー起動エラー", zap.Error(err))
			os.Exit(1)
		}
	}()

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("サーバーシャットダウンエラー", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("サーバーが正常にシャットダウンしました")
}
