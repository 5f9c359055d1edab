package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sanosuguru/go-movie-ticket-booking/internal/api"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/api/handler"
	custommw "github.com/sanosuguru/go-movie-ticket-booking/internal/api/middleware"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/application"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/config"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/infrastructure/memory"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/pkg/metrics"
	"github.com/sanosuguru/go-movie-ticket-booking/internal/worker"
)

func main() {
	// .env があれば読み込む（本番では環境変数が直接渡される）
	_ = godotenv.Load()

	logger.Set(logger.NewLogger(os.Getenv("APP_ENV")))
	defer logger.Sync()

	cfg := config.Load()
	m := metrics.Init()

	// 中央レジストリ（単一プロセス内のインメモリ状態）
	store := memory.NewStore()
	theatreRepo := memory.NewTheatreRepository(store)
	showRepo := memory.NewShowRepository(store)
	customerRepo := memory.NewCustomerRepository(store)
	movieRepo := memory.NewMovieRepository(store)

	// サービス初期化
	notifier := application.NewLogNotificationService()
	paymentService := application.NewPaymentService(m)
	bookingService := application.NewBookingService(
		customerRepo, showRepo, paymentService, notifier, store,
		application.Pricing{Economy: cfg.Pricing.Economy, Premium: cfg.Pricing.Premium},
		m,
	)
	theatreService := application.NewTheatreService(theatreRepo)
	showService := application.NewShowService(showRepo, theatreRepo)
	customerService := application.NewCustomerService(customerRepo)
	movieService := application.NewMovieService(movieRepo, customerRepo, notifier)
	catalogService := application.NewCatalogService(showRepo, movieRepo, theatreRepo)

	// ハンドラー初期化
	healthHandler := handler.NewHealthHandler()
	theatreHandler := handler.NewTheatreHandler(theatreService)
	movieHandler := handler.NewMovieHandler(movieService)
	showHandler := handler.NewShowHandler(showService)
	customerHandler := handler.NewCustomerHandler(customerService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	// Echo セットアップ
	e := echo.New()
	e.HideBanner = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = api.CustomHTTPErrorHandler
	custommw.SetupMiddleware(e)
	e.Use(custommw.PrometheusMiddleware(m))

	e.GET("/health", healthHandler.Check)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()), custommw.MetricsBasicAuth())

	v1 := e.Group("/api/v1")

	v1.POST("/theatres", theatreHandler.Register)
	v1.GET("/theatres", theatreHandler.List)
	v1.DELETE("/theatres/:location", theatreHandler.Remove)

	v1.POST("/movies", movieHandler.Register)
	v1.GET("/movies", movieHandler.List)
	v1.GET("/movies/:id", movieHandler.GetByID)

	v1.POST("/shows", showHandler.Register)
	v1.GET("/shows", showHandler.List)
	v1.GET("/shows/search", catalogHandler.Search)
	v1.GET("/shows/:id", showHandler.GetByID)
	v1.POST("/shows/:id/seats", showHandler.AddSeats)
	v1.GET("/shows/:id/seats", showHandler.GetSeats)

	v1.POST("/customers", customerHandler.Register)
	v1.GET("/customers/:id", customerHandler.GetByID)
	v1.GET("/customers/:id/bookings", customerHandler.GetBookings)
	v1.DELETE("/customers/:id", customerHandler.Remove)

	v1.POST("/bookings", bookingHandler.Create)
	v1.POST("/bookings/cancel", bookingHandler.Cancel)

	// 空席ゲージの定期レポート
	workerCtx, workerCancel := context.WithCancel(context.Background())
	reporter := worker.NewAvailabilityReporter(showRepo, m, cfg.Worker.ReportInterval)
	go reporter.Start(workerCtx)

	// サーバー起動
	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("サーバー起動エラー", zap.Error(err))
		}
	}()

	// シグナル待機
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("サーバーをシャットダウンしています...")

	workerCancel()
	reporter.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("サーバーシャットダウンエラー", zap.Error(err))
	}

	logger.Info("サーバーが正常にシャットダウンしました")
}
