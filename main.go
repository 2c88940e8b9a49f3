package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adminUseCase "github.com/Korikanas/ncart/src/admin/application/usecase"
	adminController "github.com/Korikanas/ncart/src/admin/infrastructure/controller"
	apiConfig "github.com/Korikanas/ncart/src/api/config"
	cartUseCase "github.com/Korikanas/ncart/src/cart/application/usecase"
	cartCache "github.com/Korikanas/ncart/src/cart/infrastructure/cache"
	cartController "github.com/Korikanas/ncart/src/cart/infrastructure/controller"
	catalogUseCase "github.com/Korikanas/ncart/src/catalog/application/usecase"
	catalogCache "github.com/Korikanas/ncart/src/catalog/infrastructure/cache"
	catalogClient "github.com/Korikanas/ncart/src/catalog/infrastructure/client"
	catalogController "github.com/Korikanas/ncart/src/catalog/infrastructure/controller"
	orderUseCase "github.com/Korikanas/ncart/src/order/application/usecase"
	"github.com/Korikanas/ncart/src/order/domain/entity"
	orderCache "github.com/Korikanas/ncart/src/order/infrastructure/cache"
	orderClient "github.com/Korikanas/ncart/src/order/infrastructure/client"
	orderController "github.com/Korikanas/ncart/src/order/infrastructure/controller"
	"github.com/Korikanas/ncart/src/shared/infrastructure/client"
	sharedConfig "github.com/Korikanas/ncart/src/shared/infrastructure/config"
	"github.com/Korikanas/ncart/src/shared/infrastructure/inflight"
	sharedLogger "github.com/Korikanas/ncart/src/shared/infrastructure/logger"
	"github.com/Korikanas/ncart/src/shared/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var configPath string

var rootCmd = &cobra.Command{
	Use:   "ncart",
	Short: "ncart - storefront cart and order lifecycle service",
	Long: `ncart keeps a per-session shopping cart, turns it into orders through
the store's REST backend and drives the order lifecycle
(Processing -> Shipped -> Delivered, or Cancelled with a reason).`,
	SilenceUsage: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := sharedConfig.Load(configPath)
		if err != nil {
			return err
		}
		return serve(cmd.Context(), cfg)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := sharedConfig.Load(configPath)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "port=%s backend=%s timeout=%s prometheus=%t complete_skipped_steps=%t log_level=%s\n",
			cfg.Server.Port, cfg.Backend.BaseURL, cfg.Backend.Timeout, cfg.Metrics.PrometheusEnabled,
			cfg.Order.CompleteSkippedSteps, cfg.Logging.Level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")
	rootCmd.AddCommand(serveCmd, configCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

// serve arma el router y corre el servidor hasta que ctx se cancela
func serve(ctx context.Context, cfg *sharedConfig.Config) error {
	logger, err := sharedLogger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("ncart starting", zap.String("version", cfg.Version), zap.String("backend", cfg.Backend.BaseURL))

	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Configurar logging, recovery y GZIP
	sharedConfig.SetupSharedMiddleware(router, cfg.Gzip, logger)

	// Configurar Prometheus metrics si está habilitado
	var registerer prometheus.Registerer
	if cfg.Metrics.PrometheusEnabled {
		registerer = prometheus.DefaultRegisterer
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
		logger.Info("/metrics endpoint registered")
	} else {
		logger.Info("prometheus metrics disabled")
	}
	m := metrics.New(registerer)

	timeout, err := cfg.BackendTimeout()
	if err != nil {
		return err
	}
	rest := client.NewRestClient(cfg.Backend.BaseURL, timeout).WithObserver(m)

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	catalog := catalogClient.NewCatalogClient(rest)
	products := setupCatalogModule(ctx, v1, catalog, logger)
	carts := setupCartModule(v1, products, logger)
	setupOrderModule(v1, cfg, rest, carts, m, logger)
	if err := setupAdminModule(v1, cfg, rest, catalog, m, logger); err != nil {
		return err
	}

	// Configurar el módulo API (health check)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.Version = cfg.Version
	apiCfg.Logger = logger
	apiCfg.Checks["backend"] = func(ctx context.Context) error {
		_, err := catalog.ListFeatured(ctx)
		return err
	}
	apiCfg.Checks["catalog_index"] = func(context.Context) error {
		if products.Len() == 0 {
			return errors.New("catalog index is empty")
		}
		return nil
	}
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("health", "GET /health, GET /api/v1/health"),
		)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// setupCatalogModule configura el módulo Catalog y precarga el índice de
// productos que usa el carrito
func setupCatalogModule(ctx context.Context, router *gin.RouterGroup, gateway *catalogClient.CatalogClient, logger *zap.Logger) *catalogCache.ProductCache {
	logger.Info("configuring catalog module")

	index := catalogCache.NewProductCache()

	warmCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if products, err := gateway.ListProducts(warmCtx); err != nil {
		logger.Warn("catalog warm-up failed, index loads on first browse", zap.Error(err))
	} else {
		index.Load(products)
		logger.Info("catalog index loaded", zap.Int("products", index.Len()))
	}

	browseUC := catalogUseCase.NewBrowseProductsUseCase(gateway, index, logger)
	featuredUC := catalogUseCase.NewListFeaturedUseCase(gateway, index)

	productCtrl := catalogController.NewProductController(browseUC, featuredUC, logger)
	productCtrl.RegisterRoutes(router)

	return index
}

// setupCartModule configura el módulo Cart
func setupCartModule(router *gin.RouterGroup, products *catalogCache.ProductCache, logger *zap.Logger) *cartCache.CartCache {
	logger.Info("configuring cart module")

	carts := cartCache.NewCartCache()

	cartCtrl := cartController.NewCartController(
		cartUseCase.NewAddItemUseCase(carts, products, logger),
		cartUseCase.NewUpdateQuantityUseCase(carts),
		cartUseCase.NewRemoveItemUseCase(carts),
		cartUseCase.NewGetCartUseCase(carts),
		logger,
	)
	cartCtrl.RegisterRoutes(router)

	return carts
}

// setupOrderModule configura el módulo Order
func setupOrderModule(router *gin.RouterGroup, cfg *sharedConfig.Config, rest *client.RestClient, carts *cartCache.CartCache, m *metrics.Metrics, logger *zap.Logger) {
	logger.Info("configuring order module")

	pmCache := orderCache.NewPaymentMethodCache()
	pmCache.Load(paymentMethods(cfg), logger)

	gateway := orderClient.NewOrderClient(rest)
	orders := orderCache.NewOrderCache()
	guard := inflight.NewGuard()
	opts := entity.TransitionOptions{CompleteSkippedSteps: cfg.Order.CompleteSkippedSteps}

	transitionUC := orderUseCase.NewApplyStatusTransitionUseCase(gateway, orders, guard, m, opts, logger)

	orderCtrl := orderController.NewOrderController(
		orderUseCase.NewCheckoutUseCase(carts, gateway, orders, pmCache, guard, m, logger),
		transitionUC,
		orderUseCase.NewCancelOrderUseCase(transitionUC),
		orderUseCase.NewListOrdersUseCase(gateway, orders, logger),
		orderUseCase.NewGetOrderUseCase(orders),
		orderUseCase.NewEndSessionUseCase(logger, carts, orders),
		logger,
	)
	orderCtrl.RegisterRoutes(router)
}

// setupAdminModule configura el panel de administración. Usa su propio
// cliente (/admin/orders) y su propia cache de órdenes.
func setupAdminModule(router *gin.RouterGroup, cfg *sharedConfig.Config, rest *client.RestClient, catalog *catalogClient.CatalogClient, m *metrics.Metrics, logger *zap.Logger) error {
	logger.Info("configuring admin module")

	location, err := cfg.ReportLocation()
	if err != nil {
		return err
	}

	gateway := orderClient.NewAdminOrderClient(rest)
	orders := orderCache.NewOrderCache()
	opts := entity.TransitionOptions{CompleteSkippedSteps: cfg.Order.CompleteSkippedSteps}

	adminCtrl := adminController.NewAdminController(
		orderUseCase.NewListOrdersUseCase(gateway, orders, logger),
		orderUseCase.NewApplyStatusTransitionUseCase(gateway, orders, inflight.NewGuard(), m, opts, logger),
		adminUseCase.NewDashboardStatsUseCase(gateway, orders, catalog, logger),
		logger,
	)
	reportCtrl := adminController.NewReportController(
		adminUseCase.NewDailyReportUseCase(gateway, orders, location),
		logger,
	)

	adminCtrl.RegisterRoutes(router)
	reportCtrl.RegisterRoutes(router)
	return nil
}

func paymentMethods(cfg *sharedConfig.Config) []orderCache.PaymentMethod {
	if len(cfg.Order.PaymentMethods) == 0 {
		return orderCache.DefaultPaymentMethods()
	}
	methods := make([]orderCache.PaymentMethod, 0, len(cfg.Order.PaymentMethods))
	for _, pm := range cfg.Order.PaymentMethods {
		methods = append(methods, orderCache.PaymentMethod{Code: pm.Code, Name: pm.Name})
	}
	return methods
}
