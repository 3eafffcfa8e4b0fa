package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/supermercado-api/internal/application/analytics"
	"github.com/jhoicas/supermercado-api/internal/application/billing"
	"github.com/jhoicas/supermercado-api/internal/application/usecase"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/excel"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/memory"
	"github.com/jhoicas/supermercado-api/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/supermercado-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/supermercado-api/internal/interfaces/http"
	"github.com/jhoicas/supermercado-api/pkg/config"
	"github.com/jhoicas/supermercado-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Dur("latencia_simulada", cfg.Mock.Latency).
		Msg("iniciando API del supermercado")

	// Repositorios en memoria con latencia simulada y datos de demostración.
	productRepo := memory.NewProductRepository(cfg.Mock.Latency)
	invoiceRepo := memory.NewInvoiceRepository(cfg.Mock.Latency)
	paymentRepo := memory.NewPaymentRepository(cfg.Mock.Latency)
	noteRepo := memory.NewCreditNoteRepository(cfg.Mock.Latency)
	saleRepo := memory.NewSaleRepository(cfg.Mock.Latency)
	billRepo := memory.NewBillRepository(cfg.Mock.Latency)
	memory.SeedAll(productRepo, invoiceRepo, paymentRepo, noteRepo)

	productUC := usecase.NewProductUseCase(productRepo)
	creditUC := usecase.NewCreditUseCase(invoiceRepo, paymentRepo, noteRepo)
	checkoutUC := billing.NewCheckoutUseCase(productRepo, saleRepo, billRepo, cfg.Billing.TaxRate)
	pdfUC := billing.NewPDFUseCase(saleRepo, infrapdf.NewMarotoReceiptGenerator(cfg.App.Name))
	dashboardUC := analytics.NewDashboardUseCase(productRepo, invoiceRepo, saleRepo, billRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Supermercado API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		ProductRepo: productRepo,
		CreditUC:    creditUC,
		CheckoutUC:  checkoutUC,
		PDFUC:       pdfUC,
		DashboardUC: dashboardUC,
		Report:      excel.NewInventoryReport(),
	})

	var metricsSrv *metrics.Server
	if cfg.Metrics.Enabled {
		metricsSrv = metrics.NewServer(cfg.Metrics.Addr)
		go func() {
			if err := metricsSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("servidor de métricas finalizado")
			}
		}()
		log.Info().Str("addr", cfg.Metrics.Addr).Msg("métricas Prometheus habilitadas")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if metricsSrv != nil {
		if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("apagado del servidor de métricas")
		}
	}

	log.Info().Msg("aplicación detenida")
}
