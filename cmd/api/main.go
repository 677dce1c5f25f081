package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/scges/scges-api/internal/application/catalog"
	"github.com/scges/scges-api/internal/application/dashboard"
	"github.com/scges/scges-api/internal/application/files"
	"github.com/scges/scges-api/internal/application/ledger"
	"github.com/scges/scges-api/internal/application/report"
	infraexcel "github.com/scges/scges-api/internal/infrastructure/excel"
	infrapdf "github.com/scges/scges-api/internal/infrastructure/pdf"
	"github.com/scges/scges-api/internal/infrastructure/postgres"
	httpRouter "github.com/scges/scges-api/internal/interfaces/http"
	"github.com/scges/scges-api/pkg/config"
	"github.com/scges/scges-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão com PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	fileRepo := postgres.NewFileRepository(pool)

	catalogUC := catalog.NewUseCase(productRepo, movementRepo, fileRepo, cfg.Stock.LowStockRatio)
	ledgerUC := ledger.NewUseCase(movementRepo, productRepo, catalogUC, ledger.Config{
		StrictExits: cfg.Ledger.StrictExits,
	})
	dashboardUC := dashboard.NewUseCase(catalogUC, ledgerUC)
	filesUC := files.NewUseCase(fileRepo, productRepo)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	excelGenerator := infraexcel.NewExcelizeReportGenerator()
	reportUC := report.NewUseCase(catalogUC, ledgerUC, pdfGenerator, excelGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    32 * 1024 * 1024, // uploads de PDF
	})
	app.Use(recover.New())
	app.Use(cors.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		LedgerUC:    ledgerUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		FilesUC:     filesUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
