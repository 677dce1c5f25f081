package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scges/scges-api/internal/application/catalog"
	"github.com/scges/scges-api/internal/application/dashboard"
	"github.com/scges/scges-api/internal/application/files"
	"github.com/scges/scges-api/internal/application/ledger"
	"github.com/scges/scges-api/internal/application/report"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	CatalogUC   *catalog.UseCase
	LedgerUC    *ledger.UseCase
	DashboardUC *dashboard.UseCase
	ReportUC    *report.UseCase
	FilesUC     *files.UseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Produtos
	products := api.Group("/produtos")
	productHandler := NewProductHandler(deps.CatalogUC, deps.FilesUC)
	products.Get("/", productHandler.List)
	products.Get("/next-code", productHandler.NextCode)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", productHandler.Create)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/nota-fiscal", productHandler.AttachInvoice)
	products.Get("/:id/nota-fiscal/view", productHandler.ViewInvoice)
	products.Get("/:id/nota-fiscal/download", productHandler.DownloadInvoice)

	// Movimentações (entrada e saída são rotas de topo, como no frontend)
	movementHandler := NewMovementHandler(deps.LedgerUC, deps.FilesUC)
	api.Get("/movimentacoes", movementHandler.List)
	api.Post("/entrada", movementHandler.RecordEntry)
	api.Post("/saida", movementHandler.RecordExit)

	// Formulários de retirada
	formularios := api.Group("/formularios")
	fileHandler := NewFileHandler(deps.FilesUC)
	formularios.Get("/", fileHandler.List)
	formularios.Post("/", fileHandler.Upload)
	formularios.Get("/:id/view", fileHandler.View)
	formularios.Get("/:id", fileHandler.Download)
	formularios.Delete("/:id", fileHandler.Delete)

	// Relatórios
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/estoque/pdf", reportHandler.StockPDF)
	reports.Get("/historico/pdf", reportHandler.HistoryPDF)
	reports.Get("/excel", reportHandler.Excel)

	// Dashboard
	dash := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dash.Get("/stats", dashboardHandler.GetStats)
	dash.Get("/recent-movements", dashboardHandler.GetRecentMovements)
	dash.Get("/low-stock", dashboardHandler.GetLowStock)
}
