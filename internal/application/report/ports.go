package report

import (
	"time"

	"github.com/scges/scges-api/internal/application/dto"
)

// StockReportData dados já derivados para o relatório de estoque.
type StockReportData struct {
	GeneratedAt   time.Time
	Products      []dto.ProductResponse // ordenados por código
	TotalProducts int
	LowStockCount int
}

// HistoryReportData dados já filtrados/ordenados para o relatório de
// histórico.
type HistoryReportData struct {
	GeneratedAt  time.Time
	Movements    []dto.MovementResponse
	EntryCount   int
	ExitCount    int
	EntryUnits   int64
	ExitUnits    int64
	BalanceUnits int64
}

// FullReportData dados para o relatório completo (planilha).
type FullReportData struct {
	GeneratedAt time.Time
	Products    []dto.ProductResponse
	Movements   []dto.MovementResponse
}

// PDFGenerator renderizador opaco de PDF. Consome coleções já derivadas;
// o contrato do núcleo com ele é só entregar dados corretos.
type PDFGenerator interface {
	StockReport(data StockReportData) ([]byte, error)
	HistoryReport(data HistoryReportData) ([]byte, error)
}

// ExcelGenerator renderizador opaco de planilha.
type ExcelGenerator interface {
	FullReport(data FullReportData) ([]byte, error)
}
