// Package report monta os dados derivados dos relatórios e delega a
// renderização aos geradores (PDF/planilha). Nenhuma regra de estoque vive
// aqui: quantidades e filtros vêm do catálogo e do ledger.
package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/scges/scges-api/internal/application/catalog"
	"github.com/scges/scges-api/internal/application/dto"
	"github.com/scges/scges-api/internal/application/ledger"
	"github.com/scges/scges-api/internal/domain/entity"
)

// File relatório renderizado pronto para download.
type File struct {
	Filename    string
	ContentType string
	Data        []byte
}

// UseCase geração de relatórios.
type UseCase struct {
	catalog *catalog.UseCase
	ledger  *ledger.UseCase
	pdf     PDFGenerator
	excel   ExcelGenerator
}

// NewUseCase constrói o caso de uso.
func NewUseCase(cat *catalog.UseCase, led *ledger.UseCase, pdf PDFGenerator, excel ExcelGenerator) *UseCase {
	return &UseCase{catalog: cat, ledger: led, pdf: pdf, excel: excel}
}

// GenerateStockPDF relatório de estoque: resumo + tabela de produtos em
// ordem de código, com a quantidade derivada de cada um.
func (uc *UseCase) GenerateStockPDF() (*File, error) {
	products, err := uc.productsByCode()
	if err != nil {
		return nil, err
	}
	data := StockReportData{
		GeneratedAt:   time.Now(),
		Products:      products,
		TotalProducts: len(products),
	}
	for _, p := range products {
		if p.LowStock {
			data.LowStockCount++
		}
	}
	bytes, err := uc.pdf.StockReport(data)
	if err != nil {
		return nil, err
	}
	return &File{
		Filename:    fmt.Sprintf("relatorio-estoque-%s.pdf", time.Now().Format("2006-01-02")),
		ContentType: "application/pdf",
		Data:        bytes,
	}, nil
}

// GenerateHistoryPDF relatório de histórico com filtros de tipo e período.
// As datas são truncadas ao dia antes de ordenar (QueryForReport) para que
// movimentações do mesmo dia não se intercalem.
func (uc *UseCase) GenerateHistoryPDF(filters dto.MovementFilterRequest) (*File, error) {
	movements, err := uc.ledger.QueryForReport(filters)
	if err != nil {
		return nil, err
	}
	data := HistoryReportData{
		GeneratedAt: time.Now(),
		Movements:   movements,
	}
	for _, m := range movements {
		if m.Type == string(entity.MovementEntry) {
			data.EntryCount++
			data.EntryUnits += m.Quantity
		} else {
			data.ExitCount++
			data.ExitUnits += m.Quantity
		}
	}
	data.BalanceUnits = data.EntryUnits - data.ExitUnits

	bytes, err := uc.pdf.HistoryReport(data)
	if err != nil {
		return nil, err
	}
	return &File{
		Filename:    fmt.Sprintf("relatorio-historico-%s.pdf", time.Now().Format("2006-01-02")),
		ContentType: "application/pdf",
		Data:        bytes,
	}, nil
}

// GenerateExcel relatório completo: aba de produtos + aba de movimentações.
func (uc *UseCase) GenerateExcel() (*File, error) {
	products, err := uc.productsByCode()
	if err != nil {
		return nil, err
	}
	movements, err := uc.ledger.QueryForReport(dto.MovementFilterRequest{})
	if err != nil {
		return nil, err
	}
	bytes, err := uc.excel.FullReport(FullReportData{
		GeneratedAt: time.Now(),
		Products:    products,
		Movements:   movements,
	})
	if err != nil {
		return nil, err
	}
	return &File{
		Filename:    fmt.Sprintf("relatorio-completo-%s.xlsx", time.Now().Format("2006-01-02")),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        bytes,
	}, nil
}

func (uc *UseCase) productsByCode() ([]dto.ProductResponse, error) {
	products, err := uc.catalog.GetAll("")
	if err != nil {
		return nil, err
	}
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Code < products[j].Code
	})
	return products, nil
}
