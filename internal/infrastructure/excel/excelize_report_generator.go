// Package excel renderiza o relatório completo em planilha xlsx.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/scges/scges-api/internal/application/report"
	"github.com/scges/scges-api/internal/domain/entity"
)

const (
	sheetProducts  = "Produtos"
	sheetMovements = "Movimentações"
)

var _ report.ExcelGenerator = (*ExcelizeReportGenerator)(nil)

// ExcelizeReportGenerator implementa report.ExcelGenerator usando excelize.
type ExcelizeReportGenerator struct{}

// NewExcelizeReportGenerator constrói o gerador.
func NewExcelizeReportGenerator() *ExcelizeReportGenerator { return &ExcelizeReportGenerator{} }

// FullReport gera a planilha com as abas Produtos e Movimentações.
func (g *ExcelizeReportGenerator) FullReport(data report.FullReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := g.writeProducts(f, data); err != nil {
		return nil, err
	}
	if err := g.writeMovements(f, data); err != nil {
		return nil, err
	}

	// A aba padrão "Sheet1" vira Produtos; a planilha abre nela.
	idx, err := f.GetSheetIndex(sheetProducts)
	if err != nil {
		return nil, fmt.Errorf("excel: localizar aba: %w", err)
	}
	f.SetActiveSheet(idx)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("excel: escrever planilha: %w", err)
	}
	return buf.Bytes(), nil
}

func (g *ExcelizeReportGenerator) writeProducts(f *excelize.File, data report.FullReportData) error {
	if err := f.SetSheetName("Sheet1", sheetProducts); err != nil {
		return fmt.Errorf("excel: renomear aba: %w", err)
	}

	headerStyle, err := headerStyle(f, "1351B4")
	if err != nil {
		return err
	}
	lowStockStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFCCCB"}},
	})
	if err != nil {
		return fmt.Errorf("excel: estilo estoque baixo: %w", err)
	}

	headers := []interface{}{
		"Código", "Descrição", "Quantidade", "Total de Entradas",
		"Estoque Baixo", "Unidade", "Fornecedor", "Setor", "Validade",
	}
	if err := f.SetSheetRow(sheetProducts, "A1", &headers); err != nil {
		return fmt.Errorf("excel: cabeçalho produtos: %w", err)
	}
	if err := f.SetCellStyle(sheetProducts, "A1", "I1", headerStyle); err != nil {
		return fmt.Errorf("excel: estilo cabeçalho: %w", err)
	}

	for i, p := range data.Products {
		rowNum := i + 2
		lowStock := "Não"
		if p.LowStock {
			lowStock = "Sim"
		}
		values := []interface{}{
			p.Code, p.Description, p.Quantity, p.TotalEntries,
			lowStock, p.Unit, p.Supplier, p.Sector, p.Expiry,
		}
		cellRef := fmt.Sprintf("A%d", rowNum)
		if err := f.SetSheetRow(sheetProducts, cellRef, &values); err != nil {
			return fmt.Errorf("excel: linha produto %d: %w", rowNum, err)
		}
		if p.LowStock {
			qtyRef := fmt.Sprintf("C%d", rowNum)
			if err := f.SetCellStyle(sheetProducts, qtyRef, qtyRef, lowStockStyle); err != nil {
				return fmt.Errorf("excel: destacar estoque baixo: %w", err)
			}
		}
	}

	widths := []struct {
		col   string
		width float64
	}{
		{"A", 10}, {"B", 42}, {"C", 12}, {"D", 16},
		{"E", 14}, {"F", 12}, {"G", 24}, {"H", 18}, {"I", 14},
	}
	for _, w := range widths {
		if err := f.SetColWidth(sheetProducts, w.col, w.col, w.width); err != nil {
			return fmt.Errorf("excel: largura coluna: %w", err)
		}
	}
	return nil
}

func (g *ExcelizeReportGenerator) writeMovements(f *excelize.File, data report.FullReportData) error {
	if _, err := f.NewSheet(sheetMovements); err != nil {
		return fmt.Errorf("excel: criar aba movimentações: %w", err)
	}

	headerStyle, err := headerStyle(f, "168821")
	if err != nil {
		return err
	}

	headers := []interface{}{
		"Data", "Tipo", "Código", "Produto", "Quantidade",
		"Servidor", "Setor Responsável", "Servidor Retirada", "Observações",
	}
	if err := f.SetSheetRow(sheetMovements, "A1", &headers); err != nil {
		return fmt.Errorf("excel: cabeçalho movimentações: %w", err)
	}
	if err := f.SetCellStyle(sheetMovements, "A1", "I1", headerStyle); err != nil {
		return fmt.Errorf("excel: estilo cabeçalho: %w", err)
	}

	for i, m := range data.Movements {
		rowNum := i + 2
		tipo := "Saída"
		if m.Type == string(entity.MovementEntry) {
			tipo = "Entrada"
		}
		values := []interface{}{
			m.Date.Format("02/01/2006"), tipo, m.Product.Code, m.Product.Description,
			m.Quantity, m.Staff, m.RequestingSector, m.RequestingStaff, m.Notes,
		}
		cellRef := fmt.Sprintf("A%d", rowNum)
		if err := f.SetSheetRow(sheetMovements, cellRef, &values); err != nil {
			return fmt.Errorf("excel: linha movimentação %d: %w", rowNum, err)
		}
	}

	widths := []struct {
		col   string
		width float64
	}{
		{"A", 12}, {"B", 10}, {"C", 10}, {"D", 42}, {"E", 12},
		{"F", 24}, {"G", 20}, {"H", 24}, {"I", 32},
	}
	for _, w := range widths {
		if err := f.SetColWidth(sheetMovements, w.col, w.col, w.width); err != nil {
			return fmt.Errorf("excel: largura coluna: %w", err)
		}
	}
	return nil
}

func headerStyle(f *excelize.File, color string) (int, error) {
	id, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
	})
	if err != nil {
		return 0, fmt.Errorf("excel: estilo de cabeçalho: %w", err)
	}
	return id, nil
}
