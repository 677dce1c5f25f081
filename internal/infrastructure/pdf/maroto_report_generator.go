// Package pdf renderiza os relatórios do SCGES com Maroto v2.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO centralizado + "Gerado em" com data/hora             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMO: totais (produtos / movimentações / saldo)           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: linhas de produto ou de movimentação                │
//	│         (quantidade em vermelho quando estoque baixo)        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/scges/scges-api/internal/application/report"
	"github.com/scges/scges-api/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 19, Green: 81, Blue: 180}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 200, Green: 30, Blue: 30}
	colorGreen   = &props.Color{Red: 22, Green: 136, Blue: 33}
	colorBlue    = &props.Color{Red: 19, Green: 81, Blue: 180}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ report.PDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa report.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator constrói o gerador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// StockReport gera o relatório de estoque e devolve os bytes do PDF.
func (g *MarotoReportGenerator) StockReport(data report.StockReportData) ([]byte, error) {
	m := newDocument("SCGES - Relatório de Estoque")

	m.AddRows(titleRows("SCGES - Relatório de Estoque", data.GeneratedAt.Format("02/01/2006 15:04"))...)

	m.AddRows(sectionTitle("Resumo"))
	m.AddRows(
		summaryLine(fmt.Sprintf("Total de Produtos: %d", data.TotalProducts)),
		summaryLine(fmt.Sprintf("Produtos com Estoque Baixo: %d", data.LowStockCount)),
	)
	m.AddRows(line.NewRow(3, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("Produtos em Estoque"))
	m.AddRows(stockTableHeader())
	for _, p := range data.Products {
		qtyColor := (*props.Color)(nil)
		if p.LowStock {
			qtyColor = colorRed
		}
		m.AddRows(row.New(5).Add(
			cell(p.Code, 2, align.Left, nil),
			cell(truncate(p.Description, 60), 6, align.Left, nil),
			cell(fmt.Sprintf("%d", p.Quantity), 2, align.Right, qtyColor),
			cell(p.Unit, 2, align.Left, nil),
		))
	}

	return generate(m)
}

// HistoryReport gera o relatório de histórico de movimentações.
func (g *MarotoReportGenerator) HistoryReport(data report.HistoryReportData) ([]byte, error) {
	m := newDocument("SCGES - Histórico de Movimentações")

	m.AddRows(titleRows("SCGES - Histórico de Movimentações", data.GeneratedAt.Format("02/01/2006 15:04"))...)

	m.AddRows(sectionTitle("Resumo"))
	m.AddRows(
		summaryLine(fmt.Sprintf("Total de Movimentações: %d", len(data.Movements))),
		summaryLine(fmt.Sprintf("Entradas: %d (%d unidades)", data.EntryCount, data.EntryUnits)),
		summaryLine(fmt.Sprintf("Saídas: %d (%d unidades)", data.ExitCount, data.ExitUnits)),
		summaryLine(fmt.Sprintf("Saldo: %d unidades", data.BalanceUnits)),
	)
	m.AddRows(line.NewRow(3, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionTitle("Movimentações"))
	m.AddRows(historyTableHeader())
	for _, mv := range data.Movements {
		tipoColor := colorBlue
		sign := "-"
		if mv.Type == string(entity.MovementEntry) {
			tipoColor = colorGreen
			sign = "+"
		}
		m.AddRows(row.New(5).Add(
			cell(mv.Date.Format("02/01/2006"), 2, align.Left, nil),
			cell(strings.ToUpper(mv.Type), 1, align.Left, tipoColor),
			cell(truncate(mv.Product.Description, 40), 5, align.Left, nil),
			cell(fmt.Sprintf("%s%d", sign, mv.Quantity), 1, align.Right, nil),
			cell(truncate(mv.Staff, 22), 3, align.Left, nil),
		))
	}

	return generate(m)
}

// ── Seções ────────────────────────────────────────────────────────────────────

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor("SCGES", true).
		Build()
	return maroto.New(cfg)
}

func titleRows(title, generatedAt string) []core.Row {
	return []core.Row{
		row.New(10).Add(col.New(12).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 16, Align: align.Center, Color: colorPrimary,
			}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New("Gerado em: "+generatedAt, props.Text{
				Size: 9, Align: align.Center, Color: colorGray,
			}),
		)),
		line.NewRow(4, props.Line{Color: colorPrimary, Thickness: 0.5}),
	}
}

func sectionTitle(s string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(s, props.Text{Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2}),
	))
}

func summaryLine(s string) core.Row {
	return row.New(5).Add(col.New(12).Add(
		text.New(s, props.Text{Size: 9, Left: 2}),
	))
}

func stockTableHeader() core.Row {
	return row.New(7).Add(
		header("Código", 2, align.Left),
		header("Descrição", 6, align.Left),
		header("Qtd", 2, align.Right),
		header("Unidade", 2, align.Left),
	)
}

func historyTableHeader() core.Row {
	return row.New(7).Add(
		header("Data", 2, align.Left),
		header("Tipo", 1, align.Left),
		header("Produto", 5, align.Left),
		header("Qtd", 1, align.Right),
		header("Servidor", 3, align.Left),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func header(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
	}))
}

func cell(value string, size int, a align.Type, color *props.Color) core.Col {
	p := props.Text{Size: 8, Align: a, Top: 0.5}
	if color != nil {
		p.Color = color
	}
	return col.New(size).Add(text.New(value, p))
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
