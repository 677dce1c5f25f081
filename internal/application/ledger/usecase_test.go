package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scges/scges-api/internal/application/apptest"
	"github.com/scges/scges-api/internal/application/catalog"
	"github.com/scges/scges-api/internal/application/dto"
	"github.com/scges/scges-api/internal/application/ledger"
	"github.com/scges/scges-api/internal/domain"
)

type fixture struct {
	catalog   *catalog.UseCase
	ledger    *ledger.UseCase
	products  *apptest.MemProductRepo
	movements *apptest.MemMovementRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	products := apptest.NewMemProductRepo()
	movements := apptest.NewMemMovementRepo()
	files := apptest.NewMemFileRepo()
	cat := catalog.NewUseCase(products, movements, files, 0)
	led := ledger.NewUseCase(movements, products, cat, ledger.Config{})
	return &fixture{catalog: cat, ledger: led, products: products, movements: movements}
}

func (f *fixture) quantityOf(t *testing.T, productID string) int64 {
	t.Helper()
	out, err := f.catalog.GetByID(productID)
	require.NoError(t, err)
	return out.Quantity
}

// Ciclo completo de um produto: criado pela primeira entrada, quantidade
// sempre derivada do ledger, saída maior que o saldo rejeitada sem efeito.
func TestLedger_CicloCompleto(t *testing.T) {
	f := newFixture(t)

	entry, err := f.ledger.RecordEntry(dto.RecordEntryRequest{
		Product:  "Caneta Azul",
		Quantity: 100,
		Staff:    "João",
		Unit:     "unidade",
	})
	require.NoError(t, err)
	productID := entry.Product.ID
	assert.Equal(t, "001", entry.Product.Code, "primeira entrada cria o produto com o primeiro código")
	assert.Equal(t, int64(100), f.quantityOf(t, productID))

	_, err = f.ledger.RecordExit(dto.RecordExitRequest{
		ProductID: productID,
		Quantity:  40,
		Staff:     "Maria",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(60), f.quantityOf(t, productID))

	_, err = f.ledger.RecordExit(dto.RecordExitRequest{
		ProductID: productID,
		Quantity:  100,
		Staff:     "Maria",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, int64(60), f.quantityOf(t, productID), "saída rejeitada não grava nada")

	movs, err := f.movements.ListAll()
	require.NoError(t, err)
	assert.Len(t, movs, 2)
}

func TestRecordEntry_ReaproveitaProdutoPorDescricao(t *testing.T) {
	f := newFixture(t)

	first, err := f.ledger.RecordEntry(dto.RecordEntryRequest{
		Product: "Caneta Azul", Quantity: 10, Staff: "João",
	})
	require.NoError(t, err)

	// Mesma descrição com caixa diferente cai no mesmo produto.
	second, err := f.ledger.RecordEntry(dto.RecordEntryRequest{
		Product: "CANETA AZUL", Quantity: 5, Staff: "João",
	})
	require.NoError(t, err)

	assert.Equal(t, first.Product.ID, second.Product.ID)
	assert.Equal(t, int64(15), f.quantityOf(t, first.Product.ID))

	list, err := f.products.List("")
	require.NoError(t, err)
	assert.Len(t, list, 1, "nenhum duplicado criado")
}

func TestRecordEntry_Validacao(t *testing.T) {
	f := newFixture(t)

	cases := []dto.RecordEntryRequest{
		{Product: "", Quantity: 10, Staff: "João"},
		{Product: "Caneta", Quantity: 10, Staff: "  "},
		{Product: "Caneta", Quantity: 0, Staff: "João"},
		{Product: "Caneta", Quantity: -5, Staff: "João"},
		{Product: "Caneta", Quantity: 10, Staff: "João", Date: "10/03/2025"},
	}
	for _, in := range cases {
		_, err := f.ledger.RecordEntry(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	list, err := f.products.List("")
	require.NoError(t, err)
	assert.Empty(t, list, "entrada inválida não cria produto")
}

func TestRecordEntry_AnexaNotaFiscalAoProdutoExistente(t *testing.T) {
	f := newFixture(t)

	first, err := f.ledger.RecordEntry(dto.RecordEntryRequest{
		Product: "Caneta Azul", Quantity: 10, Staff: "João",
	})
	require.NoError(t, err)

	_, err = f.ledger.RecordEntry(dto.RecordEntryRequest{
		Product:         "Caneta Azul",
		Quantity:        5,
		Staff:           "João",
		InvoiceFileID:   "nf-1",
		InvoiceFilename: "nota.pdf",
	})
	require.NoError(t, err)

	p, err := f.products.GetByID(first.Product.ID)
	require.NoError(t, err)
	assert.Equal(t, "nf-1", p.InvoiceFileID)
	assert.Equal(t, "nota.pdf", p.InvoiceFilename)
}

func TestRecordExit_ExigeProdutoExplicito(t *testing.T) {
	f := newFixture(t)

	_, err := f.ledger.RecordExit(dto.RecordExitRequest{
		ProductID: "inexistente", Quantity: 1, Staff: "Maria",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.ledger.RecordExit(dto.RecordExitRequest{Quantity: 1, Staff: "Maria"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordExit_GuardaSetorEServidorRequisitantes(t *testing.T) {
	f := newFixture(t)
	entry, err := f.ledger.RecordEntry(dto.RecordEntryRequest{
		Product: "Caneta Azul", Quantity: 10, Staff: "João",
	})
	require.NoError(t, err)

	out, err := f.ledger.RecordExit(dto.RecordExitRequest{
		ProductID:        entry.Product.ID,
		Quantity:         3,
		Staff:            "Maria",
		RequestingSector: "Compras",
		RequestingStaff:  "Carlos",
	})

	require.NoError(t, err)
	assert.Equal(t, "Compras", out.RequestingSector)
	assert.Equal(t, "Carlos", out.RequestingStaff)
}

func TestQuery_FiltraPorTipoEData(t *testing.T) {
	f := newFixture(t)
	entry, err := f.ledger.RecordEntry(dto.RecordEntryRequest{
		Product: "Caneta Azul", Quantity: 100, Staff: "João", Date: "2025-03-01",
	})
	require.NoError(t, err)
	_, err = f.ledger.RecordExit(dto.RecordExitRequest{
		ProductID: entry.Product.ID, Quantity: 20, Staff: "Maria", Date: "2025-03-10",
	})
	require.NoError(t, err)

	saidas, err := f.ledger.Query(dto.MovementFilterRequest{Type: "saida"})
	require.NoError(t, err)
	require.Len(t, saidas, 1)
	assert.Equal(t, "saida", saidas[0].Type)
	assert.Equal(t, "Caneta Azul", saidas[0].Product.Description, "decorada com o resumo do produto")

	// O dia final é capturado por inteiro (entrada fixada ao meio-dia).
	noDia, err := f.ledger.Query(dto.MovementFilterRequest{
		StartDate: "2025-03-01", EndDate: "2025-03-01",
	})
	require.NoError(t, err)
	require.Len(t, noDia, 1)
	assert.Equal(t, "entrada", noDia[0].Type)

	_, err = f.ledger.Query(dto.MovementFilterRequest{Type: "transferencia"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestQuery_OrdenacaoMaisRecentePrimeiro(t *testing.T) {
	f := newFixture(t)
	entry, err := f.ledger.RecordEntry(dto.RecordEntryRequest{
		Product: "Caneta Azul", Quantity: 100, Staff: "João", Date: "2025-03-01",
	})
	require.NoError(t, err)
	_, err = f.ledger.RecordExit(dto.RecordExitRequest{
		ProductID: entry.Product.ID, Quantity: 10, Staff: "Maria", Date: "2025-03-05",
	})
	require.NoError(t, err)

	out, err := f.ledger.Query(dto.MovementFilterRequest{})

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "saida", out[0].Type, "data mais recente primeiro")
	assert.Equal(t, "entrada", out[1].Type)
}

func TestSummary_AgregaOLedgerInteiro(t *testing.T) {
	f := newFixture(t)
	entry, err := f.ledger.RecordEntry(dto.RecordEntryRequest{
		Product: "Caneta Azul", Quantity: 100, Staff: "João",
	})
	require.NoError(t, err)
	_, err = f.ledger.RecordExit(dto.RecordExitRequest{
		ProductID: entry.Product.ID, Quantity: 30, Staff: "Maria",
	})
	require.NoError(t, err)

	sum, err := f.ledger.Summary()

	require.NoError(t, err)
	assert.Equal(t, int64(100), sum.TotalEntries)
	assert.Equal(t, int64(30), sum.TotalExits)
	assert.Equal(t, 2, sum.TotalMovements)
}

// Modo estrito: o fluxo de saída continua o mesmo, só serializado.
func TestRecordExit_ModoEstrito(t *testing.T) {
	products := apptest.NewMemProductRepo()
	movements := apptest.NewMemMovementRepo()
	cat := catalog.NewUseCase(products, movements, apptest.NewMemFileRepo(), 0)
	led := ledger.NewUseCase(movements, products, cat, ledger.Config{StrictExits: true})

	entry, err := led.RecordEntry(dto.RecordEntryRequest{
		Product: "Caneta Azul", Quantity: 10, Staff: "João",
	})
	require.NoError(t, err)

	_, err = led.RecordExit(dto.RecordExitRequest{
		ProductID: entry.Product.ID, Quantity: 10, Staff: "Maria",
	})
	require.NoError(t, err)

	_, err = led.RecordExit(dto.RecordExitRequest{
		ProductID: entry.Product.ID, Quantity: 1, Staff: "Maria",
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
}
