package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scges/scges-api/internal/application/apptest"
	"github.com/scges/scges-api/internal/application/catalog"
	"github.com/scges/scges-api/internal/application/dto"
	"github.com/scges/scges-api/internal/domain"
	"github.com/scges/scges-api/internal/domain/entity"
)

func newCatalog(t *testing.T) (*catalog.UseCase, *apptest.MemProductRepo, *apptest.MemMovementRepo, *apptest.MemFileRepo) {
	t.Helper()
	products := apptest.NewMemProductRepo()
	movements := apptest.NewMemMovementRepo()
	files := apptest.NewMemFileRepo()
	return catalog.NewUseCase(products, movements, files, 0), products, movements, files
}

func addMovement(t *testing.T, movements *apptest.MemMovementRepo, productID string, typ entity.MovementType, qty int64) {
	t.Helper()
	require.NoError(t, movements.Create(&entity.Movement{
		ID:        productID + "-" + string(typ),
		ProductID: productID,
		Type:      typ,
		Quantity:  qty,
		Date:      time.Now(),
		CreatedAt: time.Now(),
	}))
}

func TestNextCode_Sequencial(t *testing.T) {
	uc, _, _, _ := newCatalog(t)

	code, err := uc.NextCode()
	require.NoError(t, err)
	assert.Equal(t, "001", code, "catálogo vazio começa em 001")

	_, err = uc.Create(dto.CreateProductRequest{Description: "Caneta Azul"})
	require.NoError(t, err)
	_, err = uc.Create(dto.CreateProductRequest{Description: "Papel A4"})
	require.NoError(t, err)

	code, err = uc.NextCode()
	require.NoError(t, err)
	assert.Equal(t, "003", code)
}

// Acima de 999 o código simplesmente cresce, sem truncar o zero-padding.
func TestNextCode_CresceAlemDeTresDigitos(t *testing.T) {
	uc, products, _, _ := newCatalog(t)
	require.NoError(t, products.Create(&entity.Product{ID: "p1", Code: "999", Description: "x"}))

	code, err := uc.NextCode()

	require.NoError(t, err)
	assert.Equal(t, "1000", code)
}

func TestNextCode_IgnoraCodigosSemPrefixoNumerico(t *testing.T) {
	uc, products, _, _ := newCatalog(t)
	require.NoError(t, products.Create(&entity.Product{ID: "p1", Code: "ABC", Description: "x"}))
	require.NoError(t, products.Create(&entity.Product{ID: "p2", Code: "007", Description: "y"}))

	code, err := uc.NextCode()

	require.NoError(t, err)
	assert.Equal(t, "008", code)
}

func TestCreate_AtribuiCodigoEQuantidadeDerivadaZero(t *testing.T) {
	uc, _, _, _ := newCatalog(t)

	out, err := uc.Create(dto.CreateProductRequest{
		Description: "  Caneta Azul  ",
		Unit:        "unidade",
		Supplier:    "Papelaria Central",
	})

	require.NoError(t, err)
	assert.Equal(t, "001", out.Code)
	assert.Equal(t, "Caneta Azul", out.Description, "descrição é aparada")
	assert.Equal(t, int64(0), out.Quantity)
	assert.False(t, out.LowStock, "produto recém-criado, sem entradas, não sinaliza")
}

func TestCreate_DescricaoObrigatoria(t *testing.T) {
	uc, _, _, _ := newCatalog(t)

	_, err := uc.Create(dto.CreateProductRequest{Description: "   "})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetAll_DecoraComQuantidadeDerivada(t *testing.T) {
	uc, _, movements, _ := newCatalog(t)
	created, err := uc.Create(dto.CreateProductRequest{Description: "Caneta Azul"})
	require.NoError(t, err)
	addMovement(t, movements, created.ID, entity.MovementEntry, 100)
	addMovement(t, movements, created.ID, entity.MovementExit, 80)

	out, err := uc.GetAll("")

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(20), out[0].Quantity)
	assert.Equal(t, int64(100), out[0].TotalEntries)
	assert.True(t, out[0].LowStock, "20 <= 30% de 100")
}

func TestGetAll_OrdenaPorDescricaoComColacao(t *testing.T) {
	uc, _, _, _ := newCatalog(t)
	for _, desc := range []string{"banana", "água", "Abacaxi"} {
		_, err := uc.Create(dto.CreateProductRequest{Description: desc})
		require.NoError(t, err)
	}

	out, err := uc.GetAll("")

	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "Abacaxi", out[0].Description)
	assert.Equal(t, "água", out[1].Description, "acento não desloca na colação pt-BR")
	assert.Equal(t, "banana", out[2].Description)
}

func TestGetByID_NaoEncontrado(t *testing.T) {
	uc, _, _, _ := newCatalog(t)

	_, err := uc.GetByID("inexistente")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdate_AplicaSomenteCamposPresentes(t *testing.T) {
	uc, _, _, _ := newCatalog(t)
	created, err := uc.Create(dto.CreateProductRequest{
		Description: "Caneta Azul",
		Unit:        "unidade",
		Supplier:    "Papelaria Central",
	})
	require.NoError(t, err)

	novoFornecedor := "Distribuidora Sul"
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Supplier: &novoFornecedor})

	require.NoError(t, err)
	assert.Equal(t, "Distribuidora Sul", out.Supplier)
	assert.Equal(t, "Caneta Azul", out.Description, "campo ausente não é tocado")
	assert.Equal(t, created.Code, out.Code, "código é imutável")
}

func TestUpdate_DescricaoVaziaRejeitada(t *testing.T) {
	uc, _, _, _ := newCatalog(t)
	created, err := uc.Create(dto.CreateProductRequest{Description: "Caneta Azul"})
	require.NoError(t, err)

	vazia := "  "
	_, err = uc.Update(created.ID, dto.UpdateProductRequest{Description: &vazia})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// A exclusão do produto leva junto todas as suas movimentações e a nota
// fiscal anexada; movimentações de outros produtos ficam intactas.
func TestDelete_CascataDeMovimentacoesEAnexo(t *testing.T) {
	uc, products, movements, files := newCatalog(t)
	alvo, err := uc.Create(dto.CreateProductRequest{Description: "Caneta Azul"})
	require.NoError(t, err)
	outro, err := uc.Create(dto.CreateProductRequest{Description: "Papel A4"})
	require.NoError(t, err)

	addMovement(t, movements, alvo.ID, entity.MovementEntry, 100)
	addMovement(t, movements, alvo.ID, entity.MovementExit, 40)
	addMovement(t, movements, outro.ID, entity.MovementEntry, 10)

	require.NoError(t, files.Save(&entity.StoredFile{ID: "nf-1", Filename: "nota.pdf"}))
	require.NoError(t, products.SetInvoiceRef(alvo.ID, "nf-1", "nota.pdf"))

	require.NoError(t, uc.Delete(alvo.ID))

	gone, err := products.GetByID(alvo.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	movs, err := movements.ListAll()
	require.NoError(t, err)
	require.Len(t, movs, 1, "só a movimentação do outro produto sobrevive")
	assert.Equal(t, outro.ID, movs[0].ProductID)

	blob, err := files.Get("nf-1")
	require.NoError(t, err)
	assert.Nil(t, blob, "nota fiscal descartada na cascata")
}

func TestDelete_NaoEncontrado(t *testing.T) {
	uc, _, _, _ := newCatalog(t)

	assert.ErrorIs(t, uc.Delete("inexistente"), domain.ErrNotFound)
}

func TestGetLowStock_OrdenaPorQuantidadeCrescente(t *testing.T) {
	uc, _, movements, _ := newCatalog(t)

	quase, err := uc.Create(dto.CreateProductRequest{Description: "Quase esgotado"})
	require.NoError(t, err)
	addMovement(t, movements, quase.ID, entity.MovementEntry, 100)
	addMovement(t, movements, quase.ID, entity.MovementExit, 95)

	baixo, err := uc.Create(dto.CreateProductRequest{Description: "Baixo"})
	require.NoError(t, err)
	addMovement(t, movements, baixo.ID, entity.MovementEntry, 100)
	addMovement(t, movements, baixo.ID, entity.MovementExit, 75)

	saudavel, err := uc.Create(dto.CreateProductRequest{Description: "Saudável"})
	require.NoError(t, err)
	addMovement(t, movements, saudavel.ID, entity.MovementEntry, 100)

	out, err := uc.GetLowStock(0)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Quase esgotado", out[0].Description)
	assert.Equal(t, "Baixo", out[1].Description)

	limitado, err := uc.GetLowStock(1)
	require.NoError(t, err)
	require.Len(t, limitado, 1)
	assert.Equal(t, "Quase esgotado", limitado[0].Description)
}

func TestGetStats_Agregados(t *testing.T) {
	uc, _, movements, _ := newCatalog(t)

	p1, err := uc.Create(dto.CreateProductRequest{Description: "Caneta Azul"})
	require.NoError(t, err)
	addMovement(t, movements, p1.ID, entity.MovementEntry, 100)
	addMovement(t, movements, p1.ID, entity.MovementExit, 80)

	p2, err := uc.Create(dto.CreateProductRequest{Description: "Papel A4"})
	require.NoError(t, err)
	addMovement(t, movements, p2.ID, entity.MovementEntry, 50)

	_, err = uc.Create(dto.CreateProductRequest{Description: "Nunca estocado"})
	require.NoError(t, err)

	stats, err := uc.GetStats()

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, int64(70), stats.TotalStock)
	assert.Equal(t, 1, stats.LowStockProducts, "só o de 20/100; o jamais estocado não conta")
}
