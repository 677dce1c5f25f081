package files_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scges/scges-api/internal/application/apptest"
	"github.com/scges/scges-api/internal/application/files"
	"github.com/scges/scges-api/internal/domain"
	"github.com/scges/scges-api/internal/domain/entity"
)

func newFiles(t *testing.T) (*files.UseCase, *apptest.MemFileRepo, *apptest.MemProductRepo) {
	t.Helper()
	fileRepo := apptest.NewMemFileRepo()
	productRepo := apptest.NewMemProductRepo()
	return files.NewUseCase(fileRepo, productRepo), fileRepo, productRepo
}

func TestUpload_AceitaSomentePDF(t *testing.T) {
	uc, _, _ := newFiles(t)

	_, err := uc.Upload(files.UploadInput{
		Filename: "planilha.xlsx", ContentType: "application/vnd.ms-excel", Data: []byte("x"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Content type correto passa.
	_, err = uc.Upload(files.UploadInput{
		Filename: "formulario", ContentType: "application/pdf", Data: []byte("%PDF"),
	})
	assert.NoError(t, err)

	// Sufixo .pdf também passa, mesmo sem content type.
	_, err = uc.Upload(files.UploadInput{
		Filename: "formulario.PDF", Data: []byte("%PDF"),
	})
	assert.NoError(t, err)
}

func TestUpload_ArquivoVazioRejeitado(t *testing.T) {
	uc, _, _ := newFiles(t)

	_, err := uc.Upload(files.UploadInput{Filename: "a.pdf"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Upload(files.UploadInput{Data: []byte("%PDF"), ContentType: "application/pdf"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_MaisRecentePrimeiroSemConteudo(t *testing.T) {
	uc, _, _ := newFiles(t)
	_, err := uc.Upload(files.UploadInput{Filename: "primeiro.pdf", Data: []byte("%PDF-1")})
	require.NoError(t, err)
	_, err = uc.Upload(files.UploadInput{Filename: "segundo.pdf", Data: []byte("%PDF-2")})
	require.NoError(t, err)

	out, err := uc.List()

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "segundo.pdf", out[0].Filename)
	assert.Equal(t, int64(6), out[0].Size, "tamanho vem dos metadados, não do conteúdo")
}

func TestGet_NaoEncontrado(t *testing.T) {
	uc, _, _ := newFiles(t)

	_, err := uc.Get("inexistente")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_RemoveDoBlobStore(t *testing.T) {
	uc, _, _ := newFiles(t)
	up, err := uc.Upload(files.UploadInput{Filename: "a.pdf", Data: []byte("%PDF")})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(up.ID))
	assert.ErrorIs(t, uc.Delete(up.ID), domain.ErrNotFound)
}

// Anexar uma nova nota fiscal substitui a referência no produto e descarta
// o blob anterior.
func TestAttachInvoice_SubstituiAnexoAnterior(t *testing.T) {
	uc, fileRepo, productRepo := newFiles(t)
	require.NoError(t, productRepo.Create(&entity.Product{ID: "p1", Code: "001", Description: "Caneta Azul"}))

	first, err := uc.AttachInvoice("p1", files.UploadInput{Filename: "nota-v1.pdf", Data: []byte("%PDF")})
	require.NoError(t, err)

	second, err := uc.AttachInvoice("p1", files.UploadInput{Filename: "nota-v2.pdf", Data: []byte("%PDF")})
	require.NoError(t, err)

	p, err := productRepo.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, second.ID, p.InvoiceFileID)
	assert.Equal(t, "nota-v2.pdf", p.InvoiceFilename)

	old, err := fileRepo.Get(first.ID)
	require.NoError(t, err)
	assert.Nil(t, old, "blob anterior descartado")

	got, err := uc.GetInvoice("p1")
	require.NoError(t, err)
	assert.Equal(t, "nota-v2.pdf", got.Filename)
}

func TestAttachInvoice_ProdutoInexistente(t *testing.T) {
	uc, _, _ := newFiles(t)

	_, err := uc.AttachInvoice("inexistente", files.UploadInput{Filename: "nota.pdf", Data: []byte("%PDF")})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetInvoice_ProdutoSemNota(t *testing.T) {
	uc, _, productRepo := newFiles(t)
	require.NoError(t, productRepo.Create(&entity.Product{ID: "p1", Code: "001", Description: "Caneta Azul"}))

	_, err := uc.GetInvoice("p1")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
