// Package files gerencia os documentos anexados: formulários de retirada
// assinados e notas fiscais de produto. O conteúdo é opaco para o núcleo;
// só PDFs são aceitos.
package files

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/scges/scges-api/internal/application/dto"
	"github.com/scges/scges-api/internal/domain"
	"github.com/scges/scges-api/internal/domain/entity"
	"github.com/scges/scges-api/internal/domain/repository"
)

const pdfContentType = "application/pdf"

// UploadInput dados de um upload de formulário.
type UploadInput struct {
	Filename    string
	ContentType string
	Data        []byte
	InitialDate *time.Time
	FinalDate   *time.Time
}

// UseCase operações sobre o blob store.
type UseCase struct {
	files    repository.FileRepository
	products repository.ProductRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(files repository.FileRepository, products repository.ProductRepository) *UseCase {
	return &UseCase{files: files, products: products}
}

// Upload arquiva um formulário. Aceita somente PDF.
func (uc *UseCase) Upload(in UploadInput) (*dto.FileInfoResponse, error) {
	if len(in.Data) == 0 || in.Filename == "" {
		return nil, domain.ErrInvalidInput
	}
	if !isPDF(in.ContentType, in.Filename) {
		return nil, domain.ErrInvalidInput
	}
	file := &entity.StoredFile{
		ID:          uuid.New().String(),
		Filename:    in.Filename,
		ContentType: pdfContentType,
		Data:        in.Data,
		Size:        int64(len(in.Data)),
		InitialDate: in.InitialDate,
		FinalDate:   in.FinalDate,
		UploadedAt:  time.Now(),
	}
	if err := uc.files.Save(file); err != nil {
		return nil, err
	}
	return toInfo(file), nil
}

// List devolve os metadados de todos os formulários arquivados.
func (uc *UseCase) List() ([]dto.FileInfoResponse, error) {
	list, err := uc.files.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.FileInfoResponse, 0, len(list))
	for _, f := range list {
		out = append(out, *toInfo(f))
	}
	return out, nil
}

// Get devolve um arquivo com o conteúdo, para download.
func (uc *UseCase) Get(id string) (*entity.StoredFile, error) {
	file, err := uc.files.Get(id)
	if err != nil {
		return nil, err
	}
	if file == nil {
		return nil, domain.ErrNotFound
	}
	return file, nil
}

// Delete remove um arquivo do blob store.
func (uc *UseCase) Delete(id string) error {
	file, err := uc.files.Get(id)
	if err != nil {
		return err
	}
	if file == nil {
		return domain.ErrNotFound
	}
	return uc.files.Delete(id)
}

// AttachInvoice grava a nota fiscal de um produto: salva o novo blob,
// substitui a referência no produto e descarta o blob anterior (se havia).
func (uc *UseCase) AttachInvoice(productID string, in UploadInput) (*dto.FileInfoResponse, error) {
	if len(in.Data) == 0 || in.Filename == "" {
		return nil, domain.ErrInvalidInput
	}
	if !isPDF(in.ContentType, in.Filename) {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	file := &entity.StoredFile{
		ID:          uuid.New().String(),
		Filename:    in.Filename,
		ContentType: pdfContentType,
		Data:        in.Data,
		Size:        int64(len(in.Data)),
		UploadedAt:  time.Now(),
	}
	if err := uc.files.Save(file); err != nil {
		return nil, err
	}
	if err := uc.products.SetInvoiceRef(productID, file.ID, in.Filename); err != nil {
		return nil, err
	}
	if product.InvoiceFileID != "" {
		if err := uc.files.Delete(product.InvoiceFileID); err != nil {
			return nil, err
		}
	}
	return toInfo(file), nil
}

// GetInvoice devolve a nota fiscal anexada a um produto.
func (uc *UseCase) GetInvoice(productID string) (*entity.StoredFile, error) {
	product, err := uc.products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || product.InvoiceFileID == "" {
		return nil, domain.ErrNotFound
	}
	return uc.Get(product.InvoiceFileID)
}

func isPDF(contentType, filename string) bool {
	if contentType == pdfContentType {
		return true
	}
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}

func toInfo(f *entity.StoredFile) *dto.FileInfoResponse {
	return &dto.FileInfoResponse{
		ID:          f.ID,
		Filename:    f.Filename,
		ContentType: f.ContentType,
		Size:        f.Size,
		InitialDate: f.InitialDate,
		FinalDate:   f.FinalDate,
		UploadedAt:  f.UploadedAt,
	}
}
