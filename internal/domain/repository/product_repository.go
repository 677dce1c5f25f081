package repository

import "github.com/scges/scges-api/internal/domain/entity"

// ProductRepository define o porto de persistência do catálogo (DIP).
// GetByID devolve (nil, nil) quando o produto não existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByDescription casa a descrição por igualdade exata, sem
	// diferenciar maiúsculas (identidade de fato das entradas).
	GetByDescription(description string) (*entity.Product, error)
	// List devolve todos os produtos; search filtra por substring
	// (case-insensitive) em descrição, código ou fornecedor.
	List(search string) ([]*entity.Product, error)
	// ListCodes devolve todos os códigos já atribuídos (para nextCode).
	ListCodes() ([]string, error)
	Update(product *entity.Product) error
	// SetInvoiceRef grava/substitui a referência de nota fiscal do produto.
	SetInvoiceRef(productID, fileID, filename string) error
	Delete(id string) error
}
