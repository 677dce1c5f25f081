package entity

import "time"

// Product representa um item do catálogo do almoxarifado.
// Quantidade NÃO é um campo do produto: é sempre derivada do ledger de
// movimentações no momento da leitura (ver domain/stock).
type Product struct {
	ID               string
	Code             string // código sequencial ("001", "002", ...), imutável após a criação
	Description      string // obrigatório
	Unit             string // unidade de medida
	ExtraDescription string
	Expiry           string // marcador de validade (texto livre)
	Supplier         string
	ProcessNumber    string
	Notes            string
	Sector           string
	InvoiceFileID    string // referência à nota fiscal no blob store (opcional)
	InvoiceFilename  string // nome original do arquivo da nota fiscal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
