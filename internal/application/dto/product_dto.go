package dto

import "time"

// CreateProductRequest entrada para criar um produto. Código, quantidade e
// timestamps nunca vêm do chamador.
type CreateProductRequest struct {
	Description      string `json:"descricao"`
	Unit             string `json:"unidade"`
	ExtraDescription string `json:"descricao_complementar"`
	Expiry           string `json:"validade"`
	Supplier         string `json:"fornecedor"`
	ProcessNumber    string `json:"numero_processo"`
	Notes            string `json:"observacoes"`
	Sector           string `json:"setor"`
}

// UpdateProductRequest entrada para atualizar atributos descritivos.
// Campos nil não são tocados; código/quantidade/timestamps são ignorados
// por construção (não existem aqui).
type UpdateProductRequest struct {
	Description      *string `json:"descricao"`
	Unit             *string `json:"unidade"`
	ExtraDescription *string `json:"descricao_complementar"`
	Expiry           *string `json:"validade"`
	Supplier         *string `json:"fornecedor"`
	ProcessNumber    *string `json:"numero_processo"`
	Notes            *string `json:"observacoes"`
	Sector           *string `json:"setor"`
}

// ProductResponse produto decorado com a quantidade derivada do ledger e o
// total histórico de entradas (nunca valores armazenados).
type ProductResponse struct {
	ID               string    `json:"id"`
	Code             string    `json:"codigo"`
	Description      string    `json:"descricao"`
	Quantity         int64     `json:"quantidade"`
	TotalEntries     int64     `json:"total_entradas"`
	LowStock         bool      `json:"estoque_baixo"`
	Unit             string    `json:"unidade"`
	ExtraDescription string    `json:"descricao_complementar,omitempty"`
	Expiry           string    `json:"validade,omitempty"`
	Supplier         string    `json:"fornecedor,omitempty"`
	ProcessNumber    string    `json:"numero_processo,omitempty"`
	Notes            string    `json:"observacoes,omitempty"`
	Sector           string    `json:"setor,omitempty"`
	InvoiceFileID    string    `json:"nota_fiscal_id,omitempty"`
	InvoiceFilename  string    `json:"nota_fiscal_nome,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// StockStatsResponse estatísticas agregadas do catálogo.
type StockStatsResponse struct {
	TotalProducts    int   `json:"totalProducts"`
	LowStockProducts int   `json:"lowStockProducts"`
	TotalStock       int64 `json:"totalStock"`
}
