package dto

import "time"

// RecordEntryRequest entrada de estoque. O produto é resolvido por
// descrição (igualdade exata, case-insensitive) e criado quando ausente.
type RecordEntryRequest struct {
	Product         string `json:"produto"`    // descrição do produto
	Quantity        int64  `json:"quantidade"` // inteiro positivo
	Date            string `json:"data"`       // yyyy-mm-dd ou RFC 3339; vazio = agora
	Staff           string `json:"servidor_almoxarifado"`
	Notes           string `json:"observacoes"`
	Unit            string `json:"unidade"`
	InvoiceFileID   string `json:"nota_fiscal_id"`
	InvoiceFilename string `json:"nota_fiscal_nome"`
}

// RecordExitRequest saída de estoque. Exige o id explícito do produto
// (assimetria intencional em relação à entrada).
type RecordExitRequest struct {
	ProductID        string `json:"produto_id"`
	Quantity         int64  `json:"quantidade"`
	Date             string `json:"data"`
	Staff            string `json:"servidor_almoxarifado"`
	RequestingSector string `json:"setor_responsavel"`
	RequestingStaff  string `json:"servidor_retirada"`
}

// MovementFilterRequest filtros da listagem/histórico.
type MovementFilterRequest struct {
	Search    string `query:"search"`
	Type      string `query:"tipo"` // entrada, saida ou all/vazio
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
	ProductID string `query:"produto_id"`
	Sector    string `query:"setor"`
	Limit     int    `query:"limit"`
}

// MovementProductSummary resumo do produto associado a uma movimentação.
type MovementProductSummary struct {
	ID          string `json:"id"`
	Code        string `json:"codigo"`
	Description string `json:"descricao"`
}

// MovementResponse movimentação decorada com o resumo do produto.
type MovementResponse struct {
	ID               string                 `json:"id"`
	Type             string                 `json:"tipo"`
	Quantity         int64                  `json:"quantidade"`
	Date             time.Time              `json:"data"`
	Staff            string                 `json:"servidor_almoxarifado,omitempty"`
	RequestingSector string                 `json:"setor_responsavel,omitempty"`
	RequestingStaff  string                 `json:"servidor_retirada,omitempty"`
	Notes            string                 `json:"observacoes,omitempty"`
	InvoiceFileID    string                 `json:"nota_fiscal_id,omitempty"`
	InvoiceFilename  string                 `json:"nota_fiscal_nome,omitempty"`
	Product          MovementProductSummary `json:"produto"`
	CreatedAt        time.Time              `json:"created_at"`
}

// LedgerSummaryResponse agregados do ledger inteiro.
type LedgerSummaryResponse struct {
	TotalEntries   int64 `json:"totalEntries"`
	TotalExits     int64 `json:"totalExits"`
	TotalMovements int   `json:"totalMovements"`
}
