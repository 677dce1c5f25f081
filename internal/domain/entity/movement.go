package entity

import "time"

// MovementType discrimina entrada e saída. Tipo fechado: qualquer outro
// valor é rejeitado na criação (nunca um string livre).
type MovementType string

const (
	MovementEntry MovementType = "entrada"
	MovementExit  MovementType = "saida"
)

// Valid informa se o tipo é um dos dois valores permitidos.
func (t MovementType) Valid() bool {
	return t == MovementEntry || t == MovementExit
}

// Movement é um registro imutável do ledger de movimentações.
// Uma vez gravado nunca é editado; só é removido em cascata quando o
// produto referenciado é excluído.
type Movement struct {
	ID        string
	ProductID string // obrigatório: referência ao produto no momento da criação
	Type      MovementType
	Quantity  int64     // sempre > 0
	Date      time.Time // data efetiva (calendário), distinta do timestamp de criação
	Staff     string    // servidor do almoxarifado que registrou

	// Campos de saída.
	RequestingSector string // setor requisitante
	RequestingStaff  string // servidor que retirou

	// Campo legado de setor (registros anteriores à migração gravavam o
	// setor direto na movimentação). Mantido para filtros retroativos.
	Sector string

	Notes string

	// Referência opcional de nota fiscal (entradas).
	InvoiceFileID   string
	InvoiceFilename string

	CreatedAt time.Time
}
