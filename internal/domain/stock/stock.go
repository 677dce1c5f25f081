// Package stock concentra a política de derivação de estoque: a quantidade
// de um produto nunca é armazenada, é sempre o resultado de um fold sobre o
// ledger de movimentações (entradas somam, saídas subtraem). Todo leitor
// recalcula a partir da fonte; não existe contador incremental nem cache.
package stock

import (
	"github.com/scges/scges-api/internal/domain/entity"
)

// DefaultLowStockRatio é a fração das entradas históricas abaixo da qual um
// produto é considerado com estoque baixo. Parâmetro nomeado e configurável;
// o valor padrão preserva a semântica original (30%).
const DefaultLowStockRatio = 0.30

// Totals acumula o resultado do fold do ledger para um produto.
type Totals struct {
	Entries int64 // soma das quantidades de entrada
	Exits   int64 // soma das quantidades de saída
}

// Quantity é a quantidade derivada: entradas menos saídas. Pode ficar
// momentaneamente negativa sob gravações concorrentes; isso é sinal de
// qualidade de dados, não condição de pânico — o valor é devolvido como está.
func (t Totals) Quantity() int64 {
	return t.Entries - t.Exits
}

// Fold reduz as movimentações de um produto a Totals. A ordem dos registros
// é irrelevante para o resultado.
func Fold(movements []*entity.Movement) Totals {
	var t Totals
	for _, m := range movements {
		switch m.Type {
		case entity.MovementEntry:
			t.Entries += m.Quantity
		case entity.MovementExit:
			t.Exits += m.Quantity
		}
	}
	return t
}

// FoldByProduct reduz o ledger inteiro a um mapa produto → Totals.
// Usado pelo catálogo e pelo dashboard para decorar listagens.
func FoldByProduct(movements []*entity.Movement) map[string]Totals {
	totals := make(map[string]Totals)
	for _, m := range movements {
		t := totals[m.ProductID]
		switch m.Type {
		case entity.MovementEntry:
			t.Entries += m.Quantity
		case entity.MovementExit:
			t.Exits += m.Quantity
		}
		totals[m.ProductID] = t
	}
	return totals
}

// LowStockPolicy decide quando um produto está com estoque baixo.
type LowStockPolicy struct {
	Ratio float64
}

// NewLowStockPolicy constrói a política. Ratio <= 0 cai no padrão.
func NewLowStockPolicy(ratio float64) LowStockPolicy {
	if ratio <= 0 {
		ratio = DefaultLowStockRatio
	}
	return LowStockPolicy{Ratio: ratio}
}

// IsLow informa se a quantidade derivada caiu a Ratio (inclusive) das
// entradas históricas. Produto sem nenhuma entrada nunca é sinalizado:
// item jamais estocado não é alerta de reposição.
func (p LowStockPolicy) IsLow(t Totals) bool {
	if t.Entries == 0 {
		return false
	}
	return float64(t.Quantity()) <= p.Threshold(t)
}

// Threshold devolve o limiar absoluto (Ratio × entradas históricas).
func (p LowStockPolicy) Threshold(t Totals) float64 {
	return p.Ratio * float64(t.Entries)
}
