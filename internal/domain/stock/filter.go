package stock

import (
	"sort"
	"strings"
	"time"

	"github.com/scges/scges-api/internal/domain/entity"
)

// Filter são os critérios de busca do histórico de movimentações.
// Type vazio significa ambos os tipos. End é estendido ao fim do
// dia-calendário (ver EndOfDay) antes da comparação.
type Filter struct {
	Search    string // busca textual na descrição do produto associado
	Type      entity.MovementType
	Start     *time.Time
	End       *time.Time
	ProductID string
	Sector    string
	Limit     int // 0 = sem truncamento
}

// Apply filtra, ordena e trunca as movimentações. descOf resolve a descrição
// do produto associado (a busca textual e os relatórios casam contra o
// produto, não contra a movimentação).
//
// Ordenação padrão: data efetiva decrescente; empates quebrados por ordem de
// inserção, mais recente primeiro. O slice de entrada deve estar em ordem de
// inserção (como os repositórios devolvem).
func (f Filter) Apply(movements []*entity.Movement, descOf func(productID string) string) []*entity.Movement {
	return f.apply(movements, descOf, false)
}

// ApplyForReport é Apply com as datas truncadas ao dia antes de ordenar,
// a regra dos caminhos de renderização.
func (f Filter) ApplyForReport(movements []*entity.Movement, descOf func(productID string) string) []*entity.Movement {
	return f.apply(movements, descOf, true)
}

func (f Filter) apply(movements []*entity.Movement, descOf func(productID string) string, truncateDates bool) []*entity.Movement {
	var end time.Time
	if f.End != nil {
		end = EndOfDay(*f.End)
	}

	out := make([]*entity.Movement, 0, len(movements))
	for _, m := range movements {
		if f.Type != "" && m.Type != f.Type {
			continue
		}
		if f.ProductID != "" && m.ProductID != f.ProductID {
			continue
		}
		if f.Start != nil && m.Date.Before(*f.Start) {
			continue
		}
		if f.End != nil && m.Date.After(end) {
			continue
		}
		if f.Sector != "" && !matchesSector(m, f.Sector) {
			continue
		}
		if f.Search != "" {
			desc := ""
			if descOf != nil {
				desc = descOf(m.ProductID)
			}
			if !strings.Contains(strings.ToLower(desc), strings.ToLower(f.Search)) {
				continue
			}
		}
		out = append(out, m)
	}

	SortNewestFirst(out, truncateDates)

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out
}

// SortNewestFirst ordena in place: data efetiva decrescente, empates por
// ordem de inserção com o mais recente primeiro. Com truncateDates as
// datas são comparadas na granularidade de dia.
func SortNewestFirst(movements []*entity.Movement, truncateDates bool) {
	// Inverter antes do sort estável faz empates saírem em ordem de
	// inserção invertida (mais recente primeiro).
	for i, j := 0, len(movements)-1; i < j; i, j = i+1, j-1 {
		movements[i], movements[j] = movements[j], movements[i]
	}
	key := func(m *entity.Movement) time.Time {
		if truncateDates {
			return TruncateToDay(m.Date)
		}
		return m.Date
	}
	sort.SliceStable(movements, func(i, j int) bool {
		return key(movements[i]).After(key(movements[j]))
	})
}

// matchesSector casa contra o setor requisitante ou contra o campo legado
// de setor gravado direto na movimentação (registros pré-migração).
func matchesSector(m *entity.Movement, sector string) bool {
	return strings.EqualFold(m.RequestingSector, sector) || strings.EqualFold(m.Sector, sector)
}
