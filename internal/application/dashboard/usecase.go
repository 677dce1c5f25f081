// Package dashboard compõe as visões consolidadas da tela inicial a partir
// do catálogo e do ledger (somente leitura; tudo recalculado por requisição).
package dashboard

import (
	"github.com/scges/scges-api/internal/application/catalog"
	"github.com/scges/scges-api/internal/application/dto"
	"github.com/scges/scges-api/internal/application/ledger"
)

const (
	defaultRecentLimit   = 5
	defaultLowStockLimit = 5
)

// UseCase estatísticas e listas do dashboard.
type UseCase struct {
	catalog *catalog.UseCase
	ledger  *ledger.UseCase
}

// NewUseCase constrói o caso de uso.
func NewUseCase(cat *catalog.UseCase, led *ledger.UseCase) *UseCase {
	return &UseCase{catalog: cat, ledger: led}
}

// GetStats consolida catálogo + ledger numa única resposta.
func (uc *UseCase) GetStats() (*dto.DashboardStatsResponse, error) {
	stockStats, err := uc.catalog.GetStats()
	if err != nil {
		return nil, err
	}
	summary, err := uc.ledger.Summary()
	if err != nil {
		return nil, err
	}
	return &dto.DashboardStatsResponse{
		TotalProducts:    stockStats.TotalProducts,
		TotalEntries:     summary.TotalEntries,
		TotalExits:       summary.TotalExits,
		LowStockProducts: stockStats.LowStockProducts,
		TotalMovements:   summary.TotalMovements,
	}, nil
}

// GetRecentMovements devolve as movimentações mais recentes (limite
// padrão 5).
func (uc *UseCase) GetRecentMovements(limit int) ([]dto.MovementResponse, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return uc.ledger.Query(dto.MovementFilterRequest{Limit: limit})
}

// GetLowStock devolve os produtos com estoque baixo (limite padrão 5).
func (uc *UseCase) GetLowStock(limit int) ([]dto.ProductResponse, error) {
	if limit <= 0 {
		limit = defaultLowStockLimit
	}
	return uc.catalog.GetLowStock(limit)
}
