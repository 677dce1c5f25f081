package repository

import "github.com/scges/scges-api/internal/domain/entity"

// MovementRepository define o porto de persistência do ledger. O ledger é
// append-only: não existem Update nem Delete individuais — movimentações só
// saem em cascata pela exclusão do produto.
//
// Listagens devolvem os registros em ordem de inserção; filtro, ordenação e
// agregação são política do domínio (domain/stock), não do armazenamento.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	ListAll() ([]*entity.Movement, error)
	ListByProduct(productID string) ([]*entity.Movement, error)
	DeleteByProduct(productID string) error
}
