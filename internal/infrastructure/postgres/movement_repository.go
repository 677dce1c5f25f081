package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/scges/scges-api/internal/domain/entity"
	"github.com/scges/scges-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

const movementColumns = `id, produto_id, tipo, quantidade, data, servidor_almoxarifado,
	setor_responsavel, servidor_retirada, setor, observacoes,
	nota_fiscal_id, nota_fiscal_nome, created_at`

// MovementRepo implementação do porto MovementRepository sobre PostgreSQL.
// O ledger é append-only: só INSERT, SELECT e o DELETE em cascata por
// produto. Listagens saem em ordem de inserção (created_at, id); filtro e
// ordenação de apresentação são do domínio.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste uma movimentação.
func (r *MovementRepo) Create(m *entity.Movement) error {
	query := `
		INSERT INTO movimentacoes (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.ProductID, string(m.Type), m.Quantity, m.Date, m.Staff,
		m.RequestingSector, m.RequestingStaff, m.Sector, m.Notes,
		nullable(m.InvoiceFileID), nullable(m.InvoiceFilename), m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// ListAll devolve o ledger inteiro em ordem de inserção.
func (r *MovementRepo) ListAll() ([]*entity.Movement, error) {
	return r.list(`SELECT `+movementColumns+` FROM movimentacoes ORDER BY created_at, id`)
}

// ListByProduct devolve as movimentações de um produto em ordem de inserção.
func (r *MovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	return r.list(
		`SELECT `+movementColumns+` FROM movimentacoes WHERE produto_id = $1 ORDER BY created_at, id`,
		productID,
	)
}

// DeleteByProduct remove todas as movimentações de um produto (cascata da
// exclusão no catálogo).
func (r *MovementRepo) DeleteByProduct(productID string) error {
	_, err := r.q.Exec(context.Background(),
		`DELETE FROM movimentacoes WHERE produto_id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete movimentacoes: %w", err)
	}
	return nil
}

func (r *MovementRepo) list(query string, args ...any) ([]*entity.Movement, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovement(rows pgx.Rows) (*entity.Movement, error) {
	var m entity.Movement
	var tipo string
	var invoiceID, invoiceName *string
	err := rows.Scan(
		&m.ID, &m.ProductID, &tipo, &m.Quantity, &m.Date, &m.Staff,
		&m.RequestingSector, &m.RequestingStaff, &m.Sector, &m.Notes,
		&invoiceID, &invoiceName, &m.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scan movimentacao: %w", err)
	}
	m.Type = entity.MovementType(tipo)
	if invoiceID != nil {
		m.InvoiceFileID = *invoiceID
	}
	if invoiceName != nil {
		m.InvoiceFilename = *invoiceName
	}
	return &m, nil
}
