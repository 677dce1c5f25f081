package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/scges/scges-api/internal/domain"
	"github.com/scges/scges-api/internal/domain/entity"
	"github.com/scges/scges-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, codigo, descricao, unidade, descricao_complementar, validade,
	fornecedor, numero_processo, observacoes, setor, nota_fiscal_id, nota_fiscal_nome,
	created_at, updated_at`

// ProductRepo implementação do porto ProductRepository sobre PostgreSQL
// (usável com pool ou tx). Não existe coluna de quantidade: a tabela guarda
// só os atributos descritivos.
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste um novo produto. Violação de unicidade do código vira
// domain.ErrConflict (o chamador decide repetir).
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO produtos (` + productColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Code, product.Description, product.Unit,
		product.ExtraDescription, product.Expiry, product.Supplier,
		product.ProcessNumber, product.Notes, product.Sector,
		nullable(product.InvoiceFileID), nullable(product.InvoiceFilename),
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por id; (nil, nil) quando não existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM produtos WHERE id = $1`, id)
	return scanProduct(row)
}

// GetByDescription casa a descrição por igualdade exata sem diferenciar
// maiúsculas (identidade de fato das entradas).
func (r *ProductRepo) GetByDescription(description string) (*entity.Product, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM produtos WHERE LOWER(descricao) = LOWER($1)`, description)
	return scanProduct(row)
}

// List devolve todos os produtos; search filtra por substring
// case-insensitive em descrição, código ou fornecedor. A ordenação final
// (colação pt-BR) é do caso de uso, não do SQL.
func (r *ProductRepo) List(search string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM produtos`
	args := []any{}
	if search != "" {
		query += ` WHERE descricao ILIKE $1 OR codigo ILIKE $1 OR fornecedor ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY created_at`

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProductRow(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListCodes devolve todos os códigos já atribuídos.
func (r *ProductRepo) ListCodes() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT codigo FROM produtos`)
	if err != nil {
		return nil, fmt.Errorf("list codigos: %w", err)
	}
	defer rows.Close()
	var codes []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan codigo: %w", err)
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

// Update grava os atributos descritivos. Código e created_at nunca mudam.
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE produtos SET descricao = $2, unidade = $3, descricao_complementar = $4,
			validade = $5, fornecedor = $6, numero_processo = $7, observacoes = $8,
			setor = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		product.ID, product.Description, product.Unit, product.ExtraDescription,
		product.Expiry, product.Supplier, product.ProcessNumber, product.Notes,
		product.Sector, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// SetInvoiceRef grava/substitui a referência de nota fiscal do produto.
func (r *ProductRepo) SetInvoiceRef(productID, fileID, filename string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET nota_fiscal_id = $2, nota_fiscal_nome = $3, updated_at = now() WHERE id = $1`,
		productID, nullable(fileID), nullable(filename),
	)
	if err != nil {
		return fmt.Errorf("set nota fiscal: %w", err)
	}
	return nil
}

// Delete remove um produto por id. A cascata de movimentações é
// responsabilidade do orquestrador (catálogo), não do SQL.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	p, err := scanInto(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

func scanProductRow(rows pgx.Rows) (*entity.Product, error) {
	p, err := scanInto(rows)
	if err != nil {
		return nil, fmt.Errorf("scan produto: %w", err)
	}
	return p, nil
}

func scanInto(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var invoiceID, invoiceName *string
	err := row.Scan(
		&p.ID, &p.Code, &p.Description, &p.Unit, &p.ExtraDescription, &p.Expiry,
		&p.Supplier, &p.ProcessNumber, &p.Notes, &p.Sector, &invoiceID, &invoiceName,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if invoiceID != nil {
		p.InvoiceFileID = *invoiceID
	}
	if invoiceName != nil {
		p.InvoiceFilename = *invoiceName
	}
	return &p, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
