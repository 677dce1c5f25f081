package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/scges/scges-api/internal/domain/entity"
	"github.com/scges/scges-api/internal/domain/repository"
)

var _ repository.FileRepository = (*FileRepo)(nil)

// FileRepo blob store sobre PostgreSQL: o conteúdo vai numa coluna bytea.
// Substitui o GridFS da primeira geração do sistema com o mesmo contrato
// save/get/delete por id.
type FileRepo struct {
	q Querier
}

// NewFileRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewFileRepository(q Querier) *FileRepo {
	return &FileRepo{q: q}
}

// Save persiste um arquivo com o conteúdo.
func (r *FileRepo) Save(f *entity.StoredFile) error {
	query := `
		INSERT INTO arquivos (id, filename, content_type, data, size, data_inicial, data_final, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		f.ID, f.Filename, f.ContentType, f.Data, f.Size,
		f.InitialDate, f.FinalDate, f.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("insert arquivo: %w", err)
	}
	return nil
}

// Get devolve um arquivo com o conteúdo; (nil, nil) quando não existe.
func (r *FileRepo) Get(id string) (*entity.StoredFile, error) {
	query := `
		SELECT id, filename, content_type, data, size, data_inicial, data_final, uploaded_at
		FROM arquivos WHERE id = $1`
	var f entity.StoredFile
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&f.ID, &f.Filename, &f.ContentType, &f.Data, &f.Size,
		&f.InitialDate, &f.FinalDate, &f.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get arquivo: %w", err)
	}
	return &f, nil
}

// List devolve os metadados (sem o conteúdo), mais recente primeiro.
func (r *FileRepo) List() ([]*entity.StoredFile, error) {
	query := `
		SELECT id, filename, content_type, size, data_inicial, data_final, uploaded_at
		FROM arquivos ORDER BY uploaded_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list arquivos: %w", err)
	}
	defer rows.Close()
	var list []*entity.StoredFile
	for rows.Next() {
		var f entity.StoredFile
		if err := rows.Scan(&f.ID, &f.Filename, &f.ContentType, &f.Size,
			&f.InitialDate, &f.FinalDate, &f.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan arquivo: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}

// Delete remove um arquivo por id.
func (r *FileRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM arquivos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete arquivo: %w", err)
	}
	return nil
}
