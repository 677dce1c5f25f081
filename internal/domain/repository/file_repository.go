package repository

import "github.com/scges/scges-api/internal/domain/entity"

// FileRepository é o blob store opaco: save/get/delete por id. O núcleo
// nunca interpreta o conteúdo dos arquivos.
type FileRepository interface {
	Save(file *entity.StoredFile) error
	// Get devolve o arquivo com o conteúdo; (nil, nil) quando não existe.
	Get(id string) (*entity.StoredFile, error)
	// List devolve os metadados (sem o conteúdo), mais recente primeiro.
	List() ([]*entity.StoredFile, error)
	Delete(id string) error
}
