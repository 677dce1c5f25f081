package entity

import "time"

// StoredFile é um documento binário guardado no blob store (notas fiscais
// em PDF e formulários assinados). O núcleo nunca inspeciona o conteúdo.
type StoredFile struct {
	ID          string
	Filename    string
	ContentType string
	Data        []byte
	Size        int64

	// Metadados dos formulários de retirada.
	InitialDate *time.Time
	FinalDate   *time.Time

	UploadedAt time.Time
}
