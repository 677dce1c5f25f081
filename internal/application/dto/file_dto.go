package dto

import "time"

// FileInfoResponse metadados de um arquivo do blob store (sem o conteúdo).
type FileInfoResponse struct {
	ID          string     `json:"id"`
	Filename    string     `json:"filename"`
	ContentType string     `json:"content_type"`
	Size        int64      `json:"size"`
	InitialDate *time.Time `json:"data_inicial,omitempty"`
	FinalDate   *time.Time `json:"data_final,omitempty"`
	UploadedAt  time.Time  `json:"uploadDate"`
}
