package domain

import "errors"

// Erros de domínio (sem dependências externas). A camada HTTP mapeia cada
// um para um status distinto; o núcleo nunca os engole nem tenta de novo.
var (
	ErrNotFound          = errors.New("recurso não encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("estoque insuficiente")
	ErrConflict          = errors.New("conflito de unicidade")
)
