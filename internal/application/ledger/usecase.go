// Package ledger implementa o motor de movimentações: registro de entradas
// e saídas, consulta filtrada do histórico e os agregados do ledger.
//
// A verificação de suficiência da saída e o append não são atômicos: duas
// saídas concorrentes podem ler a mesma quantidade derivada e ambas passar.
// Limitação aceita do desenho (escritor único na prática); o modo estrito
// opcional serializa as saídas sob um mutex sem mudar a forma
// verifica-depois-grava.
package ledger

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scges/scges-api/internal/application/catalog"
	"github.com/scges/scges-api/internal/application/dto"
	"github.com/scges/scges-api/internal/domain"
	"github.com/scges/scges-api/internal/domain/entity"
	"github.com/scges/scges-api/internal/domain/repository"
	"github.com/scges/scges-api/internal/domain/stock"
)

// Config opções do motor.
type Config struct {
	// StrictExits serializa RecordExit sob um lock, revalidando a
	// suficiência dentro da seção crítica. Desligado por padrão para
	// preservar o comportamento concorrente observável.
	StrictExits bool
}

// UseCase motor de ledger e derivação.
type UseCase struct {
	movements repository.MovementRepository
	products  repository.ProductRepository
	catalog   *catalog.UseCase
	cfg       Config

	exitMu sync.Mutex // usado apenas com StrictExits
}

// NewUseCase constrói o motor. O catálogo é usado para auto-criar produtos
// em entradas cuja descrição ainda não existe.
func NewUseCase(
	movements repository.MovementRepository,
	products repository.ProductRepository,
	cat *catalog.UseCase,
	cfg Config,
) *UseCase {
	return &UseCase{movements: movements, products: products, catalog: cat, cfg: cfg}
}

// RecordEntry registra uma entrada. O produto é resolvido por igualdade
// exata de descrição (case-insensitive) e criado via catálogo quando
// ausente — a quantidade informada não semeia campo nenhum: é a própria
// movimentação criada aqui que estabelece a quantidade derivada.
func (uc *UseCase) RecordEntry(in dto.RecordEntryRequest) (*dto.MovementResponse, error) {
	if strings.TrimSpace(in.Product) == "" || strings.TrimSpace(in.Staff) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := stock.EffectiveDate(in.Date, time.Now())
	if err != nil {
		return nil, err
	}

	product, err := uc.catalog.GetByDescription(in.Product)
	if err != nil {
		return nil, err
	}
	if product == nil {
		created, err := uc.catalog.Create(dto.CreateProductRequest{
			Description: in.Product,
			Unit:        in.Unit,
		})
		if err != nil {
			return nil, err
		}
		product, err = uc.products.GetByID(created.ID)
		if err != nil {
			return nil, err
		}
	} else if in.InvoiceFileID != "" {
		// Anexa/substitui a referência de nota fiscal no produto
		// (efeito colateral no catálogo, não no ledger).
		if err := uc.products.SetInvoiceRef(product.ID, in.InvoiceFileID, in.InvoiceFilename); err != nil {
			return nil, err
		}
		product.InvoiceFileID = in.InvoiceFileID
		product.InvoiceFilename = in.InvoiceFilename
	}

	mov := &entity.Movement{
		ID:              uuid.New().String(),
		ProductID:       product.ID,
		Type:            entity.MovementEntry,
		Quantity:        in.Quantity,
		Date:            date,
		Staff:           strings.TrimSpace(in.Staff),
		Notes:           in.Notes,
		InvoiceFileID:   in.InvoiceFileID,
		InvoiceFilename: in.InvoiceFilename,
		CreatedAt:       time.Now(),
	}
	if err := uc.movements.Create(mov); err != nil {
		return nil, err
	}
	return decorate(mov, product), nil
}

// RecordExit registra uma saída. Exige produto por id, valida a quantidade
// contra a derivada atual e só então grava. Nada é gravado quando a
// validação falha.
func (uc *UseCase) RecordExit(in dto.RecordExitRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || strings.TrimSpace(in.Staff) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	date, err := stock.EffectiveDate(in.Date, time.Now())
	if err != nil {
		return nil, err
	}

	if uc.cfg.StrictExits {
		uc.exitMu.Lock()
		defer uc.exitMu.Unlock()
	}

	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	movs, err := uc.movements.ListByProduct(in.ProductID)
	if err != nil {
		return nil, err
	}
	if in.Quantity > stock.Fold(movs).Quantity() {
		return nil, domain.ErrInsufficientStock
	}

	mov := &entity.Movement{
		ID:               uuid.New().String(),
		ProductID:        product.ID,
		Type:             entity.MovementExit,
		Quantity:         in.Quantity,
		Date:             date,
		Staff:            strings.TrimSpace(in.Staff),
		RequestingSector: in.RequestingSector,
		RequestingStaff:  in.RequestingStaff,
		CreatedAt:        time.Now(),
	}
	if err := uc.movements.Create(mov); err != nil {
		return nil, err
	}
	return decorate(mov, product), nil
}

// Query lista movimentações decoradas segundo os filtros, na ordenação
// padrão (data decrescente, empates por inserção mais recente primeiro).
func (uc *UseCase) Query(in dto.MovementFilterRequest) ([]dto.MovementResponse, error) {
	return uc.query(in, false)
}

// QueryForReport é Query com as datas truncadas ao dia antes de ordenar,
// a regra dos caminhos de renderização de relatório.
func (uc *UseCase) QueryForReport(in dto.MovementFilterRequest) ([]dto.MovementResponse, error) {
	return uc.query(in, true)
}

func (uc *UseCase) query(in dto.MovementFilterRequest, forReport bool) ([]dto.MovementResponse, error) {
	filter, err := uc.buildFilter(in)
	if err != nil {
		return nil, err
	}

	var movs []*entity.Movement
	if filter.ProductID != "" {
		movs, err = uc.movements.ListByProduct(filter.ProductID)
	} else {
		movs, err = uc.movements.ListAll()
	}
	if err != nil {
		return nil, err
	}

	products, err := uc.products.List("")
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	descOf := func(productID string) string {
		if p, ok := byID[productID]; ok {
			return p.Description
		}
		return ""
	}

	if forReport {
		movs = filter.ApplyForReport(movs, descOf)
	} else {
		movs = filter.Apply(movs, descOf)
	}

	out := make([]dto.MovementResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, *decorate(m, byID[m.ProductID]))
	}
	return out, nil
}

// DeleteByProduct remove todas as movimentações de um produto. Usado
// exclusivamente pela cascata de exclusão do catálogo.
func (uc *UseCase) DeleteByProduct(productID string) error {
	return uc.movements.DeleteByProduct(productID)
}

// Summary agrega o ledger inteiro para o dashboard.
func (uc *UseCase) Summary() (*dto.LedgerSummaryResponse, error) {
	movs, err := uc.movements.ListAll()
	if err != nil {
		return nil, err
	}
	t := stock.Fold(movs)
	return &dto.LedgerSummaryResponse{
		TotalEntries:   t.Entries,
		TotalExits:     t.Exits,
		TotalMovements: len(movs),
	}, nil
}

func (uc *UseCase) buildFilter(in dto.MovementFilterRequest) (stock.Filter, error) {
	f := stock.Filter{
		Search:    in.Search,
		ProductID: in.ProductID,
		Sector:    in.Sector,
		Limit:     in.Limit,
	}
	switch in.Type {
	case "", "all":
		// ambos os tipos
	case string(entity.MovementEntry):
		f.Type = entity.MovementEntry
	case string(entity.MovementExit):
		f.Type = entity.MovementExit
	default:
		return stock.Filter{}, domain.ErrInvalidInput
	}
	if in.StartDate != "" {
		t, err := parseFilterDate(in.StartDate)
		if err != nil {
			return stock.Filter{}, err
		}
		f.Start = &t
	}
	if in.EndDate != "" {
		t, err := parseFilterDate(in.EndDate)
		if err != nil {
			return stock.Filter{}, err
		}
		f.End = &t
	}
	return f, nil
}

// parseFilterDate aceita data nua (meia-noite local) ou RFC 3339. O limite
// final é estendido ao fim do dia pelo próprio Filter.
func parseFilterDate(raw string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, domain.ErrInvalidInput
}

func decorate(m *entity.Movement, p *entity.Product) *dto.MovementResponse {
	out := &dto.MovementResponse{
		ID:               m.ID,
		Type:             string(m.Type),
		Quantity:         m.Quantity,
		Date:             m.Date,
		Staff:            m.Staff,
		RequestingSector: m.RequestingSector,
		RequestingStaff:  m.RequestingStaff,
		Notes:            m.Notes,
		InvoiceFileID:    m.InvoiceFileID,
		InvoiceFilename:  m.InvoiceFilename,
		CreatedAt:        m.CreatedAt,
	}
	if p != nil {
		out.Product = dto.MovementProductSummary{
			ID:          p.ID,
			Code:        p.Code,
			Description: p.Description,
		}
	}
	return out
}
