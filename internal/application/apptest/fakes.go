// Package apptest fornece implementações em memória dos portos de
// persistência, para os testes dos casos de uso. O comportamento espelha o
// contrato dos repositórios Postgres: listagens em ordem de inserção,
// (nil, nil) para ausentes, conflito em código duplicado.
package apptest

import (
	"strings"
	"sync"

	"github.com/scges/scges-api/internal/domain"
	"github.com/scges/scges-api/internal/domain/entity"
)

// MemProductRepo repositório de produtos em memória.
type MemProductRepo struct {
	mu    sync.Mutex
	byID  map[string]*entity.Product
	order []string
}

// NewMemProductRepo constrói o repositório vazio.
func NewMemProductRepo() *MemProductRepo {
	return &MemProductRepo{byID: make(map[string]*entity.Product)}
}

func (r *MemProductRepo) Create(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		if r.byID[id].Code == p.Code {
			return domain.ErrConflict
		}
	}
	cp := *p
	r.byID[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *MemProductRepo) GetByID(id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *MemProductRepo) GetByDescription(description string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.order {
		if strings.EqualFold(r.byID[id].Description, description) {
			cp := *r.byID[id]
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *MemProductRepo) List(search string) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	needle := strings.ToLower(search)
	out := make([]*entity.Product, 0, len(r.order))
	for _, id := range r.order {
		p := r.byID[id]
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Description), needle) &&
			!strings.Contains(strings.ToLower(p.Code), needle) &&
			!strings.Contains(strings.ToLower(p.Supplier), needle) {
			continue
		}
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemProductRepo) ListCodes() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	codes := make([]string, 0, len(r.order))
	for _, id := range r.order {
		codes = append(codes, r.byID[id].Code)
	}
	return codes, nil
}

func (r *MemProductRepo) Update(p *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.byID[p.ID] = &cp
	return nil
}

func (r *MemProductRepo) SetInvoiceRef(productID, fileID, filename string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.InvoiceFileID = fileID
	p.InvoiceFilename = filename
	return nil
}

func (r *MemProductRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// MemMovementRepo ledger em memória, append-only, em ordem de inserção.
type MemMovementRepo struct {
	mu   sync.Mutex
	movs []*entity.Movement
}

// NewMemMovementRepo constrói o ledger vazio.
func NewMemMovementRepo() *MemMovementRepo {
	return &MemMovementRepo{}
}

func (r *MemMovementRepo) Create(m *entity.Movement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *m
	r.movs = append(r.movs, &cp)
	return nil
}

func (r *MemMovementRepo) ListAll() ([]*entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Movement, 0, len(r.movs))
	for _, m := range r.movs {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemMovementRepo) ListByProduct(productID string) ([]*entity.Movement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Movement, 0)
	for _, m := range r.movs {
		if m.ProductID == productID {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *MemMovementRepo) DeleteByProduct(productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.movs[:0]
	for _, m := range r.movs {
		if m.ProductID != productID {
			kept = append(kept, m)
		}
	}
	r.movs = kept
	return nil
}

// MemFileRepo blob store em memória.
type MemFileRepo struct {
	mu    sync.Mutex
	byID  map[string]*entity.StoredFile
	order []string
}

// NewMemFileRepo constrói o blob store vazio.
func NewMemFileRepo() *MemFileRepo {
	return &MemFileRepo{byID: make(map[string]*entity.StoredFile)}
}

func (r *MemFileRepo) Save(f *entity.StoredFile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *f
	r.byID[f.ID] = &cp
	r.order = append(r.order, f.ID)
	return nil
}

func (r *MemFileRepo) Get(id string) (*entity.StoredFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *MemFileRepo) List() ([]*entity.StoredFile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.StoredFile, 0, len(r.order))
	for i := len(r.order) - 1; i >= 0; i-- {
		cp := *r.byID[r.order[i]]
		cp.Data = nil // listagem devolve só metadados
		out = append(out, &cp)
	}
	return out, nil
}

func (r *MemFileRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
