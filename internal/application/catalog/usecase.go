// Package catalog implementa o gerenciador de catálogo: CRUD de produtos,
// atribuição de código sequencial e as visões decoradas com a quantidade
// derivada do ledger.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/scges/scges-api/internal/application/dto"
	"github.com/scges/scges-api/internal/domain"
	"github.com/scges/scges-api/internal/domain/entity"
	"github.com/scges/scges-api/internal/domain/repository"
	"github.com/scges/scges-api/internal/domain/stock"
)

// UseCase casos de uso do catálogo. Quantidade é sempre projeção do ledger;
// nenhuma operação aqui grava quantidade em produto.
type UseCase struct {
	products  repository.ProductRepository
	movements repository.MovementRepository
	files     repository.FileRepository // pode ser nil (sem blob store)
	lowStock  stock.LowStockPolicy
	collator  *collate.Collator
}

// NewUseCase constrói o caso de uso. lowStockRatio <= 0 usa o padrão (30%).
func NewUseCase(
	products repository.ProductRepository,
	movements repository.MovementRepository,
	files repository.FileRepository,
	lowStockRatio float64,
) *UseCase {
	return &UseCase{
		products:  products,
		movements: movements,
		files:     files,
		lowStock:  stock.NewLowStockPolicy(lowStockRatio),
		collator:  collate.New(language.BrazilianPortuguese, collate.IgnoreCase),
	}
}

// LowStockPolicy expõe a política vigente (usada por dashboard e relatórios).
func (uc *UseCase) LowStockPolicy() stock.LowStockPolicy {
	return uc.lowStock
}

// NextCode varre os códigos existentes, toma o maior prefixo numérico e
// devolve max+1 com zero à esquerda até 3 dígitos ("007", "114"; acima de
// 999 o código simplesmente cresce). Não é atômico: criações concorrentes
// podem colidir e o conflito de unicidade do armazenamento é propagado ao
// chamador, que repete a operação.
func (uc *UseCase) NextCode() (string, error) {
	codes, err := uc.products.ListCodes()
	if err != nil {
		return "", err
	}
	max := 0
	for _, c := range codes {
		if n := numericPrefix(c); n > max {
			max = n
		}
	}
	return fmt.Sprintf("%03d", max+1), nil
}

// Create valida a descrição, atribui o próximo código e persiste. O produto
// nasce com quantidade derivada 0 (nenhuma movimentação ainda).
func (uc *UseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if strings.TrimSpace(in.Description) == "" {
		return nil, domain.ErrInvalidInput
	}
	code, err := uc.NextCode()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:               uuid.New().String(),
		Code:             code,
		Description:      strings.TrimSpace(in.Description),
		Unit:             in.Unit,
		ExtraDescription: in.ExtraDescription,
		Expiry:           in.Expiry,
		Supplier:         in.Supplier,
		ProcessNumber:    in.ProcessNumber,
		Notes:            in.Notes,
		Sector:           in.Sector,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.products.Create(product); err != nil {
		return nil, err
	}
	return uc.decorate(product, stock.Totals{}), nil
}

// GetAll lista produtos decorados, opcionalmente filtrados por substring em
// descrição, código ou fornecedor, ordenados por descrição com colação pt-BR.
func (uc *UseCase) GetAll(search string) ([]dto.ProductResponse, error) {
	products, err := uc.products.List(search)
	if err != nil {
		return nil, err
	}
	totals, err := uc.totalsByProduct()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(products, func(i, j int) bool {
		return uc.collator.CompareString(products[i].Description, products[j].Description) < 0
	})
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, *uc.decorate(p, totals[p.ID]))
	}
	return out, nil
}

// GetByID devolve um produto decorado ou ErrNotFound.
func (uc *UseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	movs, err := uc.movements.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	return uc.decorate(product, stock.Fold(movs)), nil
}

// GetByDescription resolve um produto por igualdade exata de descrição,
// sem diferenciar maiúsculas. (nil, nil) quando ausente — é assim que a
// entrada decide entre criar e reaproveitar.
func (uc *UseCase) GetByDescription(description string) (*entity.Product, error) {
	return uc.products.GetByDescription(strings.TrimSpace(description))
}

// Update aplica somente os atributos descritivos presentes. Código,
// quantidade e timestamps não são atribuíveis pelo chamador.
func (uc *UseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return nil, domain.ErrInvalidInput
		}
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.Unit != nil {
		product.Unit = *in.Unit
	}
	if in.ExtraDescription != nil {
		product.ExtraDescription = *in.ExtraDescription
	}
	if in.Expiry != nil {
		product.Expiry = *in.Expiry
	}
	if in.Supplier != nil {
		product.Supplier = *in.Supplier
	}
	if in.ProcessNumber != nil {
		product.ProcessNumber = *in.ProcessNumber
	}
	if in.Notes != nil {
		product.Notes = *in.Notes
	}
	if in.Sector != nil {
		product.Sector = *in.Sector
	}
	product.UpdatedAt = time.Now()
	if err := uc.products.Update(product); err != nil {
		return nil, err
	}
	movs, err := uc.movements.ListByProduct(id)
	if err != nil {
		return nil, err
	}
	return uc.decorate(product, stock.Fold(movs)), nil
}

// Delete remove o produto em cascata: primeiro as movimentações do ledger,
// depois a nota fiscal anexada (se houver), por fim o produto. Nunca sobra
// movimentação órfã.
func (uc *UseCase) Delete(id string) error {
	product, err := uc.products.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if err := uc.movements.DeleteByProduct(id); err != nil {
		return err
	}
	if uc.files != nil && product.InvoiceFileID != "" {
		if err := uc.files.Delete(product.InvoiceFileID); err != nil {
			return err
		}
	}
	return uc.products.Delete(id)
}

// GetLowStock devolve os produtos sinalizados pela política de estoque
// baixo, ordenados pela quantidade derivada crescente, truncados a limit.
func (uc *UseCase) GetLowStock(limit int) ([]dto.ProductResponse, error) {
	products, err := uc.products.List("")
	if err != nil {
		return nil, err
	}
	totals, err := uc.totalsByProduct()
	if err != nil {
		return nil, err
	}
	low := make([]dto.ProductResponse, 0)
	for _, p := range products {
		if uc.lowStock.IsLow(totals[p.ID]) {
			low = append(low, *uc.decorate(p, totals[p.ID]))
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Quantity < low[j].Quantity
	})
	if limit > 0 && len(low) > limit {
		low = low[:limit]
	}
	return low, nil
}

// GetStats agrega o catálogo: total de produtos, quantos estão com estoque
// baixo (mesma política do GetLowStock) e a soma das quantidades derivadas.
func (uc *UseCase) GetStats() (*dto.StockStatsResponse, error) {
	products, err := uc.products.List("")
	if err != nil {
		return nil, err
	}
	totals, err := uc.totalsByProduct()
	if err != nil {
		return nil, err
	}
	stats := &dto.StockStatsResponse{TotalProducts: len(products)}
	for _, p := range products {
		t := totals[p.ID]
		stats.TotalStock += t.Quantity()
		if uc.lowStock.IsLow(t) {
			stats.LowStockProducts++
		}
	}
	return stats, nil
}

// totalsByProduct refaz o fold do ledger inteiro. Custo O(movimentações) a
// cada leitura, aceito na escala de um almoxarifado.
func (uc *UseCase) totalsByProduct() (map[string]stock.Totals, error) {
	movs, err := uc.movements.ListAll()
	if err != nil {
		return nil, err
	}
	return stock.FoldByProduct(movs), nil
}

func (uc *UseCase) decorate(p *entity.Product, t stock.Totals) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:               p.ID,
		Code:             p.Code,
		Description:      p.Description,
		Quantity:         t.Quantity(),
		TotalEntries:     t.Entries,
		LowStock:         uc.lowStock.IsLow(t),
		Unit:             p.Unit,
		ExtraDescription: p.ExtraDescription,
		Expiry:           p.Expiry,
		Supplier:         p.Supplier,
		ProcessNumber:    p.ProcessNumber,
		Notes:            p.Notes,
		Sector:           p.Sector,
		InvoiceFileID:    p.InvoiceFileID,
		InvoiceFilename:  p.InvoiceFilename,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

// numericPrefix extrai o prefixo numérico de um código; códigos sem dígito
// inicial contam como 0.
func numericPrefix(code string) int {
	n := 0
	seen := false
	for _, r := range code {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		seen = true
	}
	if !seen {
		return 0
	}
	return n
}
