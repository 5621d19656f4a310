package product

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/DsBrito/cpid-backend-test/internal/application/dto"
	"github.com/DsBrito/cpid-backend-test/internal/domain"
	"github.com/DsBrito/cpid-backend-test/internal/domain/entity"
	"github.com/DsBrito/cpid-backend-test/internal/domain/repository"
)

// ProductUseCase CRUD de produtos. Fora do núcleo de consistência: Amount e
// Code não são alterados por aqui depois da criação (o estoque só muda pela
// gestão de estoque).
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase constrói o caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Limites de tamanho contam runas, não bytes ("Eletrônicos" tem 11 caracteres).
func validateProductRequest(in dto.ProductRequest) error {
	if in.Name == "" || utf8.RuneCountInString(in.Name) > 50 {
		return fmt.Errorf("%w: name deve ter de 1 a 50 caracteres", domain.ErrInvalidInput)
	}
	if in.Amount < 0 {
		return fmt.Errorf("%w: amount não pode ser negativo", domain.ErrInvalidInput)
	}
	if !in.Price.IsPositive() {
		return fmt.Errorf("%w: price deve ser maior que zero", domain.ErrInvalidInput)
	}
	if in.Category == "" || utf8.RuneCountInString(in.Category) > 50 {
		return fmt.Errorf("%w: category deve ter de 1 a 50 caracteres", domain.ErrInvalidInput)
	}
	return nil
}

func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: data deve estar no formato AAAA-MM-DD", domain.ErrInvalidInput)
	}
	return d, nil
}

func productFromRequest(in dto.ProductRequest) (*entity.Product, error) {
	manufactureDate, err := parseDate(in.ManufactureDate)
	if err != nil {
		return nil, err
	}
	var expirationDate *time.Time
	if in.ExpirationDate != nil {
		d, err := parseDate(*in.ExpirationDate)
		if err != nil {
			return nil, err
		}
		expirationDate = &d
	}
	return &entity.Product{
		Name:            in.Name,
		Description:     in.Description,
		Amount:          in.Amount,
		Price:           in.Price,
		Category:        in.Category,
		Brand:           in.Brand,
		Supplier:        in.Supplier,
		ManufactureDate: manufactureDate,
		ExpirationDate:  expirationDate,
	}, nil
}

func productResponse(p *entity.Product) *dto.ProductResponse {
	var expiration *string
	if p.ExpirationDate != nil {
		s := p.ExpirationDate.Format(time.DateOnly)
		expiration = &s
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Amount:          p.Amount,
		Price:           p.Price,
		Category:        p.Category,
		ManufactureDate: p.ManufactureDate.Format(time.DateOnly),
		ExpirationDate:  expiration,
		Brand:           p.Brand,
		Supplier:        p.Supplier,
		Description:     p.Description,
		Code:            p.Code,
		CreatedAt:       p.CreatedAt,
	}
}

// Create registra um novo produto. Nome já registrado retorna ErrDuplicate.
// Code é atribuído aqui (epoch em milissegundos) e é imutável.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductRequest(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	p, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	p.Code = time.Now().UnixMilli()
	p.CreatedAt = time.Now()
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return productResponse(p), nil
}

// GetByName busca um produto pelo nome.
func (uc *ProductUseCase) GetByName(name string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	return productResponse(p), nil
}

// Update atualiza os dados cadastrais de um produto existente. Amount e Code
// não são tocados: estoque se ajusta via movimentação, código é imutável.
func (uc *ProductUseCase) Update(name string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	if err := validateProductRequest(in); err != nil {
		return nil, err
	}
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrProductNotFound
	}
	p, err := productFromRequest(in)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.Amount = existing.Amount
	p.Code = existing.Code
	p.CreatedAt = existing.CreatedAt
	if err := uc.repo.Update(name, p); err != nil {
		return nil, err
	}
	return productResponse(p), nil
}

// Delete remove um produto pelo nome.
func (uc *ProductUseCase) Delete(name string) error {
	p, err := uc.repo.GetByName(name)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrProductNotFound
	}
	return uc.repo.Delete(name)
}

// List lista produtos com paginação.
func (uc *ProductUseCase) List(limit, offset int) ([]*dto.ProductResponse, error) {
	products, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, productResponse(p))
	}
	return out, nil
}
