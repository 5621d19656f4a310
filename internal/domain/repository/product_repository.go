package repository

import "github.com/DsBrito/cpid-backend-test/internal/domain/entity"

// ProductRepository porta de persistência para produtos.
// GetByName retorna (nil, nil) quando o produto não existe.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByName(name string) (*entity.Product, error)
	// GetByNameForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE).
	// Só faz sentido dentro de uma transação; serializa ajustes de estoque
	// concorrentes sobre o mesmo produto.
	GetByNameForUpdate(name string) (*entity.Product, error)
	Update(name string, product *entity.Product) error
	// UpdateAmount altera apenas o estoque atual (usado pela gestão de estoque).
	UpdateAmount(name string, amount int) error
	Delete(name string) error
	List(limit, offset int) ([]*entity.Product, error)
}
