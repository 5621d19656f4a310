package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DsBrito/cpid-backend-test/internal/domain"
	"github.com/DsBrito/cpid-backend-test/internal/domain/entity"
	"github.com/DsBrito/cpid-backend-test/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, amount, price, category, brand, supplier, manufacture_date, expiration_date, code, created_at`

// ProductRepo implementação de ProductRepository sobre PostgreSQL (usável com pool ou tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository constrói o adaptador de produtos. Passar pool ou tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Amount, &p.Price, &p.Category,
		&p.Brand, &p.Supplier, &p.ManufactureDate, &p.ExpirationDate, &p.Code, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste um novo produto e preenche o id sequencial.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, amount, price, category, brand, supplier, manufacture_date, expiration_date, code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		product.Name, product.Description, product.Amount, product.Price, product.Category,
		product.Brand, product.Supplier, product.ManufactureDate, product.ExpirationDate,
		product.Code, product.CreatedAt,
	).Scan(&product.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByName obtém um produto pelo nome (chave de negócio).
func (r *ProductRepo) GetByName(name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// GetByNameForUpdate obtém o produto bloqueando a linha (SELECT FOR UPDATE).
// Serializa ajustes de estoque concorrentes sobre o mesmo produto; produtos
// diferentes não disputam o lock.
func (r *ProductRepo) GetByNameForUpdate(name string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name = $1 FOR UPDATE`
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product for update: %w", err)
	}
	return p, nil
}

// Update atualiza os dados cadastrais. Amount e Code ficam de fora:
// estoque muda via UpdateAmount, código é imutável.
func (r *ProductRepo) Update(name string, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, category = $5, brand = $6, supplier = $7, manufacture_date = $8, expiration_date = $9
		WHERE name = $1`
	_, err := r.q.Exec(context.Background(), query,
		name, product.Name, product.Description, product.Price, product.Category,
		product.Brand, product.Supplier, product.ManufactureDate, product.ExpirationDate,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateAmount altera apenas o estoque atual (usado pela gestão de estoque,
// dentro da transação que também grava a movimentação).
func (r *ProductRepo) UpdateAmount(name string, amount int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE products SET amount = $2 WHERE name = $1`,
		name, amount,
	)
	if err != nil {
		return fmt.Errorf("update product amount: %w", err)
	}
	return nil
}

// Delete remove um produto pelo nome.
func (r *ProductRepo) Delete(name string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

// List lista produtos com paginação, em ordem de criação.
func (r *ProductRepo) List(limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Amount, &p.Price, &p.Category,
			&p.Brand, &p.Supplier, &p.ManufactureDate, &p.ExpirationDate, &p.Code, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
