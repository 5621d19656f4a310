package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DsBrito/cpid-backend-test/internal/domain/entity"
	"github.com/DsBrito/cpid-backend-test/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementação de MovementRepository sobre PostgreSQL (usável com pool ou tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository constrói o adaptador de movimentações. Passar pool ou tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste uma movimentação e preenche o id sequencial.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	query := `
		INSERT INTO movements (product_name, movement_type, movement_reason, amount, moved_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		movement.ProductName, movement.Type, movement.Reason, movement.Amount, movement.MovedAt,
	).Scan(&movement.ID)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// GetByID obtém uma movimentação pelo id.
func (r *MovementRepo) GetByID(id int64) (*entity.Movement, error) {
	query := `
		SELECT id, product_name, movement_type, movement_reason, amount, moved_at
		FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.ProductName, &m.Type, &m.Reason, &m.Amount, &m.MovedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// Update substitui os campos de uma movimentação existente.
func (r *MovementRepo) Update(id int64, movement *entity.Movement) error {
	query := `
		UPDATE movements
		SET product_name = $2, movement_type = $3, movement_reason = $4, amount = $5, moved_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		id, movement.ProductName, movement.Type, movement.Reason, movement.Amount, movement.MovedAt,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

// Delete remove uma movimentação pelo id.
func (r *MovementRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM movements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	return nil
}

// ListByProduct lista o histórico de um produto ordenado por data ascendente,
// com desempate pelo id, para que a ordem do relatório seja determinística.
func (r *MovementRepo) ListByProduct(productName string) ([]*entity.Movement, error) {
	query := `
		SELECT id, product_name, movement_type, movement_reason, amount, moved_at
		FROM movements WHERE product_name = $1
		ORDER BY moved_at ASC, id ASC`
	rows, err := r.q.Query(context.Background(), query, productName)
	if err != nil {
		return nil, fmt.Errorf("list by product: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movement
	for rows.Next() {
		var m entity.Movement
		if err := rows.Scan(&m.ID, &m.ProductName, &m.Type, &m.Reason, &m.Amount, &m.MovedAt); err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
