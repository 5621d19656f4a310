package repository

import "github.com/DsBrito/cpid-backend-test/internal/domain/entity"

// MovementRepository porta de persistência para movimentações.
// GetByID retorna (nil, nil) quando a movimentação não existe.
type MovementRepository interface {
	// Create persiste a movimentação e preenche movement.ID com o id sequencial.
	Create(movement *entity.Movement) error
	GetByID(id int64) (*entity.Movement, error)
	Update(id int64, movement *entity.Movement) error
	Delete(id int64) error
	// ListByProduct retorna o histórico completo do produto ordenado por
	// MovedAt ascendente (desempate por id).
	ListByProduct(productName string) ([]*entity.Movement, error)
}
