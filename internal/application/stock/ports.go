package stock

import (
	"context"

	"github.com/DsBrito/cpid-backend-test/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante a atomicidade movimento + estoque:
// ou os dois writes são confirmados, ou nenhum é observável.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error) error
}
