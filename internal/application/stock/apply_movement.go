package stock

import (
	"context"

	"github.com/DsBrito/cpid-backend-test/internal/application/dto"
	"github.com/DsBrito/cpid-backend-test/internal/domain"
	"github.com/DsBrito/cpid-backend-test/internal/domain/inventory"
	"github.com/DsBrito/cpid-backend-test/internal/domain/repository"
)

// ApplyMovementUseCase registra uma movimentação E ajusta o estoque do produto
// na mesma transação (bloqueio de linha com SELECT FOR UPDATE e Commit/Rollback).
// É o caminho autoritativo: Product.Amount só muda por aqui.
type ApplyMovementUseCase struct {
	txRunner TxRunner
}

// NewApplyMovementUseCase constrói o caso de uso.
func NewApplyMovementUseCase(txRunner TxRunner) *ApplyMovementUseCase {
	return &ApplyMovementUseCase{txRunner: txRunner}
}

// Apply valida o request, e dentro de uma transação: bloqueia a linha do
// produto, confere suficiência de estoque para saídas, grava a movimentação
// com o tipo canônico e o novo Amount do produto. Os dois writes confirmam
// juntos ou nenhum é aplicado.
//
// A existência do produto é checada antes da classificação do tipo, como no
// registro de log puro: produto inexistente responde NOT_FOUND mesmo que o
// tipo também seja inválido.
//
// Entrada sempre é permitida (sem teto). Saída exige amount <= estoque
// corrente; saída igual ao estoque é válida e zera o saldo. Quantidades
// não positivas são recusadas antes da transação.
func (uc *ApplyMovementUseCase) Apply(ctx context.Context, in dto.MovementRequest) (*dto.ApplyMovementResponse, error) {
	if err := validateMovementRequest(in); err != nil {
		return nil, err
	}

	var out *dto.ApplyMovementResponse
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovementRepository,
		productRepo repository.ProductRepository,
	) error {
		// Bloqueia a linha do produto: dois ajustes concorrentes sobre o mesmo
		// nome nunca passam pela checagem de suficiência com saldo velho.
		product, err := productRepo.GetByNameForUpdate(in.ProductName)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrProductNotFound
		}
		direction := inventory.Classify(in.MovementType)
		if direction == inventory.DirectionInvalid {
			return domain.ErrInvalidMovementType
		}

		newAmount := product.Amount
		switch direction {
		case inventory.DirectionInbound:
			newAmount += in.Amount
		case inventory.DirectionOutbound:
			if product.Amount < in.Amount {
				return &domain.InsufficientStockError{
					ProductName: product.Name,
					Current:     product.Amount,
					Requested:   in.Amount,
				}
			}
			newAmount -= in.Amount
		}

		mov := movementFromRequest(in, direction)
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		if err := productRepo.UpdateAmount(product.Name, newAmount); err != nil {
			return err
		}

		out = &dto.ApplyMovementResponse{
			Movement: movementResponse(mov),
			Product: dto.ProductStockDTO{
				Name:         product.Name,
				CurrentStock: newAmount,
			},
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
