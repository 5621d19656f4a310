package stock

import (
	"github.com/DsBrito/cpid-backend-test/internal/application/dto"
	"github.com/DsBrito/cpid-backend-test/internal/domain"
	"github.com/DsBrito/cpid-backend-test/internal/domain/entity"
	"github.com/DsBrito/cpid-backend-test/internal/domain/inventory"
	"github.com/DsBrito/cpid-backend-test/internal/domain/repository"
)

// SummaryUseCase agrega o histórico de movimentações de um produto em totais
// de entrada/saída e um balanço calculado, lado a lado com o estoque
// autoritativo. Leitura pura: sem locks e sem escrita.
type SummaryUseCase struct {
	productRepo repository.ProductRepository
	movRepo     repository.MovementRepository
}

// NewSummaryUseCase constrói o caso de uso.
func NewSummaryUseCase(productRepo repository.ProductRepository, movRepo repository.MovementRepository) *SummaryUseCase {
	return &SummaryUseCase{productRepo: productRepo, movRepo: movRepo}
}

// foldTotals acumula entradas e saídas reclassificando cada linha do
// histórico com a mesma função usada nos caminhos de escrita. Linhas com tipo
// não reconhecido são puladas: não contam em nenhum dos lados e não quebram
// o cálculo.
func foldTotals(movements []*entity.Movement) (totalInput, totalOutput int) {
	for _, m := range movements {
		switch inventory.Classify(m.Type) {
		case inventory.DirectionInbound:
			totalInput += m.Amount
		case inventory.DirectionOutbound:
			totalOutput += m.Amount
		}
	}
	return totalInput, totalOutput
}

// Summarize monta o resumo completo do produto: snapshot, totais com balanço
// calculado (entrada - saída) e o histórico ordenado por data.
//
// O balanço é diagnóstico. O estoque real é Product.Amount, mantido só pela
// gestão de estoque; os dois podem divergir quando movimentações entraram
// pelo caminho de log puro, e o resumo expõe os dois valores em vez de
// reconciliá-los por conta própria.
func (uc *SummaryUseCase) Summarize(productName string) (*dto.StockSummaryResponse, error) {
	product, err := uc.productRepo.GetByName(productName)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	movements, err := uc.movRepo.ListByProduct(productName)
	if err != nil {
		return nil, err
	}

	totalInput, totalOutput := foldTotals(movements)
	history := make([]dto.MovementHistoryItemDTO, 0, len(movements))
	for _, m := range movements {
		history = append(history, dto.MovementHistoryItemDTO{
			ID:     m.ID,
			Type:   m.Type,
			Reason: m.Reason,
			Amount: m.Amount,
			Date:   m.MovedAt,
		})
	}

	return &dto.StockSummaryResponse{
		Product: dto.SummaryProductDTO{
			Name:         product.Name,
			Description:  product.Description,
			CurrentStock: product.Amount,
			Price:        product.Price,
			Category:     product.Category,
			Brand:        product.Brand,
			Supplier:     product.Supplier,
			Code:         product.Code,
		},
		MovementsSummary: dto.SummaryTotalsDTO{
			TotalInput:  totalInput,
			TotalOutput: totalOutput,
			Balance:     totalInput - totalOutput,
		},
		MovementsHistory: history,
	}, nil
}
