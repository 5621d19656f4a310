package stock

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/DsBrito/cpid-backend-test/internal/application/dto"
	"github.com/DsBrito/cpid-backend-test/internal/domain"
	"github.com/DsBrito/cpid-backend-test/internal/domain/entity"
	"github.com/DsBrito/cpid-backend-test/internal/domain/inventory"
	"github.com/DsBrito/cpid-backend-test/internal/domain/repository"
)

// MovementUseCase registra e consulta movimentações SEM tocar no estoque do
// produto. É o caminho de log puro: simula a entrada ou saída sem alterar a
// quantidade real no banco. Para ajustar o estoque junto com o registro,
// usar ApplyMovementUseCase (gestão de estoque).
type MovementUseCase struct {
	movRepo     repository.MovementRepository
	productRepo repository.ProductRepository
}

// NewMovementUseCase constrói o caso de uso.
func NewMovementUseCase(movRepo repository.MovementRepository, productRepo repository.ProductRepository) *MovementUseCase {
	return &MovementUseCase{movRepo: movRepo, productRepo: productRepo}
}

// validateMovementRequest aplica as regras de schema do request: campos
// obrigatórios com 1 a 50 caracteres e amount > 0. Os limites contam runas,
// não bytes: "saída" tem 5 caracteres. A classificação do tipo é checada à
// parte, via inventory.Classify.
func validateMovementRequest(in dto.MovementRequest) error {
	if in.ProductName == "" || utf8.RuneCountInString(in.ProductName) > 50 {
		return fmt.Errorf("%w: product_name deve ter de 1 a 50 caracteres", domain.ErrInvalidInput)
	}
	if in.MovementType == "" || utf8.RuneCountInString(in.MovementType) > 50 {
		return fmt.Errorf("%w: movement_type deve ter de 1 a 50 caracteres", domain.ErrInvalidInput)
	}
	if in.MovementReason == "" || utf8.RuneCountInString(in.MovementReason) > 50 {
		return fmt.Errorf("%w: movement_reason deve ter de 1 a 50 caracteres", domain.ErrInvalidInput)
	}
	if in.Amount <= 0 {
		return fmt.Errorf("%w: amount deve ser maior que zero", domain.ErrInvalidInput)
	}
	return nil
}

// movementFromRequest monta a entidade com o tipo já na forma canônica.
// O chamador garante que direction não é DirectionInvalid.
func movementFromRequest(in dto.MovementRequest, direction inventory.Direction) *entity.Movement {
	movedAt := time.Now()
	if in.MovementTimestamp != nil {
		movedAt = *in.MovementTimestamp
	}
	return &entity.Movement{
		ProductName: in.ProductName,
		Type:        direction.Canonical(),
		Reason:      in.MovementReason,
		Amount:      in.Amount,
		MovedAt:     movedAt,
	}
}

func movementResponse(m *entity.Movement) dto.MovementResponse {
	return dto.MovementResponse{
		ID:                m.ID,
		ProductName:       m.ProductName,
		MovementType:      m.Type,
		MovementReason:    m.Reason,
		Amount:            m.Amount,
		MovementTimestamp: m.MovedAt,
	}
}

// Register persiste uma nova movimentação sem ler nem escrever o estoque.
// O produto referenciado precisa existir e o tipo precisa classificar como
// entrada ou saída.
func (uc *MovementUseCase) Register(in dto.MovementRequest) (*dto.MovementResponse, error) {
	if err := validateMovementRequest(in); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByName(in.ProductName)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	direction := inventory.Classify(in.MovementType)
	if direction == inventory.DirectionInvalid {
		return nil, domain.ErrInvalidMovementType
	}

	mov := movementFromRequest(in, direction)
	if err := uc.movRepo.Create(mov); err != nil {
		return nil, err
	}
	out := movementResponse(mov)
	return &out, nil
}

// Get retorna os detalhes de uma movimentação pelo id.
func (uc *MovementUseCase) Get(id int64) (*dto.MovementResponse, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrMovementNotFound
	}
	out := movementResponse(mov)
	return &out, nil
}

// Update substitui os campos de uma movimentação existente. Nunca reajusta o
// estoque retroativamente: a assimetria com o registro autoritativo é
// deliberada (o estoque só muda pela gestão de estoque).
func (uc *MovementUseCase) Update(id int64, in dto.MovementRequest) (*dto.MovementResponse, error) {
	if err := validateMovementRequest(in); err != nil {
		return nil, err
	}
	existing, err := uc.movRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrMovementNotFound
	}
	direction := inventory.Classify(in.MovementType)
	if direction == inventory.DirectionInvalid {
		return nil, domain.ErrInvalidMovementType
	}

	mov := movementFromRequest(in, direction)
	if in.MovementTimestamp == nil {
		mov.MovedAt = existing.MovedAt
	}
	if err := uc.movRepo.Update(id, mov); err != nil {
		return nil, err
	}
	mov.ID = id
	out := movementResponse(mov)
	return &out, nil
}

// Delete remove uma movimentação pelo id.
func (uc *MovementUseCase) Delete(id int64) error {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil {
		return err
	}
	if mov == nil {
		return domain.ErrMovementNotFound
	}
	return uc.movRepo.Delete(id)
}

// ListByProduct retorna todas as movimentações de um produto com o resumo de
// entradas, saídas e o estoque corrente. Histórico vazio é válido (produto
// novo). O estoque reportado é o autoritativo, vindo do produto.
func (uc *MovementUseCase) ListByProduct(productName string) (*dto.ProductMovementsResponse, error) {
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
	items := make([]dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		items = append(items, movementResponse(m))
	}
	return &dto.ProductMovementsResponse{
		ProductName:         product.Name,
		ProductCurrentStock: product.Amount,
		Movements:           items,
		Summary: dto.MovementTotalsDTO{
			TotalInput:   totalInput,
			TotalOutput:  totalOutput,
			CurrentStock: product.Amount,
		},
	}, nil
}
