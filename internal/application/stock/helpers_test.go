package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/DsBrito/cpid-backend-test/internal/application/dto"
	"github.com/DsBrito/cpid-backend-test/internal/domain/entity"
	"github.com/DsBrito/cpid-backend-test/internal/infrastructure/memory"
)

// newLedgerWithProduct cria um ledger em memória com um produto semeado.
func newLedgerWithProduct(t *testing.T, name string, amount int) *memory.Ledger {
	t.Helper()
	l := memory.NewLedger()
	err := l.Products().Create(&entity.Product{
		Name:            name,
		Amount:          amount,
		Price:           decimal.NewFromFloat(3500.00),
		Category:        "Eletrônicos",
		ManufactureDate: time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC),
		Code:            1691000000000,
		CreatedAt:       time.Now(),
	})
	require.NoError(t, err)
	return l
}

func movementRequest(productName, movementType, reason string, amount int) dto.MovementRequest {
	return dto.MovementRequest{
		ProductName:    productName,
		MovementType:   movementType,
		MovementReason: reason,
		Amount:         amount,
	}
}

// countMovements conta as linhas de movimentação de um produto no ledger.
func countMovements(t *testing.T, l *memory.Ledger, productName string) int {
	t.Helper()
	movements, err := l.Movements().ListByProduct(productName)
	require.NoError(t, err)
	return len(movements)
}

// currentAmount lê o estoque autoritativo direto do ledger.
func currentAmount(t *testing.T, l *memory.Ledger, productName string) int {
	t.Helper()
	p, err := l.Products().GetByName(productName)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Amount
}
