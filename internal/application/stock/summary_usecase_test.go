package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DsBrito/cpid-backend-test/internal/application/stock"
	"github.com/DsBrito/cpid-backend-test/internal/domain"
	"github.com/DsBrito/cpid-backend-test/internal/domain/entity"
	"github.com/DsBrito/cpid-backend-test/internal/infrastructure/memory"
)

func newSummaryUC(l *memory.Ledger) *stock.SummaryUseCase {
	return stock.NewSummaryUseCase(l.Products(), l.Movements())
}

// TestSummary_ProdutoSemHistorico: produto novo, sem movimentações: totais
// zerados, balanço zero e histórico vazio (não é erro).
func TestSummary_ProdutoSemHistorico(t *testing.T) {
	l := newLedgerWithProduct(t, "X", 0)
	uc := newSummaryUC(l)

	out, err := uc.Summarize("X")
	require.NoError(t, err)
	assert.Equal(t, 0, out.MovementsSummary.TotalInput)
	assert.Equal(t, 0, out.MovementsSummary.TotalOutput)
	assert.Equal(t, 0, out.MovementsSummary.Balance)
	assert.Empty(t, out.MovementsHistory)
	assert.Equal(t, 0, out.Product.CurrentStock)
}

func TestSummary_ProdutoInexistente(t *testing.T) {
	l := memory.NewLedger()
	uc := newSummaryUC(l)

	_, err := uc.Summarize("Fantasma")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

// TestSummary_TotaisComAjusteAutoritativo: quando tudo passa pela gestão de
// estoque, o balanço calculado e o estoque autoritativo coincidem.
func TestSummary_TotaisComAjusteAutoritativo(t *testing.T) {
	l := newLedgerWithProduct(t, "Notebook Dell", 0)
	applyUC := stock.NewApplyMovementUseCase(l.TxRunner())
	ctx := context.Background()

	_, err := applyUC.Apply(ctx, movementRequest("Notebook Dell", "entrada", "compra", 10))
	require.NoError(t, err)
	_, err = applyUC.Apply(ctx, movementRequest("Notebook Dell", "saída", "venda", 4))
	require.NoError(t, err)

	out, err := newSummaryUC(l).Summarize("Notebook Dell")
	require.NoError(t, err)
	assert.Equal(t, 10, out.MovementsSummary.TotalInput)
	assert.Equal(t, 4, out.MovementsSummary.TotalOutput)
	assert.Equal(t, 6, out.MovementsSummary.Balance)
	assert.Equal(t, 6, out.Product.CurrentStock)
	assert.Len(t, out.MovementsHistory, 2)
}

// TestSummary_DivergenciaComLogPuro: registros pelo caminho de log puro não
// mexem no estoque, então balanço calculado e estoque autoritativo divergem.
// O resumo expõe os dois valores em vez de reconciliá-los.
func TestSummary_DivergenciaComLogPuro(t *testing.T) {
	l := newLedgerWithProduct(t, "Notebook Dell", 0)
	ctx := context.Background()

	applyUC := stock.NewApplyMovementUseCase(l.TxRunner())
	_, err := applyUC.Apply(ctx, movementRequest("Notebook Dell", "entrada", "compra", 10))
	require.NoError(t, err)

	recorderUC := stock.NewMovementUseCase(l.Movements(), l.Products())
	_, err = recorderUC.Register(movementRequest("Notebook Dell", "entrada", "compra", 5))
	require.NoError(t, err)

	out, err := newSummaryUC(l).Summarize("Notebook Dell")
	require.NoError(t, err)
	assert.Equal(t, 15, out.MovementsSummary.TotalInput)
	assert.Equal(t, 15, out.MovementsSummary.Balance, "o balanço conta o histórico inteiro")
	assert.Equal(t, 10, out.Product.CurrentStock, "o estoque autoritativo ignora o log puro")
}

// TestSummary_LinhaInvalidaNaoQuebra: uma linha antiga com tipo não
// reconhecido é pulada no cálculo: não conta em nenhum dos lados e não
// derruba o relatório.
func TestSummary_LinhaInvalidaNaoQuebra(t *testing.T) {
	l := newLedgerWithProduct(t, "Notebook Dell", 7)
	require.NoError(t, l.Movements().Create(&entity.Movement{
		ProductName: "Notebook Dell",
		Type:        "transferencia",
		Reason:      "migração antiga",
		Amount:      99,
		MovedAt:     time.Now(),
	}))
	require.NoError(t, l.Movements().Create(&entity.Movement{
		ProductName: "Notebook Dell",
		Type:        "Entrada",
		Reason:      "compra",
		Amount:      7,
		MovedAt:     time.Now(),
	}))

	out, err := newSummaryUC(l).Summarize("Notebook Dell")
	require.NoError(t, err)
	assert.Equal(t, 7, out.MovementsSummary.TotalInput)
	assert.Equal(t, 0, out.MovementsSummary.TotalOutput)
	assert.Len(t, out.MovementsHistory, 2, "a linha inválida continua visível no histórico")
}

// TestSummary_HistoricoOrdenadoPorData: o histórico sai ordenado por data
// ascendente, independente da ordem de inserção.
func TestSummary_HistoricoOrdenadoPorData(t *testing.T) {
	l := newLedgerWithProduct(t, "Notebook Dell", 0)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, offset := range []int{2, 0, 1} {
		require.NoError(t, l.Movements().Create(&entity.Movement{
			ProductName: "Notebook Dell",
			Type:        entity.MovementTypeIN,
			Reason:      "compra",
			Amount:      1 + offset,
			MovedAt:     base.AddDate(0, 0, offset),
		}))
	}

	out, err := newSummaryUC(l).Summarize("Notebook Dell")
	require.NoError(t, err)
	require.Len(t, out.MovementsHistory, 3)
	for i := 1; i < len(out.MovementsHistory); i++ {
		assert.False(t, out.MovementsHistory[i].Date.Before(out.MovementsHistory[i-1].Date),
			"histórico fora de ordem na posição %d", i)
	}
}
