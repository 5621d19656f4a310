package stock_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DsBrito/cpid-backend-test/internal/application/stock"
	"github.com/DsBrito/cpid-backend-test/internal/domain"
	"github.com/DsBrito/cpid-backend-test/internal/domain/entity"
	"github.com/DsBrito/cpid-backend-test/internal/infrastructure/memory"
)

func newMovementUC(l *memory.Ledger) *stock.MovementUseCase {
	return stock.NewMovementUseCase(l.Movements(), l.Products())
}

// TestRegister_NaoTocaNoEstoque: o caminho de log puro grava a movimentação
// mas nunca lê nem escreve o estoque do produto.
func TestRegister_NaoTocaNoEstoque(t *testing.T) {
	l := newLedgerWithProduct(t, "Notebook Dell", 10)
	uc := newMovementUC(l)

	out, err := uc.Register(movementRequest("Notebook Dell", "saída", "venda", 5))
	require.NoError(t, err)

	assert.Equal(t, entity.MovementTypeOUT, out.MovementType, "o tipo gravado é a forma canônica")
	assert.NotZero(t, out.ID)
	assert.Equal(t, 10, currentAmount(t, l, "Notebook Dell"), "estoque intacto no log puro")
	assert.Equal(t, 1, countMovements(t, l, "Notebook Dell"))
}

func TestRegister_ProdutoInexistente(t *testing.T) {
	l := memory.NewLedger()
	uc := newMovementUC(l)

	_, err := uc.Register(movementRequest("Fantasma", "entrada", "compra", 5))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestRegister_TipoInvalido(t *testing.T) {
	l := newLedgerWithProduct(t, "Notebook Dell", 10)
	uc := newMovementUC(l)

	_, err := uc.Register(movementRequest("Notebook Dell", "devolução", "troca", 5))
	assert.ErrorIs(t, err, domain.ErrInvalidMovementType)
	assert.Equal(t, 0, countMovements(t, l, "Notebook Dell"))
}

func TestRegister_SchemaInvalido(t *testing.T) {
	l := newLedgerWithProduct(t, "Notebook Dell", 10)
	uc := newMovementUC(l)

	_, err := uc.Register(movementRequest("", "entrada", "compra", 5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "product_name vazio")

	_, err = uc.Register(movementRequest("Notebook Dell", "entrada", "", 5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "movement_reason vazio")

	_, err = uc.Register(movementRequest("Notebook Dell", "entrada", "compra", 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "amount zero")

	_, err = uc.Register(movementRequest(strings.Repeat("a", 51), "entrada", "compra", 5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "product_name acima de 50 caracteres")
}

// TestRegister_LimiteContaRunas: os limites de 50 caracteres contam runas,
// não bytes. Um motivo de 50 caracteres acentuados (100 bytes em UTF-8) é
// aceito; 51 runas são recusadas.
func TestRegister_LimiteContaRunas(t *testing.T) {
	l := newLedgerWithProduct(t, "Notebook Dell", 10)
	uc := newMovementUC(l)

	_, err := uc.Register(movementRequest("Notebook Dell", "entrada", strings.Repeat("ç", 50), 5))
	assert.NoError(t, err, "50 runas acentuadas devem passar")

	_, err = uc.Register(movementRequest("Notebook Dell", "entrada", strings.Repeat("ç", 51), 5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGet_NaoEncontrado(t *testing.T) {
	l := memory.NewLedger()
	uc := newMovementUC(l)

	_, err := uc.Get(42)
	assert.ErrorIs(t, err, domain.ErrMovementNotFound)
}

// TestUpdate_NaoReajustaEstoque: atualizar uma movimentação muda os campos da
// linha, nunca o estoque. A assimetria com o caminho autoritativo é proposital.
func TestUpdate_NaoReajustaEstoque(t *testing.T) {
	l := newLedgerWithProduct(t, "Notebook Dell", 10)
	uc := newMovementUC(l)

	created, err := uc.Register(movementRequest("Notebook Dell", "entrada", "compra", 5))
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, movementRequest("Notebook Dell", "saída", "venda", 3))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, entity.MovementTypeOUT, updated.MovementType)
	assert.Equal(t, 3, updated.Amount)
	assert.Equal(t, 10, currentAmount(t, l, "Notebook Dell"))
}

// TestUpdate_PreservaTimestamp: sem timestamp no request, o update mantém a
// data original da movimentação.
func TestUpdate_PreservaTimestamp(t *testing.T) {
	l := newLedgerWithProduct(t, "Notebook Dell", 10)
	uc := newMovementUC(l)

	ts := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	req := movementRequest("Notebook Dell", "entrada", "compra", 5)
	req.MovementTimestamp = &ts
	created, err := uc.Register(req)
	require.NoError(t, err)

	updated, err := uc.Update(created.ID, movementRequest("Notebook Dell", "entrada", "ajuste", 8))
	require.NoError(t, err)
	assert.True(t, updated.MovementTimestamp.Equal(ts))
}

func TestUpdate_NaoEncontrado(t *testing.T) {
	l := newLedgerWithProduct(t, "Notebook Dell", 10)
	uc := newMovementUC(l)

	_, err := uc.Update(42, movementRequest("Notebook Dell", "entrada", "compra", 5))
	assert.ErrorIs(t, err, domain.ErrMovementNotFound)
}

func TestDelete(t *testing.T) {
	l := newLedgerWithProduct(t, "Notebook Dell", 10)
	uc := newMovementUC(l)

	created, err := uc.Register(movementRequest("Notebook Dell", "entrada", "compra", 5))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID))
	assert.Equal(t, 0, countMovements(t, l, "Notebook Dell"))

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrMovementNotFound)
}

// TestListByProduct_Resumo: a listagem devolve o histórico com totais e o
// estoque autoritativo do produto, que pode divergir do balanço do log.
func TestListByProduct_Resumo(t *testing.T) {
	l := newLedgerWithProduct(t, "Notebook Dell", 10)
	uc := newMovementUC(l)

	_, err := uc.Register(movementRequest("Notebook Dell", "entrada", "compra", 8))
	require.NoError(t, err)
	_, err = uc.Register(movementRequest("Notebook Dell", "saída", "venda", 3))
	require.NoError(t, err)

	out, err := uc.ListByProduct("Notebook Dell")
	require.NoError(t, err)
	assert.Equal(t, 8, out.Summary.TotalInput)
	assert.Equal(t, 3, out.Summary.TotalOutput)
	assert.Equal(t, 10, out.Summary.CurrentStock, "o estoque reportado é o autoritativo")
	assert.Equal(t, 10, out.ProductCurrentStock)
	assert.Len(t, out.Movements, 2)
}

func TestListByProduct_ProdutoInexistente(t *testing.T) {
	l := memory.NewLedger()
	uc := newMovementUC(l)

	_, err := uc.ListByProduct("Fantasma")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
