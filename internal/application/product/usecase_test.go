package product_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DsBrito/cpid-backend-test/internal/application/dto"
	"github.com/DsBrito/cpid-backend-test/internal/application/product"
	"github.com/DsBrito/cpid-backend-test/internal/domain"
	"github.com/DsBrito/cpid-backend-test/internal/infrastructure/memory"
)

func newUseCase() *product.ProductUseCase {
	return product.NewProductUseCase(memory.NewLedger().Products())
}

func productRequest(name string) dto.ProductRequest {
	return dto.ProductRequest{
		Name:            name,
		Amount:          10,
		Price:           decimal.NewFromFloat(3500.00),
		Category:        "Eletrônicos",
		ManufactureDate: "2023-08-01",
	}
}

func TestCreate(t *testing.T) {
	uc := newUseCase()

	out, err := uc.Create(productRequest("Notebook Dell"))
	require.NoError(t, err)
	assert.Equal(t, "Notebook Dell", out.Name)
	assert.Equal(t, 10, out.Amount)
	assert.NotZero(t, out.ID)
	assert.NotZero(t, out.Code)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestCreate_NomeDuplicado(t *testing.T) {
	uc := newUseCase()

	_, err := uc.Create(productRequest("Notebook Dell"))
	require.NoError(t, err)

	_, err = uc.Create(productRequest("Notebook Dell"))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCreate_Invalido(t *testing.T) {
	uc := newUseCase()

	req := productRequest("")
	_, err := uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = productRequest("Notebook Dell")
	req.Price = decimal.Zero
	_, err = uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = productRequest("Notebook Dell")
	req.ManufactureDate = "01/08/2023"
	_, err = uc.Create(req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// TestCreate_LimiteContaRunas: o limite de 50 caracteres do nome conta runas,
// não bytes, para nomes acentuados.
func TestCreate_LimiteContaRunas(t *testing.T) {
	uc := newUseCase()

	_, err := uc.Create(productRequest(strings.Repeat("ã", 50)))
	assert.NoError(t, err, "50 runas acentuadas devem passar")

	_, err = uc.Create(productRequest(strings.Repeat("ã", 51)))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetByName_NaoEncontrado(t *testing.T) {
	uc := newUseCase()

	_, err := uc.GetByName("Fantasma")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpdate_PreservaEstoqueECode(t *testing.T) {
	uc := newUseCase()

	created, err := uc.Create(productRequest("Notebook Dell"))
	require.NoError(t, err)

	req := productRequest("Notebook Dell")
	req.Amount = 999 // ignorado: o estoque só muda via movimentação
	req.Category = "Informática"
	out, err := uc.Update("Notebook Dell", req)
	require.NoError(t, err)

	assert.Equal(t, created.Amount, out.Amount)
	assert.Equal(t, created.Code, out.Code)
	assert.Equal(t, created.ID, out.ID)
	assert.Equal(t, "Informática", out.Category)
}

// TestUpdate_RenomearParaNomeOcupado: renomear um produto para o nome de
// outro já registrado viola a unicidade e não sobrescreve o outro produto.
func TestUpdate_RenomearParaNomeOcupado(t *testing.T) {
	uc := newUseCase()

	_, err := uc.Create(productRequest("Notebook Dell"))
	require.NoError(t, err)
	_, err = uc.Create(productRequest("Mouse Logitech"))
	require.NoError(t, err)

	req := productRequest("Mouse Logitech")
	_, err = uc.Update("Notebook Dell", req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Os dois produtos seguem intactos.
	mouse, err := uc.GetByName("Mouse Logitech")
	require.NoError(t, err)
	assert.Equal(t, 10, mouse.Amount)
	_, err = uc.GetByName("Notebook Dell")
	require.NoError(t, err)
}

func TestUpdate_NaoEncontrado(t *testing.T) {
	uc := newUseCase()

	_, err := uc.Update("Fantasma", productRequest("Fantasma"))
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestDelete(t *testing.T) {
	uc := newUseCase()

	_, err := uc.Create(productRequest("Notebook Dell"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete("Notebook Dell"))
	assert.ErrorIs(t, uc.Delete("Notebook Dell"), domain.ErrProductNotFound)
}

func TestList_Paginacao(t *testing.T) {
	uc := newUseCase()

	for _, name := range []string{"Notebook Dell", "Mouse Logitech", "Teclado Redragon"} {
		_, err := uc.Create(productRequest(name))
		require.NoError(t, err)
	}

	page, err := uc.List(2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "Notebook Dell", page[0].Name)

	page, err = uc.List(2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "Teclado Redragon", page[0].Name)
}
