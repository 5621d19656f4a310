package http

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/DsBrito/cpid-backend-test/internal/application/dto"
	"github.com/DsBrito/cpid-backend-test/internal/application/stock"
	"github.com/DsBrito/cpid-backend-test/internal/domain"
)

// StockHandler trata as rotas /stock-management: o caminho autoritativo que
// registra a movimentação E atualiza o estoque na mesma transação, e o resumo
// completo do produto.
type StockHandler struct {
	applyUC   *stock.ApplyMovementUseCase
	summaryUC *stock.SummaryUseCase
}

// NewStockHandler constrói o handler.
func NewStockHandler(applyUC *stock.ApplyMovementUseCase, summaryUC *stock.SummaryUseCase) *StockHandler {
	return &StockHandler{applyUC: applyUC, summaryUC: summaryUC}
}

// unescapeParam devolve o parâmetro de rota com percent-encoding desfeito
// (nomes de produto costumam ter espaços: "Notebook%20Dell").
func unescapeParam(c *fiber.Ctx, key string) string {
	raw := c.Params(key)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// RegisterMovement godoc
// @Summary      Registrar movimentação e atualizar o estoque
// @Description  Entrada soma no estoque; saída subtrai, recusando quando a quantidade excede o saldo. Movimentação e novo estoque são gravados na mesma transação.
// @Tags         stock-management
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "product_name, movement_type (entrada/saída), movement_reason, amount"
// @Success      201   {object}  dto.ApplyMovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /stock-management/movement [post]
func (h *StockHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.applyUC.Apply(c.Context(), in)
	if err != nil {
		var insufficient *domain.InsufficientStockError
		switch {
		case errors.As(err, &insufficient):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: insufficient.Error()})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:    "NOT_FOUND",
				Message: fmt.Sprintf("Produto %s não encontrado no estoque", in.ProductName),
			})
		case errors.Is(err, domain.ErrInvalidMovementType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_MOVEMENT_TYPE", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Summary godoc
// @Summary      Resumo completo do produto
// @Description  Snapshot do produto, totais de entrada/saída com balanço calculado e histórico ordenado por data. O balanço é diagnóstico; o estoque autoritativo é o do produto.
// @Tags         stock-management
// @Produce      json
// @Param        name  path  string  true  "Nome do produto"
// @Success      200   {object}  dto.StockSummaryResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /stock-management/summary/{name} [get]
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	name := unescapeParam(c, "name")
	out, err := h.summaryUC.Summarize(name)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:    "NOT_FOUND",
				Message: fmt.Sprintf("Produto %s não encontrado no estoque", name),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
