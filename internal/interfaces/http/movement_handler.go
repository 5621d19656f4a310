package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/DsBrito/cpid-backend-test/internal/application/dto"
	"github.com/DsBrito/cpid-backend-test/internal/application/stock"
	"github.com/DsBrito/cpid-backend-test/internal/domain"
)

// MovementHandler trata as rotas /moviment: CRUD de movimentações SEM alterar
// o estoque. Para registrar movimentação atualizando o estoque, usar
// /stock-management/movement (StockHandler).
type MovementHandler struct {
	uc *stock.MovementUseCase
}

// NewMovementHandler constrói o handler.
func NewMovementHandler(uc *stock.MovementUseCase) *MovementHandler {
	return &MovementHandler{uc: uc}
}

func parseMovementID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("id inválido")
	}
	return id, nil
}

// Create godoc
// @Summary      Registrar movimentação (sem alterar o estoque)
// @Tags         moviment
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "product_name, movement_type (entrada/saída), movement_reason, amount"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /moviment/create [post]
func (h *MovementHandler) Create(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Register(in)
	if err != nil {
		switch {
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

// Read godoc
// @Summary      Detalhar movimentação
// @Tags         moviment
// @Produce      json
// @Param        id   path  int  true  "ID da movimentação"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /moviment/read/{id} [get]
func (h *MovementHandler) Read(c *fiber.Ctx) error {
	id, err := parseMovementID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: err.Error()})
	}
	out, err := h.uc.Get(id)
	if err != nil {
		if errors.Is(err, domain.ErrMovementNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Movimento não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar movimentação
// @Description  Atualiza os campos da movimentação. Não reajusta o estoque retroativamente.
// @Tags         moviment
// @Accept       json
// @Produce      json
// @Param        id    path  int                  true  "ID da movimentação"
// @Param        body  body  dto.MovementRequest  true  "novos campos"
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /moviment/update/{id} [put]
func (h *MovementHandler) Update(c *fiber.Ctx) error {
	id, err := parseMovementID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: err.Error()})
	}
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMovementNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Movimento não encontrado"})
		case errors.Is(err, domain.ErrInvalidMovementType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_MOVEMENT_TYPE", Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Remover movimentação
// @Tags         moviment
// @Produce      json
// @Param        id   path  int  true  "ID da movimentação"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /moviment/delete/{id} [delete]
func (h *MovementHandler) Delete(c *fiber.Ctx) error {
	id, err := parseMovementID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: err.Error()})
	}
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrMovementNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "Movimento não encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Movimento removido do banco de dados"})
}

// ListByProduct godoc
// @Summary      Movimentações de um produto com resumo
// @Tags         moviment
// @Produce      json
// @Param        name  path  string  true  "Nome do produto"
// @Success      200   {object}  dto.ProductMovementsResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /moviment/product/{name} [get]
func (h *MovementHandler) ListByProduct(c *fiber.Ctx) error {
	name := unescapeParam(c, "name")
	out, err := h.uc.ListByProduct(name)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code:    "NOT_FOUND",
				Message: fmt.Sprintf("Produto %s não encontrado", name),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
