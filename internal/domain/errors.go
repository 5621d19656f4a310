package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound            = errors.New("recurso não encontrado")
	ErrProductNotFound     = errors.New("produto não encontrado no estoque")
	ErrMovementNotFound    = errors.New("movimento não encontrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrInvalidMovementType = errors.New("movimento deve ser 'entrada' ou 'saída'")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrConflict            = errors.New("conflito com o estado atual")
	ErrInsufficientStock   = errors.New("estoque insuficiente")
)

// InsufficientStockError carrega as quantidades envolvidas na recusa de uma saída:
// estoque corrente e quantidade pedida. errors.Is(err, ErrInsufficientStock) retorna true.
type InsufficientStockError struct {
	ProductName string
	Current     int
	Requested   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("estoque insuficiente para %s. Estoque corrente: %d, Requisição: %d",
		e.ProductName, e.Current, e.Requested)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}
