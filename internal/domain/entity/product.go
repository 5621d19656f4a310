package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa um produto do estoque. Name é a chave de negócio (única);
// Amount é o estoque atual e só muda via movimentação autoritativa (gestão de estoque).
// Code é atribuído na criação e nunca muda.
type Product struct {
	ID              int64
	Name            string
	Description     *string
	Amount          int
	Price           decimal.Decimal
	Category        string
	Brand           *string
	Supplier        *string
	ManufactureDate time.Time
	ExpirationDate  *time.Time
	Code            int64
	CreatedAt       time.Time
}
