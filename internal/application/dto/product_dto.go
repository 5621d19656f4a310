package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductRequest body para criação/atualização de produtos.
// Datas no formato "2006-01-02"; o preço usa ponto decimal.
type ProductRequest struct {
	Name            string          `json:"name"`
	Amount          int             `json:"amount"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	ManufactureDate string          `json:"manufacture_date"`
	ExpirationDate  *string         `json:"expiration_date,omitempty"`
	Brand           *string         `json:"brand,omitempty"`
	Supplier        *string         `json:"supplier,omitempty"`
	Description     *string         `json:"description,omitempty"`
}

// ProductResponse eco de um produto persistido.
type ProductResponse struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Amount          int             `json:"amount"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	ManufactureDate string          `json:"manufacture_date"`
	ExpirationDate  *string         `json:"expiration_date"`
	Brand           *string         `json:"brand"`
	Supplier        *string         `json:"supplier"`
	Description     *string         `json:"description"`
	Code            int64           `json:"code"`
	CreatedAt       time.Time       `json:"created_at"`
}
