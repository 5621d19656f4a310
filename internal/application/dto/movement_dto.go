package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementRequest body para POST /moviment/create e POST /stock-management/movement.
// MovementTimestamp é opcional; quando ausente, o momento da criação é usado.
type MovementRequest struct {
	ProductName       string     `json:"product_name"`
	MovementType      string     `json:"movement_type"`
	MovementReason    string     `json:"movement_reason"`
	Amount            int        `json:"amount"`
	MovementTimestamp *time.Time `json:"movement_timestamp,omitempty"`
}

// MovementResponse eco de uma movimentação persistida.
type MovementResponse struct {
	ID                int64     `json:"id"`
	ProductName       string    `json:"product_name"`
	MovementType      string    `json:"movement_type"`
	MovementReason    string    `json:"movement_reason"`
	Amount            int       `json:"amount"`
	MovementTimestamp time.Time `json:"movement_timestamp"`
}

// ProductStockDTO snapshot nome/estoque do produto após um ajuste.
type ProductStockDTO struct {
	Name         string `json:"name"`
	CurrentStock int    `json:"current_stock"`
}

// ApplyMovementResponse resposta de POST /stock-management/movement:
// a movimentação criada mais o novo estoque do produto.
type ApplyMovementResponse struct {
	Movement MovementResponse `json:"moviment"`
	Product  ProductStockDTO  `json:"product"`
}

// MovementTotalsDTO totais de entrada/saída acumulados do histórico.
// CurrentStock é o valor autoritativo mantido pela gestão de estoque;
// pode divergir do balanço calculado quando houve registros via log puro.
type MovementTotalsDTO struct {
	TotalInput   int `json:"total_input"`
	TotalOutput  int `json:"total_output"`
	CurrentStock int `json:"current_stock"`
}

// ProductMovementsResponse resposta de GET /moviment/product/:name.
type ProductMovementsResponse struct {
	ProductName         string             `json:"product_name"`
	ProductCurrentStock int                `json:"product_current_stock"`
	Movements           []MovementResponse `json:"moviments"`
	Summary             MovementTotalsDTO  `json:"summary"`
}

// MovementHistoryItemDTO item do histórico no resumo completo.
type MovementHistoryItemDTO struct {
	ID     int64     `json:"id"`
	Type   string    `json:"type"`
	Reason string    `json:"reason"`
	Amount int       `json:"amount"`
	Date   time.Time `json:"date"`
}

// SummaryTotalsDTO totais e balanço calculado (entrada − saída).
// Balance é diagnóstico; o estoque autoritativo está em StockSummaryResponse.Product.
type SummaryTotalsDTO struct {
	TotalInput  int `json:"total_input"`
	TotalOutput int `json:"total_output"`
	Balance     int `json:"balance"`
}

// SummaryProductDTO snapshot do produto no resumo completo.
type SummaryProductDTO struct {
	Name         string          `json:"name"`
	Description  *string         `json:"description"`
	CurrentStock int             `json:"current_stock"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	Brand        *string         `json:"brand"`
	Supplier     *string         `json:"supplier"`
	Code         int64           `json:"code"`
}

// StockSummaryResponse resposta de GET /stock-management/summary/:name.
type StockSummaryResponse struct {
	Product          SummaryProductDTO        `json:"product"`
	MovementsSummary SummaryTotalsDTO         `json:"movements_summary"`
	MovementsHistory []MovementHistoryItemDTO `json:"movements_history"`
}
