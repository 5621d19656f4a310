package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/DsBrito/cpid-backend-test/internal/application/product"
	"github.com/DsBrito/cpid-backend-test/internal/application/stock"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProductUC  *product.ProductUseCase
	MovementUC *stock.MovementUseCase
	ApplyUC    *stock.ApplyMovementUseCase
	SummaryUC  *stock.SummaryUseCase
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	// Produtos (requisito 1°: CRUD de produtos)
	products := app.Group("/product")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/create", productHandler.Create)
	products.Get("/list", productHandler.List)
	products.Get("/read/:name", productHandler.Read)
	products.Put("/update/:name", productHandler.Update)
	products.Delete("/delete/:name", productHandler.Delete)

	// Movimentações sem alteração de estoque (requisitos 2° e 3°, log puro)
	movements := app.Group("/moviment")
	movementHandler := NewMovementHandler(deps.MovementUC)
	movements.Post("/create", movementHandler.Create)
	movements.Get("/read/:id", movementHandler.Read)
	movements.Put("/update/:id", movementHandler.Update)
	movements.Delete("/delete/:id", movementHandler.Delete)
	movements.Get("/product/:name", movementHandler.ListByProduct)

	// Gestão de estoque (requisitos 2° e 3°, com alteração no estoque)
	stockGroup := app.Group("/stock-management")
	stockHandler := NewStockHandler(deps.ApplyUC, deps.SummaryUC)
	stockGroup.Post("/movement", stockHandler.RegisterMovement)
	stockGroup.Get("/summary/:name", stockHandler.Summary)
}
