package entity

import "time"

// Formas canônicas do tipo de movimento, gravadas pelo caminho de escrita
// depois da classificação. Linhas antigas podem conter o texto livre original
// ("entrada", "Saída", ...); a leitura reclassifica sempre.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // saída
)

// Movement representa uma movimentação de estoque (entrada ou saída).
// Referencia o produto pelo nome; não há FK no banco, a validação é feita
// na escrita. Uma vez gravada, a linha não é alterada pelo núcleo.
type Movement struct {
	ID          int64
	ProductName string
	Type        string
	Reason      string
	Amount      int
	MovedAt     time.Time
}
