package inventory

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/DsBrito/cpid-backend-test/internal/domain/entity"
)

// Direction é a direção normalizada de um movimento de estoque.
// Depois do parse inicial, é este enum que circula pelo sistema,
// nunca a string livre.
type Direction int

const (
	DirectionInvalid Direction = iota
	DirectionInbound
	DirectionOutbound
)

// Canonical devolve a forma canônica persistida ("IN"/"OUT"); vazio para inválido.
func (d Direction) Canonical() string {
	switch d {
	case DirectionInbound:
		return entity.MovementTypeIN
	case DirectionOutbound:
		return entity.MovementTypeOUT
	}
	return ""
}

func (d Direction) String() string {
	switch d {
	case DirectionInbound:
		return "INBOUND"
	case DirectionOutbound:
		return "OUTBOUND"
	}
	return "INVALID"
}

// stripAccents remove marcas diacríticas (NFD → remove Mn → NFC),
// de modo que "saída" e "saida" classifiquem igual.
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Classify classifica um tipo de movimento em texto livre em exatamente uma
// direção: entrada, saída ou inválido. A comparação ignora espaços nas bordas,
// caixa e acentos. Todo ponto do sistema que ramifica por tipo de movimento
// passa por aqui; é a única comparação existente.
//
// Tokens de entrada: "entrada", "in" (e a forma canônica "IN").
// Tokens de saída: "saída", "saida", "out" (e a forma canônica "OUT").
func Classify(raw string) Direction {
	folded, _, err := transform.String(stripAccents, strings.TrimSpace(raw))
	if err != nil {
		folded = strings.TrimSpace(raw)
	}
	switch strings.ToLower(folded) {
	case "entrada", "in":
		return DirectionInbound
	case "saida", "out":
		return DirectionOutbound
	}
	return DirectionInvalid
}
