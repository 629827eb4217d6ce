package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone (NFC).
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold normaliza una cadena para búsqueda: minúsculas, sin tildes/diacríticos
// y sin espacios sobrantes. "Café Ñuñoa " -> "cafe nunoa".
func Fold(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		// Entrada no normalizable: se busca tal cual
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}
