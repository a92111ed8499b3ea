package usecase

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Spanish)

// normalizeLabel deja las etiquetas libres (categorías) con espacios simples y en formato título,
// para que "  bebidas   frías" y "Bebidas Frías" agrupen igual.
func normalizeLabel(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return titleCaser.String(s)
}

// normalizeLabels normaliza y elimina duplicados conservando el orden.
func normalizeLabels(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]bool{}
	for _, s := range in {
		n := normalizeLabel(s)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out
}
