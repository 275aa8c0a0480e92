// Package slug normaliza textos libres a slugs ASCII aptos para URL ("Zapatos Deportivos" -> "zapatos-deportivos").
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)
	valid           = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
)

// From convierte un texto Unicode en slug: quita acentos (NFD + marcas), pasa a minúsculas
// y colapsa todo lo que no sea [a-z0-9] en un único guion.
func From(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// Valid indica si s ya es un slug normalizado.
func Valid(s string) bool {
	return valid.MatchString(s)
}
