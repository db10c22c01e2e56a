package languageutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var TitleCaser = cases.Title(language.BrazilianPortuguese)
var Folder = cases.Fold()

// Fold normalizes user input for case-insensitive comparison:
// trims, composes accents (NFC) and case-folds.
func Fold(value string) string {
	return Folder.String(norm.NFC.String(strings.TrimSpace(value)))
}

// Title returns a display label, e.g. "acessórios" -> "Acessórios".
func Title(value string) string {
	return TitleCaser.String(norm.NFC.String(value))
}
