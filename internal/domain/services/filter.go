package services

import (
	"strings"
	"unicode"
)

// symbolReplacer strips punctuation and turns spaces into underscores.
var symbolReplacer = strings.NewReplacer(
	"!", "",
	" ", "_",
	"'", "",
	`"`, "",
	"(", "",
	")", "",
)

// FilterName turns an arbitrary display name into an upper-case symbol.
// The result never starts with a non-letter; it may be empty.
func FilterName(name string) string {
	result := strings.ToUpper(symbolReplacer.Replace(name))
	return strings.TrimLeftFunc(result, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// ModuleName returns the dedicated table name of a world.
func ModuleName(worldName string) string {
	return strings.ToLower(FilterName(worldName))
}
