package validate

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

// ReservedNames are IDL keywords that cannot name a type or attribute
var ReservedNames = []string{
	"abstract", "any", "attribute", "boolean", "case", "char", "component",
	"const", "context", "custom", "default", "double", "exception", "enum",
	"factory", "FALSE", "fixed", "float", "in", "inout", "interface", "long",
	"module", "native", "Object", "octet", "oneway", "out", "private",
	"public", "raises", "readonly", "sequence", "short", "string", "struct",
	"supports", "switch", "TRUE", "truncatable", "typedef", "unsigned",
	"union", "ValueBase", "valuetype", "void", "wchar", "wstring",
}

// isCamelCase reports whether name is upper camel case. Abbreviations may
// appear in full capitals, e.g. "URLParser" with "URL".
func isCamelCase(name string, abbreviations []string) bool {
	if name == "" {
		return false
	}
	// Longest first so "HTTPS" is not consumed as "HTTP"
	abbrevs := slices.Clone(abbreviations)
	slices.SortFunc(abbrevs, func(a, b string) int { return cmp.Compare(len(b), len(a)) })
	for _, a := range abbrevs {
		if len(a) < 2 {
			continue
		}
		name = strings.ReplaceAll(name, a, a[:1]+strings.ToLower(a[1:]))
	}

	runes := []rune(name)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
		if i > 0 && unicode.IsUpper(r) && unicode.IsUpper(runes[i-1]) {
			return false
		}
	}
	return true
}

// isLowerSnakeCase reports whether name looks like "lower_snake_case1"
func isLowerSnakeCase(name string) bool {
	if name == "" {
		return false
	}
	for _, word := range strings.Split(name, "_") {
		if word == "" {
			return false
		}
		for _, r := range word {
			if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') {
				return false
			}
		}
	}
	return name[0] >= 'a' && name[0] <= 'z'
}
