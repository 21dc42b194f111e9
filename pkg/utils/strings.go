package utils

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	separators    = regexp.MustCompile(`[_\-\s.]+`)
	nonWord       = regexp.MustCompile(`[^A-Za-z0-9_]`)
	acronymSplit  = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	camelSplit    = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	toUnderscore  = regexp.MustCompile(`[\-\s.]+`)
	sanitizeToSep = strings.NewReplacer("[]", "", "[", "_", "]", "", "(", "_", ")", "", ".", "_", "-", "_", "|", "_", " ", "_", "/", "_")
)

// RemoveAccents removes accents from a string, converting accented characters to their base forms
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}

// SanitizeName strips every character that cannot appear in an identifier.
// Accented letters are folded to their base form, bracket, dot, dash, pipe,
// slash and space separators become underscores and anything else outside
// [A-Za-z0-9_] is dropped.
func SanitizeName(s string) string {
	s = RemoveAccents(strings.TrimSpace(s))
	s = sanitizeToSep.Replace(s)
	return nonWord.ReplaceAllString(s, "")
}

// splitLeading separates a run of leading underscores from the rest of s.
func splitLeading(s string) (string, string) {
	rest := strings.TrimLeft(s, "_")
	return s[:len(s)-len(rest)], rest
}

// ToPascalCase converts a string to PascalCase. Words are delimited by
// underscores, dashes, dots and whitespace; the first letter of each word is
// upper-cased and the rest of the word is kept as written, so PascalCase input
// passes through unchanged. Leading underscores are preserved.
func ToPascalCase(s string) string {
	lead, rest := splitLeading(s)
	var b strings.Builder
	b.WriteString(lead)
	for _, p := range separators.Split(rest, -1) {
		if p == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(p)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(p[size:])
	}
	return b.String()
}

// ToCamelCase converts a string to camelCase
func ToCamelCase(s string) string {
	p := ToPascalCase(s)
	lead, rest := splitLeading(p)
	if rest == "" {
		return p
	}
	r, size := utf8.DecodeRuneInString(rest)
	return lead + string(unicode.ToLower(r)) + rest[size:]
}

// ToSnakeCase converts a string to snake_case, splitting camel humps and
// acronyms: "PetID" -> "pet_id", "XMLHttpRequest" -> "xml_http_request".
func ToSnakeCase(s string) string {
	s = acronymSplit.ReplaceAllString(s, "${1}_${2}")
	s = camelSplit.ReplaceAllString(s, "${1}_${2}")
	s = toUnderscore.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}

// ToKebabCase converts a string to kebab-case
func ToKebabCase(s string) string {
	return strings.ReplaceAll(ToSnakeCase(strings.TrimSpace(s)), "_", "-")
}
