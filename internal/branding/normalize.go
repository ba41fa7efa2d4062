package branding

import (
	"strings"
	"unicode"
)

// Clean replaces every character outside [A-Za-z0-9_], whitespace and '-'
// with a space, collapses whitespace runs and trims the result.
func Clean(raw string) string {
	mapped := strings.Map(func(r rune) rune {
		if isWordRune(r) || r == '-' || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, raw)
	return strings.Join(strings.Fields(mapped), " ")
}

// TitleCase upper-cases the first word character of every whitespace
// separated word and lower-cases the remainder of that word.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = titleWord(w)
	}
	return strings.Join(words, " ")
}

func titleWord(w string) string {
	idx := strings.IndexFunc(w, isWordRune)
	if idx < 0 {
		return w
	}
	head, rest := w[:idx], w[idx:]
	first := []rune(rest)[0]
	tail := rest[len(string(first)):]
	return head + string(unicode.ToUpper(first)) + strings.ToLower(tail)
}

func isWordRune(r rune) bool {
	return r == '_' ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z') ||
		('0' <= r && r <= '9')
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
