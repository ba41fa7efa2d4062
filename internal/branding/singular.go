package branding

import "strings"

// Singularize applies a fixed list of English plural suffix rules, first
// match wins. Matching ignores case; the returned stem keeps the input's case.
//
// It is a heuristic: short words ending in a single "s" lose it ("Bus" -> "Bu").
func Singularize(word string) string {
	switch {
	case hasSuffixFold(word, "ies"):
		return word[:len(word)-3] + "y"
	case hasSuffixFold(word, "ves"):
		return word[:len(word)-3] + "f"
	case hasSuffixFold(word, "xes"):
		return word[:len(word)-2]
	case hasSuffixFold(word, "s") && !hasSuffixFold(word, "ss"):
		return word[:len(word)-1]
	}
	return word
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && strings.EqualFold(s[len(s)-len(suffix):], suffix)
}
