package branding

import "strings"

// DefaultMascot is used when nothing brandable survives filtering.
const DefaultMascot = "Mascot"

var stopwords = map[string]struct{}{
	"the":     {},
	"team":    {},
	"club":    {},
	"fc":      {},
	"sc":      {},
	"cf":      {},
	"afc":     {},
	"of":      {},
	"and":     {},
	"league":  {},
	"nations": {},
}

// IsStopword reports whether token (already lower-cased) is filler that never
// names a mascot.
func IsStopword(token string) bool {
	_, ok := stopwords[token]
	return ok
}

// DeriveMascot extracts a single title-cased, singular noun from a team name.
// Stopwords and purely numeric tokens are dropped and the last remaining token
// wins, since team names put the mascot at the end ("Riverside Foxes").
// The result is never empty.
func DeriveMascot(teamName string) string {
	tokens := mascotTokens(teamName)
	if len(tokens) == 0 {
		return DefaultMascot
	}

	pick := tokens[len(tokens)-1]
	singular := Singularize(pick)
	if singular == "" {
		// a lone "s" would otherwise singularize to nothing
		singular = pick
	}
	return TitleCase(singular)
}

func mascotTokens(teamName string) []string {
	fields := strings.Fields(strings.ToLower(Clean(teamName)))
	tokens := fields[:0]
	for _, t := range fields {
		if IsStopword(t) || isNumeric(t) {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// DepictTerm picks the illustration subject from an editable mascot field.
// A mascot that is blank, shorter than three characters, or still equal to
// the team name is replaced by the noun derived from the team name.
func DepictTerm(teamName, mascot string) string {
	cleanedMascot := Clean(mascot)
	cleanedTeam := Clean(teamName)
	if len(cleanedMascot) < 3 || strings.EqualFold(cleanedMascot, cleanedTeam) {
		return DeriveMascot(cleanedTeam)
	}
	return cleanedMascot
}
