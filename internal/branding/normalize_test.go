package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no symbols", "The Riverside Foxes", "The Riverside Foxes"},
		{"punctuation and digits", "  Team   #1!! Wolves ", "Team 1 Wolves"},
		{"hyphen kept", "Red-Tailed Hawks", "Red-Tailed Hawks"},
		{"underscore kept", "snake_case FC", "snake_case FC"},
		{"non ascii replaced", "Björn's Bears", "Bj rn s Bears"},
		{"mixed whitespace", "a\tb\n\nc", "a b c"},
		{"symbols only", "!!!***", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Clean(tt.in))
		})
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", "   ", "The Riverside Foxes", "  Team   #1!! Wolves ",
		"Björn's Bears", "--dash--", " nbsp em ", "émoji 🦊 foxes", "x\x00y",
	}
	for _, in := range inputs {
		once := Clean(in)
		require.Equal(t, once, Clean(once), "input %q", in)
		require.NotContains(t, once, "  ", "input %q", in)
	}
}

func TestTitleCase(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Fox", TitleCase("fox"))
	assert.Equal(t, "Mixed", TitleCase("mIXED"))
	assert.Equal(t, "Red-tails", TitleCase("red-tails"))
	assert.Equal(t, "-Abc", TitleCase("-abc"))
	assert.Equal(t, "Hello World", TitleCase("hello   world"))
	assert.Equal(t, "---", TitleCase("---"))
	assert.Equal(t, "", TitleCase(""))
}
