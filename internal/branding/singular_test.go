package branding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingularize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Bunnies", "Bunny"},
		{"Wolves", "Wolf"},
		{"Foxes", "Fox"},
		{"Boxes", "Box"},
		{"Eagles", "Eagle"},
		{"Lions", "Lion"},
		{"Bass", "Bass"},
		{"Moose", "Moose"},
		{"WOLVES", "WOLf"},
		{"FOXES", "FOX"},
		{"", ""},
		// Known heuristic limitation: a single trailing "s" is always stripped.
		{"Bus", "Bu"},
		{"Gas", "Ga"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Singularize(tt.in), "Singularize(%q)", tt.in)
	}
}

func TestSingularizeRuleOrder(t *testing.T) {
	t.Parallel()

	// "ies" is checked before the generic "s" rule.
	assert.Equal(t, "y", Singularize("ies"))
	// "ves" before "s".
	assert.Equal(t, "f", Singularize("ves"))
	// "ss" guard.
	assert.Equal(t, "Ss", Singularize("Ss"))
	assert.Equal(t, "", Singularize("s"))
}
