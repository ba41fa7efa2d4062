package branding

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint32(0), Hash(""))
	assert.Equal(t, uint32(294), Hash("abc"))
	assert.Equal(t, uint32(233), Hash("é"))
	assert.Equal(t, Hash("ab"), Hash("ba"))
	assert.Equal(t, uint32(2268), Hash("The Riverside Foxes|fox"))
}

func TestHashWrapsAt32Bits(t *testing.T) {
	t.Parallel()

	s := strings.Repeat(string(rune(0x10FFFF)), 4000)
	// 4000 * 1114111 = 4456444000 = 2^32 + 161476704
	assert.Equal(t, uint32(161476704), Hash(s))
}

func bankFor(t *testing.T, key string) []Palette {
	t.Helper()
	for _, entry := range PaletteBank {
		if entry.Key == key {
			return entry.Palettes
		}
	}
	t.Fatalf("no bank entry %q", key)
	return nil
}

func TestColorsForPinnedFixtures(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Palette{Primary: "#ff6b00", Secondary: "#222222"}, ColorsFor("The Riverside Foxes", "Fox"))
	assert.Equal(t, Palette{Primary: "#2ecc71", Secondary: "#145a32"}, ColorsFor("FC Nations United 7", "United"))
}

func TestColorsForBankPrecedence(t *testing.T) {
	t.Parallel()

	got := ColorsFor("Riverside Foxes", "Fox")
	assert.Contains(t, bankFor(t, "fox"), got)
	assert.NotContains(t, FallbackPool, got)
	assert.Equal(t, "fox", BankKeyFor("Riverside Foxes", "Fox"))
}

func TestColorsForFallsBackToTeamName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "wolf", BankKeyFor("Wolf Pack", ""))
	assert.Contains(t, bankFor(t, "wolf"), ColorsFor("Wolf Pack", ""))
}

func TestColorsForUnmatchedUsesFallbackPool(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", BankKeyFor("FC Nations United 7", "United"))
	assert.Contains(t, FallbackPool, ColorsFor("Some Team", ""))
	assert.Contains(t, FallbackPool, ColorsFor("", ""))
}

func TestColorsForDeclarationOrderWins(t *testing.T) {
	t.Parallel()

	// "lion" is declared before "tiger".
	assert.Equal(t, "lion", BankKeyFor("Zoo", "Tiger Lion"))
	assert.Contains(t, bankFor(t, "lion"), ColorsFor("Zoo", "Tiger Lion"))
}

func TestColorsForIsDeterministic(t *testing.T) {
	t.Parallel()

	want := ColorsFor("The Riverside Foxes", "Fox")

	var wg sync.WaitGroup
	results := make([]Palette, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = ColorsFor("The Riverside Foxes", "Fox")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}

func TestSuggestColorsCyclesThroughBank(t *testing.T) {
	t.Parallel()

	fox := bankFor(t, "fox")
	assert.Equal(t, fox[1], SuggestColors("The Riverside Foxes", "Fox", 0))
	assert.Equal(t, fox[2], SuggestColors("The Riverside Foxes", "Fox", 1))
	assert.Equal(t, fox[0], SuggestColors("The Riverside Foxes", "Fox", 2))
	assert.Equal(t, SuggestColors("The Riverside Foxes", "Fox", 1), SuggestColors("The Riverside Foxes", "Fox", 1))
}
