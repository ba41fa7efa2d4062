package branding

import (
	"strconv"
	"strings"
)

// Palette is a two-color assignment. Values are expected to look like
// #RRGGBB but are never validated.
type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// BankEntry binds a mascot key to its curated palettes.
type BankEntry struct {
	Key      string
	Palettes []Palette
}

// PaletteBank is matched in declaration order; the first key that is a
// substring of the lookup key wins.
var PaletteBank = []BankEntry{
	{Key: "fox", Palettes: []Palette{
		{Primary: "#ff6b00", Secondary: "#222222"},
		{Primary: "#e85d04", Secondary: "#1f1f1f"},
		{Primary: "#ffa94d", Secondary: "#1a1a1a"},
	}},
	{Key: "wolf", Palettes: []Palette{
		{Primary: "#626b73", Secondary: "#cdd2d6"},
		{Primary: "#4a5568", Secondary: "#cbd5e0"},
	}},
	{Key: "eagle", Palettes: []Palette{
		{Primary: "#002244", Secondary: "#c60c30"},
		{Primary: "#0b3d91", Secondary: "#e6e6e6"},
	}},
	{Key: "bear", Palettes: []Palette{
		{Primary: "#4b2e2b", Secondary: "#d1b271"},
		{Primary: "#5e3b2e", Secondary: "#f0d190"},
	}},
	{Key: "shark", Palettes: []Palette{
		{Primary: "#0a3d62", Secondary: "#60a3bc"},
		{Primary: "#0f4c5c", Secondary: "#b1d4e0"},
	}},
	{Key: "lion", Palettes: []Palette{
		{Primary: "#f4c542", Secondary: "#8b4513"},
		{Primary: "#d4a017", Secondary: "#5a3815"},
	}},
	{Key: "tiger", Palettes: []Palette{
		{Primary: "#ff6600", Secondary: "#000000"},
		{Primary: "#ff7a00", Secondary: "#1a1a1a"},
	}},
	{Key: "dragon", Palettes: []Palette{
		{Primary: "#006400", Secondary: "#8b0000"},
		{Primary: "#0b6b3a", Secondary: "#7a1e1e"},
	}},
	{Key: "stallion", Palettes: []Palette{
		{Primary: "#222222", Secondary: "#cccccc"},
		{Primary: "#2b2b2b", Secondary: "#e5e7eb"},
	}},
}

// FallbackPool serves names that match no bank key.
var FallbackPool = []Palette{
	{Primary: "#ff6b6b", Secondary: "#1a1a1a"},
	{Primary: "#1e90ff", Secondary: "#f8f8ff"},
	{Primary: "#2ecc71", Secondary: "#145a32"},
	{Primary: "#e67e22", Secondary: "#1a1a1a"},
	{Primary: "#9b59b6", Secondary: "#2c3e50"},
	{Primary: "#f1c40f", Secondary: "#1a1a1a"},
	{Primary: "#e74c3c", Secondary: "#1a1a1a"},
}

// BankKeyFor returns the bank key selected for the pair, or "" when the
// fallback pool applies.
func BankKeyFor(teamName, mascot string) string {
	key := paletteKey(teamName, mascot)
	for _, entry := range PaletteBank {
		if strings.Contains(key, entry.Key) {
			return entry.Key
		}
	}
	return ""
}

// ColorsFor deterministically assigns a palette. The lookup key is the
// lower-cased mascot, or the team name when mascot is empty.
func ColorsFor(teamName, mascot string) Palette {
	key := paletteKey(teamName, mascot)
	pool := FallbackPool
	for _, entry := range PaletteBank {
		if strings.Contains(key, entry.Key) {
			pool = entry.Palettes
			break
		}
	}
	idx := Hash(teamName+"|"+key) % uint32(len(pool))
	return pool[idx]
}

// SuggestColors is ColorsFor with the team name perturbed by a remix counter.
// Each tick yields a reproducible suggestion; there is no real randomness.
func SuggestColors(teamName, mascot string, tick int) Palette {
	return ColorsFor(teamName+"|"+strconv.Itoa(tick), mascot)
}

func paletteKey(teamName, mascot string) string {
	if mascot != "" {
		return strings.ToLower(mascot)
	}
	return strings.ToLower(teamName)
}
