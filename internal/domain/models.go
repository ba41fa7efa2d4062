package domain

import (
	"time"
)

type League struct {
	LeagueID    string
	Name        string
	Season      string
	Sport       string
	LastFetchAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Team is one roster entry plus the owner's branding edits.
type Team struct {
	LeagueID  string
	TeamID    string // roster id as a string
	Owner     string
	OwnerID   string
	TeamName  string
	Mascot    string
	Primary   string
	Secondary string
	LogoURL   string // empty until a logo is generated
	LogoSeed  string
	RemixTick int
	// Set once the owner changes the field; unedited fields follow the
	// roster source on refetch.
	MascotEdited bool
	ColorsEdited bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type LeagueRoster struct {
	League League
	Teams  []Team
}

type LogoResult struct {
	GenerationID   string
	LeagueID       string
	TeamID         string
	TeamName       string
	Mascot         string
	DepictedMascot string
	Primary        string
	Secondary      string
	Provider       string
	Model          string
	Prompt         string
	Seed           string
	ImageURL       string
	Width          int
	Height         int
}
