package server

type Team struct {
	LeagueID  string `json:"leagueId"`
	TeamID    string `json:"teamId"`
	Owner     string `json:"owner"`
	TeamName  string `json:"teamName"`
	Mascot    string `json:"mascot"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	LogoURL   string `json:"logoUrl,omitempty"`
	LogoSeed  string `json:"logoSeed,omitempty"`
	RemixTick int    `json:"remixTick"`
}

type GetLeagueRequest struct {
	LeagueID string `json:"leagueId"`
	Refresh  bool   `json:"refresh"`
}

type GetLeagueResponse struct {
	LeagueID string `json:"leagueId"`
	Name     string `json:"name"`
	Season   string `json:"season"`
	Sport    string `json:"sport"`
	Teams    []Team `json:"teams"`
}

type UpdateTeamRequest struct {
	LeagueID  string  `json:"leagueId"`
	TeamID    string  `json:"teamId"`
	Mascot    *string `json:"mascot,omitempty"`
	Primary   *string `json:"primary,omitempty"`
	Secondary *string `json:"secondary,omitempty"`
}

type TeamResponse struct {
	Team Team `json:"team"`
}

type RemixColorsRequest struct {
	LeagueID string `json:"leagueId"`
	TeamID   string `json:"teamId"`
}

type GenerateLogoRequest struct {
	LeagueID       string `json:"leagueId,omitempty"`
	TeamID         string `json:"teamId,omitempty"`
	TeamName       string `json:"teamName"`
	Mascot         string `json:"mascot"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	Seed           string `json:"seed,omitempty"`
	Width          int    `json:"width,omitempty"`
	Height         int    `json:"height,omitempty"`
}

type Logo struct {
	GenerationID   string `json:"generationId"`
	LeagueID       string `json:"leagueId,omitempty"`
	TeamID         string `json:"teamId,omitempty"`
	TeamName       string `json:"teamName"`
	Mascot         string `json:"mascot"`
	DepictedMascot string `json:"depictedMascot"`
	Primary        string `json:"primary"`
	Secondary      string `json:"secondary"`
	Provider       string `json:"provider"`
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	Seed           string `json:"seed"`
	ImageURL       string `json:"imageUrl"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

type GenerateLeagueLogosRequest struct {
	LeagueID string `json:"leagueId"`
	Seed     string `json:"seed,omitempty"`
}

type GenerateLeagueLogosResponse struct {
	Logos []Logo `json:"logos"`
}

type PreviewTeamRequest struct {
	TeamName string `json:"teamName"`
	Mascot   string `json:"mascot,omitempty"`
	Remix    *int   `json:"remix,omitempty"`
}

type PreviewTeamResponse struct {
	CleanedName   string `json:"cleanedName"`
	Mascot        string `json:"mascot"`
	DisplayMascot string `json:"displayMascot"`
	BankKey       string `json:"bankKey,omitempty"`
	Primary       string `json:"primary"`
	Secondary     string `json:"secondary"`
	Prompt        string `json:"prompt"`
}
