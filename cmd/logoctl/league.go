package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"league-logos/internal/api"
	"league-logos/internal/config"
	"league-logos/internal/constants"
	"league-logos/internal/service"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newLeagueCmd() *cobra.Command {
	var (
		seed       string
		sleeperURL string
	)
	cmd := &cobra.Command{
		Use:   "league <league id>",
		Short: "Fetch a league roster and print each team's mascot, colors and logo URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if sleeperURL != "" {
				cfg.SleeperBaseURL = sleeperURL
			}
			return runLeague(cmd.Context(), cmd.OutOrStdout(), cfg, args[0], seed)
		},
	}
	cmd.Flags().StringVar(&seed, "seed", "", "image seed shared by every team (default: random per team)")
	cmd.Flags().StringVar(&sleeperURL, "sleeper-url", "", "Sleeper API base URL (default: SLEEPER_BASE_URL)")
	return cmd
}

func runLeague(ctx context.Context, out io.Writer, cfg *config.Config, leagueID, seed string) error {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	league, teams, err := service.FetchRoster(ctx, api.NewSleeperClient(cfg), nil, leagueID)
	if err != nil {
		return err
	}

	// no store: results are printed, not recorded
	logos := service.NewLogoService(nil, nil, cfg, nil, zerolog.Nop())

	_, _ = fmt.Fprintf(out, "%s (%s %s)\n", league.Name, league.Sport, league.Season)
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "TEAM\tOWNER\tMASCOT\tPRIMARY\tSECONDARY\tIMAGE")
	for _, team := range teams {
		res, err := logos.Generate(ctx, service.GenerateInput{
			TeamID:         team.TeamID,
			TeamName:       team.TeamName,
			Mascot:         team.Mascot,
			PrimaryColor:   team.Primary,
			SecondaryColor: team.Secondary,
			Seed:           seed,
		})
		if err != nil {
			return fmt.Errorf("team %s: %w", team.TeamID, err)
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			team.TeamName, team.Owner, res.DepictedMascot, res.Primary, res.Secondary, res.ImageURL)
	}
	return tw.Flush()
}
