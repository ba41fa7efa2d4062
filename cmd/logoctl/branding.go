package main

import (
	"fmt"
	"strings"

	"league-logos/internal/branding"
	"league-logos/internal/service"

	"github.com/spf13/cobra"
)

func newMascotCmd() *cobra.Command {
	var mascot string
	cmd := &cobra.Command{
		Use:   "mascot <team name...>",
		Short: "Print the mascot a logo for the team would depict",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), branding.DepictTerm(strings.Join(args, " "), mascot))
			return err
		},
	}
	cmd.Flags().StringVar(&mascot, "mascot", "", "edited mascot (default: derived from the team name)")
	return cmd
}

func newColorsCmd() *cobra.Command {
	var (
		mascot string
		remix  int
	)
	cmd := &cobra.Command{
		Use:   "colors <team name...>",
		Short: "Print the assigned primary and secondary colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tick *int
			if cmd.Flags().Changed("remix") {
				tick = &remix
			}
			p, err := service.BuildPreview(strings.Join(args, " "), mascot, tick)
			if err != nil {
				return err
			}
			bank := p.BankKey
			if bank == "" {
				bank = "fallback"
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", p.Primary, p.Secondary, bank)
			return err
		},
	}
	cmd.Flags().StringVar(&mascot, "mascot", "", "mascot used for palette lookup (default: the team name)")
	cmd.Flags().IntVar(&remix, "remix", 0, "remix tick")
	return cmd
}

type promptFlags struct {
	mascot    string
	primary   string
	secondary string
}

func (f *promptFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.mascot, "mascot", "", "display mascot (default: the team name)")
	cmd.Flags().StringVar(&f.primary, "primary", "", "primary color (default: assigned palette)")
	cmd.Flags().StringVar(&f.secondary, "secondary", "", "secondary color (default: assigned palette)")
}

// input fills unset colors from the team's assigned palette.
func (f *promptFlags) input(teamName string) branding.PromptInput {
	mascot := f.mascot
	if mascot == "" {
		mascot = teamName
	}
	in := branding.PromptInput{
		TeamName:       teamName,
		Mascot:         mascot,
		PrimaryColor:   service.NormalizeHex(f.primary),
		SecondaryColor: service.NormalizeHex(f.secondary),
	}
	if in.PrimaryColor == "" || in.SecondaryColor == "" {
		p := branding.ColorsFor(teamName, mascot)
		if in.PrimaryColor == "" {
			in.PrimaryColor = p.Primary
		}
		if in.SecondaryColor == "" {
			in.SecondaryColor = p.Secondary
		}
	}
	return in
}

func newPromptCmd() *cobra.Command {
	var flags promptFlags
	cmd := &cobra.Command{
		Use:   "prompt <team name...>",
		Short: "Print the image prompt for a team",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), branding.BuildPrompt(flags.input(strings.Join(args, " "))))
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newURLCmd() *cobra.Command {
	var (
		flags   promptFlags
		seed    string
		width   int
		height  int
		baseURL string
		model   string
	)
	cmd := &cobra.Command{
		Use:   "url <team name...>",
		Short: "Print the image request URL for a team",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == "" {
				return fmt.Errorf("--seed is required")
			}
			builder := branding.RequestBuilder{BaseURL: baseURL, Model: model}
			req := builder.Build(branding.BuildPrompt(flags.input(strings.Join(args, " "))), seed, width, height)
			_, err := fmt.Fprintln(cmd.OutOrStdout(), req.URL)
			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&seed, "seed", "", "image seed")
	cmd.Flags().IntVar(&width, "width", branding.DefaultWidth, "image width")
	cmd.Flags().IntVar(&height, "height", branding.DefaultHeight, "image height")
	cmd.Flags().StringVar(&baseURL, "base-url", branding.DefaultImageBaseURL, "image backend base URL")
	cmd.Flags().StringVar(&model, "model", "", "image model query parameter")
	return cmd
}
