package main

import (
	"league-logos/internal/branding"
	"league-logos/internal/mcptools"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	var (
		baseURL string
		model   string
	)
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the branding tools over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			server := mcptools.NewServer(branding.RequestBuilder{BaseURL: baseURL, Model: model}, version)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
	cmd.Flags().StringVar(&baseURL, "base-url", branding.DefaultImageBaseURL, "image backend base URL")
	cmd.Flags().StringVar(&model, "model", branding.DefaultImageModel, "image model query parameter")
	return cmd
}
