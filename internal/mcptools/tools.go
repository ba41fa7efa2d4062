// Package mcptools exposes the branding pipeline as Model Context Protocol
// tools so assistants can name mascots and draft logo requests.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"league-logos/internal/branding"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverName = "league-logos-mcp"

// Arguments are all optional in the schema; handlers report missing values as
// tool errors.
type DeriveMascotArgs struct {
	TeamName string `json:"team_name,omitempty" jsonschema:"Fantasy team name (required)"`
	Mascot   string `json:"mascot,omitempty" jsonschema:"Edited mascot; blank or the team name falls back to the derived one"`
}

type SuggestColorsArgs struct {
	TeamName string `json:"team_name,omitempty" jsonschema:"Fantasy team name (required)"`
	Mascot   string `json:"mascot,omitempty" jsonschema:"Mascot used for palette lookup (defaults to the team name)"`
	Remix    *int   `json:"remix,omitempty" jsonschema:"Remix tick; omit for the default palette"`
}

type BuildPromptArgs struct {
	TeamName       string `json:"team_name,omitempty" jsonschema:"Fantasy team name (required)"`
	Mascot         string `json:"mascot,omitempty" jsonschema:"Display mascot"`
	PrimaryColor   string `json:"primary_color,omitempty" jsonschema:"Primary color, e.g. #ff6b00 (required)"`
	SecondaryColor string `json:"secondary_color,omitempty" jsonschema:"Secondary color, e.g. #222222 (required)"`
}

type BuildImageRequestArgs struct {
	TeamName       string `json:"team_name,omitempty" jsonschema:"Fantasy team name (required)"`
	Mascot         string `json:"mascot,omitempty" jsonschema:"Display mascot"`
	PrimaryColor   string `json:"primary_color,omitempty" jsonschema:"Primary color (defaults to the assigned palette)"`
	SecondaryColor string `json:"secondary_color,omitempty" jsonschema:"Secondary color (defaults to the assigned palette)"`
	Seed           string `json:"seed,omitempty" jsonschema:"Image seed (required)"`
	Width          int    `json:"width,omitempty" jsonschema:"Width in pixels (default 1024)"`
	Height         int    `json:"height,omitempty" jsonschema:"Height in pixels (default 1024)"`
}

type Tools struct {
	builder branding.RequestBuilder
}

func New(builder branding.RequestBuilder) *Tools {
	return &Tools{builder: builder}
}

// NewServer returns an MCP server with every branding tool registered.
func NewServer(builder branding.RequestBuilder, version string) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: version}, nil)
	New(builder).Register(server)
	return server
}

// Handler serves the tools over streamable HTTP.
func Handler(server *mcp.Server) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, &mcp.StreamableHTTPOptions{JSONResponse: true})
}

func (t *Tools) Register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "derive_mascot",
		Description: "Derive the singular, title-cased mascot noun from a fantasy team name",
	}, t.DeriveMascot)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "suggest_colors",
		Description: "Deterministic primary/secondary palette for a team, optionally remixed",
	}, t.SuggestColors)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_logo_prompt",
		Description: "Flat vector mascot emblem prompt for an image model",
	}, t.BuildPrompt)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_image_request",
		Description: "Complete image generation request URL for a team logo",
	}, t.BuildImageRequest)
}

func (t *Tools) DeriveMascot(ctx context.Context, req *mcp.CallToolRequest, args DeriveMascotArgs) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(args.TeamName) == "" {
		return toolError(fmt.Errorf("team_name is required")), nil, nil
	}
	return toolJSON(map[string]string{
		"team_name":      args.TeamName,
		"cleaned_name":   branding.Clean(args.TeamName),
		"mascot":         branding.DeriveMascot(args.TeamName),
		"display_mascot": branding.DepictTerm(args.TeamName, args.Mascot),
	})
}

func (t *Tools) SuggestColors(ctx context.Context, req *mcp.CallToolRequest, args SuggestColorsArgs) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(args.TeamName) == "" {
		return toolError(fmt.Errorf("team_name is required")), nil, nil
	}
	mascot := args.Mascot
	if strings.TrimSpace(mascot) == "" {
		mascot = args.TeamName
	}

	palette := branding.ColorsFor(args.TeamName, mascot)
	if args.Remix != nil {
		if *args.Remix < 0 {
			return toolError(fmt.Errorf("remix must not be negative")), nil, nil
		}
		palette = branding.SuggestColors(args.TeamName, mascot, *args.Remix)
	}

	return toolJSON(map[string]string{
		"bank_key":  branding.BankKeyFor(args.TeamName, mascot),
		"primary":   palette.Primary,
		"secondary": palette.Secondary,
	})
}

func (t *Tools) BuildPrompt(ctx context.Context, req *mcp.CallToolRequest, args BuildPromptArgs) (*mcp.CallToolResult, any, error) {
	if err := requireAll(map[string]string{
		"team_name":       args.TeamName,
		"primary_color":   args.PrimaryColor,
		"secondary_color": args.SecondaryColor,
	}); err != nil {
		return toolError(err), nil, nil
	}
	prompt := branding.BuildPrompt(branding.PromptInput{
		TeamName:       args.TeamName,
		Mascot:         args.Mascot,
		PrimaryColor:   args.PrimaryColor,
		SecondaryColor: args.SecondaryColor,
	})
	return toolJSON(map[string]string{
		"depicted_mascot": branding.DeriveMascot(args.TeamName),
		"prompt":          prompt,
	})
}

func (t *Tools) BuildImageRequest(ctx context.Context, req *mcp.CallToolRequest, args BuildImageRequestArgs) (*mcp.CallToolResult, any, error) {
	if err := requireAll(map[string]string{
		"team_name": args.TeamName,
		"seed":      args.Seed,
	}); err != nil {
		return toolError(err), nil, nil
	}
	if args.Width < 0 || args.Height < 0 {
		return toolError(fmt.Errorf("width and height must not be negative")), nil, nil
	}

	primary, secondary := args.PrimaryColor, args.SecondaryColor
	if primary == "" || secondary == "" {
		mascot := args.Mascot
		if mascot == "" {
			mascot = args.TeamName
		}
		p := branding.ColorsFor(args.TeamName, mascot)
		if primary == "" {
			primary = p.Primary
		}
		if secondary == "" {
			secondary = p.Secondary
		}
	}

	prompt := branding.BuildPrompt(branding.PromptInput{
		TeamName:       args.TeamName,
		Mascot:         args.Mascot,
		PrimaryColor:   primary,
		SecondaryColor: secondary,
	})
	return toolJSON(t.builder.Build(prompt, args.Seed, args.Width, args.Height))
}

// requireAll names every blank field, sorted.
func requireAll(fields map[string]string) error {
	var missing []string
	for name, v := range fields {
		if strings.TrimSpace(v) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	return fmt.Errorf("%s is required", strings.Join(missing, ", "))
}

func toolJSON(v any) (*mcp.CallToolResult, any, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return toolJSONBytes(b), nil, nil
}

func toolJSONBytes(res []byte) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(res)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
