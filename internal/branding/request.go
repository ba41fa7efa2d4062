package branding

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultImageBaseURL = "https://image.pollinations.ai/prompt/"
	DefaultImageModel   = "flux"
	DefaultProvider     = "pollinations"
	DefaultWidth        = 1024
	DefaultHeight       = 1024
)

// ImageRequest describes one call to the image backend. URL is the
// complete GET target; the other fields are what it was built from.
type ImageRequest struct {
	Provider string `json:"provider"`
	Model    string `json:"model,omitempty"`
	Prompt   string `json:"prompt"`
	Seed     string `json:"seed"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	NoLogo   bool   `json:"nologo"`
	URL      string `json:"url"`
}

// RequestBuilder holds the backend location. The zero value targets the
// public pollinations endpoint without a model parameter.
type RequestBuilder struct {
	BaseURL string
	Model   string
}

var defaultBuilder = RequestBuilder{BaseURL: DefaultImageBaseURL}

// BuildRequest uses the public endpoint. Width and height default to 1024
// when not positive.
func BuildRequest(prompt, seed string, width, height int) ImageRequest {
	return defaultBuilder.Build(prompt, seed, width, height)
}

// Build encodes prompt as a path segment and attaches seed, dimensions and
// the no-logo flag. The seed is forwarded untouched.
func (b RequestBuilder) Build(prompt, seed string, width, height int) ImageRequest {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	base := b.BaseURL
	if base == "" {
		base = DefaultImageBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	var u strings.Builder
	u.WriteString(base)
	u.WriteString(encodeComponent(prompt))
	u.WriteString("?seed=")
	u.WriteString(encodeComponent(seed))
	u.WriteString("&width=")
	u.WriteString(strconv.Itoa(width))
	u.WriteString("&height=")
	u.WriteString(strconv.Itoa(height))
	if b.Model != "" {
		u.WriteString("&model=")
		u.WriteString(encodeComponent(b.Model))
	}
	u.WriteString("&nologo=true")

	return ImageRequest{
		Provider: DefaultProvider,
		Model:    b.Model,
		Prompt:   prompt,
		Seed:     seed,
		Width:    width,
		Height:   height,
		NoLogo:   true,
		URL:      u.String(),
	}
}

func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
