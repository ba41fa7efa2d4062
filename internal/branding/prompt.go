package branding

import (
	"fmt"
	"strings"
)

// PromptInput carries the editable team fields a prompt is built from.
type PromptInput struct {
	TeamName       string
	Mascot         string
	PrimaryColor   string
	SecondaryColor string
}

// BuildPrompt composes the instruction string for the image backend.
//
// The depicted subject is always DeriveMascot(TeamName); Mascot is a display
// value only. Colors are forwarded verbatim.
func BuildPrompt(in PromptInput) string {
	subject := DeriveMascot(in.TeamName)

	var b strings.Builder
	fmt.Fprintf(&b, "Professional flat vector sports mascot emblem for the %s, pro sports branding quality. ", in.TeamName)
	fmt.Fprintf(&b, "Depict a %s mascot as the single subject: centered, simplified, bold thick outlines, clean simple geometric shapes, dynamic but balanced composition. ", subject)
	fmt.Fprintf(&b, "Use solid fills in exactly these two colors: primary %s and secondary %s; both colors must clearly appear. ", in.PrimaryColor, in.SecondaryColor)
	b.WriteString("Black and white are allowed only for outlines and contrast. Do not render in grayscale or monochrome. ")
	b.WriteString("Plain white or transparent background only. ")
	b.WriteString("Absolutely no text, no letters, no numbers, no words, no banners, no ribbons, no badges, no wordmarks, no jersey typography, no watermarks under any circumstances. ")
	b.WriteString("No gradients, no shadows, no bevels, no 3D rendering, no photorealism, no background scene, no extra props.")
	b.WriteString(" --no text --no photorealism --no photograph --no extra objects --no clutter --no watermark")
	return b.String()
}
