package main

import (
	"image/color"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Theme is a palette shared by the terminal view and the image exports.
// Colors are hex strings so the same values feed lipgloss, PNG and SVG.
type Theme struct {
	Name       string
	Background string
	Foreground string
	Muted      string
	Grid       string
	Axis       string
	Area       string
	Edge       string
	Handle     string
	Active     string
	Accent     string
	Error      string
}

var darkTheme = Theme{
	Name:       "dark",
	Background: "#1c1c1c",
	Foreground: "#e4e4e4",
	Muted:      "#8a8a8a",
	Grid:       "#4e4e4e",
	Axis:       "#6c6c6c",
	Area:       "#2f5f87",
	Edge:       "#5fafff",
	Handle:     "#ffd75f",
	Active:     "#ff875f",
	Accent:     "#87d7af",
	Error:      "#ff5f5f",
}

var lightTheme = Theme{
	Name:       "light",
	Background: "#ffffff",
	Foreground: "#262626",
	Muted:      "#6c6c6c",
	Grid:       "#d0d0d0",
	Axis:       "#a8a8a8",
	Area:       "#afd7ff",
	Edge:       "#005faf",
	Handle:     "#d75f00",
	Active:     "#d70000",
	Accent:     "#008787",
	Error:      "#d70000",
}

// themeFor resolves a config value. "auto" (or anything unknown) asks the
// terminal for its background, unless NO_COLOR is set.
func themeFor(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return lightTheme
	case "dark":
		return darkTheme
	}
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return darkTheme
	}
	if termenv.HasDarkBackground() {
		return darkTheme
	}
	return lightTheme
}

func (t Theme) Toggle() Theme {
	if t.Name == darkTheme.Name {
		return lightTheme
	}
	return darkTheme
}

func (t Theme) fg(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

func (t Theme) cellStyle(k cellKind) lipgloss.Style {
	switch k {
	case cellRing:
		return t.fg(t.Grid)
	case cellAxis:
		return t.fg(t.Axis)
	case cellArea:
		return t.fg(t.Area)
	case cellEdge:
		return t.fg(t.Edge).Bold(true)
	case cellHandle:
		return t.fg(t.Handle).Bold(true)
	case cellActive:
		return t.fg(t.Active).Bold(true)
	case cellLabel:
		return t.fg(t.Foreground)
	default:
		return lipgloss.NewStyle()
	}
}

func (t Theme) titleStyle() lipgloss.Style { return t.fg(t.Accent).Bold(true) }
func (t Theme) mutedStyle() lipgloss.Style { return t.fg(t.Muted) }
func (t Theme) errorStyle() lipgloss.Style { return t.fg(t.Error).Bold(true) }
func (t Theme) selectedStyle() lipgloss.Style { return t.fg(t.Handle).Bold(true) }

func (t Theme) panelStyle(width, height int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(lipgloss.Color(t.Grid)).
		PaddingLeft(1)
}

// rgba converts a palette entry for the image exports. Unparseable values
// fall back to opaque black.
func rgba(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.Black
	}
	return c
}
