package main

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"octalysis/internal/i18n"
	"octalysis/internal/radar"
	"octalysis/internal/state"
)

const (
	defaultExportWidth = 720
	exportFontSize     = 13.0
)

type exportFormat string

const (
	formatPNG exportFormat = "png"
	formatSVG exportFormat = "svg"
	formatTXT exportFormat = "txt"
)

func parseExportFormat(s string) (exportFormat, error) {
	switch f := exportFormat(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))); f {
	case formatPNG, formatSVG, formatTXT:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q (want png, svg or txt)", s)
}

// formatFromPath guesses the format from a filename extension.
func formatFromPath(path string) (exportFormat, bool) {
	f, err := parseExportFormat(filepath.Ext(path))
	return f, err == nil
}

// withExtension appends the format extension unless the name already has it.
func withExtension(filename string, f exportFormat) string {
	ext := "." + string(f)
	if strings.HasSuffix(strings.ToLower(filename), ext) {
		return filename
	}
	return filename + ext
}

// exportChart writes st in format f. width is the chart surface width in
// logical units (pixels for PNG and SVG).
func exportChart(path string, f exportFormat, st state.AppState, tr *i18n.Translator, t Theme, width int) error {
	if width <= 0 {
		width = defaultExportWidth
	}
	switch f {
	case formatPNG:
		return exportPNG(path, st, tr, t, width)
	case formatSVG:
		return exportSVG(path, st, tr, t, width)
	case formatTXT:
		return exportVisualTXT(path, st, tr, width)
	}
	return fmt.Errorf("unknown export format %q", f)
}

func driverLabels(tr *i18n.Translator) [radar.AxisCount]string {
	var out [radar.AxisCount]string
	for i, d := range state.Drivers {
		out[i] = tr.T(d.LabelKey())
	}
	return out
}

func projectTitle(st state.AppState, tr *i18n.Translator) string {
	if name := strings.TrimSpace(st.ProjectName); name != "" {
		return name
	}
	return tr.T("project.untitled")
}

func loadFace(size float64) (font.Face, error) {
	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(ttfFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func faceMeasure(face font.Face) radar.MeasureFunc {
	height := float64(face.Metrics().Height.Ceil())
	return func(text string) (float64, float64) {
		return float64(font.MeasureString(face, text).Ceil()), height
	}
}

// imageLayout lays the chart out for an image export of the given width.
func imageLayout(width int, st state.AppState, tr *i18n.Translator, face font.Face) (*radar.Layout, radar.Frame) {
	opts := radar.DefaultOptions()
	w, h := radar.FitSurface(float64(width), opts)
	l := radar.NewLayout(w, h, driverLabels(tr), faceMeasure(face), opts)
	return l, l.FrameFor(l.Viewport.Outline(st.Drives), -1)
}

func withAlpha(c color.Color, a uint8) color.Color {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: a}
}

func exportPNG(filename string, st state.AppState, tr *i18n.Translator, t Theme, width int) error {
	face, err := loadFace(exportFontSize)
	if err != nil {
		return err
	}
	defer face.Close()
	l, f := imageLayout(width, st, tr, face)
	vp := l.Viewport
	c := vp.Center()

	dc := gg.NewContext(int(math.Ceil(vp.Width)), int(math.Ceil(vp.Height)))
	dc.SetColor(rgba(t.Background))
	dc.Clear()
	dc.SetFontFace(face)

	dc.SetLineWidth(1)
	dc.SetColor(rgba(t.Grid))
	for _, r := range l.Rings {
		dc.DrawCircle(c.X, c.Y, r)
		dc.Stroke()
	}
	dc.SetColor(rgba(t.Axis))
	for _, a := range l.Axes {
		from, to := a.From.Add(c), a.To.Add(c)
		dc.DrawLine(from.X, from.Y, to.X, to.Y)
		dc.Stroke()
	}

	for i, p := range f.Outline {
		p = p.Add(c)
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
		} else {
			dc.LineTo(p.X, p.Y)
		}
	}
	dc.ClosePath()
	dc.SetColor(withAlpha(rgba(t.Area), 0xa0))
	dc.FillPreserve()
	dc.SetColor(rgba(t.Edge))
	dc.SetLineWidth(2)
	dc.Stroke()

	dc.SetColor(rgba(t.Handle))
	for _, h := range f.Handles {
		p := h.Center.Add(c)
		dc.DrawCircle(p.X, p.Y, h.Radius)
		dc.Fill()
	}

	dc.SetColor(rgba(t.Foreground))
	for _, lb := range l.Labels {
		dc.DrawStringAnchored(lb.Text, c.X+lb.Left(), c.Y+lb.Y, 0, 0.35)
	}
	dc.SetColor(rgba(t.Muted))
	dc.DrawString(projectTitle(st, tr), 12, 12+exportFontSize)
	dc.DrawString(fmt.Sprintf("%s: %.2f", tr.T("project.totalScore"), state.TotalScore(st)), 12, vp.Height-12)

	return dc.SavePNG(filename)
}

func exportSVG(filename string, st state.AppState, tr *i18n.Translator, t Theme, width int) error {
	face, err := loadFace(exportFontSize)
	if err != nil {
		return err
	}
	defer face.Close()

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(file)
	if err := writeSVG(w, st, tr, t, width, face); err != nil {
		file.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func writeSVG(w io.Writer, st state.AppState, tr *i18n.Translator, t Theme, width int, face font.Face) error {
	l, f := imageLayout(width, st, tr, face)
	vp := l.Viewport
	c := vp.Center()
	num := func(v float64) string { return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".") }

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(vp.Width), num(vp.Height), num(vp.Width), num(vp.Height))
	fmt.Fprintf(&b, `<rect width="100%%" height="100%%" fill="%s"/>`+"\n", t.Background)

	fmt.Fprintf(&b, `<g fill="none" stroke="%s" stroke-width="1">`+"\n", t.Grid)
	for _, r := range l.Rings {
		fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s"/>`+"\n", num(c.X), num(c.Y), num(r))
	}
	b.WriteString("</g>\n")

	fmt.Fprintf(&b, `<g stroke="%s" stroke-width="1">`+"\n", t.Axis)
	for _, a := range l.Axes {
		from, to := a.From.Add(c), a.To.Add(c)
		fmt.Fprintf(&b, `<line x1="%s" y1="%s" x2="%s" y2="%s"/>`+"\n", num(from.X), num(from.Y), num(to.X), num(to.Y))
	}
	b.WriteString("</g>\n")

	fmt.Fprintf(&b, `<path d="%s" fill="%s" fill-opacity="0.6" stroke="%s" stroke-width="2" stroke-linejoin="round"/>`+"\n",
		radar.PathData(f.Outline[:], c), t.Area, t.Edge)

	fmt.Fprintf(&b, `<g fill="%s">`+"\n", t.Handle)
	for _, h := range f.Handles {
		p := h.Center.Add(c)
		fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s"/>`+"\n", num(p.X), num(p.Y), num(h.Radius))
	}
	b.WriteString("</g>\n")

	fmt.Fprintf(&b, `<g font-family="Go Mono, monospace" font-size="%s" fill="%s" dominant-baseline="middle">`+"\n",
		num(exportFontSize), t.Foreground)
	for _, lb := range l.Labels {
		fmt.Fprintf(&b, `<text x="%s" y="%s" text-anchor="%s">`, num(c.X+lb.X), num(c.Y+lb.Y), lb.Align)
		if err := xml.EscapeText(&b, []byte(lb.Text)); err != nil {
			return err
		}
		b.WriteString("</text>\n")
	}
	b.WriteString("</g>\n</svg>\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// exportVisualTXT writes the chart exactly as the terminal grid draws it,
// followed by the values.
func exportVisualTXT(filename string, st state.AppState, tr *i18n.Translator, width int) error {
	return os.WriteFile(filename, []byte(visualTXT(st, tr, width)), 0o644)
}

func visualTXT(st state.AppState, tr *i18n.Translator, width int) string {
	opts := radar.DefaultOptions()
	w, h := radar.FitSurface(float64(width), opts)
	l := radar.NewLayout(w, h, driverLabels(tr), radar.MeasureFunc(cellMeasure), opts)
	canvas := NewCanvas(int(math.Ceil(w/charWidth)), int(math.Ceil(h/charHeight)))
	canvas.DrawChart(l, l.FrameFor(l.Viewport.Outline(st.Drives), -1))

	var b strings.Builder
	b.WriteString(projectTitle(st, tr) + "\n\n")
	for _, line := range canvas.Lines() {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	for _, d := range state.Drivers {
		fmt.Fprintf(&b, "%-24s %3d  %.2f\n", tr.T(d.LabelKey()), st.Value(d), state.DriverScore(st.Value(d)))
	}
	fmt.Fprintf(&b, "%s: %.2f\n", tr.T("project.totalScore"), state.TotalScore(st))
	return b.String()
}

// summaryMarkdown is the assessment as a markdown document: values, scores
// and every non-empty note.
func summaryMarkdown(st state.AppState, tr *i18n.Translator) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", projectTitle(st, tr))
	fmt.Fprintf(&b, "**%s:** %.2f\n\n", tr.T("project.totalScore"), state.TotalScore(st))
	fmt.Fprintf(&b, "| %s | %s | %s |\n|---|---:|---:|\n", tr.T("summary.driver"), tr.T("summary.value"), tr.T("summary.score"))
	for _, d := range state.Drivers {
		fmt.Fprintf(&b, "| %s | %d | %.2f |\n", tr.T(d.LabelKey()), st.Value(d), state.DriverScore(st.Value(d)))
	}
	fmt.Fprintf(&b, "\n## %s\n\n", tr.T("comments.title"))
	notes := 0
	for _, d := range state.Drivers {
		text := strings.TrimSpace(st.Comment(d))
		if text == "" {
			continue
		}
		notes++
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", tr.T(d.LabelKey()), text)
	}
	if notes == 0 {
		fmt.Fprintf(&b, "_%s_\n", tr.T("comments.empty"))
	}
	return b.String()
}

// renderMarkdown renders md for the terminal with the glamour style matching
// the theme. On failure the raw markdown is returned.
func renderMarkdown(md string, width int, t Theme) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(t.Name),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
