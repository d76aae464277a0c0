// Package export renders frames to SVG. The SVG surface draws headless
// and keeps only the most recently presented frame.
package export

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/san-kum/attractors/internal/render"
	"github.com/san-kum/attractors/internal/viz"
)

type segment struct {
	a, b  viz.Pixel
	width float32
	color color.RGBA
}

// SVG implements render.Surface. It requests exit after ExitAfter frames
// (0 never exits).
type SVG struct {
	ExitAfter  int
	Background string

	cfg     render.SurfaceConfig
	frames  int
	pending []segment
	last    []segment
}

func NewSVG(exitAfter int) *SVG {
	return &SVG{ExitAfter: exitAfter, Background: "#000000"}
}

var _ render.Surface = (*SVG)(nil)

func (s *SVG) Open(cfg render.SurfaceConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("export: invalid svg size %dx%d", cfg.Width, cfg.Height)
	}
	s.cfg = cfg
	return nil
}

func (s *SVG) BeginFrame() {
	s.frames++
	s.pending = s.pending[:0]
}

func (s *SVG) ExitRequested() bool {
	return s.ExitAfter > 0 && s.frames >= s.ExitAfter
}

func (s *SVG) DrawLine(a, b viz.Pixel, width float32, c color.RGBA) {
	s.pending = append(s.pending, segment{a, b, width, c})
}

func (s *SVG) EndFrame() {
	s.last = append(s.last[:0], s.pending...)
}

func (s *SVG) Close() error { return nil }

// Segments is the number of lines in the last presented frame.
func (s *SVG) Segments() int { return len(s.last) }

// WriteTo writes the last presented frame as a standalone SVG document.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, s.cfg.Width, s.cfg.Height, s.cfg.Width, s.cfg.Height, s.Background))

	if s.cfg.Title != "" {
		sb.WriteString(fmt.Sprintf("<title>%s</title>\n", escape(s.cfg.Title)))
	}

	sb.WriteString(`<g fill="none" stroke-linecap="round">` + "\n")
	for _, seg := range s.last {
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="%g"/>
`, seg.a.X, seg.a.Y, seg.b.X, seg.b.Y, viz.HexColor(seg.color), seg.width))
	}
	sb.WriteString("</g>\n</svg>\n")

	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
