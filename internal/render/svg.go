package render

import (
	"fmt"
	"html"
	"strings"
)

// SVGSink builds an SVG document. World y is flipped so that up stays up.
type SVGSink struct {
	HalfWidth  float64
	HalfHeight float64
	Background string

	body strings.Builder
}

func NewSVGSink(halfWidth, halfHeight float64) *SVGSink {
	return &SVGSink{
		HalfWidth:  halfWidth,
		HalfHeight: halfHeight,
		Background: "black",
	}
}

func (s *SVGSink) toSVG(x, y float64) (float64, float64) {
	return x + s.HalfWidth, s.HalfHeight - y
}

func (s *SVGSink) FillCircle(x, y, r float64, color string) {
	px, py := s.toSVG(x, y)
	s.body.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, px, py, r, color))
}

func (s *SVGSink) Circle(x, y, r float64, color string) {
	px, py := s.toSVG(x, y)
	s.body.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="%s" stroke-width="1"/>
`, px, py, r, color))
}

func (s *SVGSink) Text(x, y float64, text, color string) {
	px, py := s.toSVG(x, y)
	s.body.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" text-anchor="middle" font-family="Arial" font-size="12">%s</text>
`, px, py, color, html.EscapeString(text)))
}

// String returns the complete document.
func (s *SVGSink) String() string {
	w, h := 2*s.HalfWidth, 2*s.HalfHeight

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, w, h, w, h, s.Background))
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>")
	return sb.String()
}
