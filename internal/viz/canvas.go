package viz

import (
	"math"
	"math/bits"
	"strings"
)

const brailleBase = 0x2800

// dotBits maps a sub-pixel inside a 2x4 braille cell to its dot bit,
// indexed [y][x].
var dotBits = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type label struct {
	row, col int
	text     string
}

// Canvas is a monochrome braille raster of Width x Height character cells,
// each holding 2x4 dots. It implements render.Sink: world coordinates have
// the origin at the center and y up. Colors are ignored.
type Canvas struct {
	Width, Height int

	// world half-extents mapped onto the raster
	HalfWidth, HalfHeight float64

	cells  []uint8
	labels []label
}

func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		Width:  w,
		Height: h,
		cells:  make([]uint8, w*h),
	}
}

// Set turns on the dot at sub-pixel (x, y). The raster is Width*2 dots
// wide and Height*4 dots tall; dots outside it are dropped.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 || x >= c.Width*2 || y >= c.Height*4 {
		return
	}
	c.cells[(y/4)*c.Width+x/2] |= dotBits[y%4][x%2]
}

// Cell returns the braille rune at a character position.
func (c *Canvas) Cell(row, col int) rune {
	return brailleBase + rune(c.cells[row*c.Width+col])
}

// Dots counts the dots that are on.
func (c *Canvas) Dots() int {
	n := 0
	for _, v := range c.cells {
		n += bits.OnesCount8(v)
	}
	return n
}

// Clear turns every dot off and drops all labels.
func (c *Canvas) Clear() {
	clear(c.cells)
	c.labels = c.labels[:0]
}

func (c *Canvas) SetWorld(halfWidth, halfHeight float64) {
	c.HalfWidth = halfWidth
	c.HalfHeight = halfHeight
}

// scale is dots per world unit, equal on both axes so circles stay round.
func (c *Canvas) scale() float64 {
	if c.HalfWidth <= 0 || c.HalfHeight <= 0 {
		return 1
	}
	return math.Min(float64(c.Width)/c.HalfWidth, float64(c.Height*2)/c.HalfHeight)
}

func (c *Canvas) toPixel(x, y float64) (int, int) {
	s := c.scale()
	return int(math.Round(float64(c.Width) + x*s)), int(math.Round(float64(c.Height*2) - y*s))
}

func (c *Canvas) FillCircle(x, y, r float64, _ string) {
	cx, cy := c.toPixel(x, y)
	pr := int(math.Round(r * c.scale()))
	for dy := -pr; dy <= pr; dy++ {
		half := int(math.Sqrt(float64(pr*pr - dy*dy)))
		for dx := -half; dx <= half; dx++ {
			c.Set(cx+dx, cy+dy)
		}
	}
}

func (c *Canvas) Circle(x, y, r float64, _ string) {
	cx, cy := c.toPixel(x, y)
	pr := r * c.scale()
	if pr < 1 {
		c.Set(cx, cy)
		return
	}
	n := int(2*math.Pi*pr) + 8
	for i := 0; i < n; i++ {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		c.Set(cx+int(math.Round(pr*cos)), cy+int(math.Round(pr*sin)))
	}
}

// Text centers s on the character cell under (x, y). Labels whose row is
// off the raster are dropped; columns are clipped when drawn.
func (c *Canvas) Text(x, y float64, s, _ string) {
	px, py := c.toPixel(x, y)
	row := py / 4
	if py < 0 || row >= c.Height {
		return
	}
	c.labels = append(c.labels, label{row: row, col: px/2 - len([]rune(s))/2, text: s})
}

// Border outlines the arena walls.
func (c *Canvas) Border() {
	right, bottom := c.Width*2-1, c.Height*4-1
	for x := 0; x <= right; x++ {
		c.Set(x, 0)
		c.Set(x, bottom)
	}
	for y := 0; y <= bottom; y++ {
		c.Set(0, y)
		c.Set(right, y)
	}
}

func (c *Canvas) String() string {
	out := make([]rune, len(c.cells))
	for i, v := range c.cells {
		out[i] = brailleBase + rune(v)
	}
	for _, l := range c.labels {
		for i, r := range []rune(l.text) {
			if col := l.col + i; col >= 0 && col < c.Width {
				out[l.row*c.Width+col] = r
			}
		}
	}

	var b strings.Builder
	b.Grow(len(out)*3 + c.Height)
	for row := 0; row < c.Height; row++ {
		b.WriteString(string(out[row*c.Width : (row+1)*c.Width]))
		b.WriteByte('\n')
	}
	return b.String()
}
