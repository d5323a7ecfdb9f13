package analysis

import (
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/atomsim/internal/sim"
)

// TrackPath collects the center of atom a over the frames.
func TrackPath(frames []sim.Frame, a int) []r2.Vec {
	path := make([]r2.Vec, 0, len(frames))
	for _, f := range frames {
		if a < len(f.Atoms) {
			path = append(path, f.Atoms[a].Pos)
		}
	}
	return path
}

// PathToASCII plots points on a width x height character grid fitted to
// their bounds, with axes drawn where the origin is in view.
func PathToASCII(points []r2.Vec, width, height int) string {
	if len(points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	toCell := func(x, y float64) (int, int) {
		col := int((x - minX) / rangeX * float64(width-1))
		row := height - 1 - int((y-minY)/rangeY*float64(height-1))
		return row, col
	}

	if minX <= 0 && maxX >= 0 {
		_, col := toCell(0, 0)
		for row := range grid {
			grid[row][col] = '│'
		}
	}
	if minY <= 0 && maxY >= 0 {
		row, _ := toCell(0, 0)
		for col := range grid[row] {
			if grid[row][col] == '│' {
				grid[row][col] = '┼'
			} else {
				grid[row][col] = '─'
			}
		}
	}

	for _, p := range points {
		row, col := toCell(p.X, p.Y)
		grid[row][col] = '•'
	}
	first, last := points[0], points[len(points)-1]
	row, col := toCell(first.X, first.Y)
	grid[row][col] = 'o'
	row, col = toCell(last.X, last.Y)
	grid[row][col] = 'x'

	var sb strings.Builder
	for _, r := range grid {
		sb.WriteString(string(r))
		sb.WriteByte('\n')
	}
	return sb.String()
}
