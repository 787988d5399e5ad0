package selection

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"

	"github.com/MacMayo1993/SEAM-VIZ/geom"
	"github.com/MacMayo1993/SEAM-VIZ/shape"
)

// Visual inspection beats staring at weight tables when a cone looks wrong,
// so the selection can render itself: an equirectangular chart of a mesh's
// vertex directions shaded by selection weight, with both spotlight
// directions marked. Write a PNG, optionally cat it to the terminal (iTerm
// only).

const drawPadding = 20

// chartXY maps a direction to equirectangular chart coordinates:
// longitude across, latitude down.
func chartXY(dir geom.Vec3, width, height float64) (float64, float64) {
	lon := math.Atan2(dir.X, dir.Z)
	lat := math.Acos(geom.ClampScalar(dir.Y, -1, 1))
	x := (lon + math.Pi) / (2 * math.Pi) * width
	y := lat / math.Pi * height
	return x, y
}

// DebugDraw charts the selection's weight over a mesh and writes it to
// pngPath. Each vertex direction becomes a dot: gray when outside the double
// cone, blended toward the representative's color by its weight inside. The
// two spotlight centers are drawn as rings. When toTerminal is set, the
// image is also catted to stdout.
func DebugDraw(state State, mesh shape.Mesh, pngPath string, toTerminal bool) error {
	const chartW, chartH = 720.0, 360.0
	width := int(chartW) + drawPadding*2
	height := int(chartH) + drawPadding*2

	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.Translate(drawPadding, drawPadding)

	for _, dir := range shape.VertexDirections(mesh) {
		x, y := chartXY(dir, chartW, chartH)
		w := SelectionWeight(state, dir)
		if w == 0 {
			c.SetRGB(0.25, 0.25, 0.25)
		} else if CloserRepresentative(state, dir) == state.Selected.Canonical() {
			c.SetRGB(0.25+0.75*w, 0.25, 0.25)
		} else {
			c.SetRGB(0.25, 0.25+0.75*w, 0.25+0.75*w)
		}
		c.DrawCircle(x, y, 2)
		c.Fill()
	}

	// Ring each spotlight center.
	directive := RenderDirectives(state)
	c.SetLineWidth(2)
	for i, spot := range directive.Spotlights {
		x, y := chartXY(spot.Direction, chartW, chartH)
		if i == 0 {
			c.SetRGB(1, 0.4, 0.4)
		} else {
			c.SetRGB(0.3, 0.8, 0.8)
		}
		c.DrawCircle(x, y, 8)
		c.Stroke()
	}

	if err := c.SavePNG(pngPath); err != nil {
		return err
	}
	if toTerminal {
		imgcat.CatFile(pngPath, os.Stdout)
	}
	return nil
}
