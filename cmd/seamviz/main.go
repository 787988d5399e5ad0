package main

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/MacMayo1993/SEAM-VIZ/geom"
	"github.com/MacMayo1993/SEAM-VIZ/quotient"
	"github.com/MacMayo1993/SEAM-VIZ/selection"
	"github.com/MacMayo1993/SEAM-VIZ/shape"
)

// Demo of the quotient engine: build a shape, click a direction, and show
// what the engine tells a renderer to draw: two spotlights and one marker,
// always, because a selection in the projective plane is a pair of antipodal
// cones. Optionally charts the selection weight over the shape's vertices as
// a PNG (catted inline on iTerm).
var (
	shapeName  = kingpin.Flag("shape", "Shape to sample directions from.").Default("sphere").Enum("sphere", "cube", "pyramid", "torus", "circle", "disk", "triangle", "square")
	resolution = kingpin.Flag("resolution", "Angular resolution for curved shapes.").Default("16").Int()
	aperture   = kingpin.Flag("aperture", "Selection cone half-angle in radians.").Default("0.4").Float64()
	dirX       = kingpin.Flag("x", "Clicked direction, x component.").Default("1").Float64()
	dirY       = kingpin.Flag("y", "Clicked direction, y component.").Default("0").Float64()
	dirZ       = kingpin.Flag("z", "Clicked direction, z component.").Default("0").Float64()
	drawPath   = kingpin.Flag("draw", "Write a weight-map PNG to this path.").String()
)

func main() {
	kingpin.Parse()

	mesh, err := shape.Build(shape.ID(*shapeName), *resolution)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	state := selection.DefaultState()
	state = selection.ProcessIntent(state, selection.SetAperture{Value: *aperture})
	state = selection.ProcessIntent(state, selection.ClickQuotient{
		Point: geom.V(*dirX, *dirY, *dirZ),
	})

	directive := selection.RenderDirectives(state)
	fmt.Printf("Selected class %v\n", aurora.Bold(fmt.Sprintf("%v", state.Selected.Canonical())))
	for i, spot := range directive.Spotlights {
		fmt.Printf("  spotlight %d: direction %v  aperture %.3f  color %s\n",
			i, spot.Direction, spot.Aperture, aurora.Cyan(spot.Color))
	}

	inside := 0
	dirs := shape.VertexDirections(mesh)
	for _, d := range dirs {
		if selection.IsPointHighlighted(state, d) {
			inside++
		}
	}
	fmt.Printf("%d of %d vertex directions of the %s fall in the selection cone\n",
		inside, len(dirs), *shapeName)

	result := quotient.Pullback(quotient.Action{
		Kind:  quotient.ActionSelect,
		Class: state.Selected,
	})
	if quotient.ValidateSymmetry(result) {
		fmt.Println(aurora.Green("pullback symmetry holds"))
	} else {
		fmt.Println(aurora.Red("pullback symmetry violated"))
	}

	if *drawPath != "" {
		if err := selection.DebugDraw(state, mesh, *drawPath, true); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
