package icon

import (
	"image"

	"github.com/fogleman/gg"
)

// nodeCount is the number of circles drawn along the centerline.
const nodeCount = 5

// SmallSize is the hand-drawn frame resolution used in the bundle.
// The regular node layout does not render legibly this small.
const SmallSize = 16

// Node is one circle of the icon graphic, in pixel coordinates.
type Node struct {
	X, Y   int
	Radius int
	Color  RGB
}

// Layout computes the node positions for a square canvas of the given size:
// five nodes evenly spaced along the horizontal centerline, the middle one
// enlarged and center-colored, its neighbours inner-colored, the rest outer.
func Layout(size int, pal Palette) []Node {
	padding := size / 8
	content := size - 2*padding
	spacing := content / (nodeCount + 1)
	radius := size / 32
	if radius < 2 {
		radius = 2
	}

	nodes := make([]Node, 0, nodeCount)
	for i := 0; i < nodeCount; i++ {
		n := Node{
			X:      padding + spacing*(i+1),
			Y:      size / 2,
			Radius: radius,
			Color:  pal.Outer,
		}
		switch i {
		case nodeCount / 2:
			n.Color = pal.Center
			n.Radius = radius * 3 / 2
		case nodeCount/2 - 1, nodeCount/2 + 1:
			n.Color = pal.Inner
		}
		nodes = append(nodes, n)
	}
	return nodes
}

// Render rasterizes the node graphic onto a size x size canvas.
func Render(size int, pal Palette) image.Image {
	dc := gg.NewContext(size, size)
	dc.SetRGB255(int(pal.Background.R), int(pal.Background.G), int(pal.Background.B))
	dc.Clear()
	for _, n := range Layout(size, pal) {
		dc.SetRGB255(int(n.Color.R), int(n.Color.G), int(n.Color.B))
		dc.DrawCircle(float64(n.X), float64(n.Y), float64(n.Radius))
		dc.Fill()
	}
	return dc.Image()
}

// RenderSmall draws the 16x16 bundle frame: background fill plus a single
// centered dot in the center color.
func RenderSmall(pal Palette) image.Image {
	dc := gg.NewContext(SmallSize, SmallSize)
	dc.SetRGB255(int(pal.Background.R), int(pal.Background.G), int(pal.Background.B))
	dc.Clear()
	dc.SetRGB255(int(pal.Center.R), int(pal.Center.G), int(pal.Center.B))
	dc.DrawCircle(SmallSize/2, SmallSize/2, 2)
	dc.Fill()
	return dc.Image()
}
