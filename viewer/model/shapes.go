package model

import (
	"fmt"
	"math"

	"github.com/chwjbn/line-viewer/viewer/gpu"
	"github.com/go-gl/mathgl/mgl32"
)

// Shape is line geometry not yet on the GPU.
type Shape struct {
	Name     string
	Vertices []mgl32.Vec3
	Topology gpu.Primitive
	Color    mgl32.Vec4
}

var (
	ColorRed   = mgl32.Vec4{0.9, 0.2, 0.2, 1}
	ColorGreen = mgl32.Vec4{0.2, 0.9, 0.2, 1}
	ColorBlue  = mgl32.Vec4{0.3, 0.4, 1, 1}
	ColorGray  = mgl32.Vec4{0.45, 0.45, 0.45, 1}
	ColorWhite = mgl32.Vec4{1, 1, 1, 1}
)

// Cube is the 12 edges of an axis-aligned cube centred on the origin.
func Cube(size float32) Shape {

	h := size / 2

	corners := [8]mgl32.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}

	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // back
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // front
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}

	vertices := make([]mgl32.Vec3, 0, len(edges)*2)
	for _, e := range edges {
		vertices = append(vertices, corners[e[0]], corners[e[1]])
	}

	return Shape{Name: "cube", Vertices: vertices, Topology: gpu.Lines, Color: ColorWhite}
}

// Axes returns the x, y and z axes as red, green and blue segments.
func Axes(length float32) []Shape {
	axis := func(name string, dir mgl32.Vec3, color mgl32.Vec4) Shape {
		return Shape{
			Name:     name,
			Vertices: []mgl32.Vec3{{0, 0, 0}, dir.Mul(length)},
			Topology: gpu.Lines,
			Color:    color,
		}
	}
	return []Shape{
		axis("axis_x", mgl32.Vec3{1, 0, 0}, ColorRed),
		axis("axis_y", mgl32.Vec3{0, 1, 0}, ColorGreen),
		axis("axis_z", mgl32.Vec3{0, 0, 1}, ColorBlue),
	}
}

// Grid is a square grid on the xz plane with the given number of cells
// per side.
func Grid(size float32, divisions int) Shape {

	if divisions < 1 {
		divisions = 1
	}

	h := size / 2
	step := size / float32(divisions)

	vertices := make([]mgl32.Vec3, 0, (divisions+1)*4)
	for i := 0; i <= divisions; i++ {
		p := -h + float32(i)*step
		vertices = append(vertices,
			mgl32.Vec3{p, 0, -h}, mgl32.Vec3{p, 0, h},
			mgl32.Vec3{-h, 0, p}, mgl32.Vec3{h, 0, p},
		)
	}

	return Shape{Name: "grid", Vertices: vertices, Topology: gpu.Lines, Color: ColorGray}
}

// Circle is a closed loop on the xy plane.
func Circle(radius float32, segments int) Shape {

	if segments < 3 {
		segments = 3
	}

	vertices := make([]mgl32.Vec3, 0, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		vertices = append(vertices, mgl32.Vec3{
			radius * float32(math.Cos(a)),
			radius * float32(math.Sin(a)),
			0,
		})
	}

	return Shape{Name: "circle", Vertices: vertices, Topology: gpu.LineLoop, Color: ColorWhite}
}

// Shapes builds the named built-in geometry.
func Shapes(kind string, size float32) ([]Shape, error) {
	switch kind {
	case "cube":
		return []Shape{Cube(size)}, nil
	case "axes":
		return Axes(size), nil
	case "grid":
		return []Shape{Grid(size, 10)}, nil
	case "circle":
		return []Shape{Circle(size/2, 64)}, nil
	case "scene":
		shapes := []Shape{Grid(size*2, 10), Cube(size)}
		return append(shapes, Axes(size)...), nil
	}
	return nil, fmt.Errorf("unknown model kind [%s]", kind)
}
