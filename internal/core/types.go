package core

import "sort"

// Size describes the dimensions of a shape grid.
type Size struct {
	W int
	H int
}

// Shape is a seeded blob generator rendered into a byte grid.
type Shape interface {
	Name() string
	Size() Size
	// Reset regenerates the grid for seed.
	Reset(seed int64) error
	Cells() []uint8
}

// Factory constructs a Shape using an optional configuration map.
type Factory func(cfg map[string]string) Shape

var shapes = map[string]Factory{}

// Register adds a shape factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	shapes[name] = f
}

// Shapes exposes the registry of available shape factories.
func Shapes() map[string]Factory {
	return shapes
}

// ShapeNames returns the registered names in sorted order.
func ShapeNames() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
