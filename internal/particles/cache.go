package particles

import "github.com/go-gl/mathgl/mgl64"

// Params describes the field a scene owns.
type Params struct {
	Count  int
	RMin   float64
	RMax   float64
	Radial Radial
	Seed   uint64
}

// Field holds a scene's particle positions. The positions are generated on
// the first call to Points and the same slice is returned until Release.
type Field struct {
	params    Params
	points    []mgl64.Vec3
	generated bool
	// generations counts how many times the positions were computed.
	generations int
}

func NewField(p Params) *Field {
	return &Field{params: p}
}

// Points returns the cached positions, generating them on first use.
// Callers must not modify the returned slice.
func (f *Field) Points() []mgl64.Vec3 {
	if !f.generated {
		f.points = GenerateRadial(f.params.Count, f.params.RMin, f.params.RMax, f.params.Radial, NewSource(f.params.Seed))
		f.generated = true
		f.generations++
	}
	return f.points
}

// Ready reports whether positions have been generated and not released.
func (f *Field) Ready() bool { return f.generated }

// Release drops the cached positions.
func (f *Field) Release() {
	f.points = nil
	f.generated = false
}

func (f *Field) Params() Params { return f.params }

func (f *Field) Generations() int { return f.generations }
