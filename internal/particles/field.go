package particles

import (
	"math"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl64"
)

// Radial selects how a particle's distance from the origin is drawn.
type Radial int

const (
	// RadialLinear draws r uniformly in [rMin, rMax]. Density rises toward
	// the inner shell, which is the look of the original backdrop.
	RadialLinear Radial = iota
	// RadialVolumetric applies the cube-root transform so the shell is
	// filled with uniform density per unit volume.
	RadialVolumetric
)

func (r Radial) String() string {
	switch r {
	case RadialVolumetric:
		return "volumetric"
	default:
		return "linear"
	}
}

// ParseRadial maps a config name to a Radial. ok is false for unknown names.
func ParseRadial(name string) (Radial, bool) {
	switch name {
	case "", "linear":
		return RadialLinear, true
	case "volumetric":
		return RadialVolumetric, true
	}
	return RadialLinear, false
}

// Source is a uniform random source in [0,1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type ambient struct{}

func (ambient) Float64() float64 { return rand.Float64() }

// NewSource returns a seeded source, or the ambient one for seed 0.
func NewSource(seed uint64) Source {
	if seed == 0 {
		return ambient{}
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Generate places count points on a spherical shell between rMin and rMax.
// Directions are uniform over the sphere (phi is drawn as acos(2U-1), not
// uniformly, so points do not bunch up at the poles).
func Generate(count int, rMin, rMax float64, src Source) []mgl64.Vec3 {
	return GenerateRadial(count, rMin, rMax, RadialLinear, src)
}

// GenerateRadial is Generate with an explicit radial distribution.
func GenerateRadial(count int, rMin, rMax float64, mode Radial, src Source) []mgl64.Vec3 {
	if count < 0 {
		count = 0
	}
	if src == nil {
		src = ambient{}
	}

	pos := make([]mgl64.Vec3, count)
	for i := range pos {
		r := radius(rMin, rMax, mode, src.Float64())
		theta := src.Float64() * math.Pi * 2
		phi := math.Acos(2*src.Float64() - 1)

		sinPhi := math.Sin(phi)
		pos[i] = mgl64.Vec3{
			r * sinPhi * math.Cos(theta),
			r * sinPhi * math.Sin(theta),
			r * math.Cos(phi),
		}
	}
	return pos
}

func radius(rMin, rMax float64, mode Radial, u float64) float64 {
	if mode == RadialVolumetric {
		lo := rMin * rMin * rMin
		hi := rMax * rMax * rMax
		return math.Cbrt(lo + u*(hi-lo))
	}
	return rMin + u*(rMax-rMin)
}
