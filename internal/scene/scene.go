// Package scene composes the particle field, its motion and the camera into
// a drawable list of screen-space sprites.
package scene

import (
	"cmp"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/iburimskiy/blxck-backdrop/internal/config"
	"github.com/iburimskiy/blxck-backdrop/internal/motion"
	"github.com/iburimskiy/blxck-backdrop/internal/particles"
	"github.com/iburimskiy/blxck-backdrop/internal/viewstate"
)

const (
	nearPlane   = 0.1
	farPlane    = 1000.0
	sphereCount = 8
	minRadius   = 0.5
)

type Kind int

const (
	KindParticle Kind = iota
	KindSphere
)

// Sprite is a projected point: pixel center, pixel radius and view depth.
type Sprite struct {
	X, Y   float64
	Radius float64
	Depth  float64
	Kind   Kind
}

type Params struct {
	Field        particles.Params
	Follow       motion.FollowParams
	Camera       motion.CameraParams
	FieldOfView  float64 // vertical, degrees
	ParticleSize float64 // world units, attenuated with depth
	SphereRadius float64
}

// ParamsFrom maps a resolved config onto scene parameters.
func ParamsFrom(cfg config.Config) Params {
	return Params{
		Field: cfg.FieldParams(),
		Follow: motion.FollowParams{
			RotationStep: cfg.Rotation(),
			GainX:        cfg.FollowGainX,
			GainY:        cfg.FollowGainY,
			Smoothing:    cfg.Smoothing,
		},
		Camera: motion.CameraParams{
			BaseZ:       cfg.CameraBaseZ,
			ScrollScale: cfg.ScrollFactor,
			Smoothing:   cfg.Smoothing,
		},
		FieldOfView:  cfg.FieldOfView,
		ParticleSize: cfg.ParticleSize,
		SphereRadius: config.SphereRadius,
	}
}

type Scene struct {
	params   Params
	field    *particles.Field
	follower *motion.Follower
	camera   *motion.Camera
	spheres  []mgl64.Vec3
	mounted  bool
	frames   int
}

func New(p Params) *Scene {
	return &Scene{
		params:   p,
		field:    particles.NewField(p.Field),
		follower: motion.NewFollower(p.Follow),
		camera:   motion.NewCamera(p.Camera),
		spheres:  decorativeSpheres(sphereCount),
	}
}

// decorativeSpheres places the small static spheres around the field.
func decorativeSpheres(n int) []mgl64.Vec3 {
	out := make([]mgl64.Vec3, n)
	for i := range out {
		f := float64(i)
		out[i] = mgl64.Vec3{math.Sin(f*0.8) * 6, math.Cos(f*1.2) * 4, math.Cos(f*1.5) * 3}
	}
	return out
}

// Mount generates the field. Calling it again keeps the existing positions.
func (s *Scene) Mount() {
	s.field.Points()
	s.mounted = true
}

// Unmount releases the field along with its offset, rotation and camera
// distance. Step does nothing until the next Mount, which starts at rest.
func (s *Scene) Unmount() {
	s.field.Release()
	s.follower = motion.NewFollower(s.params.Follow)
	s.camera = motion.NewCamera(s.params.Camera)
	s.mounted = false
}

func (s *Scene) Mounted() bool { return s.mounted }

// Step applies one frame of motion for the current view.
func (s *Scene) Step(v viewstate.View) {
	if !s.mounted {
		return
	}
	s.follower.Step(v.MouseX, v.MouseY)
	s.camera.Step(v.ScrollY)
	s.frames++
}

func (s *Scene) Frames() int { return s.frames }

// Points exposes the field positions; nil before Mount.
func (s *Scene) Points() []mgl64.Vec3 {
	if !s.field.Ready() {
		return nil
	}
	return s.field.Points()
}

func (s *Scene) Field() *particles.Field { return s.field }

func (s *Scene) Follower() motion.Follower { return *s.follower }

func (s *Scene) CameraZ() float64 { return s.camera.Z }

// Project returns the visible sprites for a w×h viewport, far to near.
func (s *Scene) Project(w, h int) []Sprite {
	if !s.mounted || w <= 0 || h <= 0 {
		return nil
	}

	fov := mgl64.DegToRad(s.params.FieldOfView)
	proj := mgl64.Perspective(fov, float64(w)/float64(h), nearPlane, farPlane)
	eye := mgl64.Vec3{0, 0, s.camera.Z}
	view := mgl64.LookAtV(eye, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
	vp := proj.Mul4(view)

	f := s.follower
	model := mgl64.Translate3D(f.OffsetX, f.OffsetY, 0).Mul4(mgl64.HomogRotate3DY(f.RotationY))
	mvp := vp.Mul4(model)

	vw := viewport{w: float64(w), h: float64(h), focal: float64(h) / 2 / math.Tan(fov/2)}

	points := s.field.Points()
	out := make([]Sprite, 0, len(points)+len(s.spheres))
	for _, p := range points {
		// GL point attenuation gives a diameter of size * (h/2) / depth;
		// the sprite radius is half that.
		if sp, ok := vw.project(mvp, p); ok {
			sp.Radius = math.Max(minRadius, s.params.ParticleSize*vw.h/4/sp.Depth)
			sp.Kind = KindParticle
			out = append(out, sp)
		}
	}
	for _, p := range s.spheres {
		if sp, ok := vw.project(vp, p); ok {
			sp.Radius = math.Max(minRadius, s.params.SphereRadius*vw.focal/sp.Depth)
			sp.Kind = KindSphere
			out = append(out, sp)
		}
	}

	slices.SortStableFunc(out, func(a, b Sprite) int { return cmp.Compare(b.Depth, a.Depth) })
	return out
}

type viewport struct {
	w, h  float64
	focal float64
}

func (vw viewport) project(m mgl64.Mat4, p mgl64.Vec3) (Sprite, bool) {
	clip := m.Mul4x1(p.Vec4(1))
	depth := clip.W()
	if depth <= nearPlane {
		return Sprite{}, false
	}
	nx, ny := clip.X()/depth, clip.Y()/depth
	if nx < -1 || nx > 1 || ny < -1 || ny > 1 {
		return Sprite{}, false
	}
	return Sprite{
		X:     (nx + 1) / 2 * vw.w,
		Y:     (1 - ny) / 2 * vw.h,
		Depth: depth,
	}, true
}
