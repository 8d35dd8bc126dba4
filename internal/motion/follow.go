// Package motion holds the per-frame update rules of the backdrop: the
// damped pointer follow of the particle field and the scroll-driven camera
// dolly. Both step once per display tick and are frame-rate dependent.
package motion

// Damp moves current a fraction alpha of the way to target.
func Damp(current, target, alpha float64) float64 {
	return current + (target-current)*alpha
}

// FollowParams are the constants of the pointer follow.
type FollowParams struct {
	RotationStep float64 // radians added to the Y rotation each frame
	GainX        float64
	GainY        float64
	Smoothing    float64
}

// Follower is the rigid-body state of the particle field: an offset in the
// XY plane and a rotation about the vertical axis.
type Follower struct {
	Params    FollowParams
	OffsetX   float64
	OffsetY   float64
	RotationY float64
}

func NewFollower(p FollowParams) *Follower {
	return &Follower{Params: p}
}

// Target returns where the field is heading for a pointer position.
// mouseY is inverted so that moving the pointer up moves the field up.
func (f *Follower) Target(mouseX, mouseY float64) (x, y float64) {
	return mouseX * f.Params.GainX, -mouseY * f.Params.GainY
}

// Step advances the field by one frame.
func (f *Follower) Step(mouseX, mouseY float64) {
	f.RotationY += f.Params.RotationStep

	tx, ty := f.Target(mouseX, mouseY)
	f.OffsetX = Damp(f.OffsetX, tx, f.Params.Smoothing)
	f.OffsetY = Damp(f.OffsetY, ty, f.Params.Smoothing)
}
