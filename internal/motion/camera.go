package motion

// CameraParams are the constants of the scroll dolly.
type CameraParams struct {
	BaseZ       float64
	ScrollScale float64
	Smoothing   float64
}

// Camera owns the distance of the viewpoint along the viewing axis.
type Camera struct {
	Params CameraParams
	Z      float64
}

// NewCamera starts the camera at its resting distance.
func NewCamera(p CameraParams) *Camera {
	return &Camera{Params: p, Z: p.BaseZ}
}

// TargetZ is the resting distance for a scroll offset in pixels.
func (c *Camera) TargetZ(scrollY float64) float64 {
	return c.Params.BaseZ + scrollY*c.Params.ScrollScale
}

func (c *Camera) Step(scrollY float64) {
	c.Z = Damp(c.Z, c.TargetZ(scrollY), c.Params.Smoothing)
}
