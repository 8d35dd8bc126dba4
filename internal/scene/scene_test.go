package scene

import (
	"math"
	"testing"

	"github.com/iburimskiy/blxck-backdrop/internal/config"
	"github.com/iburimskiy/blxck-backdrop/internal/particles"
	"github.com/iburimskiy/blxck-backdrop/internal/viewstate"
)

// originScene has a single particle at the origin so its projection is easy
// to reason about.
func originScene() *Scene {
	p := ParamsFrom(config.Default())
	p.Field = particles.Params{Count: 1, RMin: 0, RMax: 0, Seed: 1}
	return New(p)
}

func particleSprites(sprites []Sprite) []Sprite {
	var out []Sprite
	for _, sp := range sprites {
		if sp.Kind == KindParticle {
			out = append(out, sp)
		}
	}
	return out
}

func TestStepBeforeMountIsNoop(t *testing.T) {
	s := originScene()
	s.Step(viewstate.View{MouseX: 1, ScrollY: 1000})

	if s.Frames() != 0 {
		t.Errorf("Expected no frames before mount, got %d", s.Frames())
	}
	if f := s.Follower(); f.OffsetX != 0 || f.RotationY != 0 {
		t.Errorf("Expected follower untouched, got %+v", f)
	}
	if s.CameraZ() != 18 {
		t.Errorf("Expected camera at rest, got %v", s.CameraZ())
	}
	if s.Points() != nil || s.Project(800, 600) != nil {
		t.Error("Expected nothing to draw before mount")
	}
}

func TestFieldReusedAcrossFrames(t *testing.T) {
	s := New(ParamsFrom(config.Default()))
	s.Mount()
	first := s.Points()
	if len(first) != 500 {
		t.Fatalf("Expected 500 points, got %d", len(first))
	}

	for i := 0; i < 300; i++ {
		s.Step(viewstate.View{MouseX: 0.3, MouseY: -0.4, ScrollY: float64(i)})
		_ = s.Project(1280, 720)
	}
	s.Mount()

	if &s.Points()[0] != &first[0] {
		t.Error("Expected the same positions to be reused by reference")
	}
	if s.Field().Generations() != 1 {
		t.Errorf("Expected one generation, got %d", s.Field().Generations())
	}
}

func TestUnmountReleasesField(t *testing.T) {
	s := originScene()
	s.Mount()
	s.Unmount()
	if s.Mounted() || s.Field().Ready() {
		t.Error("Expected unmount to release the field")
	}
	s.Step(viewstate.View{MouseX: 1})
	if s.Frames() != 0 {
		t.Error("Expected no steps after unmount")
	}
}

func TestRemountStartsAtRest(t *testing.T) {
	s := New(ParamsFrom(config.Default()))
	s.Mount()
	for i := 0; i < 300; i++ {
		s.Step(viewstate.View{MouseX: 1, MouseY: 1, ScrollY: 2000})
	}
	if f := s.Follower(); f.OffsetX == 0 || f.RotationY == 0 || s.CameraZ() == 18 {
		t.Fatalf("Expected motion before unmount, got %+v z=%v", f, s.CameraZ())
	}

	s.Unmount()
	s.Mount()

	if f := s.Follower(); f.OffsetX != 0 || f.OffsetY != 0 || f.RotationY != 0 {
		t.Errorf("Expected remounted field at rest, got %+v", f)
	}
	if s.CameraZ() != 18 {
		t.Errorf("Expected camera back at 18, got %v", s.CameraZ())
	}
	if s.Field().Generations() != 2 {
		t.Errorf("Expected a fresh generation on remount, got %d", s.Field().Generations())
	}
}

func TestProjectOriginAtCenter(t *testing.T) {
	s := originScene()
	s.Mount()

	sprites := particleSprites(s.Project(800, 600))
	if len(sprites) != 1 {
		t.Fatalf("Expected one particle sprite, got %d", len(sprites))
	}
	sp := sprites[0]
	if math.Abs(sp.X-400) > 1e-6 || math.Abs(sp.Y-300) > 1e-6 {
		t.Errorf("Expected origin at (400, 300), got (%v, %v)", sp.X, sp.Y)
	}
	if math.Abs(sp.Depth-18) > 1e-6 {
		t.Errorf("Expected depth 18, got %v", sp.Depth)
	}
}

func TestProjectFollowsPointer(t *testing.T) {
	s := originScene()
	s.Mount()
	for i := 0; i < 100; i++ {
		s.Step(viewstate.View{MouseX: 1, MouseY: 1})
	}

	sp := particleSprites(s.Project(800, 600))[0]
	if sp.X <= 400 {
		t.Errorf("Expected field to move right, got x=%v", sp.X)
	}
	// Pointer up maps to a negative world offset, which is lower on screen.
	if sp.Y <= 300 {
		t.Errorf("Expected field below center for mouseY=1, got y=%v", sp.Y)
	}
}

func TestProjectScrollRecedes(t *testing.T) {
	s := originScene()
	s.Mount()
	before := particleSprites(s.Project(800, 600))[0]

	for i := 0; i < 500; i++ {
		s.Step(viewstate.View{ScrollY: 3000})
	}
	after := particleSprites(s.Project(800, 600))[0]

	if after.Depth <= before.Depth {
		t.Errorf("Expected camera to recede: depth %v -> %v", before.Depth, after.Depth)
	}
	if after.Radius > before.Radius {
		t.Errorf("Expected sprite to shrink: radius %v -> %v", before.Radius, after.Radius)
	}
}

func TestProjectSortedFarToNear(t *testing.T) {
	s := New(ParamsFrom(config.Default()))
	s.Mount()
	sprites := s.Project(1280, 720)
	if len(sprites) == 0 {
		t.Fatal("Expected visible sprites")
	}
	for i := 1; i < len(sprites); i++ {
		if sprites[i].Depth > sprites[i-1].Depth {
			t.Fatalf("Sprite %d is farther than sprite %d", i, i-1)
		}
	}
	for _, sp := range sprites {
		if sp.X < 0 || sp.X > 1280 || sp.Y < 0 || sp.Y > 720 {
			t.Fatalf("Sprite outside viewport: %+v", sp)
		}
	}
}

func TestDecorativeSpheres(t *testing.T) {
	spheres := decorativeSpheres(8)
	if len(spheres) != 8 {
		t.Fatalf("Expected 8 spheres, got %d", len(spheres))
	}
	if spheres[0].X() != 0 || spheres[0].Y() != 4 || spheres[0].Z() != 3 {
		t.Errorf("Unexpected first sphere: %v", spheres[0])
	}
}
