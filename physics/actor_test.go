package physics

import (
	"errors"
	"testing"

	"github.com/jakecoffman/cp"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"valid", func(c *Config) {}, nil},
		{"one_horizontal_ray", func(c *Config) { c.HorizontalRayCount = 1 }, ErrRayCount},
		{"one_vertical_ray", func(c *Config) { c.VerticalRayCount = 1 }, ErrRayCount},
		{"too_many_rays", func(c *Config) { c.VerticalRayCount = 16 }, ErrRayCount},
		{"feet_wider_than_body", func(c *Config) { c.FeetWidth = 1 }, ErrFeetWidth},
		{"no_height", func(c *Config) { c.ColliderHeight = 0 }, ErrSize},
		{"flat_slope_limit", func(c *Config) { c.MaxSlopeAngle = 90 }, ErrSlopeAngle},
		{"negative_scale", func(c *Config) { c.Scale.Y = -1 }, ErrScale},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cfg := testConfig()
			c.mutate(&cfg)
			err := cfg.Validate()
			if c.want == nil {
				if err != nil {
					t.Fatalf("expected valid config, got %v", err)
				}
				return
			}
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestNewActorRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.HorizontalRayCount = 1
	if _, err := NewActor(cfg, cp.Vector{}); !errors.Is(err, ErrRayCount) {
		t.Fatalf("expected ErrRayCount, got %v", err)
	}
}

func TestNewActorDefaults(t *testing.T) {
	a, err := NewActor(Config{FeetWidth: 0.5, BodyWidth: 0.8, ColliderHeight: 1}, cp.Vector{X: 2, Y: 3})
	if err != nil {
		t.Fatalf("new actor: %v", err)
	}
	cfg := a.Config()
	if cfg.VerticalRayCount != 2 || cfg.HorizontalRayCount != 2 || cfg.MaxSlopeAngle != 45 || cfg.FixSpeed != 1 {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.Mask != ^uint(0) {
		t.Fatalf("expected all layers by default, got %b", cfg.Mask)
	}
	b := a.Bounds()
	if !near(b.L, 1.6) || !near(b.R, 2.4) || !near(b.B, 3) || !near(b.T, 4) {
		t.Fatalf("unexpected bounds %+v", b)
	}
}

func TestActorSetConfig(t *testing.T) {
	a := mustActor(testConfig(), cp.Vector{})
	cfg := testConfig()
	cfg.MaxSlopeAngle = 30
	if err := a.SetConfig(cfg); err != nil {
		t.Fatalf("set config: %v", err)
	}
	if a.Config().MaxSlopeAngle != 30 {
		t.Fatalf("expected new slope limit")
	}

	cfg.VerticalRayCount = 0
	cfg.HorizontalRayCount = 20
	if err := a.SetConfig(cfg); !errors.Is(err, ErrRayCount) {
		t.Fatalf("expected ErrRayCount, got %v", err)
	}
	if a.Config().HorizontalRayCount != 3 {
		t.Fatalf("rejected config must not be applied")
	}
}

func TestColliderFixup(t *testing.T) {
	a := mustActor(testConfig(), cp.Vector{})
	var deferred Deferred
	fix := NewColliderFixup(a)
	deferred.Schedule(fix)

	deferred.RunFrame()
	deferred.RunFrame()
	if deferred.Pending() != 1 || a.LayoutReady() {
		t.Fatalf("fixup must wait for the collider to change")
	}
	if fix.Frames() != 2 {
		t.Fatalf("expected 2 waiting frames, got %d", fix.Frames())
	}

	a.ApplyContactFixup(DefaultContactOffset)
	settled := a.Collider.Size.Y
	if !near(settled, 0.96) {
		t.Fatalf("expected contact fixup to shrink height to 0.96, got %v", settled)
	}

	deferred.RunFrame()
	if deferred.Pending() != 0 || !a.LayoutReady() {
		t.Fatalf("fixup should have completed")
	}

	offset := 45 * 0.00025
	if !near(a.Collider.Size.Y, settled-offset) {
		t.Fatalf("expected height %v, got %v", settled-offset, a.Collider.Size.Y)
	}
	if !near(a.Collider.Offset.Y, 0.5+offset/2) {
		t.Fatalf("expected offset %v, got %v", 0.5+offset/2, a.Collider.Offset.Y)
	}
	if a.ProbeHeight() != 1 {
		t.Fatalf("probe height must keep the creation height, got %v", a.ProbeHeight())
	}

	a.OnLayoutReady(5)
	if !near(a.Collider.Size.Y, settled-offset) {
		t.Fatalf("layout must only apply once")
	}
}

func TestSetConfigAfterLayout(t *testing.T) {
	a := mustActor(testConfig(), cp.Vector{})
	a.OnLayoutReady(0.96)

	cfg := testConfig()
	cfg.MaxSlopeAngle = 30
	if err := a.SetConfig(cfg); err != nil {
		t.Fatalf("set config: %v", err)
	}
	offset := 30 * 0.00025
	if !near(a.Collider.Size.Y, 0.96-offset) {
		t.Fatalf("expected height %v, got %v", 0.96-offset, a.Collider.Size.Y)
	}
	if !near(a.Collider.Offset.Y, 0.5+offset/2) {
		t.Fatalf("expected offset %v, got %v", 0.5+offset/2, a.Collider.Offset.Y)
	}

	cfg.Scale.Y = 2
	if err := a.SetConfig(cfg); err != nil {
		t.Fatalf("set config: %v", err)
	}
	offset = 30 * 0.00025 / 2
	if !near(a.Collider.Size.Y, 0.96-offset) {
		t.Fatalf("expected scaled height %v, got %v", 0.96-offset, a.Collider.Size.Y)
	}
	if !near(a.Collider.Offset.Y, 0.5+offset/2) {
		t.Fatalf("expected scaled offset %v, got %v", 0.5+offset/2, a.Collider.Offset.Y)
	}

	// unrelated tuning leaves the collider alone
	cfg.FixSpeed = 3
	if err := a.SetConfig(cfg); err != nil {
		t.Fatalf("set config: %v", err)
	}
	if !near(a.Collider.Size.Y, 0.96-offset) {
		t.Fatalf("collider changed on an unrelated update: %v", a.Collider.Size.Y)
	}
}

func TestContactFixup(t *testing.T) {
	cases := []struct {
		name             string
		size, scale, off float64
		want             float64
	}{
		{"unit", 1, 1, 0.01, 0.96},
		{"scaled", 1, 2, 0.01, 0.98},
		{"floored", 0.02, 1, 0.01, 0.01},
		{"zero", 0, 1, 0.01, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ContactFixup(c.size, c.scale, c.off); !near(got, c.want) {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestDeferredTaskFunc(t *testing.T) {
	var d Deferred
	n := 0
	d.Schedule(TaskFunc(func() bool {
		n++
		return n == 3
	}))
	d.Schedule(nil)
	for i := 0; i < 5; i++ {
		d.RunFrame()
	}
	if n != 3 {
		t.Fatalf("expected the task to be polled until done, polled %d times", n)
	}
}

func TestCollisionProbeCast(t *testing.T) {
	var origins []cp.Vector
	p := CollisionProbe{Prober: ProberFunc(func(origin, dir cp.Vector, length float64, mask uint) RayHit {
		origins = append(origins, origin)
		return RayHit{Hit: true, Distance: origin.Y}
	})}

	hits := p.Cast(cp.Vector{X: 1}, cp.Vector{X: 1}, cp.Vector{Y: 1}, 3, 2, 1)
	if len(hits) != 3 || len(origins) != 3 {
		t.Fatalf("expected 3 rays, got %d", len(hits))
	}
	for i, want := range []float64{0, 0.5, 1} {
		if !near(origins[i].Y, want) || origins[i].X != 1 {
			t.Fatalf("ray %d: expected origin y=%v, got %v", i, want, origins[i])
		}
		if hits[i].Distance != origins[i].Y {
			t.Fatalf("ray %d: hit not returned in order", i)
		}
	}

	if got := p.Cast(cp.Vector{}, cp.Vector{X: 1}, cp.Vector{Y: 1}, 1, 2, 1); got != nil {
		t.Fatalf("expected nil for a single ray, got %v", got)
	}
}

func TestCollisionInfoReset(t *testing.T) {
	info := CollisionInfo{Left: true, Right: true, Below: true, Above: true, Sliding: true, GroundNormal: cp.Vector{X: 1}}
	info.Reset()
	if info.Left || info.Right || info.Below || info.Above || info.Sliding {
		t.Fatalf("expected cleared flags, got %s", info)
	}
	if info.GroundNormal != (cp.Vector{X: 0, Y: 1}) {
		t.Fatalf("expected up ground normal, got %v", info.GroundNormal)
	}
}
