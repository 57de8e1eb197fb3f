package entities

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/config"
	"github.com/gonewx/forklift/pkg/ecs"
)

var testRed = color.RGBA{R: 230, G: 57, B: 70, A: 255}

func TestNewBallEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	id, err := NewBallEntity(em, BallSpec{
		Index:    2,
		Position: mgl64.Vec3{1, 0.35, -2},
		Color:    testRed,
		Radius:   0.35,
		Mass:     1,
		Damping:  1,
	})
	if err != nil {
		t.Fatalf("NewBallEntity failed: %v", err)
	}

	ball, ok := ecs.GetComponent[*components.BallComponent](em, id)
	if !ok || ball.Color != testRed || ball.Index != 2 {
		t.Errorf("Unexpected ball component: %+v", ball)
	}
	sphere, ok := ecs.GetComponent[*components.SphereColliderComponent](em, id)
	if !ok || sphere.Layer != components.LayerBalls {
		t.Error("Ball should be on the grabbable layer")
	}
	tag, ok := ecs.GetComponent[*components.TagComponent](em, id)
	if !ok || tag.Tag != components.TagBall {
		t.Error("Ball should carry the Ball tag")
	}
	rb, ok := ecs.GetComponent[*components.RigidBodyComponent](em, id)
	if !ok || !rb.UseGravity || rb.Kinematic {
		t.Error("Ball should be a dynamic body with gravity")
	}
	if rb.LinearDamping != 1 || rb.AngularDamping != 1 {
		t.Errorf("Expected damping 1/1, got %v/%v", rb.LinearDamping, rb.AngularDamping)
	}
}

func TestNewBallEntityRejectsBadInput(t *testing.T) {
	if _, err := NewBallEntity(nil, BallSpec{Radius: 1}); err == nil {
		t.Error("Expected error for nil entity manager")
	}
	if _, err := NewBallEntity(ecs.NewEntityManager(), BallSpec{Radius: 0}); err == nil {
		t.Error("Expected error for zero radius")
	}
}

func TestNewZoneEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	zc := config.ZoneConfig{
		Center:  config.PositionConfig{X: 5, Z: 5},
		Extents: config.PositionConfig{X: 1, Y: 1, Z: 2},
	}
	id, err := NewZoneEntity(em, 1, zc, testRed)
	if err != nil {
		t.Fatalf("NewZoneEntity failed: %v", err)
	}

	zone, _ := ecs.GetComponent[*components.ZoneComponent](em, id)
	if zone.Passed {
		t.Error("New zone must not be passed")
	}
	box, ok := ecs.GetComponent[*components.BoxColliderComponent](em, id)
	if !ok || !box.IsTrigger {
		t.Error("Zone collider should be a trigger")
	}
	if box.HalfExtents != (mgl64.Vec3{1, 1, 2}) {
		t.Errorf("Unexpected half extents %v", box.HalfExtents)
	}
	trigger, ok := ecs.GetComponent[*components.TriggerComponent](em, id)
	if !ok || trigger.Inside == nil {
		t.Error("Zone should have an initialized overlap set")
	}
}

func TestNewVehicleEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	vc := config.VehicleConfig{
		Start:      config.PositionConfig{X: 1, Z: 2},
		WheelBase:  1.6,
		BodyRadius: 0.9,
		Mass:       50,
	}
	cc := config.CarryConfig{
		HoldingOffset: config.PositionConfig{Y: 0.5, Z: 1.5},
		PickupRange:   1.2,
	}

	vehicleID, anchorID, err := NewVehicleEntity(em, vc, cc)
	if err != nil {
		t.Fatalf("NewVehicleEntity failed: %v", err)
	}

	rb, _ := ecs.GetComponent[*components.RigidBodyComponent](em, vehicleID)
	if !rb.Kinematic {
		t.Error("Vehicle body should be kinematic")
	}
	carry, ok := ecs.GetComponent[*components.CarryComponent](em, vehicleID)
	if !ok || carry.Anchor != anchorID || carry.State != components.CarryEmpty {
		t.Errorf("Unexpected carry component: %+v", carry)
	}

	anchor, ok := ecs.GetComponent[*components.AnchorComponent](em, anchorID)
	if !ok || anchor.Owner != vehicleID {
		t.Fatal("Anchor should be owned by the vehicle")
	}
	tr, _ := ecs.GetComponent[*components.TransformComponent](em, anchorID)
	want := mgl64.Vec3{1, 0.5, 3.5}
	if !tr.Position.ApproxEqual(want) {
		t.Errorf("Expected anchor at %v, got %v", want, tr.Position)
	}
}

func TestNewScorePulseEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	zoneID, _ := NewZoneEntity(em, 0, config.ZoneConfig{
		Center:  config.PositionConfig{X: -3},
		Extents: config.PositionConfig{X: 1, Y: 1, Z: 2},
	}, testRed)

	id, err := NewScorePulseEntity(em, zoneID)
	if err != nil {
		t.Fatalf("NewScorePulseEntity failed: %v", err)
	}

	pulse, ok := ecs.GetComponent[*components.ScorePulseComponent](em, id)
	if !ok {
		t.Fatal("Expected ScorePulseComponent")
	}
	if pulse.Color != testRed || pulse.MaxRadius != 3 {
		t.Errorf("Unexpected pulse %+v", pulse)
	}
	if pulse.Center != (mgl64.Vec3{-3, 0, 0}) {
		t.Errorf("Pulse should start at the zone center, got %v", pulse.Center)
	}
	if lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](em, id); !ok || lifetime.MaxLifetime != scorePulseDuration {
		t.Error("Pulse should expire after scorePulseDuration")
	}

	if _, err := NewScorePulseEntity(em, id); err == nil {
		t.Error("Expected error when source entity is not a zone")
	}
}
