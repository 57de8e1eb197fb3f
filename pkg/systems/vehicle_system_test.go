package systems

import (
	"math"
	"testing"

	"github.com/gonewx/forklift/pkg/components"
	"github.com/gonewx/forklift/pkg/ecs"
	"github.com/gonewx/forklift/pkg/utils"
)

const floatTolerance = 1e-9

func newTestVehicleComponent() *components.VehicleComponent {
	vc := testVehicleConfig()
	return &components.VehicleComponent{
		WheelBase:       vc.WheelBase,
		MaxSteerAngle:   vc.MaxSteerAngleRad(),
		SteerResponse:   vc.SteerResponse,
		MaxForwardSpeed: vc.MaxForwardSpeed,
		MaxReverseSpeed: vc.MaxReverseSpeed,
		Accel:           vc.Accel,
		BrakeAccel:      vc.BrakeAccel,
		Drag:            vc.Drag,
	}
}

func TestIntegrateVehicle_SteerStaysBounded(t *testing.T) {
	steps := []float64{0, 0.001, 0.02, 0.5, 5}
	inputs := []float64{-1, 1, 0.4, 3, -7}

	for _, dt := range steps {
		for _, steer := range inputs {
			v := newTestVehicleComponent()
			for i := 0; i < 50; i++ {
				IntegrateVehicle(v, steer, 1, dt)
				if math.Abs(v.SteerAngle) > v.MaxSteerAngle+floatTolerance {
					t.Fatalf("dt=%v steer=%v: steer angle %v exceeds max %v", dt, steer, v.SteerAngle, v.MaxSteerAngle)
				}
			}
		}
	}
}

func TestIntegrateVehicle_SpeedStaysBounded(t *testing.T) {
	tests := []struct {
		name string
		drag float64
	}{
		{"无阻力", 0},
		{"默认阻力", 0.2},
	}

	// 固定的油门序列：全速前进、急倒车、超范围输入、松开
	throttles := []float64{1, 1, 1, -1, -1, 2, -3, 0, 0.5, -0.5}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestVehicleComponent()
			v.Drag = tt.drag
			for i := 0; i < 2000; i++ {
				throttle := throttles[(i/37)%len(throttles)]
				IntegrateVehicle(v, 0, throttle, 0.02)
				if v.Speed > v.MaxForwardSpeed+floatTolerance {
					t.Fatalf("step %d: speed %v exceeds max forward %v", i, v.Speed, v.MaxForwardSpeed)
				}
				if -v.Speed > v.MaxReverseSpeed+floatTolerance {
					t.Fatalf("step %d: reverse speed %v exceeds max reverse %v", i, -v.Speed, v.MaxReverseSpeed)
				}
			}
		})
	}
}

func TestIntegrateVehicle_ThrottleThenCoast(t *testing.T) {
	v := newTestVehicleComponent()
	dt := 0.02

	// 油门全开 2 秒：每步增量不超过 accel·dt
	prev := v.Speed
	for i := 0; i < 100; i++ {
		IntegrateVehicle(v, 0, 1, dt)
		if v.Speed-prev > v.Accel*dt+floatTolerance {
			t.Fatalf("step %d: speed rose by %v, more than accel*dt=%v", i, v.Speed-prev, v.Accel*dt)
		}
		if v.Speed < 0 {
			t.Fatalf("step %d: speed became negative under full throttle: %v", i, v.Speed)
		}
		prev = v.Speed
	}
	if v.Speed <= 0 {
		t.Fatalf("Expected positive speed after throttle, got %v", v.Speed)
	}

	// 松开油门：单调衰减到 0，不会反向
	for i := 0; i < 500; i++ {
		IntegrateVehicle(v, 0, 0, dt)
		if v.Speed < 0 {
			t.Fatalf("coast step %d: speed reversed sign: %v", i, v.Speed)
		}
		if v.Speed > prev+floatTolerance {
			t.Fatalf("coast step %d: speed increased from %v to %v", i, prev, v.Speed)
		}
		prev = v.Speed
	}
	if v.Speed != 0 {
		t.Errorf("Expected vehicle to come to rest, got speed %v", v.Speed)
	}
}

func TestIntegrateVehicle_BrakeUsesBrakeAccel(t *testing.T) {
	v := newTestVehicleComponent()
	v.Drag = 0
	v.Speed = 4

	IntegrateVehicle(v, 0, -1, 0.02)

	expected := 4 - v.BrakeAccel*0.02
	if math.Abs(v.Speed-expected) > floatTolerance {
		t.Errorf("Expected braking to speed %v, got %v", expected, v.Speed)
	}
}

func TestIntegrateVehicle_ZeroDeltaIsNoop(t *testing.T) {
	v := newTestVehicleComponent()
	v.Speed = 2
	v.SteerAngle = 0.1
	v.Heading = 0.3
	before := *v

	delta := IntegrateVehicle(v, 1, 1, 0)

	if *v != before {
		t.Errorf("Expected state unchanged, got %+v", *v)
	}
	if delta.Len() != 0 {
		t.Errorf("Expected zero displacement, got %v", delta)
	}
}

func TestIntegrateVehicle_NoYawWithoutWheelBase(t *testing.T) {
	v := newTestVehicleComponent()
	v.WheelBase = 0
	for i := 0; i < 50; i++ {
		IntegrateVehicle(v, 1, 1, 0.02)
	}
	if v.Heading != 0 {
		t.Errorf("Expected heading 0 with zero wheel base, got %v", v.Heading)
	}
}

func TestIntegrateVehicle_SteerRightTurnsTowardPositiveX(t *testing.T) {
	v := newTestVehicleComponent()
	var total float64
	for i := 0; i < 100; i++ {
		d := IntegrateVehicle(v, 1, 1, 0.02)
		total += d.X()
	}
	if v.Heading <= 0 {
		t.Errorf("Expected positive heading when steering right, got %v", v.Heading)
	}
	if total <= 0 {
		t.Errorf("Expected displacement toward +X, got %v", total)
	}
}

func TestVehicleSystem_MovesEntityWithoutLateralVelocity(t *testing.T) {
	em := ecs.NewEntityManager()
	vehicleID, _ := createTestVehicle(em)
	system := NewVehicleSystem(em)

	input, _ := ecs.GetComponent[*components.DriveInputComponent](em, vehicleID)
	input.Throttle = 1
	input.Steer = 0.5

	for i := 0; i < 50; i++ {
		system.Update(0.02)
	}

	transform, _ := ecs.GetComponent[*components.TransformComponent](em, vehicleID)
	vehicle, _ := ecs.GetComponent[*components.VehicleComponent](em, vehicleID)
	rb, _ := ecs.GetComponent[*components.RigidBodyComponent](em, vehicleID)

	if transform.Position.Z() <= 0 {
		t.Errorf("Expected vehicle to move forward (+Z), got %v", transform.Position)
	}
	if transform.Heading != vehicle.Heading {
		t.Errorf("Expected transform heading %v to follow vehicle heading %v", transform.Heading, vehicle.Heading)
	}
	lateral := rb.Velocity.Dot(utils.Right(vehicle.Heading))
	if math.Abs(lateral) > floatTolerance {
		t.Errorf("Expected zero lateral velocity, got %v", lateral)
	}
}
