package utils

import "testing"

func TestRandomIsDeterministicForSeed(t *testing.T) {
	a, b := NewRandom(42), NewRandom(42)
	for i := 0; i < 10; i++ {
		if a.Float64() != b.Float64() {
			t.Fatal("Same seed should produce the same sequence")
		}
	}
}

func TestRandomRange(t *testing.T) {
	r := NewRandom(7)
	for i := 0; i < 1000; i++ {
		if v := r.Range(-2, 3); v < -2 || v >= 3 {
			t.Fatalf("Range(-2, 3) returned %v", v)
		}
	}
}

func TestInsideUnitShapes(t *testing.T) {
	r := NewRandom(1)
	for i := 0; i < 1000; i++ {
		x, y := r.InsideUnitCircle()
		if x*x+y*y > 1 {
			t.Fatalf("InsideUnitCircle returned (%v, %v)", x, y)
		}
		v := r.InsideUnitSphere()
		if v.Dot(v) > 1 {
			t.Fatalf("InsideUnitSphere returned %v", v)
		}
	}
}
