package core

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Cross anticommutes", NewVec3(0, 1, 0).Cross(NewVec3(1, 0, 0)), NewVec3(0, 0, -1)},
		{"Map", a.Map(func(c float32) float32 { return c * 10 }), NewVec3(10, 20, 30)},
		{"Clamp", NewVec3(-1, 0.5, 2).Clamp(0, 1), NewVec3(0, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.result.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if got := a.Dot(b); got != 12 {
		t.Errorf("Expected dot product 12, got %f", got)
	}
	if got := NewVec3(3, 4, 0).Length(); got != 5 {
		t.Errorf("Expected length 5, got %f", got)
	}
	if got := NewVec3(3, 4, 0).LengthSquared(); got != 25 {
		t.Errorf("Expected squared length 25, got %f", got)
	}
}

func TestVec3_Constants(t *testing.T) {
	if !Zero.Equals(NewVec3(0, 0, 0)) {
		t.Errorf("Zero should be (0,0,0), got %v", Zero)
	}
	if !One.Equals(NewVec3(1, 1, 1)) {
		t.Errorf("One should be (1,1,1), got %v", One)
	}
}

func TestVec3_Divide(t *testing.T) {
	v := NewVec3(2, 4, 6)

	got, err := v.Divide(2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !got.Equals(NewVec3(1, 2, 3)) {
		t.Errorf("Expected (1,2,3), got %v", got)
	}

	if _, err := v.Divide(0); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Expected ErrDivisionByZero, got %v", err)
	}

	got, err = v.DivideVec(NewVec3(2, 2, 3))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !got.Equals(NewVec3(1, 2, 2)) {
		t.Errorf("Expected (1,2,2), got %v", got)
	}

	if _, err := v.DivideVec(NewVec3(1, 0, 1)); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Expected ErrDivisionByZero for zero component, got %v", err)
	}
}

func TestVec3_NormalizeUnitLength(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		v := NewVec3(
			(random.Float32()*2-1)*100,
			(random.Float32()*2-1)*100,
			(random.Float32()*2-1)*100,
		)
		if v.LengthSquared() == 0 {
			continue
		}

		unit, err := v.Normalize()
		if err != nil {
			t.Fatalf("Unexpected error normalizing %v: %v", v, err)
		}
		if math32.Abs(unit.Length()-1) > 1e-5 {
			t.Errorf("Normalize(%v) has length %f, want 1", v, unit.Length())
		}
	}
}

func TestVec3_NormalizeDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		vector Vec3
	}{
		{"zero vector", Zero},
		{"infinite component", NewVec3(math32.Inf(1), 0, 0)},
		{"NaN component", NewVec3(math32.NaN(), 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit, err := tt.vector.Normalize()
			if !errors.Is(err, ErrDegenerateVector) {
				t.Errorf("Expected ErrDegenerateVector, got %v", err)
			}
			if !unit.Equals(Zero) {
				t.Errorf("Expected zero vector alongside error, got %v", unit)
			}
		})
	}
}

func TestVec3_GammaCorrect(t *testing.T) {
	got := NewVec3(0.25, 1, 0).GammaCorrect(2)
	if !got.ApproxEquals(NewVec3(0.5, 1, 0), 1e-6) {
		t.Errorf("Expected (0.5,1,0), got %v", got)
	}
}

func TestVec3_NearZeroAndFinite(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-3, 0, 0).NearZero() {
		t.Error("Expected 1e-3 not to be near zero")
	}
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector")
	}
	if NewVec3(1, math32.Inf(-1), 3).IsFinite() {
		t.Error("Expected infinite vector not to be finite")
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 2, 0))

	tests := []struct {
		t        float32
		expected Vec3
	}{
		{0, NewVec3(1, 1, 1)},
		{1, NewVec3(1, 3, 1)},
		{-0.5, NewVec3(1, 0, 1)},
	}

	for _, tt := range tests {
		if got := ray.At(tt.t); !got.Equals(tt.expected) {
			t.Errorf("At(%f): expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}
