package geometry

import (
	"errors"
	"math"
	"testing"
)

// floatEquals is a helper for testing scalar float values with epsilon.
func floatEquals(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}

func TestNewVectorPolar(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		theta  float64
		want   Vector2D
	}{
		{"Zero radius", 0, 0, Vector2D{0, 0}},
		{"Zero angle (X-axis)", 10, 0, Vector2D{10, 0}},
		{"90 degrees (Y-axis)", 10, math.Pi / 2, Vector2D{0, 10}},
		{"180 degrees (Negative X)", 10, math.Pi, Vector2D{-10, 0}},
		{"45 degrees", math.Sqrt(2), math.Pi / 4, Vector2D{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewVectorPolar(tt.radius, tt.theta)
			if !got.Eq(tt.want) {
				t.Errorf("NewVectorPolar(%v, %v) = %v; want %v", tt.radius, tt.theta, got, tt.want)
			}
		})
	}
}

func TestNewVectorDegrees(t *testing.T) {
	got := NewVectorDegrees(2, -90)
	want := Vector2D{0, -2}
	if !got.Eq(want) {
		t.Errorf("NewVectorDegrees(2, -90) = %v; want %v", got, want)
	}
}

func TestVector_String(t *testing.T) {
	v := Vector2D{1.234, 5.678}
	want := "(1.23, 5.68)"
	if got := v.String(); got != want {
		t.Errorf("Vector2D.String() = %q; want %q", got, want)
	}
}

func TestVector_Arithmetic(t *testing.T) {
	v1 := Vector2D{1, 2}
	v2 := Vector2D{3, 4}

	t.Run("Add", func(t *testing.T) {
		want := Vector2D{4, 6}
		if got := v1.Add(v2); !got.Eq(want) {
			t.Errorf("%v.Add(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Sub", func(t *testing.T) {
		want := Vector2D{-2, -2}
		if got := v1.Sub(v2); !got.Eq(want) {
			t.Errorf("%v.Sub(%v) = %v; want %v", v1, v2, got, want)
		}
	})

	t.Run("Mul", func(t *testing.T) {
		want := Vector2D{2, 4}
		if got := v1.Mul(2); !got.Eq(want) {
			t.Errorf("%v.Mul(2) = %v; want %v", v1, got, want)
		}
	})

	t.Run("Neg", func(t *testing.T) {
		want := Vector2D{-1, -2}
		if got := v1.Neg(); !got.Eq(want) {
			t.Errorf("%v.Neg() = %v; want %v", v1, got, want)
		}
	})

	t.Run("Div", func(t *testing.T) {
		want := Vector2D{0.5, 1}
		got, err := v1.Div(2)
		if err != nil {
			t.Errorf("%v.Div(2) returned error %v; want nil", v1, err)
		}
		if !got.Eq(want) {
			t.Errorf("%v.Div(2) = %v; want %v", v1, got, want)
		}
	})

	t.Run("DivByZero", func(t *testing.T) {
		got, err := v1.Div(0)
		if !errors.Is(err, ErrDivideByZero) {
			t.Errorf("%v.Div(0) error = %v; want ErrDivideByZero", v1, err)
		}
		if !math.IsInf(got.X, 0) || !math.IsInf(got.Y, 0) {
			t.Errorf("Div(0) should result in Inf coordinates, got %v", got)
		}
	})
}

func TestVector_Dot(t *testing.T) {
	v1 := Vector2D{1, 0}
	if got := v1.Dot(Vector2D{0, 1}); got != 0 {
		t.Errorf("Dot orthogonal = %v; want 0", got)
	}
	if got := v1.Dot(Vector2D{2, 0}); got != 2 {
		t.Errorf("Dot parallel = %v; want 2", got)
	}
}

func TestVector_Magnitude(t *testing.T) {
	v := Vector2D{3, 4} // 3-4-5 triangle

	t.Run("Len", func(t *testing.T) {
		if got := v.Len(); got != 5 {
			t.Errorf("Len = %v; want 5", got)
		}
	})

	t.Run("LenSqr", func(t *testing.T) {
		if got := v.LenSqr(); got != 25 {
			t.Errorf("LenSqr = %v; want 25", got)
		}
	})

	t.Run("Normalize", func(t *testing.T) {
		got := v.Normalize()
		want := Vector2D{0.6, 0.8}
		if !got.Eq(want) {
			t.Errorf("Normalize = %v; want %v", got, want)
		}
	})

	t.Run("NormalizeZero", func(t *testing.T) {
		if got := Zero.Normalize(); !got.Eq(Zero) {
			t.Errorf("Normalize(0,0) = %v; want (0,0)", got)
		}
		if !Zero.IsZero() {
			t.Error("Zero.IsZero() = false; want true")
		}
	})

	t.Run("WithLen", func(t *testing.T) {
		got := v.WithLen(10)
		want := Vector2D{6, 8}
		if !got.Eq(want) {
			t.Errorf("WithLen(10) = %v; want %v", got, want)
		}
	})
}

func TestVector_ClampLen(t *testing.T) {
	tests := []struct {
		name    string
		v       Vector2D
		wantLen float64
	}{
		{"below min is raised", Vector2D{1, 0}, 2},
		{"above max is lowered", Vector2D{0, -30}, 7},
		{"inside range is kept", Vector2D{3, 4}, 5},
		{"exactly min is kept", Vector2D{2, 0}, 2},
		{"zero stays zero", Vector2D{0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.ClampLen(2, 7)
			if !floatEquals(got.Len(), tt.wantLen) {
				t.Errorf("%v.ClampLen(2, 7) length = %v; want %v", tt.v, got.Len(), tt.wantLen)
			}
			if !tt.v.IsZero() && !got.Normalize().Eq(tt.v.Normalize()) {
				t.Errorf("%v.ClampLen(2, 7) changed direction to %v", tt.v, got)
			}
		})
	}
}

func TestVector_Distance(t *testing.T) {
	v1 := Vector2D{1, 1}
	v2 := Vector2D{4, 5} // dx=3, dy=4, dist=5

	if got := v1.DistanceTo(v2); got != 5 {
		t.Errorf("DistanceTo = %v; want 5", got)
	}

	if got := v1.DistanceSquaredTo(v2); got != 25 {
		t.Errorf("DistanceSquaredTo = %v; want 25", got)
	}
}

func TestVector_Angles(t *testing.T) {
	tests := []struct {
		v       Vector2D
		wantRad float64
		wantDeg float64
	}{
		{Vector2D{1, 0}, 0, 0},
		{Vector2D{0, 1}, math.Pi / 2, 90},
		{Vector2D{-1, 0}, math.Pi, 180},
		{Vector2D{0, -1}, -math.Pi / 2, -90},
		{Vector2D{-1, -1}, -3 * math.Pi / 4, -135},
	}
	for _, tt := range tests {
		if got := tt.v.Angle(); !floatEquals(got, tt.wantRad) {
			t.Errorf("%v.Angle() = %v; want %v", tt.v, got, tt.wantRad)
		}
		if got := tt.v.Degrees(); !floatEquals(got, tt.wantDeg) {
			t.Errorf("%v.Degrees() = %v; want %v", tt.v, got, tt.wantDeg)
		}
	}
}

func TestAtan2Deg_NegativeZero(t *testing.T) {
	// math.Atan2(-0, -1) is -Pi, the heading range excludes -180.
	if got := Atan2Deg(math.Copysign(0, -1), -1); !floatEquals(got, 180) {
		t.Errorf("Atan2Deg(-0, -1) = %v; want 180", got)
	}
}

func TestNormalizeDeg(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{180, 180},
		{-180, 180},
		{190, -170},
		{-190, 170},
		{540, 180},
		{-725, -5},
	}
	for _, tt := range tests {
		if got := NormalizeDeg(tt.in); !floatEquals(got, tt.want) {
			t.Errorf("NormalizeDeg(%v) = %v; want %v", tt.in, got, tt.want)
		}
	}
}

func TestVector_Rotate(t *testing.T) {
	v := Vector2D{1, 0}
	got := v.Rotate(math.Pi / 2)
	want := Vector2D{0, 1}
	if !got.Eq(want) {
		t.Errorf("Rotate(90) = %v; want %v", got, want)
	}
}

func TestVector_Eq(t *testing.T) {
	v := Vector2D{1, 2}

	if !v.Eq(Vector2D{1, 2}) {
		t.Error("Eq exact match failed")
	}

	vClose := Vector2D{1 + Epsilon/2, 2 - Epsilon/2}
	if !v.Eq(vClose) {
		t.Error("Eq epsilon match failed")
	}

	if v.Eq(Vector2D{1.1, 2}) {
		t.Error("Eq mismatch failed")
	}
}
