package route

import (
	"math"
	"testing"

	"github.com/driftcli/drift/pkg/errors"
)

const epsilon = 1e-12

func TestComputeDistance(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{
			name:  "PythagoreanTriple",
			input: "3F4R",
			want:  5,
		},
		{
			name:  "AllDirectionsNet",
			input: "1B2F3L4R", // vertical -1+2=1, horizontal -3+4=1
			want:  math.Sqrt(2),
		},
		{
			name:  "StraightLine",
			input: "10F",
			want:  10,
		},
		{
			name:  "ReturnToOrigin",
			input: "5F5B3L3R",
			want:  0,
		},
		{
			name:  "LowercaseSameResult",
			input: "3f4r",
			want:  5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.input, err)
			}
			got, err := ComputeDistance(tokens)
			if err != nil {
				t.Fatalf("ComputeDistance error: %v", err)
			}
			if math.Abs(got-tt.want) > epsilon {
				t.Errorf("ComputeDistance(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestComputeDistanceEmptySequence(t *testing.T) {
	got, err := ComputeDistance(nil)
	if err != nil {
		t.Fatalf("ComputeDistance(nil) error: %v", err)
	}
	if got != 0 {
		t.Errorf("ComputeDistance(nil) = %v, want 0", got)
	}
}

func TestComputeDistanceOrderIndependent(t *testing.T) {
	a, err := Tokenize("1B2F3L4R")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	b, err := Tokenize("4R3L2F1B")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}

	da, err := ComputeDistance(a)
	if err != nil {
		t.Fatalf("ComputeDistance error: %v", err)
	}
	db, err := ComputeDistance(b)
	if err != nil {
		t.Fatalf("ComputeDistance error: %v", err)
	}
	if math.Abs(da-db) > epsilon {
		t.Errorf("permuted sequences differ: %v vs %v", da, db)
	}
}

func TestComputeDistanceMagnitudeParseFailure(t *testing.T) {
	// Hand-built token violating the tokenizer's contract: the calculator
	// must fail explicitly, never default to zero.
	bad := []Token{{Magnitude: "3x", Direction: Forward}}
	_, err := ComputeDistance(bad)
	if !errors.Is(err, errors.ErrCodeMagnitudeParse) {
		t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeMagnitudeParse)
	}
}

func TestDisplace(t *testing.T) {
	tokens, err := Tokenize("1B2F3L4R")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	d, err := Displace(tokens)
	if err != nil {
		t.Fatalf("Displace error: %v", err)
	}
	if d.Horizontal != 1 || d.Vertical != 1 {
		t.Errorf("Displace = %+v, want {Horizontal:1 Vertical:1}", d)
	}
	if math.Abs(d.Distance()-math.Sqrt(2)) > epsilon {
		t.Errorf("Distance = %v, want sqrt(2)", d.Distance())
	}
}

func TestWaypoints(t *testing.T) {
	tokens, err := Tokenize("3F4R")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	points, err := Waypoints(tokens)
	if err != nil {
		t.Fatalf("Waypoints error: %v", err)
	}

	want := []Point{{0, 0}, {0, 3}, {4, 3}}
	if len(points) != len(want) {
		t.Fatalf("len(points) = %d, want %d", len(points), len(want))
	}
	for i, w := range want {
		if points[i] != w {
			t.Errorf("points[%d] = %+v, want %+v", i, points[i], w)
		}
	}

	// Waypoints depend on execution order even though distance does not.
	reversed, err := Tokenize("4R3F")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	rp, err := Waypoints(reversed)
	if err != nil {
		t.Fatalf("Waypoints error: %v", err)
	}
	if rp[1] == points[1] {
		t.Error("permuted sequence should visit different intermediate waypoints")
	}
	if rp[len(rp)-1] != points[len(points)-1] {
		t.Error("permuted sequence should end at the same final position")
	}
}
