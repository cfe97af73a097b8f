package core

import (
	"math"
	"testing"
)

func TestDBConversions(t *testing.T) {
	tests := []struct {
		db, linear float64
	}{
		{0, 1},
		{20, 10},
		{-40, 0.01},
		{-6.020599913279624, 0.5},
	}
	for _, tt := range tests {
		if got := DBToLinear(tt.db); math.Abs(got-tt.linear) > 1e-12 {
			t.Errorf("DBToLinear(%v) = %v, want %v", tt.db, got, tt.linear)
		}
		if got := LinearToDB(tt.linear); math.Abs(got-tt.db) > 1e-9 {
			t.Errorf("LinearToDB(%v) = %v, want %v", tt.linear, got, tt.db)
		}
	}
}

func TestLinearToDBEdges(t *testing.T) {
	if got := LinearToDB(0); !math.IsInf(got, -1) {
		t.Fatalf("LinearToDB(0) = %v, want -Inf", got)
	}
	if got := LinearToDB(-1); !math.IsNaN(got) {
		t.Fatalf("LinearToDB(-1) = %v, want NaN", got)
	}
}
