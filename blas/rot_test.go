package blas

import (
	"math"
	"testing"
)

func TestRotQuarterTurn(t *testing.T) {
	x := []float32{1, -2, 3, 4}
	y := []float32{3, 7, -2, 2}
	wantX := append([]float32(nil), y...)
	wantY := []float32{-1, 2, -3, -4}

	Rot(NewVector(x), NewVector(y), 0, 1)

	if !equalSlices(x, wantX) {
		t.Fatalf("Rot() x = %v, want %v", x, wantX)
	}
	if !equalSlices(y, wantY) {
		t.Fatalf("Rot() y = %v, want %v", y, wantY)
	}
}

func TestRotIdentity(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}
	origX := append([]float64(nil), x...)
	origY := append([]float64(nil), y...)

	Rot(NewVector(x), NewVector(y), 1, 0)

	if !equalSlices(x, origX) || !equalSlices(y, origY) {
		t.Fatalf("Rot(c=1,s=0) x = %v, y = %v, want unchanged", x, y)
	}
}

func TestRotInverseRestores(t *testing.T) {
	x := []float64{1, -2, 3, 4}
	y := []float64{3, 7, -2, 2}
	origX := append([]float64(nil), x...)
	origY := append([]float64(nil), y...)

	theta := math.Pi / 7
	c, s := math.Cos(theta), math.Sin(theta)

	Rot(NewVector(x), NewVector(y), c, s)
	Rot(NewVector(x), NewVector(y), c, -s)

	if !closeEnoughSlice64(x, origX) {
		t.Fatalf("Rot inverse x = %v, want %v", x, origX)
	}
	if !closeEnoughSlice64(y, origY) {
		t.Fatalf("Rot inverse y = %v, want %v", y, origY)
	}
}

func TestRotShorterWins(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{10, 20}

	Rot(NewVector(x), NewVector(y), 0, 1)

	wantX := []float64{10, 20, 3}
	wantY := []float64{-1, -2}
	if !equalSlices(x, wantX) {
		t.Fatalf("Rot() x = %v, want %v", x, wantX)
	}
	if !equalSlices(y, wantY) {
		t.Fatalf("Rot() y = %v, want %v", y, wantY)
	}
}
