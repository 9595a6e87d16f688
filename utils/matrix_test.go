package utils

import (
	"reflect"
	"testing"
)

func TestNormalizeRows(t *testing.T) {
	got := NormalizeRows([][]bool{
		{true},
		{false, true, true},
		{},
	})
	want := [][]bool{
		{true, false, false},
		{false, true, true},
		{false, false, false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeRows = %v, expected %v", got, want)
	}
}

func TestFitMatrixPads(t *testing.T) {
	// A 2x2 pattern centered in 4x5: the odd leftover column goes after.
	got := FitMatrix([][]bool{
		{true, false},
		{false, true},
	}, 4, 5)
	want := [][]bool{
		{false, false, false, false, false},
		{false, true, false, false, false},
		{false, false, true, false, false},
		{false, false, false, false, false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FitMatrix = %v, expected %v", got, want)
	}
}

func TestFitMatrixCropsAndPads(t *testing.T) {
	// A 4x4 diagonal fit into 3x5 keeps the first three rows and pads a
	// column on the right.
	src := make([][]bool, 4)
	for i := range src {
		src[i] = make([]bool, 4)
		src[i][i] = true
	}
	got := FitMatrix(src, 3, 5)
	want := [][]bool{
		{true, false, false, false, false},
		{false, true, false, false, false},
		{false, false, true, false, false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FitMatrix = %v, expected %v", got, want)
	}
}

func TestFitMatrixEmptySource(t *testing.T) {
	got := FitMatrix(nil, 2, 2)
	want := [][]bool{
		{false, false},
		{false, false},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FitMatrix(nil) = %v, expected all dead", got)
	}
}
