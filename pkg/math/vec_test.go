package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec2Trunc(t *testing.T) {
	tests := []struct {
		in           Vec2
		wantX, wantY int
	}{
		{Vec2{1.9, 2.1}, 1, 2},
		{Vec2{-1.9, -0.5}, -1, 0},
		{Vec2{0, 0}, 0, 0},
	}

	for _, tt := range tests {
		x, y := tt.in.Trunc()
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("Vec2%v.Trunc() = (%d, %d), want (%d, %d)", tt.in, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestVec3Scale(t *testing.T) {
	got := Vec3{1, -2, 3}.Scale(2)
	want := Vec3{2, -4, 6}
	if got != want {
		t.Errorf("Vec3.Scale() = %v, want %v", got, want)
	}
	if got.XY() != (Vec2{2, -4}) {
		t.Errorf("Vec3.XY() = %v, want {2 -4}", got.XY())
	}
}
