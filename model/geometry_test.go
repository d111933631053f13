package model

import "testing"

func TestBBoxEdges(t *testing.T) {
	tests := []struct {
		name           string
		box            BBox
		left, right    float64
		bottom, top    float64
	}{
		{"origin", NewBBox(0, 0, 100, 50), 0, 100, 0, 50},
		{"offset", NewBBox(10, 20, 30, 40), 10, 40, 20, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.box.Left(); got != tt.left {
				t.Errorf("Left() = %v, want %v", got, tt.left)
			}
			if got := tt.box.Right(); got != tt.right {
				t.Errorf("Right() = %v, want %v", got, tt.right)
			}
			if got := tt.box.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %v, want %v", got, tt.bottom)
			}
			if got := tt.box.Top(); got != tt.top {
				t.Errorf("Top() = %v, want %v", got, tt.top)
			}
		})
	}
}

func TestMatrixMultiplyTranslate(t *testing.T) {
	m := Identity().Multiply(Translate(10, 20))
	p := m.Transform(Point{X: 0, Y: 0})
	if p.X != 10 || p.Y != 20 {
		t.Errorf("Transform() = %+v, want {10 20}", p)
	}
}

func TestBBoxContains(t *testing.T) {
	b := NewBBox(0, 0, 100, 100)
	if !b.Contains(Point{X: 50, Y: 50}) {
		t.Error("expected box to contain point")
	}
	if b.Contains(Point{X: 150, Y: 50}) {
		t.Error("expected box not to contain point")
	}
}
