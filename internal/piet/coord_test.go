package piet_test

import (
	"testing"

	"github.com/vovakirdan/pietvm/internal/piet"
)

func TestDirRotate(t *testing.T) {
	testCases := []struct {
		start piet.Dir
		k     int
		want  piet.Dir
	}{
		{piet.DirRight, 0, piet.DirRight},
		{piet.DirRight, 1, piet.DirDown},
		{piet.DirRight, 2, piet.DirLeft},
		{piet.DirRight, 3, piet.DirUp},
		{piet.DirRight, 4, piet.DirRight},
		{piet.DirRight, -1, piet.DirUp},
		{piet.DirUp, 1, piet.DirRight},
		{piet.DirDown, -2, piet.DirUp},
		{piet.DirLeft, 7, piet.DirDown},
	}

	for _, tc := range testCases {
		if got := tc.start.Rotate(tc.k); got != tc.want {
			t.Errorf("%v.Rotate(%d): expected %v, got %v", tc.start, tc.k, tc.want, got)
		}
	}
}

func TestChooserToggle(t *testing.T) {
	if piet.ChooseLeft.Toggle(1) != piet.ChooseRight {
		t.Error("one toggle should flip left to right")
	}
	if piet.ChooseRight.Toggle(1) != piet.ChooseLeft {
		t.Error("one toggle should flip right to left")
	}
	if piet.ChooseLeft.Toggle(2) != piet.ChooseLeft {
		t.Error("even toggles should be a no-op")
	}
	if piet.ChooseLeft.Toggle(-3) != piet.ChooseRight {
		t.Error("odd negative toggles should still flip")
	}
}

func TestCoordStep(t *testing.T) {
	origin := piet.C(3, 3)
	testCases := []struct {
		dir  piet.Dir
		want piet.Coord
	}{
		{piet.DirRight, piet.C(4, 3)},
		{piet.DirDown, piet.C(3, 4)},
		{piet.DirLeft, piet.C(2, 3)},
		{piet.DirUp, piet.C(3, 2)},
	}

	for _, tc := range testCases {
		if got := origin.Step(tc.dir); got != tc.want {
			t.Errorf("step %v: expected %v, got %v", tc.dir, tc.want, got)
		}
	}
}

func TestPointerZeroValueIsStartState(t *testing.T) {
	var p piet.Pointer
	if p.Dir != piet.DirRight || p.Chooser != piet.ChooseLeft {
		t.Errorf("expected right/left start state, got %v", p)
	}
}
