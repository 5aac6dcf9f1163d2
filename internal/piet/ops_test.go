package piet_test

import (
	"testing"

	"github.com/vovakirdan/pietvm/internal/piet"
)

func TestTransitionDecoding(t *testing.T) {
	testCases := []struct {
		from piet.Color
		to   piet.Color
		want piet.Op
	}{
		// Same hue, increasing lightness.
		{piet.LightRed, piet.Red, piet.OpPush},
		{piet.LightRed, piet.DarkRed, piet.OpPop},
		// One hue step: dark-yellow is one lightness step down from
		// yellow, i.e. lightness delta 1 from red.
		{piet.Red, piet.Yellow, piet.OpAdd},
		{piet.Red, piet.DarkYellow, piet.OpSubtract},
		{piet.Red, piet.LightYellow, piet.OpMultiply},
		// Further around the hue cycle.
		{piet.Red, piet.Green, piet.OpDivide},
		{piet.Red, piet.DarkGreen, piet.OpMod},
		{piet.Red, piet.LightGreen, piet.OpNot},
		{piet.Red, piet.Cyan, piet.OpGreater},
		{piet.Red, piet.DarkCyan, piet.OpPointer},
		{piet.Red, piet.LightCyan, piet.OpSwitch},
		{piet.Red, piet.Blue, piet.OpDuplicate},
		{piet.Red, piet.DarkBlue, piet.OpRoll},
		{piet.Red, piet.LightBlue, piet.OpInNumber},
		{piet.Red, piet.Magenta, piet.OpInChar},
		{piet.Red, piet.DarkMagenta, piet.OpOutNumber},
		{piet.Red, piet.LightMagenta, piet.OpOutChar},
		// Both cycles wrap.
		{piet.DarkRed, piet.LightRed, piet.OpPush},
		{piet.DarkMagenta, piet.LightRed, piet.OpSubtract},
		{piet.Magenta, piet.LightRed, piet.OpMultiply},
		// No change means no instruction.
		{piet.Blue, piet.Blue, piet.OpNone},
	}

	for _, tc := range testCases {
		if got := piet.Transition(tc.from, tc.to); got != tc.want {
			t.Errorf("%v -> %v: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestTransitionThroughAchromatic(t *testing.T) {
	testCases := []struct {
		from piet.Color
		to   piet.Color
	}{
		{piet.White, piet.Red},
		{piet.Red, piet.White},
		{piet.Black, piet.Red},
		{piet.White, piet.Black},
	}

	for _, tc := range testCases {
		if got := piet.Transition(tc.from, tc.to); got != piet.OpNone {
			t.Errorf("%v -> %v: expected none, got %v", tc.from, tc.to, got)
		}
	}
}

func TestDecodeOpCoversFullTable(t *testing.T) {
	seen := make(map[piet.Op]bool)
	for h := 0; h < 6; h++ {
		for l := 0; l < 3; l++ {
			seen[piet.DecodeOp(h, l)] = true
		}
	}
	// All 18 table cells map to distinct instructions.
	if len(seen) != 18 {
		t.Errorf("expected 18 distinct ops in the table, got %d", len(seen))
	}
}
