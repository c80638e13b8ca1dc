package common

import "testing"

func TestRoundHalfUp(t *testing.T) {
	cases := []struct {
		in   float64
		want int
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{2.5, 3},
		{-0.5, 0},
		{-1.5, -1},
		{-1.6, -2},
		{79.6, 80},
	}
	for _, c := range cases {
		if got := RoundHalfUp(c.in); got != c.want {
			t.Fatalf("RoundHalfUp(%v) = %d, want %d", c.in, got, c.want)
		}
	}
}
