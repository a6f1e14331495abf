package wisdom

import "testing"

func TestLevels(t *testing.T) {
	cases := []struct{ m, want int }{
		{1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 3}, {8, 3}, {9, 4}, {64, 6}, {65, 7},
	}
	for _, tc := range cases {
		if got := Levels(tc.m); got != tc.want {
			t.Errorf("Levels(%d) = %d, want %d", tc.m, got, tc.want)
		}
		if Size(Levels(tc.m)) < tc.m {
			t.Errorf("Size(Levels(%d)) = %d < m", tc.m, Size(Levels(tc.m)))
		}
	}
}

func TestRowMonotone(t *testing.T) {
	const levels = 4
	for n := 1; n < 20; n++ {
		if Row(n, levels) <= Row(n-1, levels)+Size(levels) {
			t.Fatalf("Row(%d) = %d overlaps row %d", n, Row(n, levels), n-1)
		}
	}
}

func TestBlockOffsetIsDense(t *testing.T) {
	for levels := 2; levels <= 7; levels++ {
		seen := make([]bool, Blocks(levels))
		prev := -1
		for tau := 1; tau < levels; tau++ {
			for l := range BlockCount(levels, tau) {
				off := BlockOffset(levels, tau, l)
				if off <= prev {
					t.Fatalf("t=%d: offset(%d,%d)=%d not increasing", levels, tau, l, off)
				}
				if off >= len(seen) || seen[off] {
					t.Fatalf("t=%d: offset(%d,%d)=%d out of range or reused", levels, tau, l, off)
				}
				seen[off] = true
				prev = off
			}
		}
		for i, ok := range seen {
			if !ok {
				t.Fatalf("t=%d: offset %d unused", levels, i)
			}
		}
	}
}

func TestBlockRange(t *testing.T) {
	const size = 16
	cases := []struct {
		n, plength, first int
	}{
		{0, 4, 0},
		{3, 4, 0},
		{4, 4, 1},
		{13, 4, 3},
		{14, 4, 3},
		{15, 4, 3},
		{16, 4, 3},
		{9, 8, 1},
		{16, 16, 0},
	}
	for _, tc := range cases {
		if got := FirstBlock(tc.n, size, tc.plength); got != tc.first {
			t.Errorf("FirstBlock(%d, %d, %d) = %d, want %d", tc.n, size, tc.plength, got, tc.first)
		}
	}
	if got := LastBlock(size, 4); got != 3 {
		t.Fatalf("LastBlock(16, 4) = %d, want 3", got)
	}
	if got := LastBlock(size, 16); got != 0 {
		t.Fatalf("LastBlock(16, 16) = %d, want 0", got)
	}
}

func TestFirstBlockMonotone(t *testing.T) {
	const size = 32
	for plength := 4; plength <= size; plength *= 2 {
		for n := 1; n <= size; n++ {
			if FirstBlock(n, size, plength) < FirstBlock(n-1, size, plength) {
				t.Fatalf("FirstBlock decreases at n=%d plength=%d", n, plength)
			}
			if FirstBlock(n, size, plength) > LastBlock(size, plength) {
				t.Fatalf("empty block range at n=%d plength=%d", n, plength)
			}
		}
	}
}

func TestStabilizationSlot(t *testing.T) {
	if got := StabilizationSlot(5, 4); got != 0 {
		t.Fatalf("top level slot = %d, want 0", got)
	}
	if got := StabilizationSlot(5, 1); got != 3 {
		t.Fatalf("slot = %d, want 3", got)
	}
}
