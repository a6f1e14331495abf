package wisdom

// Levels returns t = max(1, ⌈log₂ m⌉) for a bandwidth m ≥ 1, so that
// Size(Levels(m)) is the smallest power of two ≥ m and at least 2.
func Levels(m int) int {
	t := 1
	for 1<<t < m {
		t++
	}
	return t
}

// Size returns N = 2^t.
func Size(t int) int {
	return 1 << t
}

// Row returns the offset of order n in a flat recurrence table of a wisdom
// with t levels. Each row holds the N+1 entries k = 0..N, so Row is strictly
// increasing in n and Row(n, t)+k addresses coefficient k of order n.
func Row(n, t int) int {
	return n * (Size(t) + 1)
}

// BlockCount returns the number of blocks at level tau, 2^(t-tau-1).
// Defined for 1 ≤ tau < t.
func BlockCount(t, tau int) int {
	return 1 << (t - tau - 1)
}

// Blocks returns the number of blocks summed over all levels, 2^(t-1) - 1.
func Blocks(t int) int {
	return 1<<(t-1) - 1
}

// BlockOffset returns the position of block l of level tau in a per-order
// table that stores the levels one after the other. For fixed t it ranges
// over [0, Blocks(t)) and increases with tau and, within a level, with l.
func BlockOffset(t, tau, l int) int {
	return 1<<(t-1) - 1<<(t-tau) + l
}

// FirstBlock returns the smallest block index at a level with polynomial
// length plength whose coefficient range [plength·l, plength·(l+1)) can hold
// a nonzero value for order n. Coefficients below n are zero except that the
// top coefficient N is folded into N-1 and N-2, so the lowest occupied index
// is min(n, N-2). Non-decreasing in n, non-increasing in plength.
func FirstBlock(n, size, plength int) int {
	lo := min(n, size-2)
	if lo < 0 {
		lo = 0
	}
	return lo / plength
}

// LastBlock returns the largest block index at a level with polynomial
// length plength. Every level covers indices up to N-1.
func LastBlock(size, plength int) int {
	return size/plength - 1
}

// StabilizationSlot returns the slot of the stabilized rotation for a block
// at level tau, t-tau-1. At the top level it is 0: the native rotation is
// already at full resolution.
func StabilizationSlot(t, tau int) int {
	return t - tau - 1
}
