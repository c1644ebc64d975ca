package common

// gcdReduce returns the greatest common divisor magnitude of a and b, and
// whether exactly one of them is negative. One zero input yields the
// magnitude of the other, both zero yield ErrZeroDenominator.
func gcdReduce(a, b int64) (uint64, bool, error) {
	if a == 0 && b == 0 {
		return 0, false, ErrZeroDenominator
	}

	var neg bool
	if a < 0 {
		neg = !neg
	}
	if b < 0 {
		neg = !neg
	}

	x, y := abs64(a), abs64(b)
	for x != 0 && y != 0 {
		if x < y {
			y %= x
		} else {
			x %= y
		}
	}
	if x == 0 {
		return y, neg, nil
	}
	return x, neg, nil
}

// abs64 is exact for math.MinInt64 too.
func abs64(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}
