package combin

// BinaryShapeCount returns the number of rooted binary tree shapes with n
// unlabeled leaves (the Wedderburn-Etherington numbers 0, 1, 1, 1, 2, 3, 6,
// 11, 23, ...). It panics on uint64 overflow.
func BinaryShapeCount(n int) uint64 {
	if n < 1 {
		return 0
	}
	a := make([]uint64, n+1)
	a[1] = 1
	for m := 2; m <= n; m++ {
		var sum uint64
		for i := 1; 2*i < m; i++ {
			sum = CheckedAdd(sum, CheckedMul(a[i], a[m-i]))
		}
		if m%2 == 0 {
			h := a[m/2]
			sum = CheckedAdd(sum, CheckedMul(h, h+1)/2)
		}
		a[m] = sum
	}
	return a[n]
}

// ShapeCount returns the number of rooted tree shapes with n unlabeled
// leaves whose internal nodes have two or more children (0, 1, 1, 2, 5, 12,
// 33, 90, ...). It panics on uint64 overflow.
//
// The count follows from the Euler transform b of the sequence a: b(m)
// counts multisets of shapes with m leaves in total, and every multiset
// with two or more members is the child list of exactly one shape, so
// b(m) = 2*a(m) for m >= 2.
func ShapeCount(n int) uint64 {
	if n < 1 {
		return 0
	}
	a := make([]uint64, n+1)
	b := make([]uint64, n+1)
	c := make([]uint64, n+1)
	a[1], b[0], b[1], c[1] = 1, 1, 1, 1
	for m := 2; m <= n; m++ {
		// c[m] without its own m*a[m] term, which is still unknown
		var cm uint64
		for d := 1; d < m; d++ {
			if m%d == 0 {
				cm = CheckedAdd(cm, CheckedMul(uint64(d), a[d]))
			}
		}
		s := cm
		for k := 1; k < m; k++ {
			s = CheckedAdd(s, CheckedMul(c[k], b[m-k]))
		}
		a[m] = s / uint64(m)
		b[m] = 2 * a[m]
		c[m] = CheckedAdd(cm, CheckedMul(uint64(m), a[m]))
	}
	return a[n]
}

// LabeledBinaryCount returns the number of rooted binary trees with n
// distinctly labeled leaves, (2n-3)!! for n >= 2.
func LabeledBinaryCount(n int) uint64 {
	if n < 1 {
		return 0
	}
	r := uint64(1)
	if n < 3 {
		return r
	}
	for k := uint64(3); k <= uint64(2*n-3); k += 2 {
		r = CheckedMul(r, k)
	}
	return r
}
