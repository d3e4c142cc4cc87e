// Package combin provides exact integer combinatorics for tree statistics.
//
// All functions use exact arithmetic. The generic functions operate on any
// Go integer type and panic with an error wrapping ErrOverflow instead of
// wrapping around; the Big variants have no range limit.
package combin

import (
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
	gcombin "gonum.org/v1/gonum/stat/combin"
)

var (
	// ErrOverflow is wrapped by the panic value of checked arithmetic
	// when the result does not fit the integer type.
	ErrOverflow = errors.New("combin: integer overflow")

	// ErrNegative is wrapped by the panic value of functions undefined
	// for negative arguments.
	ErrNegative = errors.New("combin: negative argument")
)

// CheckedAdd returns a+b or panics if the sum overflows T.
func CheckedAdd[T constraints.Integer](a, b T) T {
	s := a + b
	var zero T
	if (b > zero && s < a) || (b < zero && s > a) {
		panic(fmt.Errorf("%w: %d + %d", ErrOverflow, a, b))
	}
	return s
}

// CheckedMul returns a*b or panics if the product overflows T.
func CheckedMul[T constraints.Integer](a, b T) T {
	var zero T
	if a == zero || b == zero {
		return zero
	}
	p := a * b
	// Both divisions are needed for signed types: MinInt/-1 == MinInt.
	if p/b != a || p/a != b {
		panic(fmt.Errorf("%w: %d * %d", ErrOverflow, a, b))
	}
	return p
}

// Choose2 returns n*(n-1)/2, the number of unordered pairs among n items.
// Choose2(0) == Choose2(1) == 0, and so is Choose2 of any negative n.
func Choose2[T constraints.Integer](n T) T {
	if n < 2 {
		return 0
	}
	// halve the even factor first so the intermediate product is exact
	if n%2 == 0 {
		return CheckedMul(n/2, n-1)
	}
	return CheckedMul(n, (n-1)/2)
}

// Choose3 returns the number of unordered triples among n items.
func Choose3[T constraints.Integer](n T) T {
	if n < 3 {
		return 0
	}
	// n(n-1)(n-2)/2 is a multiple of 3
	return CheckedMul(Choose2(n), n-2) / 3
}

// Factorial returns n!. Factorial(0) == 1.
// It panics for negative n, and on overflow of T (n > 20 for uint64).
func Factorial[T constraints.Integer](n T) T {
	if n < 0 {
		panic(fmt.Errorf("%w: factorial(%d)", ErrNegative, n))
	}
	f := T(1)
	for i := T(2); i <= n; i++ {
		f = CheckedMul(f, i)
	}
	return f
}

// Pow returns base raised to exp by repeated squaring.
func Pow[T constraints.Integer](base T, exp int) T {
	if exp < 0 {
		panic(fmt.Errorf("%w: exponent %d", ErrNegative, exp))
	}
	result := T(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = CheckedMul(result, base)
		}
		exp >>= 1
		if exp > 0 {
			base = CheckedMul(base, base)
		}
	}
	return result
}

// BigFactorial returns n! as a big.Int.
func BigFactorial(n int64) *big.Int {
	if n < 0 {
		panic(fmt.Errorf("%w: factorial(%d)", ErrNegative, n))
	}
	return new(big.Int).MulRange(1, n)
}

// BigChoose2 returns n*(n-1)/2 as a big.Int.
func BigChoose2(n int64) *big.Int {
	if n < 2 {
		return new(big.Int)
	}
	r := new(big.Int).Mul(big.NewInt(n), big.NewInt(n-1))
	return r.Rsh(r, 1)
}

// Binomial returns the binomial coefficient (n k).
// It panics for negative arguments or k > n.
func Binomial(n, k int) int {
	return gcombin.Binomial(n, k)
}

// Subsets calls fn with every k-subset of {0, ..., n-1} in lexicographic
// order. The slice passed to fn is reused between calls.
// Nothing is called when k > n.
func Subsets(n, k int, fn func(idx []int)) {
	if k < 0 || n < 0 || k > n {
		return
	}
	if k == 0 {
		fn(nil)
		return
	}
	gen := gcombin.NewCombinationGenerator(n, k)
	idx := make([]int, k)
	for gen.Next() {
		fn(gen.Combination(idx))
	}
}
