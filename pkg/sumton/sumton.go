// Package sumton computes 1 + 2 + ... + n three different ways.
//
// The three only agree for n >= 0. For negative n, Iterative returns 0,
// Recursive returns n and ClosedForm evaluates n(n+1)/2 as is.
package sumton

// Iterative adds the terms one by one. O(n) time, O(1) space.
func Iterative(n int) int {
	sum := 0
	for i := 1; i <= n; i++ {
		sum += i
	}
	return sum
}

// ClosedForm uses the arithmetic series formula. O(1).
func ClosedForm(n int) int {
	return n * (n + 1) / 2
}

// MaxRecursiveN is the largest n callers should pass to Recursive. Deeper
// recursion risks exhausting the goroutine stack, which Go cannot recover from.
const MaxRecursiveN = 1_000_000

// Recursive peels one term per call. O(n) time and stack.
func Recursive(n int) int {
	if n <= 1 {
		return n
	}
	return n + Recursive(n-1)
}
