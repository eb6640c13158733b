package enum

// Combinations calls fn with every k-subset of 0..n-1 in lexicographic order.
// The slice passed to fn is reused between calls; copy it to keep it. fn
// returns false to stop early.
//
// k = 0 visits the empty subset once. k > n or negative inputs visit nothing.
func Combinations(n, k int, fn func(idx []int) bool) {
	if n < 0 || k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if !fn(idx) {
			return
		}
		// Rightmost position that can still advance.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Binomial returns n choose k, or 0 when k is out of range.
func Binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	r := 1
	for i := 1; i <= k; i++ {
		r = r * (n - k + i) / i
	}
	return r
}
