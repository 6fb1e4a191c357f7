package engine

// MaxPlayedCards is the largest number of cards a single play may use.
const MaxPlayedCards = 5

// combinations calls fn with every r-element subset of 0..n-1 as ascending
// indices, in lexicographic order. idx is reused between calls.
func combinations(n, r int, fn func(idx []int)) {
	if r <= 0 || r > n {
		return
	}
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}
	for {
		fn(idx)

		i := r - 1
		for i >= 0 && idx[i] == n-r+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < r; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// CountSubsets is how many plays a hand of n cards allows: the sum of C(n, r)
// for r = 1..min(5, n).
func CountSubsets(n int) int {
	total := 0
	for r := 1; r <= MaxPlayedCards && r <= n; r++ {
		total += binomial(n, r)
	}
	return total
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	out := 1
	for i := 1; i <= k; i++ {
		out = out * (n - k + i) / i
	}
	return out
}
