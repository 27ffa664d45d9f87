package evaluator

// combinations visits every k-element index subset of 0..n-1 in lexicographic
// order, calling fn with a reused index slice. Iterative rather than
// recursive; for the best-of-seven search n is at most 7 and k is 5, so at
// most C(7,5)=21 subsets are visited.
func combinations(n, k int, fn func(idx []int) error) error {
	if k > n || k <= 0 {
		return nil
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		if err := fn(idx); err != nil {
			return err
		}

		// Advance the rightmost index that has room, then reset the tail.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
