package Trees

import "math/bits"

// OptimalHeight is the height of a complete binary tree with n nodes, ceil(log2(n+1))-1.
// It's -1 for n<=0.
func OptimalHeight(n int) int {
	if n <= 0 {
		return -1
	}
	return bits.Len(uint(n)) - 1
}
