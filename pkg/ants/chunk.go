package ants

type span struct {
	lo, hi int
}

// chunks splits [0, n) into contiguous spans of n/threads items (at least 1).
// The last span is shorter when size does not divide n, and there are more
// spans than threads whenever n is not a multiple of threads.
func chunks(n, threads int) []span {
	if n <= 0 {
		return nil
	}
	if threads < 1 {
		threads = 1
	}
	size := n / threads
	if size == 0 {
		size = 1
	}
	out := make([]span, 0, n/size+1)
	for lo := 0; lo < n; lo += size {
		out = append(out, span{lo: lo, hi: min(lo+size, n)})
	}
	return out
}
