package dynarray

// Sort sorts the logical view with an explicit top-down merge sort. The
// sort is stable and runs in O(n log n) time with one auxiliary buffer of
// exactly n elements. The reversal flag is honored: the sorted order is
// written through the same index translation reads go through, so the flag
// state is preserved.
func (a *DynamicArray[T]) Sort(less func(x, y T) bool) {
	if a.length < 2 {
		return
	}
	aux := make([]T, a.length)
	a.mergeSort(0, a.length, aux, less)
}

// mergeSort sorts the logical range [lo, hi).
func (a *DynamicArray[T]) mergeSort(lo, hi int, aux []T, less func(x, y T) bool) {
	if hi-lo < 2 {
		return
	}
	mid := lo + (hi-lo)/2
	a.mergeSort(lo, mid, aux, less)
	a.mergeSort(mid, hi, aux, less)
	a.merge(lo, mid, hi, aux, less)
}

// merge combines the sorted runs [lo, mid) and [mid, hi). Both runs are
// staged into aux, then written back in merged order. Ties take the left
// run first, which is what makes the sort stable.
func (a *DynamicArray[T]) merge(lo, mid, hi int, aux []T, less func(x, y T) bool) {
	for k := lo; k < hi; k++ {
		aux[k] = a.blk.get(a.slot(k))
	}

	i, j := lo, mid
	for k := lo; k < hi; k++ {
		switch {
		case i >= mid:
			a.blk.set(a.slot(k), aux[j])
			j++
		case j >= hi:
			a.blk.set(a.slot(k), aux[i])
			i++
		case less(aux[j], aux[i]):
			a.blk.set(a.slot(k), aux[j])
			j++
		default:
			a.blk.set(a.slot(k), aux[i])
			i++
		}
	}
}
