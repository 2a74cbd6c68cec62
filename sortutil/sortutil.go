// Package sortutil provides classic sorting and searching routines over
// slices of ordered values.
package sortutil

import "cmp"

// QuickSort sorts s in place. It is not stable.
func QuickSort[T cmp.Ordered](s []T) {
	if len(s) <= 1 {
		return
	}
	quickSort(s, 0, len(s)-1)
}

func quickSort[T cmp.Ordered](s []T, low, high int) {
	if low >= high {
		return
	}
	pivot := partition(s, low, high)
	quickSort(s, low, pivot-1)
	quickSort(s, pivot+1, high)
}

// partition applies the Lomuto scheme with s[high] as pivot and returns
// its final index.
func partition[T cmp.Ordered](s []T, low, high int) int {
	i := low
	for j := low; j < high; j++ {
		if s[j] <= s[high] {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[high] = s[high], s[i]
	return i
}

// MergeSort sorts s in place. It is stable and allocates O(n) scratch
// space per merge level.
func MergeSort[T cmp.Ordered](s []T) {
	if len(s) <= 1 {
		return
	}

	mid := len(s) / 2
	MergeSort(s[:mid])
	MergeSort(s[mid:])

	left := make([]T, mid)
	copy(left, s[:mid])
	right := make([]T, len(s)-mid)
	copy(right, s[mid:])

	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			s[k] = left[i]
			i++
		} else {
			s[k] = right[j]
			j++
		}
		k++
	}
	for i < len(left) {
		s[k] = left[i]
		i++
		k++
	}
	for j < len(right) {
		s[k] = right[j]
		j++
		k++
	}
}

// BinarySearch returns the index of target in the ascending-sorted slice
// s, or (0, false) if target is absent.
func BinarySearch[T cmp.Ordered](s []T, target T) (int, bool) {
	left, right := 0, len(s)
	for left < right {
		mid := left + (right-left)/2
		switch {
		case s[mid] == target:
			return mid, true
		case s[mid] < target:
			left = mid + 1
		default:
			right = mid
		}
	}
	return 0, false
}
