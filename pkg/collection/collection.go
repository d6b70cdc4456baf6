// Package collection provides small generic slice helpers used by the
// aggregation code: Map, Filter, Sum, KeyBy, SortBy, Reduce.
package collection

import "sort"

// Map transforms each element of s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns the elements of s for which fn returns true.
func Filter[T any](s []T, fn func(T) bool) []T {
	var out []T
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds s into a single value starting from initial.
func Reduce[T, R any](s []T, initial R, fn func(carry R, item T) R) R {
	out := initial
	for _, v := range s {
		out = fn(out, v)
	}
	return out
}

// Sum adds fn(v) over every element of s.
func Sum[T any](s []T, fn func(T) float64) float64 {
	return Reduce(s, 0, func(carry float64, v T) float64 { return carry + fn(v) })
}

// KeyBy indexes s by the key fn derives from each element. Later elements
// with a duplicate key overwrite earlier ones.
func KeyBy[T any, K comparable](s []T, fn func(T) K) map[K]T {
	out := make(map[K]T, len(s))
	for _, v := range s {
		out[fn(v)] = v
	}
	return out
}

// SortBy returns a sorted copy of s; the input is not modified.
func SortBy[T any](s []T, less func(a, b T) bool) []T {
	out := append([]T(nil), s...)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
