// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package slice complements the standard [slices] package with generic helpers
for deriving views over record sets.

Every helper preserves the input order and never mutates the input.
*/
package slice

// Map maps a slice of type T to a slice of type U using the provided transformation function.
func Map[T any, U any](input []T, transform func(T) U) []U {
	result := make([]U, len(input))
	for i, v := range input {
		result[i] = transform(v)
	}
	return result
}

// Filter returns the elements for which predicate is true, in input order.
//
// The result is never nil, so an empty view encodes as [] rather than null.
func Filter[T any](input []T, predicate func(T) bool) []T {
	result := make([]T, 0, len(input))
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// Reduce reduces a slice into a single accumulated result using the reducer function.
func Reduce[T any, U any](input []T, initial U, reducer func(accumulator U, current T) U) U {
	result := initial
	for _, v := range input {
		result = reducer(result, v)
	}
	return result
}

// Count returns how many elements satisfy predicate.
func Count[T any](input []T, predicate func(T) bool) int {
	n := 0
	for _, v := range input {
		if predicate(v) {
			n++
		}
	}
	return n
}

// SumBy adds up measure(v) over the slice.
func SumBy[T any](input []T, measure func(T) int) int {
	return Reduce(input, 0, func(total int, v T) int { return total + measure(v) })
}

// Toggle removes value if present, otherwise appends it. Order is kept.
func Toggle[T comparable](input []T, value T) []T {
	result := make([]T, 0, len(input)+1)
	found := false
	for _, v := range input {
		if v == value {
			found = true
			continue
		}
		result = append(result, v)
	}
	if !found {
		result = append(result, value)
	}
	return result
}
