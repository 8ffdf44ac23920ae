// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional values.

Partial updates (PATCH payloads) model "field not sent" as a nil pointer, so
these helpers keep merge code free of repetitive nil checks.

Key Functions:
  - To: Creates a pointer from a value literal.
  - Assign: Overwrites a destination only when the source is set.
*/
package pointer

// To returns a pointer to the provided value.
// It is useful for building patches in code and tests (e.g. pointer.To(true)).
func To[T any](v T) *T {
	return &v
}

// Assign copies *src into *dst when src is non-nil and reports whether it did.
func Assign[T any](dst *T, src *T) bool {
	if src == nil {
		return false
	}
	*dst = *src
	return true
}
