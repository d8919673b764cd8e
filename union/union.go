// Package union is a runtime support for tagged unions generated by go-union.
//
// Generated code uses it for match clause composition and for reporting contract violations. Nothing here
// is meant to be used directly, although nothing prevents it either.
package union

// Clear resets the value under p to the zero value of T
func Clear[T any](p *T) {
	var zero T
	*p = zero
}
