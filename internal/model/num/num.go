// Package num holds the numeric types shared by the document models.
package num

import "math"

// Int is an integral field of a beatmap document, such as a lane index or an event type.
//
// It is stored as the number the document carries, so 1 and 1.0 decode alike and a
// fractional value written by an editor is kept as is instead of failing the document.
// Code that needs an integer calls Int, and Integral tells whether that lost anything.
type Int float64

// Int truncates i toward zero.
func (i Int) Int() int {
	return int(math.Trunc(float64(i)))
}

// Integral reports whether i has no fractional part.
func (i Int) Integral() bool {
	f := float64(i)
	return f == math.Trunc(f)
}
