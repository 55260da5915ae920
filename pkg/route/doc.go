// Package route implements the movement-string core: a tokenizer that
// validates compact route encodings such as "3F4R", and a displacement
// calculator that reduces the resulting token sequence to the straight-line
// distance from the origin.
//
// # Encoding
//
// A route is a concatenation of {digits}{direction} groups with no
// separators. Directions are F (forward), B (back), L (left) and R (right),
// accepted in either case. Forward and back move along the vertical axis,
// left and right along the horizontal axis.
//
// # Usage
//
//	tokens, err := route.Tokenize("3F4R")
//	if err != nil {
//	    // rejection with a specific pkg/errors code
//	}
//	dist, err := route.ComputeDistance(tokens) // 5
//
// Both operations are pure: they share no state between calls and are safe
// to invoke concurrently.
package route
