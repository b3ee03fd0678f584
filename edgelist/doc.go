// Package edgelist reads and writes the line-oriented edge-list format:
//
//	m
//	S₁ L₁
//	...
//	Sₘ Lₘ
//
// The first line holds the edge count m ≥ 0; each of the next m lines holds
// two whitespace-separated integers, a Left vertex S and a Right vertex L.
// Blank lines after the last edge are ignored. Anything else (a short file, a
// non-integer token, a token count other than two, extra edge lines) is a
// *ParseError carrying the 1-based line number and wrapping
// ErrMalformedInput.
//
// Write emits the same format. Isolated Left vertices have no edge line and
// are therefore not preserved by a Write/Parse round trip.
package edgelist
