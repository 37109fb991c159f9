// Package render draws lithocycle figures as PNG images with gg:
// lithology columns (Profile), coded columns (CodedProfile), transition
// matrices with an optional ideal sequence bar (Matrix) and m-value
// histograms (Histogram).
//
// Facies styles come from a profile.Layout; a style hatch is a string of the
// characters - | / \ x . o * and repeating a character makes it denser.
package render
