// Package profile holds the lithological profile data model: an ordered
// sequence of layers given by strictly increasing depth boundaries and the
// facies label of each interval.
//
// It also provides Coding, the bijection between facies classes and the
// integer codes 0..F-1 that the transition-matrix analysis permutes, and
// decoders for YAML, JSON and CSV profile files and for sampled facies logs.
//
// Facies classes are always derived in order of first appearance; that order
// is the canonical class order every numbering is expressed against.
package profile
