// SPDX-License-Identifier: MIT

// Package matrix provides the small dense float64 matrix used to hold
// transition-probability (TP) matrices.
//
// What & Why:
//
//	Dense is a row-major, flat-slice matrix with a bounds-checked Set, a
//	no-copy Row view for hot loops, row sums, exact equality, and a JSON
//	encoding as an array of rows. Validators (ValidateSquare,
//	ValidateOrder, ValidateRowStochastic, ValidateFinite) centralize the
//	guard logic used by the analysis and rendering packages.
//
// Complexity:
//
//	Rows/Cols/Set/Row run in O(1); Equal, RowSums and the
//	validators run in O(rows*cols).
package matrix
