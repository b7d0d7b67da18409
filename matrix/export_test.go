// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels.
// Compiled only with the package tests; keeps ew* out of the production API.
var (
	EwBroadcastSubCols_TestOnly = ewBroadcastSubCols
	EwBroadcastAddCols_TestOnly = ewBroadcastAddCols
	EwScaleCols_TestOnly        = ewScaleCols
)
