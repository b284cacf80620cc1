// Package filter implements 3x3 neighborhood filters over imgops canvases.
//
// This package contains:
//   - Convolution: box average, binomial gaussian, border detection
//   - Order statistics on gray levels: mode, median
//   - Gray morphology: dilation, erosion
//   - Full-grid point operations: threshold, grayscale, contrast,
//     brightness, negative
//
// Window filters visit interior pixels only (1 <= x <= width-2,
// 1 <= y <= height-2). The one-pixel border of the destination keeps its
// prior value, and images smaller than 3x3 in either dimension are left
// untouched. There is no clamp, wrap or mirror border policy.
//
// Each output cell depends on exactly one window, so an [Engine] created
// with [WithWorkers] processes row bands in parallel with results identical
// to the sequential package-level functions.
package filter
