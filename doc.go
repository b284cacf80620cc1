// Package imgops provides the pixel grid used by the imgops image
// transformation and filtering engines.
//
// # Overview
//
// A [Canvas] is a dense, fixed-size grid of 8-bit RGB [Pixel] values.
// New canvases start out white, which marks cells an operation never
// touched. Operations live in sub-packages:
//
//   - transform: affine forward mapping (translate, scale, rotate, flip)
//   - filter: 3x3 neighborhood filters, morphology, threshold and point ops
//   - pipeline: named operation steps, batch plans and the job runner
//
// # Quick Start
//
//	src := imgops.FromImage(img)
//	dst := imgops.NewCanvas(2*src.Width(), 2*src.Height())
//	transform.Scale(src, dst, 2, 2)
//
//	out := imgops.NewCanvas(src.Width(), src.Height())
//	filter.Median(src, out)
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// Coordinates passed to [Canvas.Pixel] and [Canvas.SetPixel] must lie
// inside the canvas. Engines derive their loop bounds from canvas sizes and
// never address cells outside them.
package imgops
