// Package transform implements affine forward mapping of canvases.
//
// Every transform computes, for each source pixel, where it lands in the
// destination and copies it there ("scatter"). There is no interpolation:
// enlarging leaves holes that keep the destination's prior value, and
// shrinking lets several source pixels collide on one cell. Pixels that
// land outside the destination are dropped silently.
//
// The named transforms are:
//   - Translate: identity linear part plus a translation
//   - Scale: diagonal linear part
//   - Rotate: rotation with entries rounded to integers, offset by the
//     larger source dimension
//   - Flip: mirror of one axis, offset by the source size on that axis
package transform
