// Package coord maps logical coordinates to pixel positions.
//
// A Ranged maps values of one axis onto a pixel span. Three families are
// provided:
//   - Linear: numeric ranges, extrapolating outside their bounds unless clamped
//   - Log: base-10 logarithmic ranges, rejecting non-positive values
//   - Discrete and Centric: integer buckets of equal pixel width, as used
//     by histograms
//
// Cartesian2D combines two Ranged axes with a pixel rectangle and
// implements plot.Projector for XY points. Two Cartesian2D values on the
// same backend give a chart a primary and a secondary coordinate system.
//
// # Rounding
//
// Every mapping rounds to the nearest pixel with halves rounded away from
// zero (see Round). Bucket edges are computed from the bucket index alone,
// so adjacent buckets share an edge: there are no gaps and no overlaps.
package coord
