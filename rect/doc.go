// Package rect implements the inclusive 2-D bounding-box algebra used by the
// grid predicates: point extension, pairwise intersection, and crossing tests
// against the lines separating adjacent grid rows or columns.
//
// What:
//
//   - Rect carries an inclusive row range [R0, R1] and column range [C0, C1].
//   - Empty() is the distinguished empty box (R0 = +∞); adding the first
//     point yields a degenerate single-cell box.
//   - Add grows a box to cover one more point (coordinate-wise extrema).
//   - Intersects is the separating-axis test on inclusive bounds; the empty
//     box never intersects anything.
//   - CrossesHorizontal(i) reports whether the box spans the line between
//     rows i and i+1 (R0 ≤ i < R1, strict on the far endpoint), and
//     CrossesVertical likewise for columns.
//
// Why:
//
//   - Preference and dominance boxes of a grid profile are bounding boxes;
//     validity, split-line and isolation predicates reduce to this algebra.
//
// All operations are O(1) on immutable values.
package rect
