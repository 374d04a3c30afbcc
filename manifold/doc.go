// Package manifold provides the SE(3)/SO(3) primitives the linearization
// core is built on: column-major 3×3 matrices, unit-quaternion conversions
// with a fixed sign convention, rigid transforms, tangent-space increments,
// and the closed-form derivative of the quaternion extraction with respect
// to the rotation-matrix entries.
//
// Conventions (all of them load-bearing, do not change):
//
//   - Mat3 stores its 9 entries column-major; every 9-entry ordering in this
//     package (including the columns of the DQuatDRotation result) follows it.
//   - Unit quaternions representing rotations are normalized so the real
//     (scalar) part is non-negative, picking one representative out of the
//     ±q ambiguity. QuatFromRotation enforces it; downstream consumers of
//     the minimal parameterization depend on this exact choice.
//   - Tangent vectors for rigid transforms are [tx ty tz qx qy qz]: a local
//     translation followed by the imaginary parts of a unit quaternion.
//     IsometryFromTangent builds the increment so that the increments of
//     delta and -delta are exact algebraic inverses of each other.
//
// All functions are pure: they take values, return values, and never touch
// shared state, so each can be unit-tested in isolation.
package manifold
