// Package kernel provides the primitives shared by every aggregate of the order
// tracking domain.
//
// The package includes:
//   - ID: the surrogate integer identifier assigned by the entity store
//   - Clock: the source of wall-clock time for placement and delivery stamps
//
// Both are small value types; aggregates depend on them instead of on raw ints
// and time.Now so that identifiers are validated in one place and timestamps can
// be driven from tests.
package kernel
