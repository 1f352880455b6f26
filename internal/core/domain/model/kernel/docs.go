// Package kernel provides the domain primitives shared by every aggregate of the
// logistics backend.
//
// The package includes:
//   - UUID: A value object for identifiers with validation and comparison capabilities
//   - Address: The delivery address value object resolved from a postal code
//
// Both are immutable and only valid when created through their constructors.
package kernel
