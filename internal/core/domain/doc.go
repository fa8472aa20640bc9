// Package domain defines the core types of the RESP to SEED converter.
//
// This package is the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Template / FieldDescriptor: the static shape of a group type
//   - Triple: one field value read from a RESP line
//   - GroupInstance / Binding: one assembled group with every slot bound
//   - Document: the bucketed record set handed to a SEED encoder
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
