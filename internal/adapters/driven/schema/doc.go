// Package schema provides the group template registry.
//
// Templates come from a static table of SEED blockette layouts compiled
// into the binary (see Builtin), optionally extended or overridden by
// template files in TOML or YAML (see LoadFile). Loop descriptors are
// flattened once per group type and the result is memoized.
package schema
