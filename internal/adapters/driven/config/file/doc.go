// Package file provides the TOML-backed ConfigStore.
//
// The file lives at ~/.resp2seed/config.toml by default. Nested tables are
// exposed as dot-notation keys:
//
//	[schema]
//	paths = ["/etc/resp2seed/extra.toml"]
//
//	[convert]
//	seed_volume = true
//	strict = false
//
// reads back as "schema.paths", "convert.seed_volume" and "convert.strict".
package file
