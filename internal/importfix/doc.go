// Package importfix migrates source files that instantiate their own database client to a shared
// client module. It walks configured target directories, skips files that are already migrated or
// never construct the client, and rewrites the rest in place with an ordered list of named regular
// expression rules.
package importfix
