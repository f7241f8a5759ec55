// Package protdb holds build information of the protein structure catalog.
package protdb

var (
	// Version of protdb, set by build flags.
	Version = "v0.1.0"
	// Build timestamp, set by build flags.
	Build = "n/a"
)
