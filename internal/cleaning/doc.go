// Package cleaning implements the line-oriented transform that turns a raw
// delimited weather export into a cleaned copy. Missing or placeholder
// fields are replaced with the sentinel "0"; column count and ordering are
// preserved.
//
// The package is built around a single parse/write pair shared by two
// interchangeable engines. The engines differ only in their LineSource: one
// reads the input incrementally through a buffered reader, the other scans
// a fully materialized byte range (memory-mapped where the platform allows
// it). Both are required to produce byte-identical output.
package cleaning
