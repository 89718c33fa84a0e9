// Package pkguid generates and parses unique identifiers: UUID versions
// 1, 3, 4, 5, 6 and 7, ULID, KSUID, Snowflake-style numeric IDs, and
// NanoID-style random strings.
//
// All generation goes through an Engine that takes its wall clock and its
// random source as injected collaborators, so tests can pin both. Parsing
// is pure and never mutates or regenerates anything; malformed input is
// reported through the package's sentinel errors.
package pkguid
