// Package types defines the core types and interfaces shared by the linter:
// the read-only FS abstraction, categories and packs, the issues raised by
// checks, and the complaints that make up the final report.
package types
