// Package packs enumerates the packs of a category.
//
// A category is one of the configured top-level asset directories; every
// immediate subdirectory of it is a pack. Enumeration is the only step of
// a run allowed to fail hard: a category that is missing, unreadable or not
// a directory is an environment problem, not a data-quality complaint.
package packs
