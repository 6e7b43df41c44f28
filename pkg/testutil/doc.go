// Package testutil provides helpers for building asset trees in tests.
//
// A PackTree wraps an afero filesystem, either in memory or rooted in a
// temporary directory, and creates categories and packs declaratively:
//
//	tree := testutil.NewMemoryTree(t)
//	tree.ValidPack(t, "sounds", "Bells")
//	tree.Pack(t, "sounds", "bad_name").WithMeta(t, "{")
package testutil
