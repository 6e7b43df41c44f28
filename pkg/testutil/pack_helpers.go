package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/assetlint/pkg/filesystem"
	"github.com/arthur-debert/assetlint/pkg/types"
)

// ValidMeta is a metadata document that passes every default schema rule
const ValidMeta = `{"source": "https://example.com/pack", "author": "Jane Doe"}`

// SplashContent is placeholder content for preview images; only presence is checked
const SplashContent = "\x89PNG\r\n\x1a\n"

// PackTree builds an asset tree of categories and packs for tests
type PackTree struct {
	FS   afero.Fs
	Root string
}

// NewMemoryTree creates a tree backed by an in-memory filesystem
func NewMemoryTree(t *testing.T) *PackTree {
	t.Helper()

	fs := afero.NewMemMapFs()
	root := "/assets"
	require.NoError(t, fs.MkdirAll(root, 0755))

	return &PackTree{FS: fs, Root: root}
}

// NewDiskTree creates a tree rooted in a temporary directory on disk
func NewDiskTree(t *testing.T) *PackTree {
	t.Helper()

	return &PackTree{FS: afero.NewOsFs(), Root: t.TempDir()}
}

// TypesFS returns the tree's filesystem as a types.FS
func (pt *PackTree) TypesFS() types.FS {
	return filesystem.NewAferoFS(pt.FS)
}

// Category creates an empty category directory and returns it
func (pt *PackTree) Category(t *testing.T, name string) types.Category {
	t.Helper()

	path := filepath.Join(pt.Root, name)
	require.NoError(t, pt.FS.MkdirAll(path, 0755))

	return types.Category{Name: name, Path: path}
}

// Pack creates an empty pack directory
func (pt *PackTree) Pack(t *testing.T, category, name string) *PackBuilder {
	t.Helper()

	dir := filepath.Join(pt.Root, category, name)
	require.NoError(t, pt.FS.MkdirAll(dir, 0755))

	return &PackBuilder{
		fs:   pt.FS,
		Pack: types.Pack{Category: category, Name: name, Path: dir},
	}
}

// ValidPack creates a pack with a valid meta.json and a Splash.png
func (pt *PackTree) ValidPack(t *testing.T, category, name string) *PackBuilder {
	t.Helper()

	return pt.Pack(t, category, name).
		WithMeta(t, ValidMeta).
		WithSplash(t)
}

// File writes a file relative to the tree root
func (pt *PackTree) File(t *testing.T, rel, content string) string {
	t.Helper()

	path := filepath.Join(pt.Root, rel)
	require.NoError(t, pt.FS.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(pt.FS, path, []byte(content), 0644))

	return path
}

// PackBuilder adds files to a single pack
type PackBuilder struct {
	fs   afero.Fs
	Pack types.Pack
}

// WithFile writes a file into the pack
func (pb *PackBuilder) WithFile(t *testing.T, name, content string) *PackBuilder {
	t.Helper()

	require.NoError(t, afero.WriteFile(pb.fs, pb.Pack.GetFilePath(name), []byte(content), 0644))
	return pb
}

// WithMeta writes meta.json with the given content
func (pb *PackBuilder) WithMeta(t *testing.T, content string) *PackBuilder {
	t.Helper()
	return pb.WithFile(t, "meta.json", content)
}

// WithSplash writes a placeholder Splash.png
func (pb *PackBuilder) WithSplash(t *testing.T) *PackBuilder {
	t.Helper()
	return pb.WithFile(t, "Splash.png", SplashContent)
}
