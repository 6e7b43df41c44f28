package validator

import (
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/assetlint/pkg/config"
	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/testutil"
	"github.com/arthur-debert/assetlint/pkg/types"
)

// recorder is a reporter that keeps every event for inspection
type recorder struct {
	mu         sync.Mutex
	categories []string
	issues     []types.Issue
	summaries  [][]types.Complaint
}

func (r *recorder) CategoryStarted(category types.Category, _ int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories = append(r.categories, category.Name)
}

func (r *recorder) Issue(issue types.Issue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.issues = append(r.issues, issue)
}

func (r *recorder) Summary(complaints []types.Complaint) error {
	r.summaries = append(r.summaries, complaints)
	return nil
}

func (r *recorder) issuesFor(pack string) []types.Issue {
	var out []types.Issue
	for _, issue := range r.issues {
		if issue.Pack == pack {
			out = append(out, issue)
		}
	}
	return out
}

// newTree creates both default categories, empty
func newTree(t *testing.T) *testutil.PackTree {
	tree := testutil.NewMemoryTree(t)
	tree.Category(t, "sounds")
	tree.Category(t, "textures")
	return tree
}

func run(t *testing.T, tree *testutil.PackTree) (*Result, *recorder) {
	t.Helper()

	cfg := config.Default()
	cfg.Root = tree.Root
	rec := &recorder{}

	result, err := New(tree.TypesFS(), cfg, rec).Run(context.Background())
	require.NoError(t, err)

	return result, rec
}

func TestRun_EmptyCategories(t *testing.T) {
	result, rec := run(t, newTree(t))

	assert.True(t, result.OK())
	assert.Equal(t, 0, result.Packs())
	assert.Equal(t, []string{"sounds", "textures"}, rec.categories)
	require.Len(t, rec.summaries, 1)
	assert.Empty(t, rec.summaries[0])
}

func TestRun_ScenarioA_UnfriendlyName(t *testing.T) {
	tree := newTree(t)
	tree.ValidPack(t, "textures", "Good_Pack")

	result, rec := run(t, tree)

	assert.False(t, result.OK())
	assert.Equal(t, []types.Complaint{{Category: "textures", Pack: "Good_Pack"}}, result.Complaints)
	assert.Equal(t, 1, result.Issues)
	require.Len(t, rec.issues, 1)
	assert.Equal(t, types.IssueNaming, rec.issues[0].Kind)
}

func TestRun_ScenarioB_ValidPack(t *testing.T) {
	tree := newTree(t)
	tree.Pack(t, "sounds", "GreatPack").
		WithMeta(t, `{"source":"https://x.com","author":"me"}`).
		WithSplash(t)

	result, rec := run(t, tree)

	assert.True(t, result.OK())
	assert.Empty(t, rec.issues)
	assert.Equal(t, []CategoryResult{
		{Name: "sounds", Packs: 1},
		{Name: "textures", Packs: 0},
	}, result.Categories)
}

func TestRun_ScenarioC_MalformedMetadata(t *testing.T) {
	tree := newTree(t)
	tree.Pack(t, "sounds", "Broken").
		WithMeta(t, `{"source": "https://x.com", "author": }`).
		WithSplash(t)

	result, rec := run(t, tree)

	assert.Equal(t, []types.Complaint{{Category: "sounds", Pack: "Broken"}}, result.Complaints)
	issues := rec.issuesFor("Broken")
	require.Len(t, issues, 1)
	assert.Equal(t, types.IssueMalformedMetadata, issues[0].Kind)
}

func TestRun_ComplaintOrder(t *testing.T) {
	tree := newTree(t)
	for i := 0; i < 20; i++ {
		tree.Pack(t, "sounds", fmt.Sprintf("Pack %02d", i))
	}
	tree.ValidPack(t, "sounds", "Pack 05 Valid")
	tree.Pack(t, "textures", "bad")
	tree.ValidPack(t, "textures", "Fine")

	result, _ := run(t, tree)

	var want []types.Complaint
	for i := 0; i < 20; i++ {
		want = append(want, types.Complaint{Category: "sounds", Pack: fmt.Sprintf("Pack %02d", i)})
	}
	want = append(want, types.Complaint{Category: "textures", Pack: "bad"})

	assert.Equal(t, want, result.Complaints)
	// 20 packs missing two files each, plus naming and two files for "bad"
	assert.Equal(t, 43, result.Issues)
	assert.Equal(t, 23, result.Packs())
}

func TestRun_Idempotent(t *testing.T) {
	tree := newTree(t)
	tree.ValidPack(t, "sounds", "Alpha")
	tree.Pack(t, "sounds", "beta").WithMeta(t, `{"author": "x", "donate": "not a url"}`)
	tree.Pack(t, "textures", "Gamma!").WithSplash(t)
	tree.Pack(t, "textures", "Delta").WithMeta(t, "{").WithSplash(t)

	first, _ := run(t, tree)
	second, _ := run(t, tree)

	assert.Equal(t, first.Complaints, second.Complaints)
	assert.Equal(t, first.Issues, second.Issues)
	assert.Equal(t, first.OK(), second.OK())
	assert.Len(t, first.Complaints, 3)
}

func TestRun_ConcurrencyLimit(t *testing.T) {
	tree := newTree(t)
	for i := 0; i < 10; i++ {
		tree.ValidPack(t, "sounds", fmt.Sprintf("Pack %d", i))
	}
	tree.Pack(t, "sounds", "Pack 3 Empty")

	cfg := config.Default()
	cfg.Root = tree.Root
	cfg.Concurrency = 2

	result, err := New(tree.TypesFS(), cfg, nil).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []types.Complaint{{Category: "sounds", Pack: "Pack 3 Empty"}}, result.Complaints)
}

func TestRun_MissingCategoryIsFatal(t *testing.T) {
	tree := testutil.NewMemoryTree(t)
	tree.ValidPack(t, "sounds", "Alpha")

	cfg := config.Default()
	cfg.Root = tree.Root
	rec := &recorder{}

	result, err := New(tree.TypesFS(), cfg, rec).Run(context.Background())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCategoryNotFound))
	assert.Equal(t, "textures", errors.GetErrorDetails(err)["category"])
	assert.Empty(t, rec.summaries, "no summary after a fatal error")
}

func TestRun_FatalErrorIsLoggedWithDetails(t *testing.T) {
	var buf bytes.Buffer
	previous, level := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(level)
	})
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	tree := testutil.NewMemoryTree(t)
	tree.Category(t, "sounds")
	cfg := config.Default()
	cfg.Root = tree.Root

	_, err := New(tree.TypesFS(), cfg, nil).Run(context.Background())
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"code":"CATEGORY_NOT_FOUND"`)
	assert.Contains(t, out, `"category":"textures"`)
	assert.Contains(t, out, "Cannot list packs")
}

func TestRun_CategoryIsFile(t *testing.T) {
	tree := testutil.NewMemoryTree(t)
	tree.Category(t, "sounds")
	tree.File(t, "textures", "not a directory")

	cfg := config.Default()
	cfg.Root = tree.Root

	_, err := New(tree.TypesFS(), cfg, nil).Run(context.Background())

	assert.True(t, errors.IsErrorCode(err, errors.ErrCategoryInvalid))
}

func TestRun_CanceledContext(t *testing.T) {
	tree := newTree(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := config.Default()
	cfg.Root = tree.Root

	_, err := New(tree.TypesFS(), cfg, nil).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_OnDisk(t *testing.T) {
	tree := testutil.NewDiskTree(t)
	tree.Category(t, "sounds")
	tree.Category(t, "textures")
	tree.ValidPack(t, "sounds", "Rain")
	tree.Pack(t, "textures", "Moss").WithMeta(t, `{"source": "https://moss.example", "author": "M", "twitch": "twitch"}`).WithSplash(t)
	tree.File(t, "textures/README.md", "not a pack")

	result, rec := run(t, tree)

	assert.Equal(t, []types.Complaint{{Category: "textures", Pack: "Moss"}}, result.Complaints)
	require.Len(t, rec.issues, 1)
	assert.Equal(t, types.IssueInvalidURL, rec.issues[0].Kind)
	assert.Equal(t, "twitch", rec.issues[0].Subject)
}
