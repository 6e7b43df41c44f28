package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/assetlint/pkg/types"
)

func TestTextReporter_CategoryStarted(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewTextReporter(&out, &errOut, false)

	r.CategoryStarted(types.Category{Name: "sounds", Path: "/a/sounds"}, 3)

	assert.Equal(t, "⌛  Checking sounds…\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestTextReporter_IssueSymbols(t *testing.T) {
	tests := []struct {
		kind   types.IssueKind
		symbol string
	}{
		{types.IssueNaming, "✏️ "},
		{types.IssueMissingFile, "📁"},
		{types.IssueMalformedMetadata, "⛔"},
		{types.IssueMissingField, "⛔"},
		{types.IssueInvalidURL, "⛔"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			var out, errOut bytes.Buffer
			r := NewTextReporter(&out, &errOut, false)

			r.Issue(types.Issue{Kind: tt.kind, Message: "Bells has a problem"})

			assert.Empty(t, out.String())
			assert.Equal(t, tt.symbol+"  Bells has a problem\n", errOut.String())
		})
	}
}

func TestTextReporter_SummaryValid(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewTextReporter(&out, &errOut, false)

	require.NoError(t, r.Summary(nil))

	assert.Equal(t, "✅ All asset packs are valid.\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestTextReporter_SummaryComplaints(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewTextReporter(&out, &errOut, false)

	err := r.Summary([]types.Complaint{
		{Category: "sounds", Pack: "Bells"},
		{Category: "textures", Pack: "bad_pack"},
	})
	require.NoError(t, err)

	assert.Empty(t, out.String())
	lines := strings.Split(strings.TrimRight(errOut.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "⚠️   2 asset packs contain complaints:", lines[1])
	assert.Equal(t, "    sounds – Bells", lines[2])
	assert.Equal(t, "    textures – bad_pack", lines[3])
}

func TestTextReporter_ConcurrentIssuesAreLineAtomic(t *testing.T) {
	var out, errOut bytes.Buffer
	r := NewTextReporter(&out, &errOut, false)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Issue(types.Issue{Kind: types.IssueMissingFile, Message: "Pack does not contain a meta.json"})
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(errOut.String(), "\n"), "\n")
	require.Len(t, lines, 50)
	for _, line := range lines {
		assert.Equal(t, "📁  Pack does not contain a meta.json", line)
	}
}

func TestJSONReporter(t *testing.T) {
	var out bytes.Buffer
	r := NewJSONReporter(&out)

	r.CategoryStarted(types.Category{Name: "sounds", Path: "/a/sounds"}, 2)
	r.Issue(types.Issue{
		Kind:     types.IssueMissingFile,
		Category: "sounds",
		Pack:     "Bells",
		Subject:  "Splash.png",
		Message:  "Bells does not contain a Splash.png",
	})
	assert.Empty(t, out.String(), "nothing is written before Summary")

	complaints := []types.Complaint{{Category: "sounds", Pack: "Bells"}}
	require.NoError(t, r.Summary(complaints))

	var report Report
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.False(t, report.OK)
	assert.Equal(t, complaints, report.Complaints)
	require.Len(t, report.Categories, 1)
	assert.Equal(t, CategoryReport{Name: "sounds", Path: "/a/sounds", Packs: 2}, report.Categories[0])
	require.Len(t, report.Issues, 1)
	assert.Equal(t, types.IssueMissingFile, report.Issues[0].Kind)
	assert.Equal(t, "Splash.png", report.Issues[0].Subject)
}

func TestJSONReporter_Valid(t *testing.T) {
	var out bytes.Buffer
	r := NewJSONReporter(&out)

	require.NoError(t, r.Summary(nil))

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &raw))
	assert.Equal(t, true, raw["ok"])
	assert.Equal(t, []interface{}{}, raw["complaints"])
	assert.Equal(t, []interface{}{}, raw["issues"])
}

func TestDiscard(t *testing.T) {
	Discard.CategoryStarted(types.Category{Name: "sounds"}, 1)
	Discard.Issue(types.Issue{})
	assert.NoError(t, Discard.Summary(nil))
}
