package output

import (
	"github.com/arthur-debert/assetlint/pkg/types"
)

// Reporter receives validation events as they happen
type Reporter interface {
	// CategoryStarted is called before the packs of a category are checked
	CategoryStarted(category types.Category, packs int)
	// Issue is called for every failing condition. It must be safe for
	// concurrent use.
	Issue(issue types.Issue)
	// Summary is called once, after all categories, with the complaints
	// in enumeration order
	Summary(complaints []types.Complaint) error
}

// Discard is a Reporter that drops every event
var Discard Reporter = discard{}

type discard struct{}

func (discard) CategoryStarted(types.Category, int) {}

func (discard) Issue(types.Issue) {}

func (discard) Summary([]types.Complaint) error { return nil }
