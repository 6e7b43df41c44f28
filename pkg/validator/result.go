package validator

import (
	"github.com/arthur-debert/assetlint/pkg/types"
)

// CategoryResult summarizes one category pass
type CategoryResult struct {
	Name       string
	Packs      int
	Complaints int
}

// Result is the outcome of a validation run
type Result struct {
	// Complaints lists the failing packs in per-category enumeration order
	Complaints []types.Complaint
	Categories []CategoryResult
	// Issues counts every failing condition across all packs
	Issues int
}

// OK reports whether every pack passed every check
func (r *Result) OK() bool {
	return len(r.Complaints) == 0
}

// Packs returns the number of packs visited
func (r *Result) Packs() int {
	total := 0
	for _, c := range r.Categories {
		total += c.Packs
	}
	return total
}
