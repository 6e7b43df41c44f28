package validator

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/arthur-debert/assetlint/pkg/config"
	"github.com/arthur-debert/assetlint/pkg/errors"
	"github.com/arthur-debert/assetlint/pkg/logging"
	"github.com/arthur-debert/assetlint/pkg/packs"
	"github.com/arthur-debert/assetlint/pkg/rules"
	"github.com/arthur-debert/assetlint/pkg/types"
	"github.com/arthur-debert/assetlint/pkg/ui/output"
)

// Validator checks the packs of the configured categories
type Validator struct {
	fs       types.FS
	cfg      *config.Config
	checker  *rules.Checker
	reporter output.Reporter
	logger   zerolog.Logger
}

// New creates a validator reading through fs and reporting to reporter.
// A nil reporter discards all events.
func New(fs types.FS, cfg *config.Config, reporter output.Reporter) *Validator {
	if reporter == nil {
		reporter = output.Discard
	}
	return &Validator{
		fs:       fs,
		cfg:      cfg,
		checker:  rules.NewChecker(fs, cfg),
		reporter: reporter,
		logger:   logging.GetLogger("validator"),
	}
}

// Run validates every category and prints the summary. It returns an error
// only for fatal conditions, in which case no summary is printed; failing
// packs are reported through the result.
func (v *Validator) Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	for _, category := range v.cfg.CategoryList() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := v.runCategory(category, result); err != nil {
			return nil, err
		}
	}

	v.logger.Info().
		Int("packs", result.Packs()).
		Int("complaints", len(result.Complaints)).
		Int("issues", result.Issues).
		Msg("Validation finished")

	if err := v.reporter.Summary(result.Complaints); err != nil {
		return nil, err
	}

	return result, nil
}

func (v *Validator) runCategory(category types.Category, result *Result) error {
	done := logging.LogOperationStart(v.logger, "check "+category.Name)
	defer done()

	list, err := packs.List(v.fs, category, packs.Options{Ignore: v.cfg.Packs.Ignore})
	if err != nil {
		v.logger.Error().
			Err(err).
			Str("code", string(errors.GetErrorCode(err))).
			Fields(errors.GetErrorDetails(err)).
			Msg("Cannot list packs")
		return err
	}

	v.reporter.CategoryStarted(category, len(list))

	results := v.checkAll(list)

	summary := CategoryResult{Name: category.Name, Packs: len(list)}
	for i := range results {
		r := &results[i]
		result.Issues += len(r.Issues)
		if r.HasComplaints() {
			result.Complaints = append(result.Complaints, r.Pack.Complaint())
			summary.Complaints++
		}
	}
	result.Categories = append(result.Categories, summary)

	v.logger.Debug().
		Str("category", category.Name).
		Int("packs", summary.Packs).
		Int("complaints", summary.Complaints).
		Msg("Category checked")

	return nil
}

// checkAll checks the packs concurrently. Each goroutine owns one slot of
// the returned slice, which keeps the listing order.
func (v *Validator) checkAll(list []types.Pack) []types.PackResult {
	results := make([]types.PackResult, len(list))

	var g errgroup.Group
	if v.cfg.Concurrency > 0 {
		g.SetLimit(v.cfg.Concurrency)
	}

	for i, pack := range list {
		g.Go(func() error {
			r := v.checker.Check(pack)
			for _, issue := range r.Issues {
				v.reporter.Issue(issue)
			}
			v.logger.Trace().
				Str("category", pack.Category).
				Str("pack", pack.Name).
				Int("issues", len(r.Issues)).
				Msg("Pack checked")
			results[i] = r
			return nil
		})
	}

	// checks never fail; per-pack problems are issues
	_ = g.Wait()

	return results
}
