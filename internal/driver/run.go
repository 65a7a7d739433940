package driver

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"lintcore/internal/ast"
	"lintcore/internal/diag"
	"lintcore/internal/observ"
	"lintcore/internal/rules"
	"lintcore/internal/trace"
)

// RunOptions configures one lint pass over a resolved tree.
type RunOptions struct {
	Rules []rules.Rule
	// Jobs limits concurrently running rules; <= 0 means GOMAXPROCS.
	Jobs int
	// Severity overrides the severity rules report, by code.
	Severity map[string]diag.Severity
	// Timer, when set, receives one "rule:<code>" phase per rule.
	Timer *observ.Timer
}

// RuleResult is the sink of one rule.
type RuleResult struct {
	Code     string
	Bag      *diag.Bag
	Duration time.Duration
}

// RunResult holds per-rule sinks in rule order and their sorted merge.
type RunResult struct {
	Rules  []RuleResult
	Merged *diag.Bag
}

// Run executes every rule over tree, each with its own sink. The tree must
// already be resolved and is not modified. Cancellation is checked before
// each rule starts; a started rule always runs to completion.
func Run(ctx context.Context, tree *ast.Tree, opts RunOptions) (*RunResult, error) {
	ctx, span := trace.BeginCtx(ctx, trace.ScopePass, "lint")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]RuleResult, len(opts.Rules))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(opts.Rules))))
	for i, rule := range opts.Rules {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := runRule(gctx, rule, tree, opts)
			if err != nil {
				return err
			}
			// индекс уникален, мьютекс не нужен
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.End(err.Error())
		return nil, err
	}

	merged := diag.NewBag()
	for i := range results {
		merged.Merge(results[i].Bag)
	}
	merged.Sort()
	span.WithExtra("rules", strconv.Itoa(len(results)))
	span.End(fmt.Sprintf("%d diagnostics", merged.Len()))
	return &RunResult{Rules: results, Merged: merged}, nil
}

func runRule(ctx context.Context, rule rules.Rule, tree *ast.Tree, opts RunOptions) (res RuleResult, err error) {
	code := rule.Code()
	_, span := trace.BeginCtx(ctx, trace.ScopeRule, observ.RulePrefix+code)
	bag := diag.NewBag()

	var sink diag.Reporter = diag.BagReporter{Bag: bag}
	if len(opts.Severity) > 0 {
		sink = diag.NewSeverityReporter(sink, opts.Severity)
	}

	defer func() {
		if r := recover(); r != nil {
			span.End("panic")
			err = fmt.Errorf("rule %s panicked: %v", code, r)
		}
	}()

	rule.Run(sink, tree)

	dur := span.End(fmt.Sprintf("%d diagnostics", bag.Len()))
	if opts.Timer != nil {
		opts.Timer.Record(observ.RulePrefix+code, dur, fmt.Sprintf("diags=%d", bag.Len()))
	}
	return RuleResult{Code: code, Bag: bag, Duration: dur}, nil
}
