package driver

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"lintcore/internal/diag"
	"lintcore/internal/estree"
	"lintcore/internal/observ"
	"lintcore/internal/resolve"
	"lintcore/internal/source"
	"lintcore/internal/trace"
)

// CheckOptions configures CheckFile.
type CheckOptions struct {
	Registry  *Registry // nil means Builtin()
	Selection Selection
	Jobs      int
	Severity  map[string]diag.Severity
	Encoding  estree.Encoding
	Timings   bool
}

// CheckResult is everything one check produced.
type CheckResult struct {
	FileSet  *source.FileSet
	Document *estree.Document
	Resolve  *resolve.Result
	Run      *RunResult
	Timer    *observ.Timer // nil unless Timings
}

// CheckFile loads the tree document at path, resolves it and runs the
// selected rules.
func CheckFile(ctx context.Context, path string, opts CheckOptions) (*CheckResult, error) {
	ctx, span := trace.BeginCtx(ctx, trace.ScopeDriver, "check")
	defer span.End(path)

	reg := opts.Registry
	if reg == nil {
		reg = Builtin()
	}
	selected, err := reg.Select(opts.Selection)
	if err != nil {
		return nil, err
	}
	// переопределения severity тоже только для известных правил
	if err := reg.CheckCodes(slices.Sorted(maps.Keys(opts.Severity))...); err != nil {
		return nil, fmt.Errorf("severity override: %w", err)
	}

	var timer *observ.Timer
	if opts.Timings {
		timer = observ.NewTimer()
	}
	begin := func(name string) int {
		if timer == nil {
			return -1
		}
		return timer.Begin(name)
	}
	end := func(idx int, note string) {
		if timer == nil || idx < 0 {
			return
		}
		timer.End(idx, note)
	}

	res := &CheckResult{FileSet: source.NewFileSet(), Timer: timer}

	loadIdx := begin("load")
	_, loadSpan := trace.BeginCtx(ctx, trace.ScopePass, "load")
	res.Document, err = estree.Load(res.FileSet, path, opts.Encoding)
	loadSpan.End("")
	end(loadIdx, "")
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	trace.PointCtx(ctx, trace.ScopePass, "tree", fmt.Sprintf("stmts=%d exprs=%d idents=%d",
		res.Document.Tree.Stmts.Arena.Len(), res.Document.Tree.Exprs.Arena.Len(), res.Document.Tree.Idents.Arena.Len()))

	resolveIdx := begin("resolve")
	_, resolveSpan := trace.BeginCtx(ctx, trace.ScopePass, "resolve")
	res.Resolve = resolve.Program(res.Document.Tree)
	note := fmt.Sprintf("scopes=%d unresolved=%d", res.Resolve.Table.Scopes.Len(), res.Resolve.Unresolved)
	resolveSpan.End(note)
	end(resolveIdx, note)

	lintIdx := begin("lint")
	res.Run, err = Run(ctx, res.Document.Tree, RunOptions{
		Rules:    selected,
		Jobs:     opts.Jobs,
		Severity: opts.Severity,
		Timer:    timer,
	})
	if err != nil {
		return nil, err
	}
	end(lintIdx, fmt.Sprintf("rules=%d", len(selected)))
	return res, nil
}
