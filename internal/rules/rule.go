// Package rules holds the lint rule contract and the built-in rules.
//
// A rule owns no state between runs: every Run builds its own traversal
// state, so running a rule twice over the same tree with fresh sinks yields
// identical diagnostics. Rules read the tree and never modify it.
package rules

import (
	"lintcore/internal/ast"
	"lintcore/internal/diag"
)

// Rule is one pluggable analysis pass.
type Rule interface {
	// Code is the stable identifier attached to every diagnostic of the rule.
	Code() string
	// Tags classify the rule for selection (e.g. "recommended").
	Tags() []string
	// Run analyses tree and reports findings to sink.
	Run(sink diag.Reporter, tree *ast.Tree)
}

// Documented is implemented by rules that ship a one-paragraph description.
type Documented interface {
	Docs() string
}

// HasTag reports whether r carries tag.
func HasTag(r Rule, tag string) bool {
	for _, t := range r.Tags() {
		if t == tag {
			return true
		}
	}
	return false
}

const TagRecommended = "recommended"
