package driver

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"lintcore/internal/rules"
)

// ErrUnknownRule is wrapped by Select for codes missing from the registry.
var ErrUnknownRule = errors.New("unknown rule")

// ErrUnknownTag is wrapped by Select for tags no rule carries.
var ErrUnknownTag = errors.New("unknown rule tag")

// Factory builds a fresh rule value for one run.
type Factory func() rules.Rule

// Entry is one registered rule.
type Entry struct {
	Code string
	Tags []string
	Docs string
	New  Factory
}

// Registry is an ordered table of rules; order is the merge order of
// per-rule results.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// NewRegistry registers factories in order. A duplicate code panics:
// the table is static.
func NewRegistry(factories ...Factory) *Registry {
	r := &Registry{index: make(map[string]int, len(factories))}
	for _, f := range factories {
		rule := f()
		code := rule.Code()
		if _, dup := r.index[code]; dup {
			panic(fmt.Sprintf("driver: rule %q registered twice", code))
		}
		e := Entry{Code: code, Tags: slices.Clone(rule.Tags()), New: f}
		if d, ok := rule.(rules.Documented); ok {
			e.Docs = d.Docs()
		}
		r.index[code] = len(r.entries)
		r.entries = append(r.entries, e)
	}
	return r
}

// Builtin returns the registry of rules shipped with lintcore.
func Builtin() *Registry {
	return NewRegistry(
		func() rules.Rule { return rules.NoRedeclare{} },
		func() rules.Rule { return rules.NoSetterReturn{} },
	)
}

func (r *Registry) Entries() []Entry { return r.entries }

func (r *Registry) Lookup(code string) (Entry, bool) {
	i, ok := r.index[code]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Selection picks rules by tag and code. Empty Tags and Include select
// every rule; otherwise a rule is selected when it carries one of Tags or
// its code is in Include. Exclude always wins.
type Selection struct {
	Tags    []string
	Include []string
	Exclude []string
}

// Select instantiates the selected rules in registry order.
func (r *Registry) Select(sel Selection) ([]rules.Rule, error) {
	if err := r.CheckCodes(slices.Concat(sel.Include, sel.Exclude)...); err != nil {
		return nil, err
	}
	for _, tag := range sel.Tags {
		if !r.hasTag(tag) {
			return nil, fmt.Errorf("%w %q", ErrUnknownTag, tag)
		}
	}

	all := len(sel.Tags) == 0 && len(sel.Include) == 0
	out := make([]rules.Rule, 0, len(r.entries))
	for _, e := range r.entries {
		if slices.Contains(sel.Exclude, e.Code) {
			continue
		}
		picked := all || slices.Contains(sel.Include, e.Code)
		for _, tag := range sel.Tags {
			if slices.Contains(e.Tags, tag) {
				picked = true
			}
		}
		if picked {
			out = append(out, e.New())
		}
	}
	return out, nil
}

// CheckCodes fails with ErrUnknownRule on the first code missing from the
// registry.
func (r *Registry) CheckCodes(codes ...string) error {
	for _, code := range codes {
		if _, ok := r.index[code]; !ok {
			return fmt.Errorf("%w %q (known: %s)", ErrUnknownRule, code, strings.Join(r.codes(), ", "))
		}
	}
	return nil
}

func (r *Registry) codes() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Code
	}
	return out
}

func (r *Registry) hasTag(tag string) bool {
	for _, e := range r.entries {
		if slices.Contains(e.Tags, tag) {
			return true
		}
	}
	return false
}
