// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package keywords

import (
	"slices"
	"strings"

	"github.com/feedsift/feedsift/internal/log"
)

// Filter is a compiled keyword query. The zero value accepts everything.
// Filters are immutable once compiled; accessors hand out copies.
type Filter struct {
	include   []string
	exclude   []string
	overrides [][]string
}

// Terms is the exported, serializable view of a Filter.
type Terms struct {
	Include   []string   `yaml:"include" json:"include"`
	Exclude   []string   `yaml:"exclude" json:"exclude"`
	Overrides [][]string `yaml:"overrides" json:"overrides"`
}

// Compile parses a raw query into a Filter. It never fails: fragments that do
// not parse as phrases or groups are treated as plain comma-separated terms.
func Compile(raw string) Filter {
	var f Filter

	// Nothing to do, so go home early.
	if strings.TrimSpace(raw) == "" {
		return f
	}

	tokens := lex(raw)

	// Quoted phrases first, in the order they appear.
	for _, tok := range tokens {
		if tok.Kind != phraseToken {
			continue
		}
		term := normalize(tok.Value)
		if term == "" {
			log.Tracef("empty phrase dropped: pos=%d", tok.Pos)
			continue
		}
		if tok.Negate {
			f.exclude = append(f.exclude, term)
		} else {
			f.include = append(f.include, term)
		}
	}

	// Then the except(...) groups.
	for _, tok := range tokens {
		if tok.Kind != groupToken {
			continue
		}
		group := normalizeAll(tok.Elements)
		if len(group) == 0 {
			log.Tracef("empty override group dropped: pos=%d", tok.Pos)
			continue
		}
		f.overrides = append(f.overrides, group)
	}

	// Whatever is left is plain text. Removed phrases and groups leave nothing
	// behind, so the remaining fragments are joined as-is.
	var rest strings.Builder
	for _, tok := range tokens {
		if tok.Kind == textToken {
			rest.WriteString(tok.Value)
		}
	}

	for _, piece := range strings.Split(fold(rest.String()), ",") {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			continue
		}
		if strings.HasPrefix(piece, "-") {
			if term := normalize(piece[1:]); term != "" {
				f.exclude = append(f.exclude, term)
			}
			continue
		}
		if term := normalize(piece); term != "" {
			f.include = append(f.include, term)
		}
	}

	log.Debugf("compiled filter: include=%v exclude=%v overrides=%v", f.include, f.exclude, f.overrides)

	return f
}

// FromTerms builds a Filter from explicit term lists. Every term is normalized
// and empty terms and groups are dropped, so the result holds the same
// invariants as a compiled query.
func FromTerms(t Terms) Filter {
	f := Filter{
		include: normalizeAll(t.Include),
		exclude: normalizeAll(t.Exclude),
	}
	for _, g := range t.Overrides {
		if group := normalizeAll(g); len(group) > 0 {
			f.overrides = append(f.overrides, group)
		}
	}
	return f
}

// Include returns a copy of the include terms.
func (f Filter) Include() []string {
	return slices.Clone(f.include)
}

// Exclude returns a copy of the exclude terms.
func (f Filter) Exclude() []string {
	return slices.Clone(f.exclude)
}

// Overrides returns a copy of the override groups.
func (f Filter) Overrides() [][]string {
	if f.overrides == nil {
		return nil
	}
	groups := make([][]string, len(f.overrides))
	for i, g := range f.overrides {
		groups[i] = slices.Clone(g)
	}
	return groups
}

// Terms returns a serializable copy of the filter. Nil lists are returned as
// empty lists so that encoders print [] rather than null.
func (f Filter) Terms() Terms {
	t := Terms{
		Include:   f.Include(),
		Exclude:   f.Exclude(),
		Overrides: f.Overrides(),
	}
	if t.Include == nil {
		t.Include = []string{}
	}
	if t.Exclude == nil {
		t.Exclude = []string{}
	}
	if t.Overrides == nil {
		t.Overrides = [][]string{}
	}
	return t
}

// IsEmpty reports whether the filter has no terms at all, in which case every
// item is kept.
func (f Filter) IsEmpty() bool {
	return len(f.include) == 0 && len(f.exclude) == 0 && len(f.overrides) == 0
}

// Equal reports whether two filters hold the same terms in the same order.
func (f Filter) Equal(other Filter) bool {
	return slices.Equal(f.include, other.include) &&
		slices.Equal(f.exclude, other.exclude) &&
		slices.EqualFunc(f.overrides, other.overrides, func(a, b []string) bool {
			return slices.Equal(a, b)
		})
}

// String renders the filter as a query that compiles back to an equal filter.
// Every term is quoted; a term holding a double quote is wrapped in single
// quotes instead. Normalization trims quotes from both ends, so a quote is
// only ever inside a term. Terms holding both quote characters cannot round trip.
func (f Filter) String() string {
	var parts []string
	for _, t := range f.include {
		parts = append(parts, quote(t))
	}
	for _, t := range f.exclude {
		parts = append(parts, "-"+quote(t))
	}
	for _, g := range f.overrides {
		quoted := make([]string, len(g))
		for i, t := range g {
			quoted[i] = quote(t)
		}
		parts = append(parts, exceptKeyword+"("+strings.Join(quoted, ",")+")")
	}
	return strings.Join(parts, ",")
}

func quote(term string) string {
	if strings.Contains(term, `"`) {
		return "'" + term + "'"
	}
	return `"` + term + `"`
}
