// Package rules partitions rendered text lines into ordered, gapless
// colored fragments according to pattern-matching rules.
//
// Rules are validated when constructed and immutable afterwards, so the
// draw path never sees an unparseable pattern. Apply guarantees that
// concatenating the returned fragments reproduces the input line.
package rules

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/lixenwraith/gridtui/terminal"
)

// ErrInvalidRule reports an unparseable pattern or out-of-range region
var ErrInvalidRule = errors.New("rules: invalid color rule")

// RuleType selects how the pattern is tested against a line
type RuleType uint8

const (
	StartsWith RuleType = iota
	EndsWith
	NotStartsWith
	NotEndsWith
	Contains
)

// MatchType selects which part of a matched line is colored
type MatchType uint8

const (
	// MatchLine colors the whole line
	MatchLine MatchType = iota
	// MatchRegex colors every non-overlapping pattern match in the line
	MatchRegex
	// MatchRegion colors a fixed [start, end) column range
	MatchRegion
)

// Rule is one immutable coloring rule
type Rule struct {
	pattern  string
	re       *regexp.Regexp // Compiled only for MatchRegex
	ruleType RuleType
	match    MatchType

	regionStart int
	regionEnd   int

	includeWhitespace bool

	color         terminal.Pair
	selectedColor terminal.Pair
}

// Opts declares a rule to be validated by New
type Opts struct {
	Pattern       string
	RuleType      RuleType
	MatchType     MatchType
	RegionStart   int // Used only with MatchRegion
	RegionEnd     int
	Color         terminal.Pair
	SelectedColor terminal.Pair

	// IncludeWhitespace tests the raw line; when false the line is
	// whitespace-stripped before the RuleType test
	IncludeWhitespace bool
}

// New validates and builds a rule
// Regex patterns that fail to compile and inverted regions are rejected
// here, never during rendering
func New(o Opts) (*Rule, error) {
	r := &Rule{
		pattern:           o.Pattern,
		ruleType:          o.RuleType,
		match:             o.MatchType,
		regionStart:       o.RegionStart,
		regionEnd:         o.RegionEnd,
		includeWhitespace: o.IncludeWhitespace,
		color:             o.Color,
		selectedColor:     o.SelectedColor,
	}
	switch o.MatchType {
	case MatchRegex:
		re, err := regexp.Compile(o.Pattern)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %q: %v", ErrInvalidRule, o.Pattern, err)
		}
		r.re = re
	case MatchRegion:
		if o.RegionStart < 0 || o.RegionEnd < o.RegionStart {
			return nil, fmt.Errorf("%w: region [%d, %d)", ErrInvalidRule, o.RegionStart, o.RegionEnd)
		}
	case MatchLine:
		// Literal pattern, nothing to validate
	default:
		return nil, fmt.Errorf("%w: unknown match type %d", ErrInvalidRule, o.MatchType)
	}
	switch o.RuleType {
	case StartsWith, EndsWith, NotStartsWith, NotEndsWith, Contains:
	default:
		return nil, fmt.Errorf("%w: unknown rule type %d", ErrInvalidRule, o.RuleType)
	}
	return r, nil
}

// Pattern returns the rule's pattern text
func (r *Rule) Pattern() string { return r.pattern }

// paint returns the fragment color for the current selection state
func (r *Rule) paint(selected bool) terminal.Pair {
	if selected {
		return r.selectedColor
	}
	return r.color
}

// matches tests the rule against the comparison text of a line
func (r *Rule) matches(line string) bool {
	text := line
	if !r.includeWhitespace {
		text = strings.TrimSpace(text)
	}

	var hit bool
	if r.match == MatchRegex {
		hit = r.regexTest(text)
	} else {
		hit = r.literalTest(text)
	}

	switch r.ruleType {
	case NotStartsWith, NotEndsWith:
		return !hit
	default:
		return hit
	}
}

// literalTest applies the positive form of the RuleType with a literal pattern
func (r *Rule) literalTest(text string) bool {
	switch r.ruleType {
	case StartsWith, NotStartsWith:
		return strings.HasPrefix(text, r.pattern)
	case EndsWith, NotEndsWith:
		return strings.HasSuffix(text, r.pattern)
	case Contains:
		return strings.Contains(text, r.pattern)
	}
	return false
}

// regexTest applies the positive form of the RuleType with the compiled pattern
func (r *Rule) regexTest(text string) bool {
	switch r.ruleType {
	case StartsWith, NotStartsWith:
		loc := r.re.FindStringIndex(text)
		return loc != nil && loc[0] == 0
	case EndsWith, NotEndsWith:
		for _, loc := range r.re.FindAllStringIndex(text, -1) {
			if loc[1] == len(text) {
				return true
			}
		}
		return false
	case Contains:
		return r.re.MatchString(text)
	}
	return false
}

// Fragment is a contiguous substring of a line paired with one color
type Fragment struct {
	Text  string
	Color terminal.Pair
}

// Apply partitions line into ordered fragments. The first rule whose
// test succeeds owns the line; remaining rules are ignored. Fragments
// always concatenate back to line exactly
func Apply(line string, ruleSet []*Rule, defaultColor terminal.Pair, selected bool) []Fragment {
	for _, r := range ruleSet {
		if !r.matches(line) {
			continue
		}
		switch r.match {
		case MatchLine:
			return []Fragment{{Text: line, Color: r.paint(selected)}}
		case MatchRegion:
			return regionFragments(line, r, defaultColor, selected)
		case MatchRegex:
			return regexFragments(line, r, defaultColor, selected)
		}
	}
	return []Fragment{{Text: line, Color: defaultColor}}
}

// regionFragments colors a clipped [start, end) byte range
// Empty fragments are omitted
func regionFragments(line string, r *Rule, def terminal.Pair, selected bool) []Fragment {
	start, end := r.regionStart, r.regionEnd
	if start > len(line) {
		start = len(line)
	}
	if end > len(line) {
		end = len(line)
	}

	frags := make([]Fragment, 0, 3)
	if start > 0 {
		frags = append(frags, Fragment{Text: line[:start], Color: def})
	}
	if end > start {
		frags = append(frags, Fragment{Text: line[start:end], Color: r.paint(selected)})
	}
	if end < len(line) {
		frags = append(frags, Fragment{Text: line[end:], Color: def})
	}
	if len(frags) == 0 {
		frags = append(frags, Fragment{Text: line, Color: def})
	}
	return frags
}

// regexFragments alternates default gaps with leftmost-first matches
// A line with zero matches degenerates to a single default fragment
func regexFragments(line string, r *Rule, def terminal.Pair, selected bool) []Fragment {
	locs := r.re.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return []Fragment{{Text: line, Color: def}}
	}

	frags := make([]Fragment, 0, 2*len(locs)+1)
	pos := 0
	for _, loc := range locs {
		if loc[0] > pos {
			frags = append(frags, Fragment{Text: line[pos:loc[0]], Color: def})
		}
		if loc[1] > loc[0] {
			frags = append(frags, Fragment{Text: line[loc[0]:loc[1]], Color: r.paint(selected)})
		}
		pos = loc[1]
	}
	if pos < len(line) {
		frags = append(frags, Fragment{Text: line[pos:], Color: def})
	}
	if len(frags) == 0 {
		frags = append(frags, Fragment{Text: line, Color: def})
	}
	return frags
}
