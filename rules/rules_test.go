package rules

import (
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/gridtui/terminal"
)

const (
	defPair = terminal.Pair(0)
	ruleX   = terminal.Pair(3)
	selY    = terminal.Pair(4)
)

func mustRule(t *testing.T, o Opts) *Rule {
	t.Helper()
	r, err := New(o)
	if err != nil {
		t.Fatalf("New(%+v) failed: %v", o, err)
	}
	return r
}

func joined(frags []Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		b.WriteString(f.Text)
	}
	return b.String()
}

func TestRegexFragments(t *testing.T) {
	r := mustRule(t, Opts{
		Pattern:   `\d+`,
		RuleType:  Contains,
		MatchType: MatchRegex,
		Color:     ruleX,
	})

	frags := Apply("abc123def", []*Rule{r}, defPair, false)
	want := []Fragment{
		{Text: "abc", Color: defPair},
		{Text: "123", Color: ruleX},
		{Text: "def", Color: defPair},
	}
	if len(frags) != len(want) {
		t.Fatalf("got %d fragments, want %d: %+v", len(frags), len(want), frags)
	}
	for i := range want {
		if frags[i] != want[i] {
			t.Errorf("fragment %d: got %+v, want %+v", i, frags[i], want[i])
		}
	}
}

func TestLineMatchStripsWhitespace(t *testing.T) {
	r := mustRule(t, Opts{
		Pattern:   "h",
		RuleType:  StartsWith,
		MatchType: MatchLine,
		Color:     ruleX,
	})

	frags := Apply("  hidden", []*Rule{r}, defPair, false)
	if len(frags) != 1 {
		t.Fatalf("got %d fragments, want 1", len(frags))
	}
	if frags[0].Text != "  hidden" || frags[0].Color != ruleX {
		t.Errorf("got %+v, want whole raw line in rule color", frags[0])
	}
}

func TestIncludeWhitespaceBlocksStrippedMatch(t *testing.T) {
	r := mustRule(t, Opts{
		Pattern:           "h",
		RuleType:          StartsWith,
		MatchType:         MatchLine,
		IncludeWhitespace: true,
		Color:             ruleX,
	})

	frags := Apply("  hidden", []*Rule{r}, defPair, false)
	if frags[0].Color != defPair {
		t.Errorf("raw line starts with spaces, rule must not match: %+v", frags)
	}
}

func TestFirstMatchingRuleWins(t *testing.T) {
	first := mustRule(t, Opts{Pattern: "abc", RuleType: StartsWith, MatchType: MatchLine, Color: ruleX})
	second := mustRule(t, Opts{Pattern: "abc", RuleType: StartsWith, MatchType: MatchLine, Color: selY})

	frags := Apply("abcdef", []*Rule{first, second}, defPair, false)
	if frags[0].Color != ruleX {
		t.Errorf("registration order must win: got %+v", frags[0])
	}
}

func TestNoMatchReturnsDefault(t *testing.T) {
	r := mustRule(t, Opts{Pattern: "zz", RuleType: Contains, MatchType: MatchLine, Color: ruleX})
	frags := Apply("hello", []*Rule{r}, defPair, false)
	if len(frags) != 1 || frags[0].Text != "hello" || frags[0].Color != defPair {
		t.Errorf("got %+v, want single default fragment", frags)
	}
}

func TestSelectedColorSubstitution(t *testing.T) {
	r := mustRule(t, Opts{
		Pattern:       "x",
		RuleType:      Contains,
		MatchType:     MatchLine,
		Color:         ruleX,
		SelectedColor: selY,
	})
	frags := Apply("x marks", []*Rule{r}, defPair, true)
	if frags[0].Color != selY {
		t.Errorf("selected apply must use SelectedColor: got %+v", frags[0])
	}
}

func TestRegionClipping(t *testing.T) {
	r := mustRule(t, Opts{
		Pattern:     "",
		RuleType:    StartsWith,
		MatchType:   MatchRegion,
		RegionStart: 2,
		RegionEnd:   50,
		Color:       ruleX,
	})
	frags := Apply("abcdef", []*Rule{r}, defPair, false)
	if joined(frags) != "abcdef" {
		t.Fatalf("clipped region lost characters: %+v", frags)
	}
	if len(frags) != 2 {
		t.Fatalf("got %d fragments, want 2: %+v", len(frags), frags)
	}
	if frags[0] != (Fragment{Text: "ab", Color: defPair}) {
		t.Errorf("prefix fragment: %+v", frags[0])
	}
	if frags[1] != (Fragment{Text: "cdef", Color: ruleX}) {
		t.Errorf("region fragment: %+v", frags[1])
	}
}

func TestRegionBeyondLine(t *testing.T) {
	r := mustRule(t, Opts{
		Pattern:     "",
		RuleType:    StartsWith,
		MatchType:   MatchRegion,
		RegionStart: 10,
		RegionEnd:   20,
		Color:       ruleX,
	})
	frags := Apply("abc", []*Rule{r}, defPair, false)
	if joined(frags) != "abc" {
		t.Errorf("fragments must reproduce line: %+v", frags)
	}
	for _, f := range frags {
		if f.Color == ruleX {
			t.Errorf("fully clipped region must not color anything: %+v", frags)
		}
	}
}

func TestRuleTypes(t *testing.T) {
	cases := []struct {
		name     string
		ruleType RuleType
		pattern  string
		line     string
		match    bool
	}{
		{"startswith hit", StartsWith, "he", "hello", true},
		{"startswith miss", StartsWith, "lo", "hello", false},
		{"endswith hit", EndsWith, "lo", "hello", true},
		{"endswith miss", EndsWith, "he", "hello", false},
		{"notstartswith hit", NotStartsWith, "lo", "hello", true},
		{"notstartswith miss", NotStartsWith, "he", "hello", false},
		{"notendswith hit", NotEndsWith, "he", "hello", true},
		{"notendswith miss", NotEndsWith, "lo", "hello", false},
		{"contains hit", Contains, "ell", "hello", true},
		{"contains miss", Contains, "xyz", "hello", false},
	}
	for _, tc := range cases {
		r := mustRule(t, Opts{Pattern: tc.pattern, RuleType: tc.ruleType, MatchType: MatchLine, Color: ruleX})
		frags := Apply(tc.line, []*Rule{r}, defPair, false)
		got := frags[0].Color == ruleX
		if got != tc.match {
			t.Errorf("%s: match=%v, want %v", tc.name, got, tc.match)
		}
	}
}

func TestRegexRuleTypeAnchors(t *testing.T) {
	starts := mustRule(t, Opts{Pattern: `\d+`, RuleType: StartsWith, MatchType: MatchRegex, Color: ruleX})
	if frags := Apply("12ab", []*Rule{starts}, defPair, false); frags[0].Color != ruleX {
		t.Errorf("regex startswith should match at offset 0: %+v", frags)
	}
	if frags := Apply("ab12", []*Rule{starts}, defPair, false); len(frags) != 1 || frags[0].Color != defPair {
		t.Errorf("regex startswith must not match mid-line: %+v", frags)
	}

	ends := mustRule(t, Opts{Pattern: `\d+`, RuleType: EndsWith, MatchType: MatchRegex, Color: ruleX})
	if frags := Apply("ab12", []*Rule{ends}, defPair, false); frags[len(frags)-1].Color != ruleX {
		t.Errorf("regex endswith should match at end: %+v", frags)
	}
	if frags := Apply("12ab", []*Rule{ends}, defPair, false); len(frags) != 1 || frags[0].Color != defPair {
		t.Errorf("regex endswith must not match at start only: %+v", frags)
	}
}

// Fragment totality across all match types and arbitrary rule sets
func TestFragmentTotality(t *testing.T) {
	ruleSet := []*Rule{
		mustRule(t, Opts{Pattern: `ERROR`, RuleType: StartsWith, MatchType: MatchLine, Color: ruleX}),
		mustRule(t, Opts{Pattern: `\d+`, RuleType: Contains, MatchType: MatchRegex, Color: selY}),
		mustRule(t, Opts{Pattern: `#`, RuleType: StartsWith, MatchType: MatchRegion, RegionStart: 0, RegionEnd: 4, Color: ruleX}),
	}
	lines := []string{
		"",
		"ERROR: bad things",
		"count 42 of 99",
		"# comment text",
		"   indented 7",
		"no digits here",
		"123",
		"tabs\tand spaces",
	}
	for _, line := range lines {
		frags := Apply(line, ruleSet, defPair, false)
		if joined(frags) != line {
			t.Errorf("line %q: fragments %+v do not concatenate back", line, frags)
		}
		for _, f := range frags {
			if f.Text == "" && line != "" {
				t.Errorf("line %q: empty fragment emitted: %+v", line, frags)
			}
		}
	}
}

func TestNewRejectsBadRegex(t *testing.T) {
	_, err := New(Opts{Pattern: "([", RuleType: Contains, MatchType: MatchRegex, Color: ruleX})
	if !errors.Is(err, ErrInvalidRule) {
		t.Errorf("expected ErrInvalidRule, got %v", err)
	}
}

func TestNewRejectsInvertedRegion(t *testing.T) {
	_, err := New(Opts{Pattern: "", RuleType: StartsWith, MatchType: MatchRegion, RegionStart: 5, RegionEnd: 2, Color: ruleX})
	if !errors.Is(err, ErrInvalidRule) {
		t.Errorf("expected ErrInvalidRule, got %v", err)
	}
	_, err = New(Opts{Pattern: "", RuleType: StartsWith, MatchType: MatchRegion, RegionStart: -1, RegionEnd: 2, Color: ruleX})
	if !errors.Is(err, ErrInvalidRule) {
		t.Errorf("negative start: expected ErrInvalidRule, got %v", err)
	}
}

func TestEmptyLine(t *testing.T) {
	r := mustRule(t, Opts{Pattern: `\d`, RuleType: Contains, MatchType: MatchRegex, Color: ruleX})
	frags := Apply("", []*Rule{r}, defPair, false)
	if len(frags) != 1 || frags[0].Text != "" || frags[0].Color != defPair {
		t.Errorf("empty line: got %+v", frags)
	}
}
