// Package rules implements B/S-notation cellular automaton rules.
package rules

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// Default is the rule for Conway's Game of Life.
const Default = "B3/S23"

// ErrInvalidRule reports a rule string that is not valid B/S notation.
var ErrInvalidRule = errors.New("invalid rule")

// B/S notation: birth digits, a slash, survival digits. The digit lists
// may be empty, matching rules like B2/S.
var rulePattern = regexp.MustCompile(`^[bB][0-8]*[/][sS][0-8]*$`)

// Rule holds a parsed B/S-notation rule.
type Rule struct {
	text    string
	born    [9]bool
	survive [9]bool
}

// Parse validates and parses a B/S-notation rule string.
func Parse(s string) (Rule, error) {
	if !rulePattern.MatchString(s) {
		return Rule{}, errors.Wrapf(ErrInvalidRule, "[Parse] %q is not B/S notation", s)
	}

	var r Rule
	r.text = s
	parts := strings.SplitN(s, "/", 2)
	for _, c := range parts[0][1:] {
		r.born[c-'0'] = true
	}
	for _, c := range parts[1][1:] {
		r.survive[c-'0'] = true
	}
	return r, nil
}

// Apply determines whether a cell is alive in the next generation, given
// its current state and its count of live Moore neighbors.
func (r Rule) Apply(alive bool, neighbors int) bool {
	if alive {
		return r.survive[neighbors]
	}
	return r.born[neighbors]
}

// Born returns the neighbor counts that cause a dead cell to be born.
func (r Rule) Born() []int { return digits(r.born) }

// Survive returns the neighbor counts that let a live cell survive.
func (r Rule) Survive() []int { return digits(r.survive) }

// String returns the rule in the notation it was parsed from.
func (r Rule) String() string { return r.text }

func digits(set [9]bool) []int {
	var result []int
	for n, ok := range set {
		if ok {
			result = append(result, n)
		}
	}
	return result
}
