package analyzer

import (
	"fmt"

	"github.com/megaagentai/pitchdeck/internal/deck"
)

// Issue is a layout problem found on a slide
type Issue struct {
	Slide   int    // 1-based
	Shape   string // shape name
	Kind    string // "bounds", "overflow"
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("slide %d, %s: %s (%s)", i.Slide, i.Shape, i.Message, i.Kind)
}

// Checker is the interface for layout checks
type Checker interface {
	Check(d *deck.Deck) []Issue
}

// multiChecker runs checkers in order and concatenates their issues
type multiChecker []Checker

func (m multiChecker) Check(d *deck.Deck) []Issue {
	var issues []Issue
	for _, c := range m {
		issues = append(issues, c.Check(d)...)
	}
	return issues
}
