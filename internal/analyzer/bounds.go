package analyzer

import (
	"fmt"

	"github.com/megaagentai/pitchdeck/internal/deck"
)

// BoundsChecker reports shapes that extend past the slide edges
type BoundsChecker struct{}

func NewBoundsChecker() *BoundsChecker {
	return &BoundsChecker{}
}

func (c *BoundsChecker) Check(d *deck.Deck) []Issue {
	var issues []Issue
	for _, s := range d.Slides {
		for _, sh := range s.Shapes {
			f := sh.Frame
			if f.X >= 0 && f.Y >= 0 && f.Right() <= d.Width && f.Bottom() <= d.Height {
				continue
			}
			issues = append(issues, Issue{
				Slide: s.Index + 1,
				Shape: sh.Name,
				Kind:  "bounds",
				Message: fmt.Sprintf("frame (%.2f, %.2f)-(%.2f, %.2f) in leaves %.3fx%.3f in page",
					f.X.Inches(), f.Y.Inches(), f.Right().Inches(), f.Bottom().Inches(),
					d.Width.Inches(), d.Height.Inches()),
			})
		}
	}
	return issues
}
