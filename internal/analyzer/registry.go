package analyzer

import "fmt"

// NewChecker creates a checker based on the specified variant
func NewChecker(variant string) (Checker, error) {
	switch variant {
	case "bounds":
		return NewBoundsChecker(), nil
	case "overflow":
		return NewOverflowChecker(), nil
	case "all", "":
		return multiChecker{NewBoundsChecker(), NewOverflowChecker()}, nil
	default:
		return nil, fmt.Errorf("unknown checker variant: %s", variant)
	}
}
