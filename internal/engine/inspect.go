package engine

import (
	"fmt"
	"io"

	"github.com/megaagentai/pitchdeck/internal/source"
)

// Inspect opens a saved deck with the named reader and prints a per-slide summary
func Inspect(w io.Writer, path, reader string) error {
	src, err := source.Open(path, reader)
	if err != nil {
		return err
	}
	defer src.Close()

	fmt.Fprintf(w, "[*] %s: %d slides\n", path, src.PageCount())
	for i := 0; i < src.PageCount(); i++ {
		shapes, err := src.ShapeCount(i)
		if err != nil {
			return err
		}
		texts, err := src.PageTexts(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "--- Slide %d: %d shapes ---\n", i+1, shapes)
		for _, t := range texts {
			fmt.Fprintf(w, "  %s\n", t)
		}
	}
	return nil
}
