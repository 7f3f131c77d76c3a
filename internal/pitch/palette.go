package pitch

import (
	"fmt"
	"sort"
	"strings"

	"github.com/megaagentai/pitchdeck/internal/deck"
)

// Palette is the set of colors the pitch is drawn with
type Palette struct {
	DarkBG       deck.Color
	AccentPurple deck.Color
	AccentBlue   deck.Color
	White        deck.Color
	LightGray    deck.Color
	DarkGray     deck.Color
	Red          deck.Color
	Green        deck.Color
	StanfordRed  deck.Color
	MutedGray    deck.Color
}

// DefaultPalette returns the dark theme of the pitch
func DefaultPalette() Palette {
	return Palette{
		DarkBG:       deck.RGB(15, 15, 25),
		AccentPurple: deck.RGB(138, 43, 226),
		AccentBlue:   deck.RGB(59, 130, 246),
		White:        deck.RGB(255, 255, 255),
		LightGray:    deck.RGB(200, 200, 210),
		DarkGray:     deck.RGB(40, 40, 50),
		Red:          deck.RGB(239, 68, 68),
		Green:        deck.RGB(34, 197, 94),
		StanfordRed:  deck.RGB(140, 21, 21),
		MutedGray:    deck.RGB(150, 150, 160),
	}
}

// WithOverrides returns a copy of the palette with named entries replaced.
// Keys are snake_case entry names ("dark_bg", "accent_purple", ...), values
// anything deck.ParseColor accepts.
func (p Palette) WithOverrides(overrides map[string]string) (Palette, error) {
	slots := p.slots()

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		slot, ok := slots[strings.ToLower(k)]
		if !ok {
			return p, fmt.Errorf("unknown palette entry %q", k)
		}
		c, err := deck.ParseColor(overrides[k])
		if err != nil {
			return p, fmt.Errorf("palette entry %q: %w", k, err)
		}
		*slot = c
	}
	return p, nil
}

func (p *Palette) slots() map[string]*deck.Color {
	return map[string]*deck.Color{
		"dark_bg":       &p.DarkBG,
		"accent_purple": &p.AccentPurple,
		"accent_blue":   &p.AccentBlue,
		"white":         &p.White,
		"light_gray":    &p.LightGray,
		"dark_gray":     &p.DarkGray,
		"red":           &p.Red,
		"green":         &p.Green,
		"stanford_red":  &p.StanfordRed,
		"muted_gray":    &p.MutedGray,
	}
}
