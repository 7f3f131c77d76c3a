package config

import "github.com/megaagentai/pitchdeck/internal/deck"

// DefaultOutputPath is where the deck is saved when nothing else is asked for
const DefaultOutputPath = "output/MegaAgentAI_SamaClub_Pitch.pptx"

type Config struct {
	OutputPath   string
	LayoutPath   string // YAML layout dump, "auto" to place it next to the deck, empty to skip
	QRURL        string
	Check        string // checker variant, "none" to skip
	ShowStats    bool
	Inspect      string // saved deck to inspect, or "latest"
	Reader       string // "native" or "goppt"
	Palette      map[string]string
	Properties   deck.Properties
	BuildVersion string
}

// Default returns the configuration of a plain run
func Default() Config {
	return Config{
		OutputPath: DefaultOutputPath,
		Check:      "all",
		Reader:     "native",
	}
}
